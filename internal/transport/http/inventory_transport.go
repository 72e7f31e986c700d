package httpt

import (
	"github.com/CSCI-GA-2820-FA24-003/inventory/internal/service"
	"github.com/CSCI-GA-2820-FA24-003/inventory/pkg/logger"
	"github.com/CSCI-GA-2820-FA24-003/inventory/pkg/metric"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	svc     *service.InventoryService
	log     logger.Logger
	metrics metric.HTTP
	router  *gin.Engine
}

func NewInventoryHandler(
	svc *service.InventoryService,
	log logger.Logger,
	metrics metric.HTTP,
) *InventoryHandler {
	h := &InventoryHandler{
		svc:     svc,
		log:     log,
		metrics: metrics,
	}

	router := gin.New()

	router.Use(h.requestIDMiddleware())
	router.Use(h.loggingMiddleware())
	router.Use(gin.Recovery())

	h.router = router

	h.router.LoadHTMLGlob("web/*.html")
	h.router.Static("/static", "./web")

	h.setupRoutes()

	return h
}

func (h *InventoryHandler) Engine() *gin.Engine {
	return h.router
}
