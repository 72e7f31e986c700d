package httpt

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *InventoryHandler) setupRoutes() {
	h.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status:  http.StatusOK,
			Message: "Healthy",
		})
	})

	h.router.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{})
	})

	inventories := h.router.Group("/inventories")
	{
		inventories.POST("", h.createInventoryHandler)
		inventories.GET("", h.listInventoriesHandler)
		inventories.GET("/:id", h.getInventoryHandler)
		inventories.PUT("/:id", h.updateInventoryHandler)
		inventories.DELETE("/:id", h.deleteInventoryHandler)
		inventories.PUT("/:id/start-restocking", h.startRestockingHandler)
		inventories.PUT("/:id/stop-restocking", h.stopRestockingHandler)
	}
}
