package httpt

import (
	"context"
	"errors"
	"net/http"

	"github.com/CSCI-GA-2820-FA24-003/inventory/internal/entity"
	"github.com/CSCI-GA-2820-FA24-003/inventory/pkg/logger"

	"github.com/gin-gonic/gin"
)

func (h *InventoryHandler) handleServiceError(c *gin.Context, err error, op string) {
	log := h.log.Ctx(c.Request.Context())

	log.LogAttrs(c.Request.Context(), logger.ErrorLevel, op+" failed",
		logger.Any("error", err),
		logger.String("remote_addr", c.ClientIP()),
		logger.String("user_agent", c.Request.UserAgent()),
	)

	switch {
	case errors.Is(err, entity.ErrInvalidData):
		c.JSON(
			http.StatusBadRequest,
			ErrorResponse{Message: "Invalid inventory data. Check name, quantity, restock_level and condition."},
		)
	case errors.Is(err, entity.ErrDataNotFound):
		log.LogAttrs(c.Request.Context(), logger.WarnLevel, "inventory not found",
			logger.String("id", c.Param("id")),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Inventory not found"})
	case errors.Is(err, entity.ErrConflictingData):
		log.LogAttrs(c.Request.Context(), logger.WarnLevel, "conflicting inventory state",
			logger.String("id", c.Param("id")),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusConflict, ErrorResponse{Message: "Restocking availability is already in the requested state"})
	case errors.Is(err, context.DeadlineExceeded):
		log.LogAttrs(c.Request.Context(), logger.WarnLevel, "request timeout",
			logger.String("path", c.Request.URL.Path),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusGatewayTimeout, ErrorResponse{Message: "Request timed out"})
	default:
		log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "internal server error",
			logger.Any("error", err),
			logger.String("path", c.Request.URL.Path),
			logger.String("client_ip", c.ClientIP()),
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal service error"})
	}
}

func (h *InventoryHandler) handleInvalidID(c *gin.Context, op, value string) {
	log := h.log.Ctx(c.Request.Context())

	log.LogAttrs(c.Request.Context(), logger.WarnLevel, "invalid inventory id format",
		logger.String("op", op),
		logger.String("value", value),
		logger.String("remote_addr", c.ClientIP()),
	)

	c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid inventory id format"})
}

func (h *InventoryHandler) handleInvalidPayload(c *gin.Context, op string, err error) {
	log := h.log.Ctx(c.Request.Context())

	log.LogAttrs(c.Request.Context(), logger.WarnLevel, "invalid inventory payload",
		logger.String("op", op),
		logger.Any("error", err),
		logger.String("remote_addr", c.ClientIP()),
	)

	c.JSON(
		http.StatusBadRequest,
		ErrorResponse{Message: "Invalid inventory data. Check name, quantity, restock_level and condition."},
	)
}

func (h *InventoryHandler) handleInvalidQuery(c *gin.Context, op, param, value string) {
	log := h.log.Ctx(c.Request.Context())

	log.LogAttrs(c.Request.Context(), logger.WarnLevel, "invalid query parameter",
		logger.String("op", op),
		logger.String("param", param),
		logger.String("value", value),
		logger.String("remote_addr", c.ClientIP()),
	)

	c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid value for query parameter " + param})
}
