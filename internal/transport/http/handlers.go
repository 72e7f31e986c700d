package httpt

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/CSCI-GA-2820-FA24-003/inventory/internal/entity"
	"github.com/CSCI-GA-2820-FA24-003/inventory/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	_defaultContextTimeout = 500 * time.Millisecond
)

func (h *InventoryHandler) createInventoryHandler(c *gin.Context) {
	const op = "transport.createInventoryHandler"

	log := h.log.Ctx(c.Request.Context())

	inventory, ok := h.bindInventory(c, op)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	created, err := h.svc.CreateInventory(ctx, inventory)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	log.LogAttrs(ctx, logger.InfoLevel, "inventory created",
		logger.Int64("id", created.ID),
	)

	c.Header("Location", fmt.Sprintf("/inventories/%d", created.ID))
	c.JSON(http.StatusCreated, created)
}

func (h *InventoryHandler) listInventoriesHandler(c *gin.Context) {
	const op = "transport.listInventoriesHandler"

	log := h.log.Ctx(c.Request.Context())

	filter, ok := h.parseListFilter(c, op)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	inventories, err := h.svc.ListInventories(ctx, filter)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	log.LogAttrs(ctx, logger.InfoLevel, "inventories listed",
		logger.Int("count", len(inventories)),
	)

	c.JSON(http.StatusOK, inventories)
}

func (h *InventoryHandler) getInventoryHandler(c *gin.Context) {
	const op = "transport.getInventoryHandler"

	log := h.log.Ctx(c.Request.Context())

	id, ok := h.parseID(c, op)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	inventory, err := h.svc.GetInventory(ctx, id)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	log.LogAttrs(ctx, logger.InfoLevel, "inventory retrieved",
		logger.Int64("id", id),
	)

	c.JSON(http.StatusOK, inventory)
}

func (h *InventoryHandler) updateInventoryHandler(c *gin.Context) {
	const op = "transport.updateInventoryHandler"

	log := h.log.Ctx(c.Request.Context())

	id, ok := h.parseID(c, op)
	if !ok {
		return
	}

	inventory, ok := h.bindInventory(c, op)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	updated, err := h.svc.UpdateInventory(ctx, id, inventory)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	log.LogAttrs(ctx, logger.InfoLevel, "inventory updated",
		logger.Int64("id", id),
	)

	c.JSON(http.StatusOK, updated)
}

func (h *InventoryHandler) deleteInventoryHandler(c *gin.Context) {
	const op = "transport.deleteInventoryHandler"

	log := h.log.Ctx(c.Request.Context())

	id, ok := h.parseID(c, op)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	if err := h.svc.DeleteInventory(ctx, id); err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	log.LogAttrs(ctx, logger.InfoLevel, "inventory deleted",
		logger.Int64("id", id),
	)

	c.Status(http.StatusNoContent)
}

func (h *InventoryHandler) startRestockingHandler(c *gin.Context) {
	const op = "transport.startRestockingHandler"

	h.setRestocking(c, op, false)
}

func (h *InventoryHandler) stopRestockingHandler(c *gin.Context) {
	const op = "transport.stopRestockingHandler"

	h.setRestocking(c, op, true)
}

func (h *InventoryHandler) setRestocking(c *gin.Context, op string, available bool) {
	log := h.log.Ctx(c.Request.Context())

	id, ok := h.parseID(c, op)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), _defaultContextTimeout)
	defer cancel()

	updated, err := h.svc.SetRestocking(ctx, id, available)
	if err != nil {
		h.handleServiceError(c, err, op)
		return
	}

	log.LogAttrs(ctx, logger.InfoLevel, "restocking flag updated",
		logger.Int64("id", id),
		logger.Bool("restocking_available", updated.RestockingAvailable),
	)

	c.JSON(http.StatusOK, updated)
}

func (h *InventoryHandler) parseID(c *gin.Context, op string) (int64, bool) {
	idStr := c.Param("id")

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.handleInvalidID(c, op, idStr)
		return 0, false
	}

	return id, true
}

// bindInventory decodes and validates the write payload. The record id always
// comes from the path, so a conflicting id in the body is ignored.
func (h *InventoryHandler) bindInventory(c *gin.Context, op string) (*entity.Inventory, bool) {
	var req inventoryRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleInvalidPayload(c, op, err)
		return nil, false
	}

	condition, err := entity.ParseCondition(*req.Condition)
	if err != nil {
		h.handleInvalidPayload(c, op, err)
		return nil, false
	}

	return &entity.Inventory{
		Name:                *req.Name,
		Quantity:            *req.Quantity,
		RestockLevel:        *req.RestockLevel,
		Condition:           condition,
		RestockingAvailable: *req.RestockingAvailable,
	}, true
}

func (h *InventoryHandler) parseListFilter(c *gin.Context, op string) (entity.ListFilter, bool) {
	var filter entity.ListFilter

	if name, found := c.GetQuery("name"); found {
		filter.Name = &name
	}

	if quantityStr, found := c.GetQuery("quantity"); found {
		quantity, err := strconv.ParseInt(quantityStr, 10, 64)
		if err != nil || quantity < 0 {
			h.handleInvalidQuery(c, op, "quantity", quantityStr)
			return entity.ListFilter{}, false
		}
		filter.Quantity = &quantity
	}

	if restockLevelStr, found := c.GetQuery("restock_level"); found {
		restockLevel, err := strconv.ParseInt(restockLevelStr, 10, 64)
		if err != nil || restockLevel < 0 {
			h.handleInvalidQuery(c, op, "restock_level", restockLevelStr)
			return entity.ListFilter{}, false
		}
		filter.RestockLevel = &restockLevel
	}

	if conditionStr, found := c.GetQuery("condition"); found {
		condition, err := entity.ParseCondition(conditionStr)
		if err != nil {
			h.handleInvalidQuery(c, op, "condition", conditionStr)
			return entity.ListFilter{}, false
		}
		filter.Condition = &condition
	}

	if availableStr, found := c.GetQuery("restocking_available"); found {
		available, ok := parseBoolParam(availableStr)
		if !ok {
			h.handleInvalidQuery(c, op, "restocking_available", availableStr)
			return entity.ListFilter{}, false
		}
		filter.RestockingAvailable = &available
	}

	return filter, true
}

func parseBoolParam(value string) (bool, bool) {
	switch strings.ToLower(value) {
	case "yes":
		return true, true
	case "no":
		return false, true
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, false
	}
	return parsed, true
}
