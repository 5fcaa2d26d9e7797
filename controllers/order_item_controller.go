package controllers

import (
	"net/http"

	"order-management-service/models"
	"order-management-service/services"

	"github.com/gin-gonic/gin"
)

type OrderItemController struct {
	itemService services.OrderItemService
}

func NewOrderItemController(svc services.OrderItemService) *OrderItemController {
	return &OrderItemController{itemService: svc}
}

// ListOrderItems handles GET /itensDoPedido
func (ic *OrderItemController) ListOrderItems(ctx *gin.Context) {
	items, svcErr := ic.itemService.ListOrderItems(ctx.Request.Context())
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"itensDoPedido": items})
}

// GetOrderItem handles GET /itensDoPedido/:id
func (ic *OrderItemController) GetOrderItem(ctx *gin.Context) {
	id, ok := parseID(ctx, services.MsgItemNotFound)
	if !ok {
		return
	}
	item, svcErr := ic.itemService.GetOrderItem(ctx.Request.Context(), id)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// CreateOrderItem handles POST /incluirItemDoPedido
func (ic *OrderItemController) CreateOrderItem(ctx *gin.Context) {
	var req models.OrderItemRequest
	if !bindRequest(ctx, &req) {
		return
	}
	item, svcErr := ic.itemService.CreateOrderItem(ctx.Request.Context(), &req)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusCreated, item)
}

// UpdateOrderItem handles PUT /atualizarItemDoPedido/:id
func (ic *OrderItemController) UpdateOrderItem(ctx *gin.Context) {
	id, ok := parseID(ctx, services.MsgItemNotFound)
	if !ok {
		return
	}
	if _, svcErr := ic.itemService.GetOrderItem(ctx.Request.Context(), id); svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	var req models.OrderItemRequest
	if !bindRequest(ctx, &req) {
		return
	}
	item, svcErr := ic.itemService.UpdateOrderItem(ctx.Request.Context(), id, &req)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// DeleteOrderItem handles DELETE /excluirItemDoPedido/:id
func (ic *OrderItemController) DeleteOrderItem(ctx *gin.Context) {
	id, ok := parseID(ctx, services.MsgItemNotFound)
	if !ok {
		return
	}
	if svcErr := ic.itemService.DeleteOrderItem(ctx.Request.Context(), id); svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": services.MsgItemDeleted})
}
