package controllers

import (
	"net/http"

	"order-management-service/models"
	"order-management-service/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orderService services.OrderService
}

func NewOrderController(svc services.OrderService) *OrderController {
	return &OrderController{orderService: svc}
}

// ListOrders handles GET /Pedidos and GET /pedidos
func (oc *OrderController) ListOrders(ctx *gin.Context) {
	entries, svcErr := oc.orderService.ListOrders(ctx.Request.Context())
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"pedidos": entries})
}

// GetOrder handles GET /pedidos/:id
func (oc *OrderController) GetOrder(ctx *gin.Context) {
	id, ok := parseID(ctx, services.MsgOrderNotFound)
	if !ok {
		return
	}
	order, svcErr := oc.orderService.GetOrder(ctx.Request.Context(), id)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, order)
}

// CreateOrder handles POST /incluirPedido
func (oc *OrderController) CreateOrder(ctx *gin.Context) {
	var req models.OrderRequest
	if !bindRequest(ctx, &req) {
		return
	}
	order, svcErr := oc.orderService.CreateOrder(ctx.Request.Context(), &req)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusCreated, order)
}

// UpdateOrder handles PUT /atualizarPedido/:id
func (oc *OrderController) UpdateOrder(ctx *gin.Context) {
	id, ok := parseID(ctx, services.MsgOrderNotFound)
	if !ok {
		return
	}
	if _, svcErr := oc.orderService.GetOrder(ctx.Request.Context(), id); svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	var req models.OrderRequest
	if !bindRequest(ctx, &req) {
		return
	}
	order, svcErr := oc.orderService.UpdateOrder(ctx.Request.Context(), id, &req)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, order)
}

// DeleteOrder handles DELETE /excluirPedido/:id
func (oc *OrderController) DeleteOrder(ctx *gin.Context) {
	id, ok := parseID(ctx, services.MsgOrderNotFound)
	if !ok {
		return
	}
	if svcErr := oc.orderService.DeleteOrder(ctx.Request.Context(), id); svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": services.MsgOrderDeleted})
}
