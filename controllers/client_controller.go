package controllers

import (
	"net/http"

	"order-management-service/models"
	"order-management-service/services"

	"github.com/gin-gonic/gin"
)

type ClientController struct {
	clientService services.ClientService
}

func NewClientController(svc services.ClientService) *ClientController {
	return &ClientController{clientService: svc}
}

// ListClients handles GET /clientes
func (cc *ClientController) ListClients(ctx *gin.Context) {
	clients, svcErr := cc.clientService.ListClients(ctx.Request.Context())
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"clientes": clients})
}

// GetClient handles GET /clientes/:id
func (cc *ClientController) GetClient(ctx *gin.Context) {
	id, ok := parseID(ctx, services.MsgClientNotFound)
	if !ok {
		return
	}
	client, svcErr := cc.clientService.GetClient(ctx.Request.Context(), id)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, client)
}

// CreateClient handles POST /incluirCliente
func (cc *ClientController) CreateClient(ctx *gin.Context) {
	var req models.ClientRequest
	if !bindRequest(ctx, &req) {
		return
	}
	client, svcErr := cc.clientService.CreateClient(ctx.Request.Context(), &req)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusCreated, client)
}

// UpdateClient handles PUT /atualizarCliente/:id. A missing client is a 404
// whatever the payload holds.
func (cc *ClientController) UpdateClient(ctx *gin.Context) {
	id, ok := parseID(ctx, services.MsgClientNotFound)
	if !ok {
		return
	}
	if _, svcErr := cc.clientService.GetClient(ctx.Request.Context(), id); svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	var req models.ClientRequest
	if !bindRequest(ctx, &req) {
		return
	}
	client, svcErr := cc.clientService.UpdateClient(ctx.Request.Context(), id, &req)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, client)
}

// DeleteClient handles DELETE /excluirCliente/:id
func (cc *ClientController) DeleteClient(ctx *gin.Context) {
	id, ok := parseID(ctx, services.MsgClientNotFound)
	if !ok {
		return
	}
	if svcErr := cc.clientService.DeleteClient(ctx.Request.Context(), id); svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": services.MsgClientDeleted})
}
