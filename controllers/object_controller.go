package controllers

import (
	"net/http"

	"order-management-service/models"
	"order-management-service/services"

	"github.com/gin-gonic/gin"
)

type ObjectController struct {
	objectService services.ObjectService
}

func NewObjectController(svc services.ObjectService) *ObjectController {
	return &ObjectController{objectService: svc}
}

func (oc *ObjectController) ListObjects(ctx *gin.Context) {
	objects, svcErr := oc.objectService.ListObjects(ctx.Request.Context())
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"objetos": objects})
}

func (oc *ObjectController) GetObject(ctx *gin.Context) {
	id, ok := parseID(ctx, services.MsgObjectNotFound)
	if !ok {
		return
	}
	object, svcErr := oc.objectService.GetObject(ctx.Request.Context(), id)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, object)
}

func (oc *ObjectController) CreateObject(ctx *gin.Context) {
	var req models.ObjectRequest
	if !bindRequest(ctx, &req) {
		return
	}
	object, svcErr := oc.objectService.CreateObject(ctx.Request.Context(), &req)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusCreated, object)
}

func (oc *ObjectController) UpdateObject(ctx *gin.Context) {
	id, ok := parseID(ctx, services.MsgObjectNotFound)
	if !ok {
		return
	}
	if _, svcErr := oc.objectService.GetObject(ctx.Request.Context(), id); svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	var req models.ObjectRequest
	if !bindRequest(ctx, &req) {
		return
	}
	object, svcErr := oc.objectService.UpdateObject(ctx.Request.Context(), id, &req)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, object)
}

func (oc *ObjectController) DeleteObject(ctx *gin.Context) {
	id, ok := parseID(ctx, services.MsgObjectNotFound)
	if !ok {
		return
	}
	if svcErr := oc.objectService.DeleteObject(ctx.Request.Context(), id); svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": services.MsgObjectDeleted})
}
