package controllers

import (
	"net/http"

	"order-management-service/models"
	"order-management-service/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	productService services.ProductService
}

func NewProductController(svc services.ProductService) *ProductController {
	return &ProductController{productService: svc}
}

// ListProducts handles GET /produtos
func (pc *ProductController) ListProducts(ctx *gin.Context) {
	products, svcErr := pc.productService.ListProducts(ctx.Request.Context())
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"produtos": products})
}

// GetProduct handles GET /produtos/:id
func (pc *ProductController) GetProduct(ctx *gin.Context) {
	id, ok := parseID(ctx, services.MsgProductNotFound)
	if !ok {
		return
	}
	product, svcErr := pc.productService.GetProduct(ctx.Request.Context(), id)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /incluirProduto
func (pc *ProductController) CreateProduct(ctx *gin.Context) {
	var req models.ProductRequest
	if !bindRequest(ctx, &req) {
		return
	}
	product, svcErr := pc.productService.CreateProduct(ctx.Request.Context(), &req)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /atualizarProduto/:id
func (pc *ProductController) UpdateProduct(ctx *gin.Context) {
	id, ok := parseID(ctx, services.MsgProductNotFound)
	if !ok {
		return
	}
	if _, svcErr := pc.productService.GetProduct(ctx.Request.Context(), id); svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}

	var req models.ProductRequest
	if !bindRequest(ctx, &req) {
		return
	}
	product, svcErr := pc.productService.UpdateProduct(ctx.Request.Context(), id, &req)
	if svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /excluirProduto/:id
func (pc *ProductController) DeleteProduct(ctx *gin.Context) {
	id, ok := parseID(ctx, services.MsgProductNotFound)
	if !ok {
		return
	}
	if svcErr := pc.productService.DeleteProduct(ctx.Request.Context(), id); svcErr != nil {
		abortWithServiceError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": services.MsgProductDeleted})
}
