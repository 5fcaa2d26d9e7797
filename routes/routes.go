package routes

import (
	"order-management-service/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterClientRoutes sets up the client CRUD routes.
func RegisterClientRoutes(r gin.IRouter, cc *controllers.ClientController) {
	r.GET("/clientes", cc.ListClients)
	r.GET("/clientes/:id", cc.GetClient)
	r.POST("/incluirCliente", cc.CreateClient)
	r.PUT("/atualizarCliente/:id", cc.UpdateClient)
	r.DELETE("/excluirCliente/:id", cc.DeleteClient)
}

func RegisterProductRoutes(r gin.IRouter, pc *controllers.ProductController) {
	r.GET("/produtos", pc.ListProducts)
	r.GET("/produtos/:id", pc.GetProduct)
	r.POST("/incluirProduto", pc.CreateProduct)
	r.PUT("/atualizarProduto/:id", pc.UpdateProduct)
	r.DELETE("/excluirProduto/:id", pc.DeleteProduct)
}

// RegisterOrderRoutes mounts the order list under both /Pedidos and /pedidos.
func RegisterOrderRoutes(r gin.IRouter, oc *controllers.OrderController) {
	r.GET("/Pedidos", oc.ListOrders)
	r.GET("/pedidos", oc.ListOrders)
	r.GET("/pedidos/:id", oc.GetOrder)
	r.POST("/incluirPedido", oc.CreateOrder)
	r.PUT("/atualizarPedido/:id", oc.UpdateOrder)
	r.DELETE("/excluirPedido/:id", oc.DeleteOrder)
}

func RegisterOrderItemRoutes(r gin.IRouter, ic *controllers.OrderItemController) {
	r.GET("/itensDoPedido", ic.ListOrderItems)
	r.GET("/itensDoPedido/:id", ic.GetOrderItem)
	r.POST("/incluirItemDoPedido", ic.CreateOrderItem)
	r.PUT("/atualizarItemDoPedido/:id", ic.UpdateOrderItem)
	r.DELETE("/excluirItemDoPedido/:id", ic.DeleteOrderItem)
}

func RegisterObjectRoutes(r gin.IRouter, oc *controllers.ObjectController) {
	r.GET("/objetos", oc.ListObjects)
	r.GET("/objetos/:id", oc.GetObject)
	r.POST("/incluirObjeto", oc.CreateObject)
	r.PUT("/atualizarObjeto/:id", oc.UpdateObject)
	r.DELETE("/excluirObjeto/:id", oc.DeleteObject)
}

func RegisterHealthRoutes(r gin.IRouter, hc *controllers.HealthController) {
	r.GET("/ping", hc.Ping)
	r.GET("/health", hc.Health)
}
