package models

// OrderItem is a line of an order: one product and its quantity.
type OrderItem struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	OrderID   uint     `gorm:"column:id_pedido;not null;index" json:"id_pedido"`
	ProductID uint     `gorm:"column:id_produto;not null;index" json:"id_produto"`
	Quantity  int      `gorm:"column:qtdade;not null" json:"qtdade"`
	Order     *Order   `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Product   *Product `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (OrderItem) TableName() string { return "item_do_pedido" }

type OrderItemRequest struct {
	OrderID   RefID    `json:"id_pedido" binding:"required,max=2147483647"`
	ProductID RefID    `json:"id_produto" binding:"required,max=2147483647"`
	Quantity  Quantity `json:"qtdade" binding:"required,min=1"`
}

func (r *OrderItemRequest) Apply(i *OrderItem) {
	i.OrderID = uint(r.OrderID)
	i.ProductID = uint(r.ProductID)
	i.Quantity = int(r.Quantity)
	i.Order = nil
	i.Product = nil
}
