package models

import "time"

// Order is a purchase by one client on a date.
type Order struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Date     time.Time `gorm:"column:data;not null" json:"data"`
	ClientID uint      `gorm:"column:id_cliente;not null;index" json:"id_cliente"`
	Client   *Client   `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Order) TableName() string { return "pedidos" }

type OrderRequest struct {
	Date     time.Time `json:"data" binding:"required"`
	ClientID RefID     `json:"id_cliente" binding:"required,max=2147483647"`
}

func (r *OrderRequest) Apply(o *Order) {
	o.Date = r.Date
	o.ClientID = uint(r.ClientID)
	o.Client = nil
}

// OrderListEntry is one element of GET /Pedidos: the order plus its client, or null.
type OrderListEntry struct {
	Order  OrderHeader    `json:"pedido"`
	Client *ClientSummary `json:"cliente"`
}

type OrderHeader struct {
	ID   uint      `json:"id"`
	Date time.Time `json:"data"`
}

type ClientSummary struct {
	ID        uint   `json:"id"`
	FirstName string `json:"nome"`
	LastName  string `json:"sobrenome"`
	CPF       string `json:"cpf"`
}

// ListEntry flattens an order with its preloaded client.
func (o Order) ListEntry() OrderListEntry {
	entry := OrderListEntry{Order: OrderHeader{ID: o.ID, Date: o.Date}}
	if o.Client != nil {
		entry.Client = &ClientSummary{
			ID:        o.Client.ID,
			FirstName: o.Client.FirstName,
			LastName:  o.Client.LastName,
			CPF:       o.Client.CPF,
		}
	}
	return entry
}
