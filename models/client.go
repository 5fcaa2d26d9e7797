package models

// Client is a customer identified by a unique document number (CPF).
type Client struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"column:nome;type:varchar(255);not null" json:"nome"`
	LastName  string `gorm:"column:sobrenome;type:varchar(255);not null" json:"sobrenome"`
	CPF       string `gorm:"column:cpf;type:varchar(14);not null;uniqueIndex" json:"cpf"`
}

func (Client) TableName() string { return "clientes" }

// ClientRequest is the payload of POST /incluirCliente and PUT /atualizarCliente/:id.
type ClientRequest struct {
	FirstName string `json:"nome" binding:"required,max=255"`
	LastName  string `json:"sobrenome" binding:"required,max=255"`
	CPF       string `json:"cpf" binding:"required,max=14"`
}

// Apply overwrites every mutable field; updates are full replacements.
func (r *ClientRequest) Apply(c *Client) {
	c.FirstName = r.FirstName
	c.LastName = r.LastName
	c.CPF = r.CPF
}
