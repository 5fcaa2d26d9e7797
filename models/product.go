package models

// Product is a catalog item identified by a unique description.
type Product struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Description string `gorm:"column:descricao;type:varchar(255);not null;uniqueIndex" json:"descricao"`
}

func (Product) TableName() string { return "produtos" }

type ProductRequest struct {
	Description string `json:"descricao" binding:"required,max=255"`
}

func (r *ProductRequest) Apply(p *Product) {
	p.Description = r.Description
}
