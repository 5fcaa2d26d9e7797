package models

// Object is the minimal named entity kept as a template for new resources.
type Object struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"column:nome;type:varchar(255);not null" json:"nome"`
}

func (Object) TableName() string { return "objetos" }

type ObjectRequest struct {
	Name string `json:"nome" binding:"required,max=255"`
}

func (r *ObjectRequest) Apply(o *Object) {
	o.Name = r.Name
}
