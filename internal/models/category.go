package models

// Category groups products. Names are unique across the store.
type Category struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"nombre" gorm:"column:nombre;type:varchar(100);uniqueIndex;not null"`
	Description *string `json:"descripcion" gorm:"column:descripcion;type:varchar(500)"`
}

// TableName pins the table name.
func (Category) TableName() string { return "categorias" }
