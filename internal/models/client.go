package models

// Client is a customer that sales are recorded against.
type Client struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	FirstName string  `json:"nombre" gorm:"column:nombre;type:varchar(100);not null"`
	LastName  string  `json:"apellido" gorm:"column:apellido;type:varchar(100);not null"`
	Email     string  `json:"email" gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	Phone     *string `json:"telefono" gorm:"column:telefono;type:varchar(20)"`
}

func (Client) TableName() string { return "clientes" }
