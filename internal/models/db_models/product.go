package db_models

import "github.com/shopspring/decimal"

type Product struct {
	BaseModel
	Name        string          `gorm:"not null;index" json:"name"`
	Category    string          `gorm:"index" json:"category"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	ImageURL    string          `json:"image_url"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
	IsActive    bool            `gorm:"not null;default:true;index" json:"is_active"`
}
