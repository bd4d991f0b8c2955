package db_models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrderItem is a snapshot of the product at order time so later catalog
// changes never alter historical orders.
type OrderItem struct {
	BaseModel
	OrderID uint `gorm:"not null;index" json:"order_id"`

	ProductID          uint            `gorm:"not null;index" json:"product_id"`
	ProductName        string          `gorm:"not null" json:"product_name"`
	ProductDescription string          `gorm:"type:text" json:"product_description"`
	ProductPrice       decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"product_price"`
	ProductImageURL    string          `json:"product_image_url"`

	Quantity int             `gorm:"not null" json:"quantity"`
	Subtotal decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"subtotal"`

	// Variant attributes like size or color
	ProductAttributes datatypes.JSON `json:"product_attributes"`
}

func (i *OrderItem) CalculateSubtotal() decimal.Decimal {
	return i.ProductPrice.Mul(decimal.NewFromInt(int64(i.Quantity))).Round(2)
}

// Subtotal is never trusted from the caller: it is recomputed whenever the
// row is written.
func (i *OrderItem) BeforeSave(tx *gorm.DB) error {
	i.Subtotal = i.CalculateSubtotal()
	return nil
}
