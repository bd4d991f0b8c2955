package db_models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// OrderNumberPrefix distinguishes order numbers from numeric ids in
// lookup-by-identifier requests.
const OrderNumberPrefix = "ORD-"

type Order struct {
	BaseModel
	OrderNumber string `gorm:"uniqueIndex;not null" json:"order_number"`
	UserID      *uint  `gorm:"index" json:"user_id"`

	// Pricing
	Subtotal     decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"subtotal"`
	Tax          decimal.Decimal `gorm:"not null;type:decimal(10,2);default:0" json:"tax"`
	ShippingCost decimal.Decimal `gorm:"not null;type:decimal(10,2);default:0" json:"shipping_cost"`
	TotalAmount  decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"total_amount"`

	Status        OrderStatus   `gorm:"not null;default:pending;index" json:"status"`
	PaymentStatus PaymentStatus `gorm:"not null;default:pending;index" json:"payment_status"`

	// Customer info (guest checkout)
	CustomerEmail string `gorm:"index" json:"customer_email"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`

	// Addresses kept as opaque blobs for flexibility
	ShippingAddress datatypes.JSON `json:"shipping_address"`
	BillingAddress  datatypes.JSON `json:"billing_address"`

	Notes       string     `gorm:"type:text" json:"notes"`
	ConfirmedAt *time.Time `json:"confirmed_at"`
	ShippedAt   *time.Time `json:"shipped_at"`
	DeliveredAt *time.Time `json:"delivered_at"`

	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	OrderItems   []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_items"`
	Transactions []Transaction `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"transactions"`
}

func (o *Order) IsCancellable() bool {
	return o.Status != OrderStatusShipped && o.Status != OrderStatusDelivered
}
