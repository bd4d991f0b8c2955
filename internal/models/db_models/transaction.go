package db_models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type TransactionStatus string

const (
	TxnStatusPending    TransactionStatus = "pending"
	TxnStatusProcessing TransactionStatus = "processing"
	TxnStatusCompleted  TransactionStatus = "completed"
	TxnStatusFailed     TransactionStatus = "failed"
	TxnStatusCancelled  TransactionStatus = "cancelled"
	TxnStatusRefunded   TransactionStatus = "refunded"
)

type PaymentMethod string

const (
	PaymentMethodCreditCard     PaymentMethod = "credit_card"
	PaymentMethodDebitCard      PaymentMethod = "debit_card"
	PaymentMethodPayPal         PaymentMethod = "paypal"
	PaymentMethodStripe         PaymentMethod = "stripe"
	PaymentMethodBankTransfer   PaymentMethod = "bank_transfer"
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentMethodOther          PaymentMethod = "other"
)

const TransactionIDPrefix = "TXN-"

type Transaction struct {
	BaseModel
	OrderID uint `gorm:"not null;index" json:"order_id"`

	TransactionID string            `gorm:"uniqueIndex;not null" json:"transaction_id"`
	Amount        decimal.Decimal   `gorm:"not null;type:decimal(10,2)" json:"amount"`
	Currency      string            `gorm:"size:3;default:USD" json:"currency"`
	PaymentMethod PaymentMethod     `gorm:"not null;index" json:"payment_method"`
	Status        TransactionStatus `gorm:"not null;default:pending;index" json:"status"`

	// Gateway fields
	PaymentGateway         string         `json:"payment_gateway"`
	PaymentGatewayResponse datatypes.JSON `json:"payment_gateway_response"`

	// Card info: last four digits and brand only, never the full PAN
	CardLastFour string `gorm:"size:4" json:"card_last_four"`
	CardBrand    string `json:"card_brand"`

	Notes         string     `gorm:"type:text" json:"notes"`
	ProcessedAt   *time.Time `json:"processed_at"`
	FailedAt      *time.Time `json:"failed_at"`
	FailureReason string     `json:"failure_reason"`
}

func (t *Transaction) IsCompleted() bool { return t.Status == TxnStatusCompleted }
func (t *Transaction) IsPending() bool   { return t.Status == TxnStatusPending }
func (t *Transaction) IsFailed() bool    { return t.Status == TxnStatusFailed }

func ValidPaymentMethod(m string) bool {
	switch PaymentMethod(m) {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodPayPal,
		PaymentMethodStripe, PaymentMethodBankTransfer, PaymentMethodCashOnDelivery:
		return true
	}
	return false
}
