package db_models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateSubtotal(t *testing.T) {
	item := &OrderItem{
		ProductPrice: decimal.RequireFromString("29.99"),
		Quantity:     2,
	}
	assert.True(t, item.CalculateSubtotal().Equal(decimal.RequireFromString("59.98")))
}

func TestSubtotalRecomputedOnSave(t *testing.T) {
	item := &OrderItem{
		ProductPrice: decimal.RequireFromString("10.00"),
		Quantity:     3,
		// caller-supplied subtotal is never trusted
		Subtotal: decimal.RequireFromString("1.00"),
	}

	require.NoError(t, item.BeforeSave(nil))
	assert.True(t, item.Subtotal.Equal(decimal.RequireFromString("30.00")))
}
