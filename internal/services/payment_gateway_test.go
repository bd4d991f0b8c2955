package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"minishop/internal/models/db_models"
	"minishop/pkg/utils"
)

func newGatewayForDraw(successRate, draw int) *SimulatedGateway {
	return &SimulatedGateway{
		cfg:   SimulatedGatewayConfig{SuccessRate: successRate},
		clock: utils.FixedClock{T: time.Date(2024, 10, 23, 12, 0, 0, 0, time.UTC)},
		draw:  func() int { return draw },
	}
}

func TestSimulatedGatewaySuccess(t *testing.T) {
	gateway := newGatewayForDraw(95, 95)

	result := gateway.Charge(context.Background(), decimal.RequireFromString("65.98"), db_models.PaymentMethodCreditCard)
	require.True(t, result.Success)
	assert.Equal(t, "Payment processed successfully", result.Message)
	assert.Equal(t, true, result.GatewayResponse["success"])
	assert.NotEmpty(t, result.GatewayResponse["timestamp"])
}

func TestSimulatedGatewayDecline(t *testing.T) {
	gateway := newGatewayForDraw(95, 96)

	result := gateway.Charge(context.Background(), decimal.RequireFromString("65.98"), db_models.PaymentMethodCreditCard)
	require.False(t, result.Success)
	assert.Equal(t, "Payment declined by processor", result.Message)
}

func TestSimulatedGatewayCancelledContext(t *testing.T) {
	gateway := newGatewayForDraw(100, 1)
	gateway.cfg.Delay = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := gateway.Charge(ctx, decimal.RequireFromString("10.00"), db_models.PaymentMethodPayPal)
	assert.False(t, result.Success)
}
