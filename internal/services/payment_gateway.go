package services

import (
	"context"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
	"minishop/internal/models/db_models"
	"minishop/pkg/utils"
)

type ChargeResult struct {
	Success         bool
	Message         string
	GatewayResponse map[string]interface{}
}

// PaymentGateway is the seam where a real processor would plug in. The
// simulated implementation below stands in for Stripe/PayPal and friends.
type PaymentGateway interface {
	Charge(ctx context.Context, amount decimal.Decimal, method db_models.PaymentMethod) ChargeResult
}

type SimulatedGatewayConfig struct {
	SuccessRate int           // percent, 0-100
	Delay       time.Duration // artificial processing stall
}

func NewSimulatedGateway(cfg SimulatedGatewayConfig, clock utils.Clock) PaymentGateway {
	return &SimulatedGateway{
		cfg:   cfg,
		clock: clock,
		draw:  func() int { return rand.Intn(100) + 1 },
	}
}

type SimulatedGateway struct {
	cfg   SimulatedGatewayConfig
	clock utils.Clock
	draw  func() int // 1..100
}

func (g *SimulatedGateway) Charge(ctx context.Context, amount decimal.Decimal, method db_models.PaymentMethod) ChargeResult {
	if g.cfg.Delay > 0 {
		select {
		case <-time.After(g.cfg.Delay):
		case <-ctx.Done():
			return ChargeResult{
				Success: false,
				Message: "Payment cancelled",
			}
		}
	}

	if g.draw() <= g.cfg.SuccessRate {
		return ChargeResult{
			Success: true,
			Message: "Payment processed successfully",
			GatewayResponse: map[string]interface{}{
				"success":   true,
				"message":   "Payment processed successfully",
				"timestamp": g.clock.Now().Format(time.RFC3339),
			},
		}
	}

	return ChargeResult{
		Success: false,
		Message: "Payment declined by processor",
	}
}
