// File: /services/payment_gateway.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrUnknownPayment = errors.New("unknown gateway payment")

// Cards ending in these digits are declined by the mock gateway.
const mockDeclinedSuffix = "0002"

type mockIntent struct {
	id            string
	amount        float64
	method        string
	createdAt     time.Time
	declined      bool
	transactionID string
}

// MockGateway settles every payment once the processing delay has elapsed.
// It backs development and tests; nothing leaves the process.
type MockGateway struct {
	mu        sync.Mutex
	intents   map[string]*mockIntent
	delay     time.Duration
	publicKey string
	now       func() time.Time
}

func NewMockGateway(delay time.Duration, publicKey string) *MockGateway {
	return &MockGateway{
		intents:   make(map[string]*mockIntent),
		delay:     delay,
		publicKey: publicKey,
		now:       time.Now,
	}
}

func (g *MockGateway) Name() string      { return "mock" }
func (g *MockGateway) PublicKey() string { return g.publicKey }

func (g *MockGateway) CreateCardIntent(ctx context.Context, amount float64, metadata map[string]string) (*GatewayIntent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	intent := g.register("mock_pi_", "card", amount)
	intent.declined = strings.HasSuffix(metadata["cartao_ultimos4"], mockDeclinedSuffix)

	raw, _ := json.Marshal(map[string]interface{}{
		"payment_intent_id": intent.id,
		"status":            "requires_payment_method",
		"amount":            amount,
		"currency":          "eur",
		"gateway":           g.Name(),
	})
	return &GatewayIntent{
		PaymentID:    intent.id,
		ClientSecret: "mock_secret_" + intent.id,
		Status:       "requires_payment_method",
		Raw:          raw,
	}, nil
}

func (g *MockGateway) CreateMBWayRequest(ctx context.Context, amount float64, telefone string, metadata map[string]string) (*GatewayIntent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	intent := g.register("mock_mbway_", "mbway", amount)

	raw, _ := json.Marshal(map[string]interface{}{
		"payment_id": intent.id,
		"status":     "pending",
		"amount":     amount,
		"telefone":   telefone,
		"gateway":    "mbway",
	})
	return &GatewayIntent{PaymentID: intent.id, Status: "pending", Raw: raw}, nil
}

func (g *MockGateway) GetPaymentStatus(ctx context.Context, gatewayPaymentID string) (*GatewayResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	intent, ok := g.intents[gatewayPaymentID]
	if !ok {
		return nil, ErrUnknownPayment
	}

	status := GatewayPending
	if g.now().Sub(intent.createdAt) >= g.delay {
		status = GatewaySucceeded
		if intent.declined {
			status = GatewayFailed
		} else if intent.transactionID == "" {
			intent.transactionID = "mock_tx_" + uuid.New().String()
		}
	}

	raw, _ := json.Marshal(map[string]interface{}{
		"id":             intent.id,
		"status":         status,
		"transaction_id": intent.transactionID,
		"amount":         intent.amount,
		"currency":       "eur",
	})
	return &GatewayResult{Status: status, TransactionID: intent.transactionID, Raw: raw}, nil
}

func (g *MockGateway) register(prefix, method string, amount float64) *mockIntent {
	intent := &mockIntent{
		id:        prefix + uuid.New().String(),
		amount:    amount,
		method:    method,
		createdAt: g.now(),
	}

	g.mu.Lock()
	g.intents[intent.id] = intent
	g.mu.Unlock()
	return intent
}
