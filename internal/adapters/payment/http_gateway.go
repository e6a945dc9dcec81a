package payment

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"library-desk/internal/core/domain"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxResponseBytes = 64 << 10

// HTTPGatewayConfig configures the remote payment provider client.
// The breaker opens after MaxFailures consecutive failed calls and lets a
// single trial call through once Cooldown has passed.
type HTTPGatewayConfig struct {
	BaseURL     string
	APIKey      string
	Timeout     time.Duration
	MaxFailures int
	Cooldown    time.Duration
}

// HTTPGateway talks to a remote payment provider over HTTP
type HTTPGateway struct {
	baseURL string
	apiKey  string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

type chargeRequest struct {
	PatronID string  `json:"patron_id"`
	Amount   float64 `json:"amount"`
}

type refundRequest struct {
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
}

type providerResponse struct {
	Success       bool    `json:"success"`
	TransactionID *string `json:"transaction_id"`
	Message       *string `json:"message"`
}

// NewHTTPGateway creates a provider client guarded by a circuit breaker
func NewHTTPGateway(cfg HTTPGatewayConfig) *HTTPGateway {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	cooldown := cfg.Cooldown
	if cooldown <= 0 {
		cooldown = 30 * time.Second
	}
	maxFailures := uint32(1)
	if cfg.MaxFailures > 1 {
		maxFailures = uint32(cfg.MaxFailures)
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "payment-gateway",
		MaxRequests: 1,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("⚡ Circuit breaker %s: %s -> %s", name, from, to)
		},
	})

	return &HTTPGateway{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
		breaker: breaker,
	}
}

// Charge asks the provider to collect amount from the patron
func (g *HTTPGateway) Charge(ctx context.Context, patronID string, amount decimal.Decimal) (domain.GatewayResponse, error) {
	resp, err := g.post(ctx, "/charges", chargeRequest{
		PatronID: patronID,
		Amount:   amount.Round(2).InexactFloat64(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "Charge failed")
	}
	return resp, nil
}

// Refund asks the provider to return amount on a previous transaction
func (g *HTTPGateway) Refund(ctx context.Context, transactionID string, amount decimal.Decimal) (domain.GatewayResponse, error) {
	resp, err := g.post(ctx, "/refunds", refundRequest{
		TransactionID: transactionID,
		Amount:        amount.Round(2).InexactFloat64(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "Refund failed")
	}
	return resp, nil
}

// BreakerState exposes the breaker state for health reporting
func (g *HTTPGateway) BreakerState() gobreaker.State {
	return g.breaker.State()
}

func (g *HTTPGateway) post(ctx context.Context, path string, payload interface{}) (domain.GatewayResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "encode request")
	}

	result, err := g.breaker.Execute(func() (interface{}, error) {
		return g.do(ctx, path, body)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, errors.Wrap(domain.ErrGatewayUnavailable, err.Error())
	}
	if err != nil {
		return nil, err
	}
	resp, _ := result.(domain.GatewayResponse)
	return resp, nil
}

func (g *HTTPGateway) do(ctx context.Context, path string, body []byte) (domain.GatewayResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Idempotency-Key", uuid.NewString())
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(domain.ErrGatewayUnavailable, err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Wrap(domain.ErrGatewayRejected, fmt.Sprintf("provider returned status %d", resp.StatusCode))
	}

	return decodeResponse(raw)
}

// decodeResponse accepts either a bare JSON boolean or a response object
func decodeResponse(raw []byte) (domain.GatewayResponse, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, errors.New("empty provider response")
	}

	if trimmed[0] != '{' {
		var bare bool
		if err := json.Unmarshal(trimmed, &bare); err != nil {
			return nil, errors.Wrap(err, "decode provider response")
		}
		return domain.BareResponse(bare), nil
	}

	var payload providerResponse
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return nil, errors.Wrap(err, "decode provider response")
	}
	return domain.StructuredResponse{
		Success:       payload.Success,
		TransactionID: payload.TransactionID,
		Message:       payload.Message,
	}, nil
}
