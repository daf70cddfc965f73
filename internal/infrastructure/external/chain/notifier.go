package chain

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// Config holds the settlement gateway settings
type Config struct {
	URL      string
	APIKey   string
	Timeout  time.Duration
	RetryMax int
}

// SettlementNotice is the body posted for every settled game or match
type SettlementNotice struct {
	EventID     string          `json:"event_id"`
	Type        string          `json:"type"`
	AggregateID string          `json:"aggregate_id"`
	Payload     json.RawMessage `json:"payload"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

// GatewayErrorResponse is the error body returned by the gateway
type GatewayErrorResponse struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

// GatewayError is a non-success answer from the gateway
type GatewayError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("settlement gateway error %d: %s - %s", e.StatusCode, e.Code, e.Message)
}

// Notifier forwards settlements to the on-chain settlement gateway. It implements
// domain.EventSink; the gateway deduplicates on the Idempotency-Key header.
type Notifier struct {
	baseURL string
	apiKey  string
	client  *retryablehttp.Client
	logger  *logger.Logger
}

// NewNotifier creates a gateway notifier
func NewNotifier(cfg Config, log *logger.Logger) *Notifier {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RetryMax < 0 {
		cfg.RetryMax = 0
	}

	client := retryablehttp.NewClient()
	client.RetryMax = cfg.RetryMax
	client.RetryWaitMin = 200 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	client.HTTPClient.Timeout = cfg.Timeout
	client.Logger = leveledLogger{log.Zap().Sugar()}
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Notifier{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		apiKey:  cfg.APIKey,
		client:  client,
		logger:  log,
	}
}

// Name identifies the sink in logs
func (n *Notifier) Name() string {
	return "chain"
}

// Publish posts the event. A 409 means the gateway already holds it.
func (n *Notifier) Publish(ctx context.Context, event *domain.OutboxEvent) error {
	notice := SettlementNotice{
		EventID:     event.ID,
		Type:        event.Type,
		AggregateID: event.AggregateID,
		Payload:     json.RawMessage(event.Data),
		OccurredAt:  event.CreatedAt,
	}

	err := n.sendRequest(ctx, http.MethodPost, n.baseURL+"/api/v1/settlements", event.ID, notice, http.StatusAccepted)
	if IsConflict(err) {
		n.logger.Debug("Settlement already delivered", zap.String("eventID", event.ID))
		return nil
	}
	if err != nil {
		return err
	}

	n.logger.Info("Settlement delivered to gateway",
		zap.String("eventID", event.ID),
		zap.String("eventType", event.Type),
		zap.String("aggregateID", event.AggregateID))
	return nil
}

// sendRequest sends a JSON request and checks the response status
func (n *Notifier) sendRequest(ctx context.Context, method, url, idempotencyKey string, bodyData any, expectedStatus int) error {
	jsonBytes, err := json.Marshal(bodyData)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, url, jsonBytes)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-api-key", n.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", idempotencyKey)

	// the passthrough handler hands back the last response once retries run out
	resp, err := n.client.Do(req)
	if resp == nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != expectedStatus && resp.StatusCode != http.StatusOK {
		gwErr := &GatewayError{StatusCode: resp.StatusCode, Message: string(respBody)}
		var errResp GatewayErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Code != "" {
			gwErr.Code = errResp.Code
			gwErr.Message = errResp.Msg
		}
		return gwErr
	}
	return nil
}

// leveledLogger routes retryablehttp logs into zap
type leveledLogger struct {
	s *zap.SugaredLogger
}

func (l leveledLogger) Error(msg string, kv ...interface{}) { l.s.Errorw(msg, kv...) }
func (l leveledLogger) Info(msg string, kv ...interface{})  { l.s.Debugw(msg, kv...) }
func (l leveledLogger) Debug(msg string, kv ...interface{}) { l.s.Debugw(msg, kv...) }
func (l leveledLogger) Warn(msg string, kv ...interface{})  { l.s.Warnw(msg, kv...) }
