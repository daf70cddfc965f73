package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/elastic/go-elasticsearch/v8"
	"go.uber.org/zap"
)

// Config holds the indexer settings
type Config struct {
	Addresses []string
	Username  string
	Password  string
	Index     string
}

const settlementMapping = `{
	"mappings": {
		"properties": {
			"event_id":     {"type": "keyword"},
			"type":         {"type": "keyword"},
			"aggregate_id": {"type": "keyword"},
			"accounts":     {"type": "keyword"},
			"payload":      {"type": "object", "enabled": false},
			"occurred_at":  {"type": "date"},
			"indexed_at":   {"type": "date"}
		}
	}
}`

// SettlementDocument is one indexed settlement
type SettlementDocument struct {
	EventID     string          `json:"event_id"`
	Type        string          `json:"type"`
	AggregateID string          `json:"aggregate_id"`
	Accounts    []string        `json:"accounts,omitempty"`
	Payload     json.RawMessage `json:"payload"`
	OccurredAt  time.Time       `json:"occurred_at"`
	IndexedAt   time.Time       `json:"indexed_at"`
}

// Indexer writes settled games and matches to Elasticsearch for history search.
// Documents are keyed by event id so redelivery overwrites instead of duplicating.
type Indexer struct {
	client *elasticsearch.Client
	index  string
	logger *logger.Logger
}

// NewIndexer creates the client and makes sure the index exists
func NewIndexer(ctx context.Context, cfg Config, log *logger.Logger) (*Indexer, error) {
	esCfg := elasticsearch.Config{Addresses: cfg.Addresses}
	if cfg.Username != "" && cfg.Password != "" {
		esCfg.Username = cfg.Username
		esCfg.Password = cfg.Password
	}

	client, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, fmt.Errorf("error creating Elasticsearch client: %w", err)
	}

	index := cfg.Index
	if index == "" {
		index = "pontiff_settlements"
	}

	ix := &Indexer{client: client, index: index, logger: log}
	if err := ix.ensureIndex(ctx); err != nil {
		return nil, fmt.Errorf("error initializing index: %w", err)
	}
	return ix, nil
}

func (ix *Indexer) ensureIndex(ctx context.Context) error {
	res, err := ix.client.Indices.Exists([]string{ix.index}, ix.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("error checking if index exists: %w", err)
	}
	res.Body.Close()

	if res.StatusCode != http.StatusNotFound {
		return nil
	}

	res, err = ix.client.Indices.Create(ix.index,
		ix.client.Indices.Create.WithBody(strings.NewReader(settlementMapping)),
		ix.client.Indices.Create.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("error creating index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("error creating index: %s", res.String())
	}

	ix.logger.Info("Created settlement index", zap.String("index", ix.index))
	return nil
}

// Name identifies the sink in logs
func (ix *Indexer) Name() string {
	return "elasticsearch"
}

// Publish indexes the event
func (ix *Indexer) Publish(ctx context.Context, event *domain.OutboxEvent) error {
	doc := SettlementDocument{
		EventID:     event.ID,
		Type:        event.Type,
		AggregateID: event.AggregateID,
		Accounts:    accountsOf(event),
		Payload:     json.RawMessage(event.Data),
		OccurredAt:  event.CreatedAt,
		IndexedAt:   time.Now().UTC(),
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("error encoding document: %w", err)
	}

	res, err := ix.client.Index(ix.index, bytes.NewReader(body),
		ix.client.Index.WithDocumentID(event.ID),
		ix.client.Index.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("error indexing settlement: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		msg, _ := io.ReadAll(res.Body)
		return fmt.Errorf("error indexing settlement: status %d: %s", res.StatusCode, msg)
	}
	return nil
}

// accountsOf pulls the participating accounts out of a game or match payload
func accountsOf(event *domain.OutboxEvent) []string {
	var p struct {
		Account string `json:"account"`
		PlayerA string `json:"player_a"`
		PlayerB string `json:"player_b"`
	}
	if err := json.Unmarshal(event.Data, &p); err != nil {
		return nil
	}

	var accounts []string
	for _, a := range []string{p.Account, p.PlayerA, p.PlayerB} {
		if a != "" {
			accounts = append(accounts, a)
		}
	}
	return accounts
}
