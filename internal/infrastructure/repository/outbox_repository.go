package repository

import (
	"context"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OutboxRepository implements domain.OutboxRepository
type OutboxRepository struct {
	db *gorm.DB
}

// NewOutboxRepository creates a new outbox repository
func NewOutboxRepository(db *gorm.DB) domain.OutboxRepository {
	return &OutboxRepository{
		db: db,
	}
}

// WithTransaction binds the repository to tx
func (r *OutboxRepository) WithTransaction(tx *gorm.DB) domain.OutboxRepository {
	return &OutboxRepository{db: tx}
}

// Save saves an outbox event to the database
func (r *OutboxRepository) Save(ctx context.Context, event *domain.OutboxEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Status == "" {
		event.Status = domain.EventStatusPending
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	if event.Deliveries.Data() == nil {
		event.Deliveries = datatypes.NewJSONType(domain.Deliveries{})
	}
	return r.db.WithContext(ctx).Create(event).Error
}

// GetPendingEvents retrieves pending events, oldest first
func (r *OutboxRepository) GetPendingEvents(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	var events []*domain.OutboxEvent
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.EventStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

// MarkAsProcessed marks an event as processed once every sink accepted it
func (r *OutboxRepository) MarkAsProcessed(ctx context.Context, eventID string, deliveries domain.Deliveries) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).Model(&domain.OutboxEvent{}).
		Where("id = ?", eventID).
		Updates(map[string]interface{}{
			"status":       domain.EventStatusProcessed,
			"processed_at": &now,
			"error":        nil,
			"deliveries":   datatypes.NewJSONType(deliveries),
		}).Error
}

// MarkAsFailed marks an event as failed; deliveries records which sinks still accepted it
func (r *OutboxRepository) MarkAsFailed(ctx context.Context, eventID string, deliveries domain.Deliveries, errMsg string) error {
	return r.db.WithContext(ctx).Model(&domain.OutboxEvent{}).
		Where("id = ?", eventID).
		Updates(map[string]interface{}{
			"status":     domain.EventStatusFailed,
			"error":      &errMsg,
			"deliveries": datatypes.NewJSONType(deliveries),
		}).Error
}

// IncrementRetryCount bumps the retry count and records per-sink progress
func (r *OutboxRepository) IncrementRetryCount(ctx context.Context, eventID string, deliveries domain.Deliveries, errMsg string) error {
	return r.db.WithContext(ctx).Model(&domain.OutboxEvent{}).
		Where("id = ?", eventID).
		Updates(map[string]interface{}{
			"retry_count": gorm.Expr("retry_count + 1"),
			"error":       &errMsg,
			"deliveries":  datatypes.NewJSONType(deliveries),
		}).Error
}
