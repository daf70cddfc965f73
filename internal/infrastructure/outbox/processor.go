package outbox

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// Config holds dispatch settings
type Config struct {
	Interval   time.Duration
	BatchSize  int
	MaxRetries int
}

// Processor implements domain.OutboxProcessor. It hands committed settlement
// events to every sink and tracks delivery per sink, so a failing sink is retried
// alone and never causes a repeat delivery to the others.
type Processor struct {
	outboxRepo domain.OutboxRepository
	sinks      []domain.EventSink
	logger     *logger.Logger
	interval   time.Duration
	batchSize  int
	maxRetries int

	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.RWMutex
	isRunning bool
}

// NewProcessor creates a new outbox processor
func NewProcessor(
	cfg Config,
	outboxRepo domain.OutboxRepository,
	sinks []domain.EventSink,
	logger *logger.Logger,
) *Processor {
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 5
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Processor{
		outboxRepo: outboxRepo,
		sinks:      sinks,
		logger:     logger,
		interval:   cfg.Interval,
		batchSize:  cfg.BatchSize,
		maxRetries: cfg.MaxRetries,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// ProcessEvents processes one batch of pending events
func (p *Processor) ProcessEvents(ctx context.Context) error {
	if err := p.checkCancellation(ctx); err != nil {
		return err
	}

	events, err := p.outboxRepo.GetPendingEvents(ctx, p.batchSize)
	if err != nil {
		p.logger.Error("Failed to get pending events", zap.Error(err))
		return err
	}

	for _, event := range events {
		if err := p.checkCancellation(ctx); err != nil {
			return err
		}

		if err := p.ProcessEvent(ctx, event); err != nil {
			p.logger.Error("Failed to process event",
				zap.String("eventID", event.ID),
				zap.String("eventType", event.Type),
				zap.Int("retryCount", event.RetryCount),
				zap.Error(err))
		}
	}

	return nil
}

// ProcessEvent offers the event to every sink that has not accepted it yet.
// Each sink gets MaxRetries+1 attempts of its own; the event is PROCESSED once
// all sinks accepted it and FAILED once the remaining ones ran out of attempts.
func (p *Processor) ProcessEvent(ctx context.Context, event *domain.OutboxEvent) error {
	p.logger.Debug("Processing outbox event",
		zap.String("eventID", event.ID),
		zap.String("eventType", event.Type))

	deliveries := copyDeliveries(event.Deliveries.Data())

	switch event.Type {
	case domain.EventTypeGameSettled, domain.EventTypeGameFailed,
		domain.EventTypeMatchSettled, domain.EventTypeMatchCancelled:
	default:
		p.logger.Warn("Unknown event type",
			zap.String("eventID", event.ID),
			zap.String("eventType", event.Type))
		err := fmt.Errorf("unknown event type: %s", event.Type)
		if failErr := p.outboxRepo.MarkAsFailed(ctx, event.ID, deliveries, err.Error()); failErr != nil {
			return errors.Join(err, failErr)
		}
		return err
	}

	var errs []error
	outstanding := 0
	for _, sink := range p.sinks {
		name := sink.Name()
		state, ok := deliveries[name]
		if !ok {
			state = &domain.SinkDelivery{}
			deliveries[name] = state
		}
		if state.DeliveredAt != nil || state.Attempts > p.maxRetries {
			continue
		}

		state.Attempts++
		if err := sink.Publish(ctx, event); err != nil {
			p.logger.Warn("Sink rejected event",
				zap.String("sink", name),
				zap.String("eventID", event.ID),
				zap.Int("attempt", state.Attempts),
				zap.Error(err))
			state.LastError = err.Error()
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			if state.Attempts <= p.maxRetries {
				outstanding++
			}
			continue
		}
		now := time.Now().UTC()
		state.DeliveredAt = &now
		state.LastError = ""
	}
	event.Deliveries = datatypes.NewJSONType(deliveries)

	exhausted := p.exhaustedSinks(deliveries)
	switch {
	case outstanding > 0:
		joined := errors.Join(errs...)
		if err := p.outboxRepo.IncrementRetryCount(ctx, event.ID, deliveries, joined.Error()); err != nil {
			p.logger.Error("Failed to increment retry count", zap.Error(err))
		}
		return joined
	case len(exhausted) > 0:
		msg := "delivery abandoned for sinks: " + strings.Join(exhausted, ", ")
		p.logger.Error("Outbox event failed",
			zap.String("eventID", event.ID),
			zap.Strings("sinks", exhausted))
		if err := p.outboxRepo.MarkAsFailed(ctx, event.ID, deliveries, msg); err != nil {
			p.logger.Error("Failed to mark event as failed", zap.Error(err))
			return err
		}
		return errors.Join(errs...)
	default:
		return p.outboxRepo.MarkAsProcessed(ctx, event.ID, deliveries)
	}
}

// exhaustedSinks lists configured sinks that never accepted the event and have no attempts left
func (p *Processor) exhaustedSinks(deliveries domain.Deliveries) []string {
	var names []string
	for _, sink := range p.sinks {
		name := sink.Name()
		if state := deliveries[name]; state != nil && state.DeliveredAt == nil && state.Attempts > p.maxRetries {
			names = append(names, name)
		}
	}
	return names
}

func copyDeliveries(src domain.Deliveries) domain.Deliveries {
	dst := make(domain.Deliveries, len(src))
	for name, state := range src {
		if state == nil {
			continue
		}
		c := *state
		dst[name] = &c
	}
	return dst
}

// checkCancellation checks if the processor or the caller has been cancelled
func (p *Processor) checkCancellation(ctx context.Context) error {
	select {
	case <-p.ctx.Done():
		return fmt.Errorf("processor cancelled")
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// StartBackgroundProcessing starts the background processing loop
func (p *Processor) StartBackgroundProcessing() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isRunning {
		p.logger.Warn("Outbox processor is already running")
		return
	}

	p.isRunning = true
	p.wg.Add(1)

	go func() {
		defer p.wg.Done()
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		p.logger.Info("Outbox background processing started",
			zap.Duration("interval", p.interval),
			zap.Int("sinks", len(p.sinks)))

		for {
			select {
			case <-p.ctx.Done():
				p.logger.Info("Outbox background processing stopped")
				return
			case <-ticker.C:
				if err := p.ProcessEvents(p.ctx); err != nil {
					p.logger.Error("Background processing failed", zap.Error(err))
				}
			}
		}
	}()
}

// StopBackgroundProcessing stops the background processing loop
func (p *Processor) StopBackgroundProcessing() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.isRunning {
		p.logger.Warn("Outbox processor is not running")
		return
	}

	p.logger.Info("Stopping outbox background processing...")
	p.cancel()
	p.wg.Wait()
	p.isRunning = false
	p.logger.Info("Outbox background processing stopped")
}
