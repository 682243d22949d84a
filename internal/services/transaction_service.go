package services

import (
	"context"
	"fmt"
	"time"

	"fintrack/internal/amqp"
	"fintrack/internal/core"
	applog "fintrack/internal/log"
	"fintrack/internal/store"
)

// EventPublisher delivers transaction change events.
type EventPublisher interface {
	PublishTransactionEvent(ctx context.Context, e *amqp.TransactionEvent) error
}

// TransactionService orchestrates store mutations and event publication
type TransactionService struct {
	store     *store.Store
	publisher EventPublisher
	logger    *applog.Logger
	events    *applog.StructuredLogger
}

// NewTransactionService wires the service. A nil publisher disables events.
func NewTransactionService(s *store.Store, publisher EventPublisher, logger *applog.Logger) *TransactionService {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	logger = logger.WithComponent(applog.ComponentTransaction)
	return &TransactionService{
		store:     s,
		publisher: publisher,
		logger:    logger,
		events:    applog.NewStructuredLogger(logger),
	}
}

// CreateTransaction stores a transaction and publishes an added event.
// Publish failures are logged; the transaction is already stored.
func (s *TransactionService) CreateTransaction(ctx context.Context, n core.NewTransaction) (core.Transaction, error) {
	t, err := s.store.Add(ctx, n)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}

	s.events.LogTransactionCreated(ctx, applog.NewFields().WithTransaction(t))
	s.publish(ctx, amqp.EventTransactionAdded, t)
	return t, nil
}

// DeleteTransaction removes a transaction. Unknown ids are accepted
// silently.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id string) {
	t, removed := s.store.Remove(ctx, id)
	if !removed {
		s.logger.DebugContext(ctx, "Delete of unknown transaction ignored",
			applog.FieldTransactionID, id,
			applog.FieldOperation, applog.OpDelete)
		return
	}

	s.logger.InfoContext(ctx, "Transaction deleted",
		applog.NewFields().WithTransaction(t).WithOperation(applog.OpDelete).ToSlice()...)
	s.publish(ctx, amqp.EventTransactionRemoved, t)
}

// SeedSampleData loads the demo transactions into the store.
func (s *TransactionService) SeedSampleData(ctx context.Context) error {
	seeded, err := s.store.Seed(ctx)
	if err != nil {
		return fmt.Errorf("seed sample data: %w", err)
	}
	s.logger.InfoContext(ctx, "Sample transactions loaded",
		applog.FieldOperation, applog.OpSeed,
		"count", len(seeded))
	return nil
}

// Location returns the time zone used for calendar computations.
func (s *TransactionService) Location() *time.Location { return s.store.Location() }

// Now returns the current time of the store clock.
func (s *TransactionService) Now() time.Time { return s.store.Now() }

func (s *TransactionService) All() []core.Transaction { return s.store.All() }

func (s *TransactionService) ListByDate(date time.Time) []core.Transaction {
	return s.store.ListByDate(date)
}

func (s *TransactionService) ListByMonth(month time.Time) []core.Transaction {
	return s.store.ListByMonth(month)
}

func (s *TransactionService) ListRecent(limit int) []core.Transaction {
	return s.store.ListRecent(limit)
}

func (s *TransactionService) MonthSummary(ref time.Time) core.Summary {
	return s.store.MonthSummary(ref)
}

func (s *TransactionService) DatesWithActivity(month time.Time) map[string]core.DayActivity {
	return s.store.DatesWithActivity(month)
}

func (s *TransactionService) DaySummary(date time.Time) core.DaySummary {
	return s.store.DaySummary(date)
}

func (s *TransactionService) MonthlyTrend(ref time.Time, months int) []core.MonthTotals {
	return s.store.MonthlyTrend(ref, months)
}

func (s *TransactionService) publish(ctx context.Context, event string, t core.Transaction) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishTransactionEvent(ctx, amqp.NewTransactionEvent(event, t)); err != nil {
		s.events.LogError(ctx, "Failed to publish transaction event", err,
			applog.ComponentAMQP, applog.OpPublish,
			applog.NewFields().WithTransaction(t).WithErrorType(applog.ErrorTypeNetwork))
	}
}
