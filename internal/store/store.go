// Package store holds the in-memory transaction repository and the
// read models derived from it.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"fintrack/internal/cache"
	"fintrack/internal/core"
)

const (
	// DefaultRecentLimit is used by ListRecent for non-positive limits.
	DefaultRecentLimit = 10
	// DefaultTrendMonths is used by MonthlyTrend for non-positive windows.
	DefaultTrendMonths = 6
	// MaxTrendMonths caps the MonthlyTrend window.
	MaxTrendMonths = 24
)

// Store owns an ordered, newest-first sequence of transactions. It is
// safe for concurrent use; mutators are serialised under one lock.
type Store struct {
	mu    sync.RWMutex
	items []core.Transaction

	loc       *time.Location
	now       func() time.Time
	newID     func() string
	summaries cache.Cache[core.Summary]
}

// Option configures a Store.
type Option func(*Store)

// WithLocation sets the time zone used for calendar computations.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides the transaction id generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithSummaryCache caches month summaries in c. Entries are invalidated
// whenever a transaction of that month is added or removed.
func WithSummaryCache(c cache.Cache[core.Summary]) Option {
	return func(s *Store) {
		s.summaries = c
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		loc:   time.Local,
		now:   time.Now,
		newID: NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewID returns a UUIDv7: time-ordered, with random bits so ids created
// in the same millisecond stay distinct.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Location returns the time zone used for calendar computations.
func (s *Store) Location() *time.Location {
	return s.loc
}

// Now returns the store clock's current time.
func (s *Store) Now() time.Time {
	return s.now()
}

// Add validates n, records it at the front of the sequence and returns
// the created transaction. A zero n.Date means now.
func (s *Store) Add(ctx context.Context, n core.NewTransaction) (core.Transaction, error) {
	if err := n.Validate(); err != nil {
		return core.Transaction{}, fmt.Errorf("add transaction: %w", err)
	}

	now := s.now()
	date := n.Date
	if date.IsZero() {
		date = now
	}
	t := core.Transaction{
		ID:          s.newID(),
		Type:        n.Type,
		Amount:      n.Amount,
		Category:    n.Category,
		Description: n.NormalizedDescription(),
		Date:        date,
		CreatedAt:   now,
	}

	s.mu.Lock()
	s.items = slices.Insert(s.items, 0, t)
	s.invalidate(t.Date)
	size := len(s.items)
	s.mu.Unlock()

	slog.DebugContext(ctx, "Transaction stored",
		"id", t.ID,
		"type", t.Type,
		"month", core.MonthKey(t.Date, s.loc),
		"store_size", size)

	return t, nil
}

// Remove deletes the transaction with the given id. Unknown ids are a
// no-op; the boolean reports whether a transaction was removed.
func (s *Store) Remove(ctx context.Context, id string) (core.Transaction, bool) {
	s.mu.Lock()
	idx := slices.IndexFunc(s.items, func(t core.Transaction) bool { return t.ID == id })
	if idx < 0 {
		s.mu.Unlock()
		slog.DebugContext(ctx, "Remove ignored unknown transaction", "id", id)
		return core.Transaction{}, false
	}
	removed := s.items[idx]
	s.items = slices.Delete(s.items, idx, idx+1)
	s.invalidate(removed.Date)
	s.mu.Unlock()

	slog.DebugContext(ctx, "Transaction removed", "id", id)
	return removed, true
}

// Seed records the sample month used by the demo dashboard.
func (s *Store) Seed(ctx context.Context) ([]core.Transaction, error) {
	samples := SampleTransactions(s.now(), s.loc)
	out := make([]core.Transaction, 0, len(samples))
	// Added oldest-listed last so the first sample ends up at the front.
	for i := len(samples) - 1; i >= 0; i-- {
		t, err := s.Add(ctx, samples[i])
		if err != nil {
			return nil, fmt.Errorf("seed sample %d: %w", i, err)
		}
		out = append(out, t)
	}
	slices.Reverse(out)
	return out, nil
}

// Len returns the number of stored transactions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// All returns every transaction in store order.
func (s *Store) All() []core.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

// ListByDate returns the transactions on date's calendar day, in store order.
func (s *Store) ListByDate(date time.Time) []core.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter(func(t core.Transaction) bool {
		return core.SameDay(t.Date, date, s.loc)
	})
}

// ListByMonth returns the transactions within month's calendar month,
// bounds inclusive, in store order.
func (s *Store) ListByMonth(month time.Time) []core.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byMonth(month)
}

// MonthSummary aggregates the calendar month containing ref. A zero ref
// means the current month.
func (s *Store) MonthSummary(ref time.Time) core.Summary {
	if ref.IsZero() {
		ref = s.now()
	}
	key := core.MonthKey(ref, s.loc)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.summaries != nil {
		if sum, ok := s.summaries.Get(key); ok {
			return cloneSummary(sum)
		}
	}
	sum := core.Summarize(s.byMonth(ref))
	if s.summaries != nil {
		s.summaries.Set(key, cloneSummary(sum))
	}
	return sum
}

// ListRecent returns at most limit transactions ordered by date, newest
// first. Equal dates keep store order.
func (s *Store) ListRecent(limit int) []core.Transaction {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	out := s.All()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// DatesWithActivity maps each day of month holding a transaction to the
// types seen on it. Days without transactions are absent.
func (s *Store) DatesWithActivity(month time.Time) map[string]core.DayActivity {
	return core.ActivityByDate(s.ListByMonth(month), s.loc)
}

// DaySummary returns the transactions and totals of date's calendar day.
func (s *Store) DaySummary(date time.Time) core.DaySummary {
	return core.SummarizeDay(date, s.ListByDate(date), s.loc)
}

// MonthlyTrend returns income and expense totals for the months calendar
// months ending with ref's month, oldest first.
func (s *Store) MonthlyTrend(ref time.Time, months int) []core.MonthTotals {
	if ref.IsZero() {
		ref = s.now()
	}
	if months <= 0 {
		months = DefaultTrendMonths
	}
	if months > MaxTrendMonths {
		months = MaxTrendMonths
	}

	first := core.StartOfMonth(ref, s.loc)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.MonthTotals, 0, months)
	for i := months - 1; i >= 0; i-- {
		m := first.AddDate(0, -i, 0)
		sum := core.Summarize(s.byMonth(m))
		out = append(out, core.MonthTotals{
			Name:    m.Format("Jan"),
			Year:    m.Year(),
			Month:   int(m.Month()),
			Income:  sum.TotalIncome,
			Expense: sum.TotalExpense,
		})
	}
	return out
}

// byMonth must be called with s.mu held.
func (s *Store) byMonth(month time.Time) []core.Transaction {
	return s.filter(func(t core.Transaction) bool {
		return core.WithinMonth(t.Date, month, s.loc)
	})
}

// filter must be called with s.mu held.
func (s *Store) filter(keep func(core.Transaction) bool) []core.Transaction {
	out := make([]core.Transaction, 0)
	for _, t := range s.items {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// invalidate must be called with s.mu held for writing.
func (s *Store) invalidate(date time.Time) {
	if s.summaries != nil {
		s.summaries.Delete(core.MonthKey(date, s.loc))
	}
}

func cloneSummary(sum core.Summary) core.Summary {
	sum.ExpensesByCategory = maps.Clone(sum.ExpensesByCategory)
	return sum
}
