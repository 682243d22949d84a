package amqp

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

// Event names, also used as routing keys.
const (
	EventTransactionAdded   = "transaction.added"
	EventTransactionRemoved = "transaction.removed"
)

// TransactionEvent notifies subscribers that the transaction list changed.
type TransactionEvent struct {
	Event     string               `json:"event"`
	ID        string               `json:"id"`
	Type      core.TransactionType `json:"type"`
	Amount    decimal.Decimal      `json:"amount"`
	Category  core.Category        `json:"category"`
	Date      time.Time            `json:"date"`
	Timestamp time.Time            `json:"timestamp"`
}

// NewTransactionEvent creates an event of the given kind describing t
func NewTransactionEvent(event string, t core.Transaction) *TransactionEvent {
	return &TransactionEvent{
		Event:     event,
		ID:        t.ID,
		Type:      t.Type,
		Amount:    t.Amount,
		Category:  t.Category,
		Date:      t.Date,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the event to JSON bytes
func (e *TransactionEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// TransactionEventFromJSON creates an event from JSON bytes
func TransactionEventFromJSON(data []byte) (*TransactionEvent, error) {
	var e TransactionEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
