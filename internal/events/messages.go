package events

import (
	"encoding/json"
	"time"
)

// Event kinds carried on the expense events queue.
const (
	KindExpenseCreated = "expense.created"
	KindExpenseDeleted = "expense.deleted"
)

// ExpenseEvent is the lightweight message published after a completed
// mutation. Consumers fetch the full record by id if they need it.
type ExpenseEvent struct {
	Kind      string    `json:"kind"`
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

func NewExpenseEvent(kind string, id int64) *ExpenseEvent {
	return &ExpenseEvent{
		Kind:      kind,
		ID:        id,
		Timestamp: time.Now(),
	}
}

func (e *ExpenseEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func ExpenseEventFromJSON(data []byte) (*ExpenseEvent, error) {
	var e ExpenseEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
