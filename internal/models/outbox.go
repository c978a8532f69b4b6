package models

import (
	"time"

	"github.com/google/uuid"
)

// OpKind тип операции в outbox
type OpKind string

const (
	// OpAddItem POST /cart/items
	OpAddItem OpKind = "add_item"
	// OpClearCart POST /cart/clear
	OpClearCart OpKind = "clear_cart"
)

// OpStatus состояние операции в outbox
type OpStatus string

const (
	// OpStatusPending операция ждёт отправки
	OpStatusPending OpStatus = "pending"
	// OpStatusDead операция исчерпала попытки или отклонена сервером окончательно
	OpStatusDead OpStatus = "dead"
)

// OutboxOp представляет отложенную операцию синхронизации с удалённой корзиной.
// Операции воспроизводятся в порядке Seq (at-least-once).
type OutboxOp struct {
	CreatedAt     time.Time `json:"created_at"`      // CreatedAt время постановки в очередь
	NextAttemptAt time.Time `json:"next_attempt_at"` // NextAttemptAt не раньше этого времени
	ID            string    `json:"id"`              // ID UUID, также ключ идемпотентности
	Kind          OpKind    `json:"kind"`
	Status        OpStatus  `json:"status"`
	ProductID     string    `json:"product_id,omitempty"`   // ProductID канонический id товара
	LineItemID    string    `json:"line_item_id,omitempty"` // LineItemID локальная строка, получит удалённый id
	LastError     string    `json:"last_error,omitempty"`
	Seq           uint64    `json:"seq"`                  // Seq порядковый номер, назначается хранилищем
	NumericID     int64     `json:"numeric_id,omitempty"` // NumericID id для тела POST /cart/items
	Quantity      int       `json:"quantity,omitempty"`
	Attempts      int       `json:"attempts"`
}

// NewAddItemOp creates a pending add-item operation.
func NewAddItemOp(productID string, numericID int64, quantity int, lineItemID string, now time.Time) *OutboxOp {
	return &OutboxOp{
		ID:            uuid.NewString(),
		Kind:          OpAddItem,
		Status:        OpStatusPending,
		ProductID:     productID,
		NumericID:     numericID,
		Quantity:      quantity,
		LineItemID:    lineItemID,
		CreatedAt:     now,
		NextAttemptAt: now,
	}
}

// NewClearCartOp creates a pending clear-cart operation.
func NewClearCartOp(now time.Time) *OutboxOp {
	return &OutboxOp{
		ID:            uuid.NewString(),
		Kind:          OpClearCart,
		Status:        OpStatusPending,
		CreatedAt:     now,
		NextAttemptAt: now,
	}
}

// Ready reports whether a pending op may be attempted at now.
func (o *OutboxOp) Ready(now time.Time) bool {
	return o.Status == OpStatusPending && !now.Before(o.NextAttemptAt)
}

// Clone returns a copy of the op.
func (o *OutboxOp) Clone() *OutboxOp {
	c := *o
	return &c
}
