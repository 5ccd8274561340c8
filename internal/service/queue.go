package service

import (
	"sync"

	"github.com/zangjing/ztq-pricing-service/internal/domain/model"
)

// Queue is the mutable working list of materialized line items awaiting
// submission. Items are value snapshots; the queue never reaches back into
// the selection that produced them. Safe for concurrent use.
type Queue struct {
	mu    sync.Mutex
	items []model.LineItem
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Add appends an item to the end of the queue.
func (q *Queue) Add(item model.LineItem) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, item)
}

// Remove deletes the item with the given id. Removing an unknown id is a
// no-op and reports false.
func (q *Queue) Remove(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, it := range q.items {
		if it.ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the queue.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = nil
}

// Items returns a copy of the queued items in insertion order.
func (q *Queue) Items() []model.LineItem {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]model.LineItem, len(q.items))
	copy(out, q.items)
	return out
}

// Len returns the number of queued items.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Aggregate recomputes the component-wise totals over the current items.
// Totals are never cached; they are derived fresh on every call.
func (q *Queue) Aggregate() model.Aggregate {
	q.mu.Lock()
	defer q.mu.Unlock()
	return model.AggregateItems(q.items)
}

// Drain atomically returns the queued items and empties the queue. Used by
// batch submission so no item can be added between snapshot and clear.
func (q *Queue) Drain() []model.LineItem {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.items
	q.items = nil
	return out
}
