package order

import (
	"context"
	"errors"
	"sync"
)

var ErrOrderNotFound = errors.New("order not found")

// memoryRepository keeps the whole ledger in memory. A restart
// resets it to the seed data; there is no durable storage.
type memoryRepository struct {
	mu     sync.RWMutex
	orders []Order
}

func NewMemoryRepository(seed []Order) Repository {
	orders := make([]Order, len(seed))
	copy(orders, seed)
	return &memoryRepository{orders: orders}
}

func (r *memoryRepository) Create(ctx context.Context, o Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append([]Order{o}, r.orders...)
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			o := r.orders[i]
			return &o, nil
		}
	}
	return nil, ErrOrderNotFound
}

func (r *memoryRepository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders = append(r.orders[:i:i], r.orders[i+1:]...)
			return nil
		}
	}
	return ErrOrderNotFound
}

func (r *memoryRepository) List(ctx context.Context) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]Order, len(r.orders))
	copy(orders, r.orders)
	return orders, nil
}
