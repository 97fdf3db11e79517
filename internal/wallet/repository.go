package wallet

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrNonPositiveAmount   = errors.New("amount must be positive")
)

// memoryRepository holds the wallet entirely in memory. State is
// rebuilt from seed data on every start; nothing is persisted.
type memoryRepository struct {
	mu           sync.RWMutex
	balanceCents int64
	transactions []Transaction
}

func NewMemoryRepository(balanceCents int64, seed []Transaction) Repository {
	txs := make([]Transaction, len(seed))
	copy(txs, seed)
	return &memoryRepository{
		balanceCents: balanceCents,
		transactions: txs,
	}
}

func (r *memoryRepository) BalanceCents(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.balanceCents, nil
}

func (r *memoryRepository) Debit(ctx context.Context, amountCents int64, note string) (*Transaction, error) {
	if amountCents <= 0 {
		return nil, ErrNonPositiveAmount
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.balanceCents < amountCents {
		return nil, ErrInsufficientBalance
	}

	r.balanceCents -= amountCents
	tx := r.prepend(TypeDebit, amountCents, note)
	return tx, nil
}

func (r *memoryRepository) Credit(ctx context.Context, amountCents int64, note string) (*Transaction, error) {
	if amountCents <= 0 {
		return nil, ErrNonPositiveAmount
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.balanceCents += amountCents
	tx := r.prepend(TypeCredit, amountCents, note)
	return tx, nil
}

func (r *memoryRepository) Transactions(ctx context.Context) ([]Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	txs := make([]Transaction, len(r.transactions))
	copy(txs, r.transactions)
	return txs, nil
}

// prepend inserts a new entry at the head. Caller must hold mu.
func (r *memoryRepository) prepend(txType string, amountCents int64, note string) *Transaction {
	tx := Transaction{
		ID:          uuid.NewString(),
		Type:        txType,
		AmountCents: amountCents,
		Note:        note,
		Date:        time.Now().Format("2006-01-02"),
	}
	r.transactions = append([]Transaction{tx}, r.transactions...)
	return &tx
}
