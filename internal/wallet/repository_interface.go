package wallet

import "context"

type Repository interface {
	BalanceCents(ctx context.Context) (int64, error)
	// Debit records a withdrawal. It fails with ErrInsufficientBalance
	// and leaves the ledger untouched when the balance cannot cover it.
	Debit(ctx context.Context, amountCents int64, note string) (*Transaction, error)
	// Credit records a deposit.
	Credit(ctx context.Context, amountCents int64, note string) (*Transaction, error)
	// Transactions returns the ledger, newest first.
	Transactions(ctx context.Context) ([]Transaction, error)
}
