package order

import (
	"context"
	"errors"

	"fastparcel/internal/metrics"
	"fastparcel/internal/wallet"
)

var ErrNotCancellable = errors.New("only Booked orders can be cancelled")

type Service interface {
	// List returns the ledger filtered by query and status, newest first.
	List(ctx context.Context, query, status string) ([]Order, error)
	Get(ctx context.Context, id string) (*Order, error)
	// Cancel removes a Booked order and refunds its full cost to the
	// wallet. Any other status fails with ErrNotCancellable.
	Cancel(ctx context.Context, id string) (*Order, error)
}

type service struct {
	orders Repository
	wallet wallet.Repository
}

func NewService(orders Repository, walletRepo wallet.Repository) Service {
	return &service{
		orders: orders,
		wallet: walletRepo,
	}
}

func (s *service) List(ctx context.Context, query, status string) ([]Order, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(orders, query, status), nil
}

func (s *service) Get(ctx context.Context, id string) (*Order, error) {
	return s.orders.GetByID(ctx, id)
}

func (s *service) Cancel(ctx context.Context, id string) (*Order, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if o.Status != StatusBooked {
		return nil, ErrNotCancellable
	}

	if err := s.orders.Remove(ctx, id); err != nil {
		return nil, err
	}

	// Full refund, no restocking fee.
	if _, err := s.wallet.Credit(ctx, o.CostCents, "Refund "+o.AWB); err != nil {
		return nil, err
	}

	metrics.RecordBookingCancellation()
	if balance, err := s.wallet.BalanceCents(ctx); err == nil {
		metrics.SetWalletBalance(balance)
	}

	return o, nil
}
