package booking

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"fastparcel/internal/metrics"
	"fastparcel/internal/order"
	"fastparcel/internal/pricing"
	"fastparcel/internal/wallet"

	"github.com/google/uuid"
)

var ErrInsufficientFunds = errors.New("insufficient wallet balance")

type Service interface {
	Open(ctx context.Context) (Step, Draft)
	Current(ctx context.Context) (Step, Draft, error)
	Update(ctx context.Context, req UpdateDraftRequest) (Draft, error)
	Next(ctx context.Context) (Step, error)
	Back(ctx context.Context) (Step, error)
	Cancel(ctx context.Context) error
	// Ship submits the booking from the payment step: prices the
	// selected service, checks the wallet, creates the order and the
	// matching debit transaction, then resets the workflow.
	Ship(ctx context.Context) (*order.Order, error)
}

type service struct {
	workflow *Workflow
	orders   order.Repository
	wallet   wallet.Repository
}

func NewService(workflow *Workflow, orders order.Repository, walletRepo wallet.Repository) Service {
	return &service{
		workflow: workflow,
		orders:   orders,
		wallet:   walletRepo,
	}
}

func (s *service) Open(ctx context.Context) (Step, Draft) {
	return s.workflow.Open()
}

func (s *service) Current(ctx context.Context) (Step, Draft, error) {
	return s.workflow.Current()
}

func (s *service) Update(ctx context.Context, req UpdateDraftRequest) (Draft, error) {
	return s.workflow.Update(req)
}

func (s *service) Next(ctx context.Context) (Step, error) {
	return s.workflow.Next()
}

func (s *service) Back(ctx context.Context) (Step, error) {
	return s.workflow.Back()
}

func (s *service) Cancel(ctx context.Context) error {
	return s.workflow.Cancel()
}

func (s *service) Ship(ctx context.Context) (*order.Order, error) {
	draft, err := s.workflow.DraftAtPay()
	if err != nil {
		return nil, err
	}

	costCents := pricing.CostCents(draft.Service)

	balance, err := s.wallet.BalanceCents(ctx)
	if err != nil {
		return nil, err
	}
	if balance < costCents {
		return nil, ErrInsufficientFunds
	}

	awb := GenerateAWB()
	o := order.Order{
		ID:          uuid.NewString(),
		AWB:         awb,
		Service:     draft.Service,
		Status:      order.StatusBooked,
		CostCents:   costCents,
		Origin:      orUnknown(draft.SenderAddress),
		Destination: orUnknown(draft.ReceiverAddress),
		Date:        time.Now().Format("2006-01-02"),
	}

	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}

	if _, err := s.wallet.Debit(ctx, costCents, "Order "+awb); err != nil {
		// The pre-check lost a race; take the order back out.
		_ = s.orders.Remove(ctx, o.ID)
		if errors.Is(err, wallet.ErrInsufficientBalance) {
			return nil, ErrInsufficientFunds
		}
		return nil, err
	}

	s.workflow.Finish()

	metrics.RecordBooking(o.Service)
	if balance, err := s.wallet.BalanceCents(ctx); err == nil {
		metrics.SetWalletBalance(balance)
	}

	return &o, nil
}

// GenerateAWB returns "FP" plus a uniform 6-digit random number.
// Collisions are possible but vanishingly unlikely at demo scale.
func GenerateAWB() string {
	return fmt.Sprintf("FP%d", 100000+rand.Intn(900000))
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
