package dashboard

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"fastparcel/internal/order"
)

type Stats struct {
	Total              int   `json:"total"`
	Delivered          int   `json:"delivered"`
	InTransit          int   `json:"in_transit"`
	WalletBalanceCents int64 `json:"wallet_balance_cents"`
}

// ComputeStats derives the dashboard counters from a ledger snapshot.
// In-transit counts both In Transit and Picked Up shipments.
func ComputeStats(orders []order.Order, balanceCents int64) Stats {
	s := Stats{
		Total:              len(orders),
		WalletBalanceCents: balanceCents,
	}
	for _, o := range orders {
		switch o.Status {
		case order.StatusDelivered:
			s.Delivered++
		case order.StatusInTransit, order.StatusPickedUp:
			s.InTransit++
		}
	}
	return s
}

const seriesLen = 24

// Analytics is the decorative "orders/min" chart feed: a rolling
// window of random values. It touches no business state and exists
// purely for display.
type Analytics struct {
	mu       sync.RWMutex
	interval time.Duration
	series   []float64
}

func NewAnalytics(interval time.Duration) *Analytics {
	series := make([]float64, seriesLen)
	for i := range series {
		series[i] = rand.Float64() * 100
	}
	return &Analytics{
		interval: interval,
		series:   series,
	}
}

// Run shifts a new random point into the window on every tick until
// the context is cancelled.
func (a *Analytics) Run(ctx context.Context) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.mu.Lock()
			a.series = append(a.series[1:], rand.Float64()*100)
			a.mu.Unlock()
		}
	}
}

// Series returns a copy of the current window.
func (a *Analytics) Series() []float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()

	series := make([]float64, len(a.series))
	copy(series, a.series)
	return series
}
