package dashboard

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Eursukkul/travel-booking/internal/metrics"
	"github.com/Eursukkul/travel-booking/internal/models"
)

type FlightLister interface {
	ListAll(ctx context.Context) ([]models.FlightBooking, error)
}

type AirTaxiLister interface {
	ListAll(ctx context.Context) ([]models.AirTaxiBooking, error)
}

type RequestLister interface {
	ListAll(ctx context.Context, status models.RequestStatus) ([]models.Request, error)
}

// Refresher recomputes the summary on a fixed period and serves the latest
// snapshot. Periodic and on-demand refreshes are not coordinated; the last
// one to finish wins.
type Refresher struct {
	flights  FlightLister
	airTaxis AirTaxiLister
	requests RequestLister
	interval time.Duration
	now      func() time.Time

	mu     sync.RWMutex
	latest *Summary
}

func NewRefresher(flights FlightLister, airTaxis AirTaxiLister, requests RequestLister, interval time.Duration) *Refresher {
	return &Refresher{
		flights:  flights,
		airTaxis: airTaxis,
		requests: requests,
		interval: interval,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Run refreshes immediately and then every interval until ctx is done.
func (r *Refresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		if _, err := r.Refresh(ctx); err != nil && ctx.Err() == nil {
			log.Printf("[Dashboard] refresh failed: %v", err)
		}
		select {
		case <-ctx.Done():
			log.Println("[Dashboard] refresher stopped")
			return
		case <-ticker.C:
		}
	}
}

func (r *Refresher) Refresh(ctx context.Context) (Summary, error) {
	s, err := r.compute(ctx)
	metrics.TrackDashboardRefresh(err == nil)
	if err != nil {
		return Summary{}, err
	}

	r.mu.Lock()
	r.latest = &s
	r.mu.Unlock()
	return s, nil
}

// Latest returns the last snapshot, computing one if none exists yet.
func (r *Refresher) Latest(ctx context.Context) (Summary, error) {
	r.mu.RLock()
	latest := r.latest
	r.mu.RUnlock()

	if latest != nil {
		return *latest, nil
	}
	return r.Refresh(ctx)
}

func (r *Refresher) compute(ctx context.Context) (Summary, error) {
	flights, err := r.flights.ListAll(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("list flight bookings: %w", err)
	}
	airTaxis, err := r.airTaxis.ListAll(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("list air-taxi bookings: %w", err)
	}
	requests, err := r.requests.ListAll(ctx, "")
	if err != nil {
		return Summary{}, fmt.Errorf("list requests: %w", err)
	}
	return Build(flights, airTaxis, requests, r.now()), nil
}
