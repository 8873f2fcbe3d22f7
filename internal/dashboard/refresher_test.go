package dashboard

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Eursukkul/travel-booking/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFlights struct {
	calls atomic.Int32
	list  []models.FlightBooking
	err   error
}

func (s *stubFlights) ListAll(ctx context.Context) ([]models.FlightBooking, error) {
	s.calls.Add(1)
	return s.list, s.err
}

type stubAirTaxis struct{ list []models.AirTaxiBooking }

func (s *stubAirTaxis) ListAll(ctx context.Context) ([]models.AirTaxiBooking, error) {
	return s.list, nil
}

type stubRequests struct{ list []models.Request }

func (s *stubRequests) ListAll(ctx context.Context, status models.RequestStatus) ([]models.Request, error) {
	return s.list, nil
}

func TestRefresher_LatestComputesOnce(t *testing.T) {
	flights := &stubFlights{list: []models.FlightBooking{{DepartureDate: "2026-01-15"}}}
	r := NewRefresher(flights, &stubAirTaxis{}, &stubRequests{}, time.Minute)

	first, err := r.Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first.TotalFlights)

	flights.list = nil
	second, err := r.Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, second.TotalFlights, "served from the snapshot")
	assert.Equal(t, int32(1), flights.calls.Load())

	fresh, err := r.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, fresh.TotalFlights)
}

func TestRefresher_FailureKeepsPreviousSnapshot(t *testing.T) {
	flights := &stubFlights{list: []models.FlightBooking{{DepartureDate: "2026-01-15"}}}
	r := NewRefresher(flights, &stubAirTaxis{}, &stubRequests{}, time.Minute)
	_, err := r.Refresh(context.Background())
	require.NoError(t, err)

	flights.err = errors.New("db down")
	_, err = r.Refresh(context.Background())
	assert.ErrorContains(t, err, "db down")

	latest, err := r.Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, latest.TotalFlights)
}

func TestRefresher_RunTicksUntilCancelled(t *testing.T) {
	flights := &stubFlights{}
	r := NewRefresher(flights, &stubAirTaxis{}, &stubRequests{}, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return flights.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("refresher did not stop")
	}
}
