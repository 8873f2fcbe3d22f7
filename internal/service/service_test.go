package service

import (
	"context"
	"testing"
	"time"

	"github.com/Eursukkul/travel-booking/internal/notification"
	"github.com/Eursukkul/travel-booking/internal/repository"
	"github.com/Eursukkul/travel-booking/internal/testutil"
	"gorm.io/gorm"
)

// --- Recording Notifier ---

type recordingNotifier struct {
	msgs []notification.Message
	err  error
}

func (n *recordingNotifier) Notify(ctx context.Context, msg notification.Message) error {
	n.msgs = append(n.msgs, msg)
	return n.err
}

func (n *recordingNotifier) last() notification.Message {
	if len(n.msgs) == 0 {
		return notification.Message{}
	}
	return n.msgs[len(n.msgs)-1]
}

type fixture struct {
	db       *gorm.DB
	flights  *flightBookingService
	airTaxis *airTaxiBookingService
	requests *requestService
	notifier *recordingNotifier
}

var fixedNow = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

// newFixture wires every service over one in-memory database.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewSQLiteDB(t)
	n := &recordingNotifier{}

	flights := NewFlightBookingService(repository.NewFlightBookingRepository(db), n).(*flightBookingService)
	airTaxis := NewAirTaxiBookingService(repository.NewAirTaxiBookingRepository(db), n).(*airTaxiBookingService)
	requests := NewRequestService(repository.NewRequestRepository(db), flights, airTaxis, n).(*requestService)

	clock := func() time.Time { return fixedNow }
	flights.now = clock
	airTaxis.now = clock
	requests.now = clock

	return &fixture{db: db, flights: flights, airTaxis: airTaxis, requests: requests, notifier: n}
}
