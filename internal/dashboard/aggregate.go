// Package dashboard derives the admin summary views from bookings and
// requests.
package dashboard

import (
	"sort"
	"strings"
	"time"

	"github.com/Eursukkul/travel-booking/internal/models"
)

// NoPopularRoute is reported when no route stands out.
const NoPopularRoute = "No popular route"

// Record is the part of a booking the aggregations read. Either the flight
// fields or the air-taxi fields are populated.
type Record struct {
	Type                    models.BookingType
	Status                  string
	DepartureDate           string
	DateTime                time.Time
	CreatedAt               time.Time
	ModifiedAt              *time.Time
	ModificationRequestedAt *time.Time
	Origin                  string
	Destination             string
	PickupLocation          string
	DestinationLocation     string
}

func FromFlights(bookings []models.FlightBooking) []Record {
	out := make([]Record, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, Record{
			Type:                    models.BookingTypeFlight,
			Status:                  string(b.Status),
			DepartureDate:           b.DepartureDate,
			CreatedAt:               b.CreatedAt,
			ModifiedAt:              b.ModifiedAt,
			ModificationRequestedAt: b.ModificationRequestedAt,
			Origin:                  b.Origin,
			Destination:             b.Destination,
		})
	}
	return out
}

func FromAirTaxis(bookings []models.AirTaxiBooking) []Record {
	out := make([]Record, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, Record{
			Type:                    models.BookingTypeAirTaxi,
			Status:                  string(b.Status),
			DateTime:                b.DateTime,
			CreatedAt:               b.CreatedAt,
			ModifiedAt:              b.ModifiedAt,
			ModificationRequestedAt: b.ModificationRequestedAt,
			PickupLocation:          b.PickupLocation,
			DestinationLocation:     b.DestinationLocation,
		})
	}
	return out
}

// MonthlySeries counts bookings per calendar month, January at index 0.
type MonthlySeries struct {
	Flights  [12]int `json:"flights"`
	AirTaxis [12]int `json:"airTaxis"`
}

// Monthly buckets each record by its first available date: departure date,
// then pickup time, then creation time. Unparseable dates are skipped.
func Monthly(records []Record) MonthlySeries {
	var s MonthlySeries
	for _, r := range records {
		at, ok := r.bookingDate()
		if !ok {
			continue
		}
		i := int(at.Month()) - 1
		if r.Type == models.BookingTypeAirTaxi {
			s.AirTaxis[i]++
		} else {
			s.Flights[i]++
		}
	}
	return s
}

func (r Record) bookingDate() (time.Time, bool) {
	switch {
	case r.DepartureDate != "":
		t, err := models.ParseCalendarDate(r.DepartureDate)
		return t, err == nil
	case !r.DateTime.IsZero():
		return r.DateTime, true
	case !r.CreatedAt.IsZero():
		return r.CreatedAt, true
	}
	return time.Time{}, false
}

const (
	StatusBucketConfirmed = "confirmed"
	StatusBucketModified  = "modified"
	StatusBucketPending   = "pending"
)

var pendingKeywords = []string{"pending", "awaiting", "processing", "requested"}

// StatusDistribution classifies live bookings. Cancelled bookings are left
// out and empty buckets are omitted.
func StatusDistribution(records []Record) map[string]int {
	out := make(map[string]int)
	for _, r := range records {
		status := strings.ToLower(strings.TrimSpace(r.Status))
		if status == "cancelled" || status == "canceled" {
			continue
		}
		switch {
		case r.modified(status):
			out[StatusBucketModified]++
		case isPendingLike(status):
			out[StatusBucketPending]++
		default:
			out[StatusBucketConfirmed]++
		}
	}
	return out
}

// modified checks the markers in order; the first one present wins.
func (r Record) modified(status string) bool {
	switch {
	case status == string(models.StatusModified):
		return true
	case r.ModifiedAt != nil && !r.ModifiedAt.Equal(r.CreatedAt):
		return true
	case r.ModificationRequestedAt != nil:
		return true
	}
	return false
}

func isPendingLike(status string) bool {
	for _, k := range pendingKeywords {
		if strings.Contains(status, k) {
			return true
		}
	}
	return false
}

type PopularRoute struct {
	Route string `json:"route"`
	Count int    `json:"count"`
}

// MostPopularRoute reports the most frequent "<from> to <to>" pair. It
// only names a route that occurs more than once among several distinct
// routes; ties go to the alphabetically first route.
func MostPopularRoute(records []Record) PopularRoute {
	counts := make(map[string]int)
	for _, r := range records {
		if route, ok := r.route(); ok {
			counts[route]++
		}
	}

	routes := make([]string, 0, len(counts))
	for route := range counts {
		routes = append(routes, route)
	}
	sort.Slice(routes, func(i, j int) bool {
		if counts[routes[i]] != counts[routes[j]] {
			return counts[routes[i]] > counts[routes[j]]
		}
		return routes[i] < routes[j]
	})

	if len(routes) < 2 || counts[routes[0]] < 2 {
		return PopularRoute{Route: NoPopularRoute}
	}
	return PopularRoute{Route: routes[0], Count: counts[routes[0]]}
}

func (r Record) route() (string, bool) {
	pairs := [][2]string{
		{r.Origin, r.Destination},
		{r.PickupLocation, r.DestinationLocation},
	}
	for _, p := range pairs {
		from, to := strings.TrimSpace(p[0]), strings.TrimSpace(p[1])
		if from != "" && to != "" {
			return from + " to " + to, true
		}
	}
	return "", false
}

type RequestCounts struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

func CountRequests(requests []models.Request) RequestCounts {
	c := RequestCounts{Total: len(requests)}
	for _, r := range requests {
		switch r.Status {
		case models.RequestPending:
			c.Pending++
		case models.RequestApproved:
			c.Approved++
		case models.RequestRejected:
			c.Rejected++
		}
	}
	return c
}

type Summary struct {
	GeneratedAt        time.Time      `json:"generatedAt"`
	TotalFlights       int            `json:"totalFlights"`
	TotalAirTaxis      int            `json:"totalAirTaxis"`
	Requests           RequestCounts  `json:"requests"`
	Monthly            MonthlySeries  `json:"monthly"`
	StatusDistribution map[string]int `json:"statusDistribution"`
	PopularRoute       PopularRoute   `json:"popularRoute"`
}

func Build(flights []models.FlightBooking, airTaxis []models.AirTaxiBooking, requests []models.Request, at time.Time) Summary {
	records := append(FromFlights(flights), FromAirTaxis(airTaxis)...)
	return Summary{
		GeneratedAt:        at,
		TotalFlights:       len(flights),
		TotalAirTaxis:      len(airTaxis),
		Requests:           CountRequests(requests),
		Monthly:            Monthly(records),
		StatusDistribution: StatusDistribution(records),
		PopularRoute:       MostPopularRoute(records),
	}
}
