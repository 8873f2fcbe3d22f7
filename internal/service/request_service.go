package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Eursukkul/travel-booking/internal/metrics"
	"github.com/Eursukkul/travel-booking/internal/models"
	"github.com/Eursukkul/travel-booking/internal/notification"
	"github.com/Eursukkul/travel-booking/internal/repository"
)

type RequestService interface {
	Create(ctx context.Context, draft *models.Request) (*models.Request, error)
	ListAll(ctx context.Context, status models.RequestStatus) ([]models.Request, error)
	ListByUser(ctx context.Context, userID string, status models.RequestStatus) ([]models.Request, error)
	ListByEmail(ctx context.Context, email string, status models.RequestStatus) ([]models.Request, error)
	Get(ctx context.Context, id string) (*models.Request, error)
	Resolve(ctx context.Context, id string, decision models.RequestStatus, notes, adminID string) (*models.Request, error)
	Delete(ctx context.Context, id string) error
}

// bookingKind is what the request workflow can do to one booking variant.
type bookingKind interface {
	find(ctx context.Context, id string) (models.Booking, error)
	applyCancellation(ctx context.Context, id, reason string) error
	applyModification(ctx context.Context, id string) error
}

type flightKind struct{ svc FlightBookingService }

func (k flightKind) find(ctx context.Context, id string) (models.Booking, error) {
	b, err := k.svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (k flightKind) applyCancellation(ctx context.Context, id, reason string) error {
	_, err := k.svc.Cancel(ctx, id, reason)
	return err
}

func (k flightKind) applyModification(ctx context.Context, id string) error {
	_, err := k.svc.MarkPendingModification(ctx, id)
	return err
}

// airTaxiKind removes the booking outright on an approved cancellation.
type airTaxiKind struct{ svc AirTaxiBookingService }

func (k airTaxiKind) find(ctx context.Context, id string) (models.Booking, error) {
	b, err := k.svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (k airTaxiKind) applyCancellation(ctx context.Context, id, _ string) error {
	return k.svc.Delete(ctx, id)
}

func (k airTaxiKind) applyModification(ctx context.Context, id string) error {
	_, err := k.svc.MarkPendingModification(ctx, id)
	return err
}

type requestService struct {
	repo     repository.RequestRepository
	kinds    map[models.BookingType]bookingKind
	notifier Notifier
	now      func() time.Time
}

func NewRequestService(repo repository.RequestRepository, flights FlightBookingService, airTaxis AirTaxiBookingService, notifier Notifier) RequestService {
	return &requestService{
		repo: repo,
		kinds: map[models.BookingType]bookingKind{
			models.BookingTypeFlight:  flightKind{svc: flights},
			models.BookingTypeAirTaxi: airTaxiKind{svc: airTaxis},
		},
		notifier: notifier,
		now:      utcNow,
	}
}

func (s *requestService) Create(ctx context.Context, draft *models.Request) (*models.Request, error) {
	// 1. Required fields and enums
	if err := validateRequestDraft(draft); err != nil {
		return nil, err
	}

	// 2. The booking must exist
	kind := s.kinds[draft.BookingType]
	booking, err := kind.find(ctx, draft.BookingID)
	if err != nil {
		return nil, err
	}

	// 3. Cancellation conflicts
	if draft.RequestType == models.RequestCancellation {
		if booking.CurrentStatus() == models.StatusCancelled {
			return nil, conflictErr("booking %s is already cancelled", draft.BookingID)
		}
		approved, err := s.repo.HasApprovedCancellation(ctx, draft.BookingID)
		if err != nil {
			return nil, storeErr("requests", err)
		}
		if approved {
			return nil, conflictErr("booking %s already has an approved cancellation", draft.BookingID)
		}
	}

	draft.ID = ""
	draft.Status = models.RequestPending
	draft.AdminNotes = ""
	draft.AdminID = ""
	if err := s.repo.Create(ctx, draft); err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrInternal, err)
	}

	log.Printf("[RequestService] %s request %s created for %s booking %s", draft.RequestType, draft.ID, draft.BookingType, draft.BookingID)
	return draft, nil
}

func (s *requestService) ListAll(ctx context.Context, status models.RequestStatus) ([]models.Request, error) {
	return s.find(ctx, repository.RequestFilter{Status: status})
}

func (s *requestService) ListByUser(ctx context.Context, userID string, status models.RequestStatus) ([]models.Request, error) {
	if userID == "" {
		return nil, validationErr("userId is required")
	}
	return s.find(ctx, repository.RequestFilter{UserID: userID, Status: status})
}

func (s *requestService) ListByEmail(ctx context.Context, email string, status models.RequestStatus) ([]models.Request, error) {
	if email == "" {
		return nil, validationErr("email is required")
	}
	return s.find(ctx, repository.RequestFilter{UserEmail: email, Status: status})
}

func (s *requestService) find(ctx context.Context, filter repository.RequestFilter) ([]models.Request, error) {
	if filter.Status != "" && !validRequestStatus(filter.Status) {
		return nil, validationErr("unknown request status %q", filter.Status)
	}
	requests, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, storeErr("requests", err)
	}
	return requests, nil
}

func (s *requestService) Get(ctx context.Context, id string) (*models.Request, error) {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("request "+id, err)
	}
	return req, nil
}

func (s *requestService) Resolve(ctx context.Context, id string, decision models.RequestStatus, notes, adminID string) (*models.Request, error) {
	// 1. Only a final decision is accepted
	if decision != models.RequestApproved && decision != models.RequestRejected {
		return nil, validationErr("status must be approved or rejected")
	}

	// 2. Load; a request transitions exactly once
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("request "+id, err)
	}
	if req.Status != models.RequestPending {
		return nil, fmt.Errorf("%w: request %s is already %s", ErrInvalidState, id, req.Status)
	}

	// 3. Commit the decision
	req.Status = decision
	req.AdminNotes = notes
	req.AdminID = adminID
	req.UpdatedAt = s.now()
	ok, err := s.repo.ResolvePending(ctx, req)
	if err != nil {
		return nil, storeErr("request "+id, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: request %s was resolved concurrently", ErrInvalidState, id)
	}
	metrics.TrackRequestResolved(string(req.RequestType), string(decision))

	// 4. Side effect on the booking. A failure here leaves the decision in place.
	if decision == models.RequestApproved {
		if err := s.applySideEffect(ctx, req); err != nil {
			log.Printf("[RequestService] side effect for request %s on %s booking %s failed: %v", req.ID, req.BookingType, req.BookingID, err)
			metrics.TrackSideEffectFailure(string(req.RequestType), string(req.BookingType))
		}
	}

	notify(ctx, s.notifier, notification.Message{
		Kind:        notification.KindRequestResolved,
		To:          req.UserEmail,
		Name:        req.UserName,
		BookingID:   req.BookingID,
		BookingType: string(req.BookingType),
		RequestID:   req.ID,
		RequestType: string(req.RequestType),
		Decision:    string(decision),
		AdminNotes:  notes,
		OccurredAt:  req.UpdatedAt,
	})

	return req, nil
}

func (s *requestService) applySideEffect(ctx context.Context, req *models.Request) error {
	kind, ok := s.kinds[req.BookingType]
	if !ok {
		return fmt.Errorf("unknown booking type %q", req.BookingType)
	}
	switch req.RequestType {
	case models.RequestCancellation:
		return kind.applyCancellation(ctx, req.BookingID, req.Reason)
	case models.RequestModification:
		return kind.applyModification(ctx, req.BookingID)
	default:
		return fmt.Errorf("unknown request type %q", req.RequestType)
	}
}

func (s *requestService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeErr("request "+id, err)
	}
	return nil
}

func validateRequestDraft(r *models.Request) error {
	required := []struct{ name, value string }{
		{"userId", r.UserID},
		{"userEmail", r.UserEmail},
		{"bookingId", r.BookingID},
		{"bookingType", string(r.BookingType)},
		{"requestType", string(r.RequestType)},
		{"reason", r.Reason},
		{"details", r.Details},
	}
	var missing []string
	for _, f := range required {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return validationErr("missing required fields: %s", strings.Join(missing, ", "))
	}

	if !r.BookingType.Valid() {
		return validationErr("bookingType must be flight or airtaxi")
	}
	if !r.RequestType.Valid() {
		return validationErr("requestType must be modification or cancellation")
	}
	return nil
}

func validRequestStatus(s models.RequestStatus) bool {
	switch s {
	case models.RequestPending, models.RequestApproved, models.RequestRejected:
		return true
	}
	return false
}
