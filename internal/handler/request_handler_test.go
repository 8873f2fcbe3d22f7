package handler

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/Eursukkul/travel-booking/internal/models"
	"github.com/Eursukkul/travel-booking/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock RequestService ---

type mockRequestService struct {
	createFn      func(ctx context.Context, draft *models.Request) (*models.Request, error)
	listFn        func(ctx context.Context, status models.RequestStatus) ([]models.Request, error)
	listByUserFn  func(ctx context.Context, userID string, status models.RequestStatus) ([]models.Request, error)
	listByEmailFn func(ctx context.Context, email string, status models.RequestStatus) ([]models.Request, error)
	resolveFn     func(ctx context.Context, id string, decision models.RequestStatus, notes, adminID string) (*models.Request, error)
	deleteFn      func(ctx context.Context, id string) error
}

func (m *mockRequestService) Create(ctx context.Context, draft *models.Request) (*models.Request, error) {
	return m.createFn(ctx, draft)
}
func (m *mockRequestService) ListAll(ctx context.Context, status models.RequestStatus) ([]models.Request, error) {
	return m.listFn(ctx, status)
}
func (m *mockRequestService) ListByUser(ctx context.Context, userID string, status models.RequestStatus) ([]models.Request, error) {
	return m.listByUserFn(ctx, userID, status)
}
func (m *mockRequestService) ListByEmail(ctx context.Context, email string, status models.RequestStatus) ([]models.Request, error) {
	return m.listByEmailFn(ctx, email, status)
}
func (m *mockRequestService) Get(ctx context.Context, id string) (*models.Request, error) {
	return nil, service.ErrNotFound
}
func (m *mockRequestService) Resolve(ctx context.Context, id string, decision models.RequestStatus, notes, adminID string) (*models.Request, error) {
	return m.resolveFn(ctx, id, decision, notes, adminID)
}
func (m *mockRequestService) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// --- Tests ---

const requestBody = `{
	"userId": "user-1",
	"userEmail": "traveler@example.com",
	"userName": "Traveler",
	"bookingId": "fb-1",
	"bookingType": "flight",
	"requestType": "cancellation",
	"reason": "plans changed",
	"details": "please cancel"
}`

func TestCreateRequest_Handler_Success(t *testing.T) {
	svc := &mockRequestService{
		createFn: func(ctx context.Context, draft *models.Request) (*models.Request, error) {
			draft.ID = "rq-1"
			draft.Status = models.RequestPending
			return draft, nil
		},
	}

	c, rec := newContext(http.MethodPost, "/requests", requestBody)
	err := NewRequestHandler(svc).CreateRequest(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decode[models.Request](t, rec)
	assert.Equal(t, "rq-1", body.Data.ID)
	assert.Equal(t, models.RequestCancellation, body.Data.RequestType)
	assert.Equal(t, models.BookingTypeFlight, body.Data.BookingType)
}

func TestCreateRequest_Handler_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		code int
	}{
		{"missing reason", `{"userId":"u","userEmail":"a@b.com","bookingId":"b","bookingType":"flight","requestType":"modification","details":"d"}`, nil, http.StatusBadRequest},
		{"unknown booking type", `{"userId":"u","userEmail":"a@b.com","bookingId":"b","bookingType":"bus","requestType":"modification","reason":"r","details":"d"}`, nil, http.StatusBadRequest},
		{"booking missing", requestBody, fmt.Errorf("%w: flight booking fb-1", service.ErrNotFound), http.StatusNotFound},
		{"already cancelled", requestBody, fmt.Errorf("%w: booking fb-1 is already cancelled", service.ErrConflict), http.StatusBadRequest},
		{"store down", requestBody, fmt.Errorf("%w: connection reset", service.ErrInternal), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockRequestService{
				createFn: func(ctx context.Context, draft *models.Request) (*models.Request, error) {
					return nil, tt.err
				},
			}
			c, _ := newContext(http.MethodPost, "/requests", tt.body)

			err := NewRequestHandler(svc).CreateRequest(c)

			assertHTTPError(t, err, tt.code)
		})
	}
}

func TestListRequests_Handler_StatusFilter(t *testing.T) {
	var gotStatus models.RequestStatus
	svc := &mockRequestService{
		listFn: func(ctx context.Context, status models.RequestStatus) ([]models.Request, error) {
			gotStatus = status
			return []models.Request{{ID: "rq-1", Status: models.RequestPending}}, nil
		},
	}

	c, rec := newContext(http.MethodGet, "/requests?status=pending", "")
	err := NewRequestHandler(svc).ListRequests(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.RequestPending, gotStatus)
	assert.Len(t, decode[[]models.Request](t, rec).Data, 1)
}

func TestListRequestsByUser_Handler_EmptyIs404(t *testing.T) {
	svc := &mockRequestService{
		listByUserFn: func(ctx context.Context, userID string, status models.RequestStatus) ([]models.Request, error) {
			return []models.Request{}, nil
		},
	}

	c, rec := newContext(http.MethodGet, "/requests/user/user-9", "")
	c.SetParamNames("userId")
	c.SetParamValues("user-9")
	err := NewRequestHandler(svc).ListRequestsByUser(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"No requests found for this user","data":[]}`, rec.Body.String())
}

func TestListRequestsByEmail_Handler(t *testing.T) {
	var gotEmail string
	svc := &mockRequestService{
		listByEmailFn: func(ctx context.Context, email string, status models.RequestStatus) ([]models.Request, error) {
			gotEmail = email
			return []models.Request{{ID: "rq-1"}}, nil
		},
	}

	c, rec := newContext(http.MethodGet, "/requests/user/email/Traveler@Example.com", "")
	c.SetParamNames("email")
	c.SetParamValues("Traveler@Example.com")
	err := NewRequestHandler(svc).ListRequestsByEmail(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Traveler@Example.com", gotEmail)
}

func TestResolveRequest_Handler(t *testing.T) {
	var gotDecision models.RequestStatus
	var gotNotes, gotAdmin string
	svc := &mockRequestService{
		resolveFn: func(ctx context.Context, id string, decision models.RequestStatus, notes, adminID string) (*models.Request, error) {
			gotDecision, gotNotes, gotAdmin = decision, notes, adminID
			return &models.Request{ID: id, Status: decision, AdminNotes: notes, AdminID: adminID}, nil
		},
	}

	c, rec := newContext(http.MethodPatch, "/requests/rq-1", `{"status":"approved","adminNotes":"ok","adminId":"admin-1"}`)
	c.SetParamNames("id")
	c.SetParamValues("rq-1")
	err := NewRequestHandler(svc).ResolveRequest(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.RequestApproved, gotDecision)
	assert.Equal(t, "ok", gotNotes)
	assert.Equal(t, "admin-1", gotAdmin)

	body := decode[models.Request](t, rec)
	assert.Equal(t, "Request approved", body.Message)
	assert.Equal(t, "ok", body.Data.AdminNotes)
}

func TestResolveRequest_Handler_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"bad decision", fmt.Errorf("%w: status must be approved or rejected", service.ErrValidation), http.StatusBadRequest},
		{"missing", fmt.Errorf("%w: request rq-1", service.ErrNotFound), http.StatusNotFound},
		{"already resolved", fmt.Errorf("%w: request rq-1 is already approved", service.ErrInvalidState), http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockRequestService{
				resolveFn: func(ctx context.Context, id string, decision models.RequestStatus, notes, adminID string) (*models.Request, error) {
					return nil, tt.err
				},
			}
			c, _ := newContext(http.MethodPatch, "/requests/rq-1", `{"status":"maybe"}`)
			c.SetParamNames("id")
			c.SetParamValues("rq-1")

			err := NewRequestHandler(svc).ResolveRequest(c)

			assertHTTPError(t, err, tt.code)
		})
	}
}

func TestDeleteRequest_Handler(t *testing.T) {
	svc := &mockRequestService{
		deleteFn: func(ctx context.Context, id string) error {
			return fmt.Errorf("%w: request %s", service.ErrNotFound, id)
		},
	}

	c, _ := newContext(http.MethodDelete, "/requests/rq-1", "")
	c.SetParamNames("id")
	c.SetParamValues("rq-1")

	assertHTTPError(t, NewRequestHandler(svc).DeleteRequest(c), http.StatusNotFound)
}
