package repository

import (
	"context"

	"github.com/Eursukkul/travel-booking/internal/models"
	"gorm.io/gorm"
)

// RequestFilter narrows request listings. Zero fields are ignored; the email
// match is case-insensitive.
type RequestFilter struct {
	UserID    string
	UserEmail string
	Status    models.RequestStatus
}

type RequestRepository interface {
	Create(ctx context.Context, req *models.Request) error
	FindByID(ctx context.Context, id string) (*models.Request, error)
	Find(ctx context.Context, filter RequestFilter) ([]models.Request, error)
	HasApprovedCancellation(ctx context.Context, bookingID string) (bool, error)
	ResolvePending(ctx context.Context, req *models.Request) (bool, error)
	Delete(ctx context.Context, id string) error
}

type requestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, req *models.Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *requestRepository) FindByID(ctx context.Context, id string) (*models.Request, error) {
	var req models.Request
	if err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// Find returns matching requests, newest first.
func (r *requestRepository) Find(ctx context.Context, filter RequestFilter) ([]models.Request, error) {
	var reqs []models.Request
	q := r.db.WithContext(ctx)
	if filter.UserID != "" {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if filter.UserEmail != "" {
		q = q.Where("LOWER(user_email) = LOWER(?)", filter.UserEmail)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if err := q.Order("created_at DESC").Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *requestRepository) HasApprovedCancellation(ctx context.Context, bookingID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Request{}).
		Where("booking_id = ? AND request_type = ? AND status = ?",
			bookingID, models.RequestCancellation, models.RequestApproved).
		Count(&count).Error
	return count > 0, err
}

// ResolvePending writes the decision only while the stored request is still
// pending. It reports false when another resolution got there first.
func (r *requestRepository) ResolvePending(ctx context.Context, req *models.Request) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Request{}).
		Where("id = ? AND status = ?", req.ID, models.RequestPending).
		Updates(map[string]any{
			"status":      req.Status,
			"admin_notes": req.AdminNotes,
			"admin_id":    req.AdminID,
			"updated_at":  req.UpdatedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *requestRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Request{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
