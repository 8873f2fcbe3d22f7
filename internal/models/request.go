package models

import (
	"time"

	"gorm.io/gorm"
)

type RequestType string

const (
	RequestModification RequestType = "modification"
	RequestCancellation RequestType = "cancellation"
)

func (t RequestType) Valid() bool {
	return t == RequestModification || t == RequestCancellation
}

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// Request is a user's ask to change or cancel a booking. BookingID is not a
// foreign key: the booking may live in either booking table.
type Request struct {
	ID          string        `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID      string        `gorm:"not null;index" json:"userId"`
	UserEmail   string        `gorm:"not null;index" json:"userEmail"`
	UserName    string        `json:"userName"`
	BookingID   string        `gorm:"type:varchar(36);not null;index" json:"bookingId"`
	BookingType BookingType   `gorm:"type:varchar(16);not null" json:"bookingType"`
	RequestType RequestType   `gorm:"type:varchar(16);not null" json:"requestType"`
	Reason      string        `gorm:"type:text;not null" json:"reason"`
	Details     string        `gorm:"type:text;not null" json:"details"`
	Status      RequestStatus `gorm:"type:varchar(16);not null;default:'pending';index" json:"status"`
	AdminNotes  string        `gorm:"type:text" json:"adminNotes"`
	AdminID     string        `json:"adminId"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

func (Request) TableName() string { return "requests" }

func (r *Request) BeforeCreate(tx *gorm.DB) error {
	newID(&r.ID)
	return nil
}
