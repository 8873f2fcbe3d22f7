package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testDraft struct {
	Passport    string `validate:"required,passport"`
	Date        string `validate:"required,calendar_date"`
	BookingType string `validate:"required,booking_type"`
	RequestType string `validate:"omitempty,request_type"`
	TripType    string `validate:"omitempty,trip_type"`
}

func validDraft() testDraft {
	return testDraft{Passport: "AA123456", Date: "2026-01-15", BookingType: "flight", RequestType: "cancellation", TripType: "RoundTrip"}
}

func TestCustomValidator(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *testDraft)
		wantErr bool
	}{
		{"valid", func(d *testDraft) {}, false},
		{"passport six chars", func(d *testDraft) { d.Passport = "A12345" }, false},
		{"passport nine chars", func(d *testDraft) { d.Passport = "A12345678" }, false},
		{"passport too short", func(d *testDraft) { d.Passport = "A1234" }, true},
		{"passport too long", func(d *testDraft) { d.Passport = "A123456789" }, true},
		{"passport with dash", func(d *testDraft) { d.Passport = "AA-12345" }, true},
		{"timestamp date", func(d *testDraft) { d.Date = "2026-01-15T09:30:00Z" }, false},
		{"impossible date", func(d *testDraft) { d.Date = "2026-02-30" }, true},
		{"air taxi", func(d *testDraft) { d.BookingType = "airtaxi" }, false},
		{"unknown booking type", func(d *testDraft) { d.BookingType = "train" }, true},
		{"unknown request type", func(d *testDraft) { d.RequestType = "upgrade" }, true},
		{"unknown trip type", func(d *testDraft) { d.TripType = "MultiCity" }, true},
	}

	v := NewCustomValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)
			err := v.Validate(d)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
