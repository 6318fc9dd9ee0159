package common

import (
	"tbs/src/types"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, time.March, 10, 15, 30, 0, 0, time.UTC)

func validBody() *types.CreateBookingRequestBody {
	return &types.CreateBookingRequestBody{
		PackageID:      uuid.NewString(),
		FullName:       "Test Customer",
		Email:          "customer@example.com",
		Phone:          "+15550001111",
		TravelDate:     "2025-06-01",
		NumberOfPeople: types.FlexInt("3"),
	}
}

func TestValidateBookingRequest(t *testing.T) {
	intent, verr := ValidateBookingRequest(validBody(), testNow)
	assert.Nil(t, verr)
	assert.NotNil(t, intent)
	assert.Equal(t, 3, intent.NumberOfPeople)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), intent.TravelDate)
}

func TestValidateBookingRequestErrors(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(b *types.CreateBookingRequestBody)
		kind    BookingErrorKind
		message string
	}{
		{
			name:    "missing package id",
			mutate:  func(b *types.CreateBookingRequestBody) { b.PackageID = "" },
			kind:    ErrMissingField,
			message: "Package ID is required.",
		},
		{
			name:    "blank package id",
			mutate:  func(b *types.CreateBookingRequestBody) { b.PackageID = "   " },
			kind:    ErrMissingField,
			message: "Package ID is required.",
		},
		{
			name:    "malformed package id",
			mutate:  func(b *types.CreateBookingRequestBody) { b.PackageID = "not-a-uuid" },
			kind:    ErrNotFound,
			message: "Invalid package selected.",
		},
		{
			name:    "missing full name",
			mutate:  func(b *types.CreateBookingRequestBody) { b.FullName = "  " },
			kind:    ErrMissingField,
			message: "All required fields must be filled.",
		},
		{
			name:    "missing email",
			mutate:  func(b *types.CreateBookingRequestBody) { b.Email = "" },
			kind:    ErrMissingField,
			message: "All required fields must be filled.",
		},
		{
			name:    "missing phone",
			mutate:  func(b *types.CreateBookingRequestBody) { b.Phone = "" },
			kind:    ErrMissingField,
			message: "All required fields must be filled.",
		},
		{
			name:    "missing travel date",
			mutate:  func(b *types.CreateBookingRequestBody) { b.TravelDate = "" },
			kind:    ErrMissingField,
			message: "All required fields must be filled.",
		},
		{
			name:    "zero people",
			mutate:  func(b *types.CreateBookingRequestBody) { b.NumberOfPeople = types.FlexInt("0") },
			kind:    ErrInvalidQuantity,
			message: "Invalid number of people.",
		},
		{
			name:    "negative people",
			mutate:  func(b *types.CreateBookingRequestBody) { b.NumberOfPeople = types.FlexInt("-2") },
			kind:    ErrInvalidQuantity,
			message: "Invalid number of people.",
		},
		{
			name:    "non-integer people",
			mutate:  func(b *types.CreateBookingRequestBody) { b.NumberOfPeople = types.FlexInt("3.0") },
			kind:    ErrInvalidQuantity,
			message: "Invalid number of people.",
		},
		{
			name:    "absent people",
			mutate:  func(b *types.CreateBookingRequestBody) { b.NumberOfPeople = types.FlexInt("") },
			kind:    ErrInvalidQuantity,
			message: "Invalid number of people.",
		},
		{
			name:    "bad date format",
			mutate:  func(b *types.CreateBookingRequestBody) { b.TravelDate = "01/06/2025" },
			kind:    ErrInvalidFormat,
			message: "Invalid date format.",
		},
		{
			name:    "travel date today",
			mutate:  func(b *types.CreateBookingRequestBody) { b.TravelDate = "2025-03-10" },
			kind:    ErrInvalidDate,
			message: "Travel date must be in the future.",
		},
		{
			name:    "travel date in the past",
			mutate:  func(b *types.CreateBookingRequestBody) { b.TravelDate = "2024-12-25" },
			kind:    ErrInvalidDate,
			message: "Travel date must be in the future.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := validBody()
			tc.mutate(body)
			intent, verr := ValidateBookingRequest(body, testNow)
			assert.Nil(t, intent)
			if assert.NotNil(t, verr) {
				assert.Equal(t, tc.kind, verr.Kind)
				assert.Equal(t, tc.message, verr.Message)
			}
		})
	}
}

func TestValidateBookingRequestTrimsFields(t *testing.T) {
	body := validBody()
	body.FullName = "  Test Customer  "
	body.Email = " customer@example.com "
	body.SpecialRequests = " window seat "

	intent, verr := ValidateBookingRequest(body, testNow)
	assert.Nil(t, verr)
	assert.Equal(t, "Test Customer", intent.FullName)
	assert.Equal(t, "customer@example.com", intent.Email)
	assert.Equal(t, "window seat", intent.SpecialRequests)
}

func TestValidateBookingRequestTomorrowOk(t *testing.T) {
	body := validBody()
	body.TravelDate = "2025-03-11"

	intent, verr := ValidateBookingRequest(body, testNow)
	assert.Nil(t, verr)
	assert.NotNil(t, intent)
}
