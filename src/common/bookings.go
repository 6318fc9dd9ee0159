package common

import (
	"strconv"
	"strings"
	"tbs/src/config"
	"tbs/src/types"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingErrorKind string

const (
	ErrMissingField    BookingErrorKind = "missing_field"
	ErrInvalidQuantity BookingErrorKind = "invalid_quantity"
	ErrInvalidFormat   BookingErrorKind = "invalid_format"
	ErrInvalidDate     BookingErrorKind = "invalid_date"
	ErrNotFound        BookingErrorKind = "not_found"
)

type BookingError struct {
	Kind    BookingErrorKind
	Message string
}

func (e *BookingError) Error() string {
	return e.Message
}

func NewBookingError(kind BookingErrorKind, message string) *BookingError {
	return &BookingError{Kind: kind, Message: message}
}

// BookingIntent is a normalized booking request: fields trimmed, party size
// parsed, travel date resolved to a calendar day.
type BookingIntent struct {
	PackageID       uuid.UUID
	FullName        string
	Email           string
	Phone           string
	TravelDate      time.Time
	NumberOfPeople  int
	GuideID         *uint
	GuideAmount     *decimal.Decimal
	SpecialRequests string
}

// ValidateBookingRequest checks a raw booking request against the business
// rules and produces a BookingIntent. It performs no I/O; whether the package
// actually exists and is active is decided later, inside the booking
// transaction.
func ValidateBookingRequest(body *types.CreateBookingRequestBody, now time.Time) (*BookingIntent, *BookingError) {
	if strings.TrimSpace(body.PackageID) == "" {
		return nil, NewBookingError(ErrMissingField, "Package ID is required.")
	}
	packageId, err := uuid.Parse(strings.TrimSpace(body.PackageID))
	if err != nil {
		return nil, NewBookingError(ErrNotFound, "Invalid package selected.")
	}

	fullName := strings.TrimSpace(body.FullName)
	email := strings.TrimSpace(body.Email)
	phone := strings.TrimSpace(body.Phone)
	travelDateStr := strings.TrimSpace(body.TravelDate)
	if fullName == "" || email == "" || phone == "" || travelDateStr == "" {
		return nil, NewBookingError(ErrMissingField, "All required fields must be filled.")
	}

	numberOfPeople, err := strconv.Atoi(strings.TrimSpace(body.NumberOfPeople.String()))
	if err != nil || numberOfPeople < 1 {
		return nil, NewBookingError(ErrInvalidQuantity, "Invalid number of people.")
	}

	travelDate, err := time.Parse(config.DATE_PARSE_FORMAT, travelDateStr)
	if err != nil {
		return nil, NewBookingError(ErrInvalidFormat, "Invalid date format.")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !travelDate.After(today) {
		return nil, NewBookingError(ErrInvalidDate, "Travel date must be in the future.")
	}

	return &BookingIntent{
		PackageID:       packageId,
		FullName:        fullName,
		Email:           email,
		Phone:           phone,
		TravelDate:      travelDate,
		NumberOfPeople:  numberOfPeople,
		GuideID:         body.GuideID,
		GuideAmount:     body.GuideAmount,
		SpecialRequests: strings.TrimSpace(body.SpecialRequests),
	}, nil
}
