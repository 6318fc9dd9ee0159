package types

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

// FlexInt decodes from either a JSON number or a quoted numeric string.
// Browser form payloads send party sizes both ways; parsing happens in the
// booking validator so that bad values map to the right error kind.
type FlexInt string

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	*f = FlexInt(strings.Trim(string(b), `"`))
	return nil
}

func (f FlexInt) String() string {
	return string(f)
}

type BookingStatus string

const (
	BOOKING_PENDING   BookingStatus = "pending"
	BOOKING_CONFIRMED BookingStatus = "confirmed"
	BOOKING_CANCELLED BookingStatus = "cancelled"
	BOOKING_COMPLETED BookingStatus = "completed"
)

const (
	ROLE_CUSTOMER = "customer"
	ROLE_STAFF    = "staff"
)

type CreateBookingRequestBody struct {
	PackageID       string           `json:"package_id"`
	FullName        string           `json:"full_name"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone"`
	TravelDate      string           `json:"travel_date"`
	NumberOfPeople  FlexInt          `json:"number_of_people"`
	GuideID         *uint            `json:"guide_id,omitempty"`
	GuideAmount     *decimal.Decimal `json:"guide_amount,omitempty"`
	SpecialRequests string           `json:"special_requests,omitempty"`
}

type ReviewBookingRequestBody struct {
	Rating decimal.Decimal `json:"rating" binding:"required"`
	Review string          `json:"review,omitempty"`
}

type UpdateBookingStatusRequestBody struct {
	Status BookingStatus `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}

type CreatePackageRequestBody struct {
	Name         string          `json:"name" binding:"required,notblank"`
	Destination  string          `json:"destination" binding:"required,notblank"`
	Description  string          `json:"description,omitempty"`
	DurationDays uint            `json:"duration_days" binding:"required,gt=0"`
	Price        decimal.Decimal `json:"price" binding:"required"`
	IsActive     *bool           `json:"is_active,omitempty"`
}

type UpdatePackageRequestBody struct {
	Name         *string          `json:"name,omitempty"`
	Destination  *string          `json:"destination,omitempty"`
	Description  *string          `json:"description,omitempty"`
	DurationDays *uint            `json:"duration_days,omitempty" binding:"omitempty,gt=0"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	IsActive     *bool            `json:"is_active,omitempty"`
}

type CreateGuideRequestBody struct {
	GuideID      string          `json:"guide_id" binding:"required,notblank"`
	Name         string          `json:"name" binding:"required,notblank"`
	Description  string          `json:"description,omitempty"`
	RatePerDay   decimal.Decimal `json:"rate_per_day" binding:"required"`
	IsAvailable  *bool           `json:"is_available,omitempty"`
	Destinations []string        `json:"destinations,omitempty"`
	Specialities []string        `json:"specialities,omitempty"`
	Languages    []string        `json:"languages,omitempty"`
}

type UpdateGuideRequestBody struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	RatePerDay  *decimal.Decimal `json:"rate_per_day,omitempty"`
	IsAvailable *bool            `json:"is_available,omitempty"`
}

type RegisterUserRequestBody struct {
	Username  string `json:"username" binding:"required,min=3"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email" binding:"required,email"`
	Password1 string `json:"password1" binding:"required,min=8"`
	Password2 string `json:"password2" binding:"required,eqfield=Password1"`
}

type LoginRequestBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChatRequestBody struct {
	Message string `json:"message" binding:"required"`
}

type BookingURIParams struct {
	ID string `uri:"id" binding:"required,uuid"`
}

type PackageURIParams struct {
	ID string `uri:"id" binding:"required,uuid"`
}

type GuideURIParams struct {
	ID uint `uri:"id" binding:"required"`
}

type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
