package models

import (
	"tbs/src/types"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Booking struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"booking_id"`
	PackageID uuid.UUID `gorm:"type:uuid;not null" json:"package_id"`
	UserID    uint      `gorm:"not null" json:"user_id,omitempty"`

	// Customer contact snapshot, captured at booking time.
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`

	TravelDate     time.Time       `gorm:"type:date" json:"travel_date"`
	NumberOfPeople uint            `gorm:"default:1" json:"number_of_people"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_amount"`

	GuideID     *uint            `json:"guide_id,omitempty"`
	GuideAmount *decimal.Decimal `gorm:"type:decimal(10,2)" json:"guide_amount,omitempty"`
	GuideRating *decimal.Decimal `gorm:"type:decimal(3,2)" json:"guide_rating,omitempty"`
	GuideReview string           `json:"guide_review,omitempty"`

	Status          types.BookingStatus `gorm:"default:'pending'" json:"status,omitempty"`
	SpecialRequests string              `json:"special_requests,omitempty"`

	Package *Package `gorm:"foreignKey:package_id;constraint:OnDelete:RESTRICT" json:"package,omitempty"`
	User    *User    `gorm:"foreignKey:user_id;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Guide   *Guide   `gorm:"foreignKey:guide_id;constraint:OnDelete:SET NULL" json:"guide,omitempty"`

	types.Timestamps
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// BeforeSave defaults the guide fee from the assigned guide's daily rate.
// An explicit caller-supplied fee is never overwritten.
func (b *Booking) BeforeSave(tx *gorm.DB) error {
	if b.GuideID == nil || b.GuideAmount != nil {
		return nil
	}
	var guide Guide
	if err := tx.Where(&Guide{ID: *b.GuideID}).First(&guide).Error; err != nil {
		return err
	}
	b.GuideAmount = DefaultGuideAmount(b.GuideAmount, guide.RatePerDay)
	return nil
}

// DefaultGuideAmount resolves the effective guide fee: the explicit amount
// when present, the guide's daily rate otherwise.
func DefaultGuideAmount(explicit *decimal.Decimal, ratePerDay decimal.Decimal) *decimal.Decimal {
	if explicit != nil {
		return explicit
	}
	return &ratePerDay
}
