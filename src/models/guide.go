package models

import (
	"tbs/src/types"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Destination struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Name        string `gorm:"uniqueIndex" json:"name"`
	Country     string `json:"country,omitempty"`
	Description string `json:"description,omitempty"`

	Guides []*Guide `gorm:"many2many:guide_destinations;" json:"guides,omitempty"`
}

type Speciality struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Name        string `gorm:"uniqueIndex" json:"name"`
	Description string `json:"description,omitempty"`

	Guides []*Guide `gorm:"many2many:guide_specialities;" json:"guides,omitempty"`
}

type Language struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"uniqueIndex" json:"name"`
	// ISO 639-1 code, e.g. "en", "es", "fr".
	Code string `gorm:"uniqueIndex" json:"code,omitempty"`

	Guides []*Guide `gorm:"many2many:guide_languages;" json:"guides,omitempty"`
}

type Guide struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	GuideID     string `gorm:"uniqueIndex" json:"guide_id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	Destinations []*Destination `gorm:"many2many:guide_destinations;" json:"destinations,omitempty"`
	Specialities []*Speciality  `gorm:"many2many:guide_specialities;" json:"specialities,omitempty"`
	Languages    []*Language    `gorm:"many2many:guide_languages;" json:"languages,omitempty"`

	Rating      *decimal.Decimal `gorm:"type:decimal(3,2)" json:"rating,omitempty"`
	RatePerDay  decimal.Decimal  `gorm:"type:decimal(10,2)" json:"rate_per_day"`
	IsAvailable bool             `gorm:"default:true" json:"is_available"`

	Bookings []Booking `gorm:"foreignKey:guide_id" json:"bookings,omitempty"`

	types.Timestamps
}

// AverageRating computes the mean guide rating over completed bookings.
// Returns nil when no completed booking carries a rating.
func (g *Guide) AverageRating(db *gorm.DB) (*decimal.Decimal, error) {
	var ratings []decimal.Decimal
	err := db.
		Model(&Booking{}).
		Where(&Booking{GuideID: &g.ID, Status: types.BOOKING_COMPLETED}).
		Where("guide_rating IS NOT NULL").
		Pluck("guide_rating", &ratings).
		Error
	if err != nil {
		return nil, err
	}
	return MeanRating(ratings), nil
}

func MeanRating(ratings []decimal.Decimal) *decimal.Decimal {
	if len(ratings) == 0 {
		return nil
	}
	sum := decimal.Zero
	for _, r := range ratings {
		sum = sum.Add(r)
	}
	avg := sum.Div(decimal.NewFromInt(int64(len(ratings)))).Round(2)
	return &avg
}
