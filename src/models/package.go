package models

import (
	"tbs/src/types"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Package struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"package_id"`
	Name         string          `json:"name,omitempty"`
	Slug         string          `gorm:"index" json:"slug,omitempty"`
	Destination  string          `json:"destination,omitempty"`
	Description  string          `json:"description,omitempty"`
	DurationDays uint            `json:"duration_days,omitempty"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	ImageKey     *string         `json:"-"`
	IsActive     bool            `gorm:"default:true" json:"is_active"`

	Bookings []Booking `gorm:"foreignKey:package_id" json:"bookings,omitempty"`

	// Presigned image location, filled on read when an image exists.
	ImageURL *string `gorm:"-" json:"image_url,omitempty"`

	types.Timestamps
}

func (p *Package) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Slug == "" {
		p.Slug = slug.Make(p.Name)
	}
	return nil
}
