package utils

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"tbs/src/common"
	"tbs/src/config"
	"tbs/src/db"
	"tbs/src/models"
	"tbs/src/types"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

var (
	ErrPackageProtected = errors.New("package is referenced by existing bookings")
	ErrInvalidRating    = errors.New("rating must be between 0.0 and 5.0")
)

func GenerateJWT(email string, userId uint, role string) (string, error) {
	claims := &types.Claims{
		Username: email,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(int(userId)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// CreateNewBooking runs the booking workflow: re-fetch the package inside the
// transaction, compute the total in exact decimal, resolve an optional guide,
// persist with status pending. Returns the new booking id.
func CreateNewBooking(intent *common.BookingIntent, userId uint) (uuid.UUID, error) {
	db := db.GetDb()
	var booking models.Booking
	var pkg models.Package
	err := db.Transaction(func(tx *gorm.DB) error {
		// The package may have been deactivated between validation and
		// commit, so the lookup happens again here.
		if err := tx.
			Where(&models.Package{ID: intent.PackageID, IsActive: true}).
			First(&pkg).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return common.NewBookingError(common.ErrNotFound, "Invalid package selected.")
			}
			return err
		}

		totalAmount := pkg.Price.Mul(decimal.NewFromInt(int64(intent.NumberOfPeople)))

		if intent.GuideID != nil {
			var guide models.Guide
			if err := tx.
				Where(&models.Guide{ID: *intent.GuideID, IsAvailable: true}).
				First(&guide).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return common.NewBookingError(common.ErrNotFound, "Invalid guide selected.")
				}
				return err
			}
		}

		booking = models.Booking{
			PackageID:       pkg.ID,
			UserID:          userId,
			FullName:        intent.FullName,
			Email:           intent.Email,
			Phone:           intent.Phone,
			TravelDate:      intent.TravelDate,
			NumberOfPeople:  uint(intent.NumberOfPeople),
			TotalAmount:     totalAmount,
			GuideID:         intent.GuideID,
			GuideAmount:     intent.GuideAmount,
			Status:          types.BOOKING_PENDING,
			SpecialRequests: intent.SpecialRequests,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	go models.BookingCreatedProducer(booking.ID, map[string]any{
		"booking_id":   booking.ID.String(),
		"package":      pkg.Name,
		"full_name":    booking.FullName,
		"email":        booking.Email,
		"travel_date":  booking.TravelDate.Format(config.DATE_PARSE_FORMAT),
		"total_amount": booking.TotalAmount.String(),
	})

	return booking.ID, nil
}

func GetActivePackages() ([]models.Package, error) {
	db := db.GetDb()
	var packages []models.Package
	err := db.
		Model(&models.Package{}).
		Where(&models.Package{IsActive: true}).
		Order("created_at DESC").
		Find(&packages).
		Error
	return packages, err
}

func GetOwnBookings(userId uint) ([]models.Booking, error) {
	db := db.GetDb()
	var bookings []models.Booking
	err := db.
		Model(&models.Booking{}).
		Where(&models.Booking{UserID: userId}).
		Preload("Package").
		Order("created_at DESC").
		Find(&bookings).
		Error
	return bookings, err
}

func GetOwnBookingsByTravelDate(userId uint) ([]models.Booking, error) {
	db := db.GetDb()
	var bookings []models.Booking
	err := db.
		Model(&models.Booking{}).
		Where(&models.Booking{UserID: userId}).
		Preload("Package").
		Order("travel_date DESC").
		Find(&bookings).
		Error
	return bookings, err
}

func GetOwnBooking(userId uint, id uuid.UUID) (*models.Booking, error) {
	db := db.GetDb()
	var booking models.Booking
	err := db.
		Model(&models.Booking{}).
		Where(&models.Booking{ID: id, UserID: userId}).
		Preload("Package").
		Preload("Guide").
		First(&booking).
		Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// CancelOwnBooking flips the booking to cancelled. Cancellation is a status
// transition, never a row deletion.
func CancelOwnBooking(userId uint, id uuid.UUID) error {
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.
			Where(&models.Booking{ID: id, UserID: userId}).
			First(&booking).
			Error; err != nil {
			return err
		}
		if booking.Status == types.BOOKING_CANCELLED || booking.Status == types.BOOKING_COMPLETED {
			return fmt.Errorf("booking [%s] can no longer be cancelled", id)
		}
		return tx.
			Model(&models.Booking{}).
			Where(&models.Booking{ID: id}).
			Update("status", types.BOOKING_CANCELLED).
			Error
	})
	if err != nil {
		return err
	}
	go models.BookingCancelledProducer(id, map[string]any{"booking_id": id.String()})
	return nil
}

func ReviewBookingGuide(userId uint, id uuid.UUID, rating decimal.Decimal, review string) error {
	if rating.IsNegative() || rating.GreaterThan(decimal.NewFromInt(5)) {
		return ErrInvalidRating
	}
	db := db.GetDb()
	return db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.
			Where(&models.Booking{ID: id, UserID: userId}).
			First(&booking).
			Error; err != nil {
			return err
		}
		if booking.GuideID == nil {
			return fmt.Errorf("booking [%s] has no guide to review", id)
		}
		return tx.
			Model(&models.Booking{}).
			Where(&models.Booking{ID: id}).
			Updates(map[string]any{
				"guide_rating": rating,
				"guide_review": review,
			}).
			Error
	})
}

func UpdateBookingStatus(id uuid.UUID, status types.BookingStatus) error {
	db := db.GetDb()
	res := db.
		Model(&models.Booking{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func CreateNewPackage(params *types.CreatePackageRequestBody) (uuid.UUID, error) {
	pkg := models.Package{
		Name:         params.Name,
		Destination:  params.Destination,
		Description:  params.Description,
		DurationDays: params.DurationDays,
		Price:        params.Price,
		IsActive:     true,
	}
	if params.IsActive != nil {
		pkg.IsActive = *params.IsActive
	}
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&pkg).Error
	})
	if err != nil {
		return uuid.Nil, err
	}
	return pkg.ID, nil
}

func UpdatePackage(id uuid.UUID, params *types.UpdatePackageRequestBody) error {
	updates := map[string]any{}
	if params.Name != nil {
		updates["name"] = *params.Name
	}
	if params.Destination != nil {
		updates["destination"] = *params.Destination
	}
	if params.Description != nil {
		updates["description"] = *params.Description
	}
	if params.DurationDays != nil {
		updates["duration_days"] = *params.DurationDays
	}
	if params.Price != nil {
		updates["price"] = *params.Price
	}
	if params.IsActive != nil {
		updates["is_active"] = *params.IsActive
	}
	if len(updates) == 0 {
		return nil
	}
	db := db.GetDb()
	res := db.
		Model(&models.Package{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeletePackage refuses to remove a package that any booking references.
func DeletePackage(id uuid.UUID) error {
	db := db.GetDb()
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&models.Booking{}).
			Where(&models.Booking{PackageID: id}).
			Count(&count).
			Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrPackageProtected
		}
		res := tx.Delete(&models.Package{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func SetPackageImage(id uuid.UUID, key string) error {
	db := db.GetDb()
	res := db.
		Model(&models.Package{}).
		Where("id = ?", id).
		Update("image_key", key)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func CreateNewGuide(params *types.CreateGuideRequestBody) (uint, error) {
	guide := models.Guide{
		GuideID:     params.GuideID,
		Name:        params.Name,
		Description: params.Description,
		RatePerDay:  params.RatePerDay,
		IsAvailable: true,
	}
	if params.IsAvailable != nil {
		guide.IsAvailable = *params.IsAvailable
	}
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, name := range params.Destinations {
			var d models.Destination
			if err := tx.FirstOrCreate(&d, models.Destination{Name: name}).Error; err != nil {
				return err
			}
			guide.Destinations = append(guide.Destinations, &d)
		}
		for _, name := range params.Specialities {
			var s models.Speciality
			if err := tx.FirstOrCreate(&s, models.Speciality{Name: name}).Error; err != nil {
				return err
			}
			guide.Specialities = append(guide.Specialities, &s)
		}
		for _, name := range params.Languages {
			var l models.Language
			if err := tx.FirstOrCreate(&l, models.Language{Name: name}).Error; err != nil {
				return err
			}
			guide.Languages = append(guide.Languages, &l)
		}
		return tx.Create(&guide).Error
	})
	if err != nil {
		return 0, err
	}
	return guide.ID, nil
}

func UpdateGuide(id uint, params *types.UpdateGuideRequestBody) error {
	updates := map[string]any{}
	if params.Name != nil {
		updates["name"] = *params.Name
	}
	if params.Description != nil {
		updates["description"] = *params.Description
	}
	if params.RatePerDay != nil {
		updates["rate_per_day"] = *params.RatePerDay
	}
	if params.IsAvailable != nil {
		updates["is_available"] = *params.IsAvailable
	}
	if len(updates) == 0 {
		return nil
	}
	db := db.GetDb()
	res := db.
		Model(&models.Guide{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteGuide removes a guide for good. Bookings that reference it keep their
// history with the guide link cleared first, and the hard delete frees the
// guide's business id for re-registration.
func DeleteGuide(id uint) error {
	db := db.GetDb()
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Model(&models.Booking{}).
			Where("guide_id = ?", id).
			Update("guide_id", nil).
			Error; err != nil {
			return err
		}
		res := tx.Unscoped().Delete(&models.Guide{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func GetAvailableGuides() ([]models.Guide, error) {
	db := db.GetDb()
	var guides []models.Guide
	err := db.
		Model(&models.Guide{}).
		Where(&models.Guide{IsAvailable: true}).
		Preload("Destinations").
		Preload("Specialities").
		Preload("Languages").
		Order("rating DESC NULLS LAST").
		Order("name").
		Find(&guides).
		Error
	return guides, err
}

func IsProd() bool {
	return os.Getenv("API_ENV") == "production"
}
