package boot

import (
	"log"
	"tbs/src/common"
	"tbs/src/db"
	"tbs/src/lib"
	"tbs/src/models"
	"tbs/src/types"
	"time"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.User{},
		&models.Destination{},
		&models.Speciality{},
		&models.Language{},
		&models.Guide{},
		&models.Package{},
		&models.Booking{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}

func InitBroker() {
	lib.KafkaCreateTopics("bookings-created", "bookings-cancelled")
	go common.BookingEventsConsumer()
}

func InitScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	if _, err := lib.CreateCronJob(CompleteElapsedBookings, 24*time.Hour); err != nil {
		log.Printf("Error scheduling booking sweep: %s\n", err.Error())
	}
	sched.Start()
}

func StopScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("Error retrieving Scheduler. Check logs for info")
		return
	}
	if err := sched.Shutdown(); err != nil {
		log.Println("An error has occurred while stopping Scheduler. Check logs for info")
	}
}

// CompleteElapsedBookings marks confirmed bookings whose travel date has
// passed as completed.
func CompleteElapsedBookings() {
	db := db.GetDb()
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.
			Model(&models.Booking{}).
			Where("status", types.BOOKING_CONFIRMED).
			Where("travel_date < ?", time.Now()).
			Update("status", types.BOOKING_COMPLETED).
			Error
	})
	if err != nil {
		log.Printf("Error while completing elapsed bookings: %s\n", err.Error())
	}
}
