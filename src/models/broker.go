package models

import (
	"log"
	"tbs/src/lib"

	"github.com/google/uuid"
)

func BookingCreatedProducer(id uuid.UUID, payload map[string]any) error {
	err := lib.KafkaProduceMessage("bookings_created_producer", "bookings-created", id.String(), payload)
	if err != nil {
		log.Printf("Error on producing message: %s\n", err.Error())
		return err
	}
	return nil
}

func BookingCancelledProducer(id uuid.UUID, payload map[string]any) error {
	err := lib.KafkaProduceMessage("bookings_cancelled_producer", "bookings-cancelled", id.String(), payload)
	if err != nil {
		log.Printf("Error on producing message: %s\n", err.Error())
		return err
	}
	return nil
}
