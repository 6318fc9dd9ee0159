package common

import (
	"fmt"
	"log"
	"os"
	"tbs/src/lib"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/tidwall/gjson"
)

// BookingEventsConsumer drains the booking lifecycle topics. Confirmation
// mail for new bookings goes out from here so that a slow SMTP server never
// blocks the request path.
func BookingEventsConsumer() {
	consumer, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers": os.Getenv("KAFKA_BROKER"),
		"group.id":          "booking-events",
		"auto.offset.reset": "smallest",
		"retry.backoff.ms":  100,
	})
	if err != nil {
		log.Printf("Error on consumer: %s\n", err.Error())
		return
	}
	err = consumer.SubscribeTopics([]string{"bookings-created", "bookings-cancelled"}, nil)
	if err != nil {
		log.Printf("Error on consumer: %s\n", err.Error())
		return
	}
	log.Println("[BACKGROUND]: waiting for booking events...")
	run := true
	for run {
		ev := consumer.Poll(100)
		switch e := ev.(type) {
		case *kafka.Message:
			if e.TopicPartition.Topic != nil && *e.TopicPartition.Topic == "bookings-created" {
				handleBookingCreated(string(e.Value))
			} else {
				log.Printf("booking event received: %s\n", string(e.Value))
			}
		case kafka.Error:
			fmt.Fprintf(os.Stderr, "%% Error: %v\n", e)
			run = false
		default:
		}
	}
	consumer.Close()
}

func handleBookingCreated(payload string) {
	bookingId := gjson.Get(payload, "booking_id").String()
	email := gjson.Get(payload, "email").String()
	fullName := gjson.Get(payload, "full_name").String()
	packageName := gjson.Get(payload, "package").String()
	travelDate := gjson.Get(payload, "travel_date").String()
	total := gjson.Get(payload, "total_amount").String()
	if email == "" {
		log.Printf("booking [%s] has no contact email, skipping mail\n", bookingId)
		return
	}
	body := fmt.Sprintf(
		"Hi %s,\n\nYour booking for %s on %s has been received and is pending confirmation.\nTotal amount: %s\nBooking reference: %s\n",
		fullName, packageName, travelDate, total, bookingId,
	)
	err := lib.SendMail(&lib.SendMailInput{
		From:     os.Getenv("MAIL_FROM"),
		FromName: "Bookings",
		To:       []string{email},
		Subject:  fmt.Sprintf("Booking received: %s", packageName),
		Body:     body,
	})
	if err != nil {
		log.Printf("Error sending confirmation for booking [%s]: %s\n", bookingId, err.Error())
	}
}
