package lib

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKafkaProducerConfig(t *testing.T) {
	os.Setenv("KAFKA_BROKER", "localhost:9092")
	defer os.Unsetenv("KAFKA_BROKER")

	cfg := GetKafkaProducerConfig("bookings_created_producer")
	assert.Equal(t, "localhost:9092", cfg["bootstrap.servers"])
	assert.Equal(t, "bookings_created_producer", cfg["client.id"])
	// Lifecycle events drive the confirmation mail path, so every replica must
	// acknowledge before a produce counts as delivered.
	assert.Equal(t, "all", cfg["acks"])
}
