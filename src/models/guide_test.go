package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMeanRatingEmpty(t *testing.T) {
	assert.Nil(t, MeanRating(nil))
	assert.Nil(t, MeanRating([]decimal.Decimal{}))
}

func TestMeanRating(t *testing.T) {
	ratings := []decimal.Decimal{
		decimal.RequireFromString("4.0"),
		decimal.RequireFromString("5.0"),
		decimal.RequireFromString("3.5"),
	}
	avg := MeanRating(ratings)
	if assert.NotNil(t, avg) {
		assert.Equal(t, "4.17", avg.StringFixed(2))
	}
}

func TestMeanRatingSingle(t *testing.T) {
	avg := MeanRating([]decimal.Decimal{decimal.RequireFromString("4.5")})
	if assert.NotNil(t, avg) {
		assert.True(t, avg.Equal(decimal.RequireFromString("4.5")))
	}
}
