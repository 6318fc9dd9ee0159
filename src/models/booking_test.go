package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDefaultGuideAmountFallsBackToDailyRate(t *testing.T) {
	rate := decimal.RequireFromString("150.00")
	amount := DefaultGuideAmount(nil, rate)
	if assert.NotNil(t, amount) {
		assert.True(t, amount.Equal(rate))
	}
}

func TestDefaultGuideAmountKeepsExplicitFee(t *testing.T) {
	rate := decimal.RequireFromString("150.00")
	explicit := decimal.RequireFromString("200.00")
	amount := DefaultGuideAmount(&explicit, rate)
	if assert.NotNil(t, amount) {
		assert.True(t, amount.Equal(explicit))
	}
}

func TestTotalAmountExactDecimal(t *testing.T) {
	price := decimal.RequireFromString("1000.00")
	total := price.Mul(decimal.NewFromInt(3))
	assert.Equal(t, "3000.00", total.StringFixed(2))

	price = decimal.RequireFromString("99.99")
	total = price.Mul(decimal.NewFromInt(7))
	assert.Equal(t, "699.93", total.StringFixed(2))
}
