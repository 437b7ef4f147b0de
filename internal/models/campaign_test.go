package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointRuleMatches(t *testing.T) {
	rule := PointRule{MinAmount: 100, MaxAmount: 199, Points: 15}

	assert.False(t, rule.Matches(99.99))
	assert.True(t, rule.Matches(100))
	assert.True(t, rule.Matches(150))
	assert.True(t, rule.Matches(199))
	assert.False(t, rule.Matches(199.01))
}

func TestCustomerAvailablePoints(t *testing.T) {
	customer := Customer{TotalPoints: 1000, RedeemedPoints: 300}
	assert.Equal(t, 700, customer.AvailablePoints())

	assert.Equal(t, 0, (&Customer{}).AvailablePoints())
}
