package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCouponIsClaimable(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	tests := []struct {
		name   string
		coupon Coupon
		want   bool
	}{
		{"active without expiry", Coupon{Status: CouponStatusActive}, true},
		{"active with future expiry", Coupon{Status: CouponStatusActive, ExpiresAt: &future}, true},
		{"expired by time", Coupon{Status: CouponStatusActive, ExpiresAt: &past}, false},
		{"revoked", Coupon{Status: CouponStatusRevoked, ExpiresAt: &future}, false},
		{"expired status", Coupon{Status: CouponStatusExpired}, false},
		{"under usage limit", Coupon{Status: CouponStatusActive, UsageLimit: 3, UsedCount: 2}, true},
		{"at usage limit", Coupon{Status: CouponStatusActive, UsageLimit: 3, UsedCount: 3}, false},
		{"unlimited usage", Coupon{Status: CouponStatusActive, UsageLimit: 0, UsedCount: 100}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.coupon.IsClaimable(now))
		})
	}
}
