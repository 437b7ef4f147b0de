package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReferralCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code := GenerateReferralCode()
		assert.Len(t, code, ReferralCodeLength)
		for _, c := range code {
			assert.Contains(t, codeBytes, string(c))
		}
		seen[code] = true
	}
	assert.Greater(t, len(seen), 1, "codes should not repeat across calls")
}

func TestGenerateCouponCode(t *testing.T) {
	code := GenerateCouponCode()
	assert.True(t, strings.HasPrefix(code, "PERK-"))
	assert.Len(t, code, CouponCodeLength)
}

func TestGenerateRandomNumericString(t *testing.T) {
	code := GenerateRandomNumericString(6)
	assert.Len(t, code, 6)
	for _, c := range code {
		assert.Contains(t, numberBytes, string(c))
	}
}
