package sms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSNSSMSTypeMapping(t *testing.T) {
	assert.Equal(t, "Transactional", snsSMSType(TypeTransactional))
	assert.Equal(t, "Promotional", snsSMSType(TypePromotional))
	assert.Equal(t, "Transactional", snsSMSType(""))
	assert.Equal(t, "Transactional", snsSMSType("otp"))
}
