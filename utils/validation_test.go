package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+27821234567"))
	assert.True(t, ValidatePhone("27 82 123 4567"))
	assert.False(t, ValidatePhone("not-a-phone"))
	assert.False(t, ValidatePhone(""))
}

func TestValidatePaymentType(t *testing.T) {
	for _, valid := range []string{"cash", "card", "account", "paylater"} {
		assert.True(t, ValidatePaymentType(valid), valid)
	}
	assert.False(t, ValidatePaymentType("paid")) // settled state, not a recordable type
	assert.False(t, ValidatePaymentType("voucher"))
	assert.False(t, ValidatePaymentType(""))
}

func TestValidDateStr(t *testing.T) {
	assert.True(t, ValidDateStr("2024-01-31"))
	assert.False(t, ValidDateStr("2024-02-30"))
	assert.False(t, ValidDateStr("31-01-2024"))
	assert.False(t, ValidDateStr(""))
}
