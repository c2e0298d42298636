package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("guest@example.com"))
	assert.False(t, ValidEmail("guest@"))
	assert.False(t, ValidEmail("not-an-email"))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("9876543210"))
	assert.False(t, ValidPhone("1234567890")) // must start 6-9
	assert.False(t, ValidPhone("98765"))
}

func TestValidPAN(t *testing.T) {
	assert.True(t, ValidPAN("ABCDE1234F"))
	assert.False(t, ValidPAN("ABC1234567"))
}

func TestValidAadhaar(t *testing.T) {
	assert.True(t, ValidAadhaar("234567890123"))
	assert.False(t, ValidAadhaar("1234"))
}

func TestNewGRCNoFormat(t *testing.T) {
	grc := NewGRCNo()
	assert.Regexp(t, `^GRC-`, grc)
}

func TestNewReferenceCodeFormat(t *testing.T) {
	ref := NewReferenceCode()
	assert.Regexp(t, `^BK-[A-Z0-9]{12}$`, ref)
}
