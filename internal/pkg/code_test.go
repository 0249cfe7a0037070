package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRoomCode(t *testing.T) {
	// Codes are always exactly five digits, never zero-leading below 10000.
	for i := 0; i < 200; i++ {
		code := GenerateRoomCode()
		assert.True(t, ValidRoomCode(code), "generated code %q is not 5 digits", code)
		assert.GreaterOrEqual(t, code, "10000")
	}
}

func TestValidRoomCode(t *testing.T) {
	valid := []string{"12345", "00000", "99999"}
	for _, code := range valid {
		assert.True(t, ValidRoomCode(code), code)
	}

	invalid := []string{"", "1234", "123456", "12a45", " 12345", "12345 ", "12.45", "-1234"}
	for _, code := range invalid {
		assert.False(t, ValidRoomCode(code), code)
	}
}
