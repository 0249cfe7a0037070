package pkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
)

var roomCodePattern = regexp.MustCompile(`^\d{5}$`)

// GenerateRoomCode - a random 5-digit room code, 10000-99999. Uniqueness is
// the store's job; this only picks candidates.
func GenerateRoomCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(90000))
	if err != nil {
		return "10000"
	}

	return fmt.Sprintf("%05d", n.Int64()+10000)
}

// ValidRoomCode - exactly 5 ASCII digits, nothing else touches the store.
func ValidRoomCode(code string) bool {
	return roomCodePattern.MatchString(code)
}
