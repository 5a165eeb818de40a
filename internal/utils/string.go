package utils

import (
	"fmt"
	"math/rand"
	"time"
)

var letters = []rune("ABCDEFGHJKLMNPQRSTUVWXYZ123456789")

func GenerateRandomStringWithLength(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

// GenerateReferenceNumber builds an opaque business identifier like
// POL-20260115-7KQ2M9. Uniqueness is enforced by the database constraint on
// the column, not by the generator.
func GenerateReferenceNumber(prefix string) string {
	return fmt.Sprintf("%s-%s-%s", prefix, time.Now().Format("20060102"), GenerateRandomStringWithLength(6))
}
