package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRandomStringWithLength(t *testing.T) {
	s := GenerateRandomStringWithLength(12)
	assert.Len(t, s, 12)

	// ambiguous characters are excluded from the alphabet
	assert.NotContains(t, s, "O")
	assert.NotContains(t, s, "0")
	assert.NotContains(t, s, "I")
}

func TestGenerateReferenceNumber(t *testing.T) {
	ref := GenerateReferenceNumber("POL")

	parts := strings.Split(ref, "-")
	assert.Len(t, parts, 3)
	assert.Equal(t, "POL", parts[0])
	assert.Equal(t, time.Now().Format("20060102"), parts[1])
	assert.Len(t, parts[2], 6)
}

func TestRoundSatang(t *testing.T) {
	assert.InDelta(t, 193.56, RoundSatang(193.563), 0.0001)
	assert.InDelta(t, 2.35, RoundSatang(2.346), 0.0001)
	assert.InDelta(t, 2.34, RoundSatang(2.344), 0.0001)
	assert.InDelta(t, 0.13, RoundSatang(0.125), 0.0001, "half rounds up")
	assert.InDelta(t, 100.00, RoundSatang(100.0), 0.0001)
}
