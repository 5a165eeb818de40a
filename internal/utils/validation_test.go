package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateThaiNationalID_Valid(t *testing.T) {
	ok, err := ValidateThaiNationalID("1101700230708")
	assert.True(t, ok)
	assert.NoError(t, err)
}

func TestValidateThaiNationalID_AcceptsFormattedInput(t *testing.T) {
	ok, err := ValidateThaiNationalID("1-1017-00230-70-8")
	assert.True(t, ok)
	assert.NoError(t, err)
}

func TestValidateThaiNationalID_ChecksumMismatch(t *testing.T) {
	ok, err := ValidateThaiNationalID("1101700230705")
	assert.False(t, ok)
	assert.ErrorContains(t, err, "checksum")
}

func TestValidateThaiNationalID_WrongLength(t *testing.T) {
	ok, err := ValidateThaiNationalID("110170023")
	assert.False(t, ok)
	assert.ErrorContains(t, err, "13 digits")
}

func TestValidateThaiPhone(t *testing.T) {
	cases := []struct {
		phone string
		valid bool
	}{
		{"0812345678", true},   // mobile
		{"0912345678", true},   // mobile
		{"081-234-5678", true}, // mobile with dashes
		{"021234567", true},    // Bangkok landline
		{"+66812345678", true}, // international mobile
		{"0112345678", false},  // 01 is not a valid prefix
		{"12345", false},
		{"", false},
	}

	for _, tc := range cases {
		ok, _ := ValidateThaiPhone(tc.phone)
		assert.Equal(t, tc.valid, ok, "phone %q", tc.phone)
	}
}

func TestValidateLicensePlate(t *testing.T) {
	cases := []struct {
		plate string
		valid bool
	}{
		{"1กข 1234", true},
		{"กท 55", true},
		{"กข1234", true},
		{"ABC1234", false},
		{"12345", false},
		{"", false},
	}

	for _, tc := range cases {
		ok, _ := ValidateLicensePlate(tc.plate)
		assert.Equal(t, tc.valid, ok, "plate %q", tc.plate)
	}
}

func TestValidateChassisNumber(t *testing.T) {
	ok, err := ValidateChassisNumber("JTDBT923771012345")
	assert.True(t, ok)
	assert.NoError(t, err)

	// lowercase input is normalized
	ok, _ = ValidateChassisNumber("jtdbt923771012345")
	assert.True(t, ok)

	// VINs never contain the letter I
	ok, _ = ValidateChassisNumber("JTDBT92377I012345")
	assert.False(t, ok)

	ok, _ = ValidateChassisNumber("JTDBT")
	assert.False(t, ok)
}

func TestValidateEmail(t *testing.T) {
	ok, err := ValidateEmail("agent@example.co.th")
	assert.True(t, ok)
	assert.NoError(t, err)

	ok, _ = ValidateEmail("not-an-email")
	assert.False(t, ok)
}
