package utils

import (
	"fmt"
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateThaiNationalID checks the 13-digit citizen id issued by the Thai
// Department of Provincial Administration. The last digit is a mod-11 check
// digit over the first twelve.
func ValidateThaiNationalID(nationalID string) (bool, error) {
	clean := regexp.MustCompile(`[^\d]`).ReplaceAllString(nationalID, "")
	if len(clean) != 13 {
		return false, fmt.Errorf("national id must be 13 digits")
	}

	sum := 0
	for i := 0; i < 12; i++ {
		sum += int(clean[i]-'0') * (13 - i)
	}
	check := (11 - sum%11) % 10
	if check != int(clean[12]-'0') {
		return false, fmt.Errorf("national id checksum mismatch")
	}
	return true, nil
}

// ValidateThaiPhone accepts domestic mobile and landline formats.
func ValidateThaiPhone(phone string) (bool, error) {
	phone_regex_patterns := []string{
		`^0[689]\d{8}$`,    // mobile: 06x, 08x, 09x
		`^0[2-7]\d{7}$`,    // landline
		`^\+66[689]\d{8}$`, // international mobile
	}

	clean := strings.ReplaceAll(strings.ReplaceAll(phone, "-", ""), " ", "")
	for _, pattern := range phone_regex_patterns {
		if matched, _ := regexp.MatchString(pattern, clean); matched {
			return true, nil
		}
	}
	return false, fmt.Errorf("phone format incorrect")
}

var licensePlatePattern = regexp.MustCompile(`^\d?[ก-ฮ]{1,3}\s?\d{1,4}$`)

// ValidateLicensePlate checks the common Bangkok/provincial plate formats,
// e.g. "1กข 1234" or "กท 55".
func ValidateLicensePlate(plate string) (bool, error) {
	if !licensePlatePattern.MatchString(strings.TrimSpace(plate)) {
		return false, fmt.Errorf("license plate format incorrect")
	}
	return true, nil
}

var chassisPattern = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)

// ValidateChassisNumber checks the 17-character VIN, which never contains
// I, O or Q.
func ValidateChassisNumber(chassis string) (bool, error) {
	if !chassisPattern.MatchString(strings.ToUpper(strings.TrimSpace(chassis))) {
		return false, fmt.Errorf("chassis number format incorrect")
	}
	return true, nil
}

func ValidateEmail(email string) (bool, error) {
	email_regex_pattern := `^[a-zA-Z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+(?:\.[a-zA-Z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+)*@(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?\.)+[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?$`

	regex, err := regexp.Compile(email_regex_pattern)
	if err != nil {
		return false, fmt.Errorf("error: compiling regex: %s", err)
	}

	if !regex.MatchString(email) {
		return false, fmt.Errorf("error: email format incorrect")
	}
	return true, nil
}
