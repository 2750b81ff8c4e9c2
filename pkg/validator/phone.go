package validator

import (
	"errors"
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const InvalidPhoneNumberMessage = "Invalid phone number format. Use E.164 format (e.g., +12345678900)."

// ErrInvalidPhoneNumber carries the fixed message shown to callers.
var ErrInvalidPhoneNumber = errors.New(InvalidPhoneNumberMessage)

var phonePattern = regexp.MustCompile(`^\+\d{10,15}$`)

// NormalizePhoneNumber trims whitespace and collapses any leading '+' run into exactly one.
func NormalizePhoneNumber(raw string) string {
	return "+" + strings.TrimLeft(strings.TrimSpace(raw), "+")
}

// ValidatePhoneNumber normalizes raw and checks it against the E.164 shape
// accepted by the provider: '+' followed by 10 to 15 digits.
func ValidatePhoneNumber(raw string) (string, error) {
	normalized := NormalizePhoneNumber(raw)
	if !phonePattern.MatchString(normalized) {
		return "", ErrInvalidPhoneNumber
	}
	return normalized, nil
}

// RegionForNumber returns the ISO region of an E.164 number, or "unknown".
// It is informational only and never decides whether a number is accepted.
func RegionForNumber(e164 string) string {
	parsed, err := phonenumbers.Parse(e164, "")
	if err != nil {
		return "unknown"
	}

	region := phonenumbers.GetRegionCodeForNumber(parsed)
	if region == "" || region == "ZZ" {
		return "unknown"
	}
	return region
}
