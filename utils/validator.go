// utils/validator.go - Input validation
package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"loan-portal-api/models"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	amountRegex   = regexp.MustCompile(`^\d*\.?\d*$`)
	digitsRegex   = regexp.MustCompile(`^\d+$`)
	arabicRegex   = regexp.MustCompile(`^[\x{0600}-\x{06FF}\s]+$`)
	passwordRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// ValidateRequired fails on values that are empty after trimming.
func ValidateRequired(locale, value string) (bool, string) {
	if strings.TrimSpace(value) == "" {
		return false, T(locale, MsgRequired)
	}
	return true, ""
}

// ValidateAmount accepts unsigned decimal strings: digits with at most one
// decimal point. The empty string is allowed so partially filled drafts do
// not error.
func ValidateAmount(locale, value string) (bool, string) {
	if !amountRegex.MatchString(value) {
		return false, T(locale, MsgAmountInvalid)
	}
	return true, ""
}

// ValidateDigits checks for an exact-length pure-digit string (national ID
// 10, postal code 5, building/secondary numbers 4).
func ValidateDigits(locale, value string, length int) (bool, string) {
	if len(value) != length || !digitsRegex.MatchString(value) {
		if length == 10 {
			return false, T(locale, MsgNationalIDLength)
		}
		return false, fmt.Sprintf(T(locale, MsgDigitsLength), length)
	}
	return true, ""
}

// ValidatePhone checks for 9 to 15 digits.
func ValidatePhone(locale, value string) (bool, string) {
	if !digitsRegex.MatchString(value) {
		return false, T(locale, MsgPhoneNumeric)
	}
	if len(value) < 9 || len(value) > 15 {
		return false, T(locale, MsgPhoneLength)
	}
	return true, ""
}

// ValidateEmail checks the address shape.
func ValidateEmail(locale, value string) (bool, string) {
	if !emailRegex.MatchString(value) {
		return false, T(locale, MsgEmailInvalid)
	}
	return true, ""
}

// ValidateArabicText restricts a value to Arabic-script characters plus
// whitespace. Used by the street, district and city registration fields.
func ValidateArabicText(locale, value string) (bool, string) {
	if !arabicRegex.MatchString(value) {
		return false, T(locale, MsgArabicOnly)
	}
	return true, ""
}

// ValidateDate requires a non-empty date value.
func ValidateDate(locale, value string) (bool, string) {
	if strings.TrimSpace(value) == "" {
		return false, T(locale, MsgDateRequired)
	}
	return true, ""
}

// ValidateFutureDate requires a non-empty date that is not in the past,
// compared at day granularity. ID expiry dates use this.
func ValidateFutureDate(locale, value string) (bool, string) {
	if ok, msg := ValidateDate(locale, value); !ok {
		return false, msg
	}
	parsed, err := time.Parse("2006-01-02", NormalizeISODate(value))
	if err != nil {
		return false, T(locale, MsgDateRequired)
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if parsed.Before(today) {
		return false, T(locale, MsgDateExpired)
	}
	return true, ""
}

// ValidatePassword checks minimum length 8 and alphanumeric characters only.
func ValidatePassword(locale, password string) (bool, string) {
	if len(password) < 8 {
		return false, T(locale, MsgPasswordMin)
	}
	if !passwordRegex.MatchString(password) {
		return false, T(locale, MsgPasswordAlphanumeric)
	}
	return true, ""
}

// ValidatePasswordConfirmation checks that the confirmation equals the
// password. The error belongs to the confirmation field.
func ValidatePasswordConfirmation(locale, password, confirmation string) (bool, string) {
	if confirmation == "" {
		return false, T(locale, MsgRequired)
	}
	if password != confirmation {
		return false, T(locale, MsgPasswordMismatch)
	}
	return true, ""
}

// ValidateField applies the rule for the field's registry kind. It is the
// single validation path used both at edit time and at submit time. Optional
// fields accept the empty string so a half-filled draft never errors.
func ValidateField(locale string, spec models.FieldSpec, value string) (bool, string) {
	if value == "" {
		return true, ""
	}
	switch spec.Kind {
	case models.FieldAmount:
		return ValidateAmount(locale, value)
	case models.FieldDigits:
		return ValidateDigits(locale, value, spec.Length)
	case models.FieldPhone:
		return ValidatePhone(locale, value)
	case models.FieldEmail:
		return ValidateEmail(locale, value)
	case models.FieldArabicText:
		return ValidateArabicText(locale, value)
	}
	return true, ""
}

// SanitizeInput removes potentially harmful characters
func SanitizeInput(input string) string {
	// Remove leading/trailing spaces
	input = strings.TrimSpace(input)

	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	return input
}
