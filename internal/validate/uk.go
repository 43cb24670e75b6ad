// Package validate checks the UK contact details carried on marketplace
// leads before they are displayed or dialled.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	appErrors "tradedeck/internal/errors"
)

// postcodeRegexp matches the standard UK postcode forms (A9 9AA, A99 9AA,
// A9A 9AA, AA9 9AA, AA99 9AA, AA9A 9AA) on a normalised, upper-cased input
// with a single separating space.
var postcodeRegexp = regexp.MustCompile(`^[A-Z]{1,2}[0-9][A-Z0-9]? [0-9][A-Z]{2}$`)

// phoneRegexp matches a normalised UK national number: a leading 0 followed
// by 9 or 10 digits.
var phoneRegexp = regexp.MustCompile(`^0[0-9]{9,10}$`)

// Postcode reports whether the value is a valid UK postcode in any common
// spacing or casing.
func Postcode(raw string) error {
	if _, err := NormalizePostcode(raw); err != nil {
		return err
	}
	return nil
}

// NormalizePostcode upper-cases the postcode and re-inserts the canonical
// single space before the 3-character inward code: "sw1a1aa" -> "SW1A 1AA".
func NormalizePostcode(raw string) (string, error) {
	compact := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), " ", ""))
	if len(compact) < 5 || len(compact) > 7 {
		return "", invalidPostcodeError(raw)
	}
	candidate := compact[:len(compact)-3] + " " + compact[len(compact)-3:]
	if !postcodeRegexp.MatchString(candidate) {
		return "", invalidPostcodeError(raw)
	}
	return candidate, nil
}

// PhoneNumber reports whether the value is a valid UK phone number. It
// accepts national format ("020 7946 0991"), international prefixes
// ("+44 20 7946 0991", "0044...") and common separators.
func PhoneNumber(raw string) error {
	if _, err := NormalizePhone(raw); err != nil {
		return err
	}
	return nil
}

// NormalizePhone strips separators and converts international prefixes to
// the national 0-prefixed form.
func NormalizePhone(raw string) (string, error) {
	var digits strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == '+' && digits.Len() == 0:
			digits.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
			// separator, skip
		default:
			return "", invalidPhoneError(raw)
		}
	}

	s := digits.String()
	switch {
	case strings.HasPrefix(s, "+44"):
		s = "0" + s[3:]
	case strings.HasPrefix(s, "0044"):
		s = "0" + s[4:]
	case strings.HasPrefix(s, "44") && len(s) >= 11:
		s = "0" + s[2:]
	}

	if !phoneRegexp.MatchString(s) {
		return "", invalidPhoneError(raw)
	}
	return s, nil
}

// IsMobile reports whether a normalised number is a UK mobile (07 prefix).
func IsMobile(normalized string) bool {
	return strings.HasPrefix(normalized, "07")
}

func invalidPostcodeError(raw string) error {
	return appErrors.New(appErrors.CodeInvalidPostcode, fmt.Sprintf("invalid UK postcode: %q", raw), nil)
}

func invalidPhoneError(raw string) error {
	return appErrors.New(appErrors.CodeInvalidPhone, fmt.Sprintf("invalid UK phone number: %q", raw), nil)
}
