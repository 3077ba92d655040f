package colorterm

import (
	"fmt"
	"regexp"
)

var (
	hexPattern = regexp.MustCompile(`^#?(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

	// Each field is 0-255 in decimal; an empty field also matches and is rejected by
	// ParseDecimal.
	decimalPattern = regexp.MustCompile(
		`^(?:(?:25[0-5]|2[0-4][0-9]|[0-1]?[0-9]{0,2}),){2}(?:25[0-5]|2[0-4][0-9]|[0-1]?[0-9]{0,2})$`)
)

// IsHex reports whether s is a 3 or 6 digit hex color, with or without a leading '#'.
func IsHex(s string) bool {
	return hexPattern.MatchString(s)
}

// IsDecimal reports whether s is three comma-separated decimal fields in the 0-255 range.
func IsDecimal(s string) bool {
	return decimalPattern.MatchString(s)
}

// Parse classifies s and parses it as decimal or hex RGB text. Decimal takes precedence.
// Text that matches neither form returns an error wrapping ErrUnknownFormat.
func Parse(s string) (RGB, error) {
	switch {
	case IsDecimal(s):
		return ParseDecimal(s)
	case IsHex(s):
		return ParseHex(s)
	default:
		return RGB{}, fmt.Errorf("%w: '%s'", ErrUnknownFormat, s)
	}
}
