// Package phone normalizes locally formatted Kenyan phone numbers into the
// canonical international form used for outbound messaging.
package phone

import "strings"

const countryCode = "254"

// Normalize maps a raw phone string to the canonical +254 form.
//
// Recognized inputs:
//   - "07XXXXXXXX": leading 0 replaced with +254
//   - "7XXXXXXXX": +254 prepended
//   - "+254XXXXXXXXX": returned unchanged
//   - "254XXXXXXXXX": + prepended
//
// Empty or all-whitespace input returns "". Any other input also returns ""
// rather than an error; the unmatched branch is a deliberate no-op carried
// over from the storefront's original behavior.
func Normalize(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	switch {
	case strings.HasPrefix(raw, "0"):
		return "+" + countryCode + raw[1:]
	case strings.HasPrefix(raw, "7"):
		return "+" + countryCode + raw
	case strings.HasPrefix(raw, "+"+countryCode):
		return raw
	case strings.HasPrefix(raw, countryCode):
		return "+" + raw
	default:
		return ""
	}
}
