package license

import (
	"regexp"
	"strings"
	"unicode"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// SanitizeText strips markup and control characters from a field and
// trims surrounding whitespace. Stored values are otherwise opaque.
func SanitizeText(s string) string {
	s = tagPattern.ReplaceAllString(s, "")

	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)

	return strings.TrimSpace(s)
}

// emailRunes are the characters permitted in a stored email address.
const emailRunes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" +
	".!#$%&'*+-/=?^_`{|}~@"

// SanitizeEmail strips everything that cannot appear in an address.
// No further validation; the address is an opaque owning identity.
func SanitizeEmail(s string) string {
	s = strings.TrimSpace(s)

	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(emailRunes, r) {
			return r
		}
		return -1
	}, s)
}
