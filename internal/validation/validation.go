// Package validation holds the pure input checks applied to public
// enrollment submissions before anything touches the database.
package validation

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// Loose E.164-ish shape used by the enrollment form: optional plus,
	// a leading 7 or 8, then at least nine digits/spaces/dashes/parens.
	phonePattern = regexp.MustCompile(`^\+?[78][\d\s\-()]{9,}$`)

	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

// ValidatePhone reports whether the string looks like a Russian phone number.
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ValidateEmail reports whether the string has a local@domain.tld shape.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// NormalizeName trims the name and title-cases each whitespace-separated
// token: first rune uppercased, the rest lowered.
func NormalizeName(name string) string {
	fields := strings.Fields(strings.TrimSpace(name))
	for i, field := range fields {
		fields[i] = titleCase(field)
	}
	return strings.Join(fields, " ")
}

func titleCase(token string) string {
	runes := []rune(token)
	for i, r := range runes {
		if i == 0 {
			runes[i] = unicode.ToUpper(r)
		} else {
			runes[i] = unicode.ToLower(r)
		}
	}
	return string(runes)
}
