package validation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/autoprofi/driving-school-api/internal/validation"
)

func TestValidatePhone(t *testing.T) {
	cases := []struct {
		name  string
		phone string
		valid bool
	}{
		{name: "international", phone: "+79991234567", valid: true},
		{name: "domestic", phone: "89991234567", valid: true},
		{name: "formatted", phone: "+7 (999) 123-45-67", valid: true},
		{name: "too short", phone: "12345", valid: false},
		{name: "letters", phone: "abc", valid: false},
		{name: "wrong prefix", phone: "+19991234567", valid: false},
		{name: "empty", phone: "", valid: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.valid, validation.ValidatePhone(tc.phone))
		})
	}
}

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		name  string
		email string
		valid bool
	}{
		{name: "short but valid", email: "a@b.co", valid: true},
		{name: "plus tag", email: "user+tag@example.com", valid: true},
		{name: "missing tld", email: "a@b", valid: false},
		{name: "not an email", email: "not-an-email", valid: false},
		{name: "empty", email: "", valid: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.valid, validation.ValidateEmail(tc.email))
		})
	}
}

func TestNormalizeName(t *testing.T) {
	require.Equal(t, "Ivan Petrov", validation.NormalizeName("  ivan petrov "))
	require.Equal(t, "Ivan", validation.NormalizeName("IVAN"))
	require.Equal(t, "Anna Maria Petrova", validation.NormalizeName("anna   maria  petrova"))
	require.Equal(t, "", validation.NormalizeName("   "))
}
