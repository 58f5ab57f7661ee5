package domain

import (
	"strings"
)

// NormalizeName prepares a display name for storage:
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into one space
//
// Case is preserved.
func NormalizeName(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// NormalizeCountryCode trims and upper-cases an ISO 3166-1 alpha-3 code.
func NormalizeCountryCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsCountryCode reports whether code is exactly three ASCII letters A-Z.
func IsCountryCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}

// IsEmail performs a shape check: one "@", non-empty local part, a dot in the
// domain, no whitespace.
func IsEmail(s string) bool {
	if strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	local, host, ok := strings.Cut(s, "@")
	if !ok || local == "" || strings.Contains(host, "@") {
		return false
	}
	dot := strings.LastIndex(host, ".")
	return dot > 0 && dot < len(host)-1
}

// TrimOrNil trims whitespace. Returns nil if the result is empty.
func TrimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// ValidateContacts checks address and phone lists.
func ValidateContacts(addresses []Address, phones []Phone) []FieldError {
	var errs []FieldError
	for _, a := range addresses {
		if strings.TrimSpace(a.Line1) == "" {
			errs = append(errs, FieldError{Field: "addresses.line1", Message: "required"})
		}
		if strings.TrimSpace(a.City) == "" {
			errs = append(errs, FieldError{Field: "addresses.city", Message: "required"})
		}
		if a.CountryCode != "" && !IsCountryCode(NormalizeCountryCode(a.CountryCode)) {
			errs = append(errs, FieldError{Field: "addresses.country_code", Message: "must be 3 letters"})
		}
	}
	for _, p := range phones {
		if strings.TrimSpace(p.Number) == "" {
			errs = append(errs, FieldError{Field: "phones.number", Message: "required"})
		}
	}
	return errs
}
