// Package validation holds the form-level format rules shared by the
// credential verifiers and the command-line front ends.
package validation

import "regexp"

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[+]?[\d\s\-()]{10,}$`)

	upperRe = regexp.MustCompile(`[A-Z]`)
	lowerRe = regexp.MustCompile(`[a-z]`)
	digitRe = regexp.MustCompile(`\d`)
)

// ValidEmail reports whether the address is plausibly formed.
func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidPhone reports whether the phone number is plausibly formed.
func ValidPhone(phone string) bool {
	return phoneRe.MatchString(phone)
}

// PasswordErrors returns every rule the password breaks, empty when it is
// acceptable.
func PasswordErrors(password string) []string {
	var errs []string

	if len(password) < 8 {
		errs = append(errs, "password must be at least 8 characters long")
	}
	if !upperRe.MatchString(password) {
		errs = append(errs, "password must contain at least one uppercase letter")
	}
	if !lowerRe.MatchString(password) {
		errs = append(errs, "password must contain at least one lowercase letter")
	}
	if !digitRe.MatchString(password) {
		errs = append(errs, "password must contain at least one number")
	}

	return errs
}

// ValidPassword reports whether the password satisfies every rule.
func ValidPassword(password string) bool {
	return len(PasswordErrors(password)) == 0
}
