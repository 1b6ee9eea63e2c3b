// Package validation checks registration input before any request is
// issued. Checks run in a fixed order and stop at the first failure, so
// the user always sees exactly one message.
package validation

import (
	"errors"
	"strings"
)

// Sentinel verdicts. The error text is the user-facing message; callers
// match with errors.Is when they need to branch.
var (
	ErrFieldsRequired    = errors.New("Please fill in all fields")
	ErrUsernameTooShort  = errors.New("Username must be at least 3 characters")
	ErrPasswordTooShort  = errors.New("Password must be at least 8 characters")
	ErrPasswordMismatch  = errors.New("Passwords do not match")
	ErrInvalidEmail      = errors.New("Please enter a valid email address")
)

// Registration is a candidate account record prior to submission.
type Registration struct {
	Username string
	Email    string
	Password string
	Confirm  string
}

// ValidateRegistration returns nil when the candidate passes every rule,
// or the first failing rule's sentinel. It has no side effects and is
// deterministic: the same input always yields the same verdict.
func ValidateRegistration(r Registration) error {
	if r.Username == "" || r.Email == "" || r.Password == "" {
		return ErrFieldsRequired
	}
	if len(r.Username) < 3 {
		return ErrUsernameTooShort
	}
	if len(r.Password) < 8 {
		return ErrPasswordTooShort
	}
	if r.Password != r.Confirm {
		return ErrPasswordMismatch
	}
	if !validEmail(r.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// validEmail accepts addresses of the shape local@domain.tld: no
// whitespace, exactly one '@', and at least one '.' with characters on
// both sides somewhere after the '@'.
func validEmail(s string) bool {
	if strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	if strings.Count(s, "@") != 1 {
		return false
	}
	at := strings.Index(s, "@")
	local, domain := s[:at], s[at+1:]
	if local == "" || domain == "" {
		return false
	}
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
