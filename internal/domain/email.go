package domain

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var emailValidate = validator.New()

// SubscriberEmail is a syntactically valid email address. The zero value
// is invalid; use ParseEmail.
type SubscriberEmail struct {
	value string
}

// ParseEmail validates raw against an RFC-style local-part@domain
// grammar. The stored value is the raw input unchanged: no trimming,
// no case folding.
func ParseEmail(raw string) (SubscriberEmail, error) {
	if raw == "" {
		return SubscriberEmail{}, &ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if !strings.Contains(raw, "@") {
		return SubscriberEmail{}, &ValidationError{Field: "email", Reason: "missing @ separator"}
	}
	if err := emailValidate.Var(raw, "email"); err != nil {
		return SubscriberEmail{}, &ValidationError{Field: "email", Reason: "not a valid email address"}
	}
	return SubscriberEmail{value: raw}, nil
}

// String returns the raw address for rendering in email headers and
// database storage.
func (e SubscriberEmail) String() string {
	return e.value
}
