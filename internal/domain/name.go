package domain

import (
	"strings"

	"github.com/rivo/uniseg"
)

const maxNameGraphemes = 256

// A single occurrence of any of these anywhere in the name is enough
// for rejection.
const forbiddenNameChars = `/()"<>\{}`

// SubscriberName is a validated display name. The zero value is
// invalid; use ParseName.
type SubscriberName struct {
	value string
}

// ParseName validates raw as a display name. The boundary is counted in
// grapheme clusters, not bytes: a name of exactly 256 clusters is
// accepted, 257 is rejected. The stored value is the raw input
// unchanged.
func ParseName(raw string) (SubscriberName, error) {
	if strings.TrimSpace(raw) == "" {
		return SubscriberName{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if uniseg.GraphemeClusterCount(raw) > maxNameGraphemes {
		return SubscriberName{}, &ValidationError{Field: "name", Reason: "must not exceed 256 characters"}
	}
	if strings.ContainsAny(raw, forbiddenNameChars) {
		return SubscriberName{}, &ValidationError{Field: "name", Reason: "contains a forbidden character"}
	}
	return SubscriberName{value: raw}, nil
}

func (n SubscriberName) String() string {
	return n.value
}
