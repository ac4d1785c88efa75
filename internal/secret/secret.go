package secret

import "log/slog"

const redacted = "[REDACTED]"

// Secret holds a sensitive value (API key, database password) and
// redacts itself in every default textual representation. The wrapped
// value is only reachable through Expose.
type Secret struct {
	value string
}

func New(value string) Secret {
	return Secret{value: value}
}

// Expose returns the wrapped value. Call sites should be the only
// places where the secret leaves this type.
func (s Secret) Expose() string {
	return s.value
}

// IsZero reports whether the secret is empty.
func (s Secret) IsZero() bool {
	return s.value == ""
}

func (s Secret) String() string {
	return redacted
}

func (s Secret) GoString() string {
	return redacted
}

// LogValue keeps the secret out of slog records.
func (s Secret) LogValue() slog.Value {
	return slog.StringValue(redacted)
}

// UnmarshalText lets env parse secrets directly into config structs.
func (s *Secret) UnmarshalText(text []byte) error {
	s.value = string(text)
	return nil
}

// MarshalText redacts the secret when the config is serialized.
func (s Secret) MarshalText() ([]byte, error) {
	return []byte(redacted), nil
}
