package token

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Length of every subscription token.
const Length = 25

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Generate produces a 25-character token drawn uniformly from
// [A-Za-z0-9]. The token is a bearer credential for confirming one
// subscriber, so the randomness comes from crypto/rand.
func Generate() (string, error) {
	out := make([]byte, 0, Length)
	buf := make([]byte, 32)

	for len(out) < Length {
		if _, err := io.ReadFull(rand.Reader, buf); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		for _, b := range buf {
			// Reject bytes >= 248 (the largest multiple of 62 below
			// 256) so the modulo draw stays uniform.
			if b >= 248 {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == Length {
				break
			}
		}
	}
	return string(out), nil
}
