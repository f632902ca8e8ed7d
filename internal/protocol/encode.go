package protocol

import (
	"fmt"
	"strings"
)

// ValidateTag checks that tag can be framed without ambiguity.
func ValidateTag(tag string) error {
	if tag == "" {
		return fmt.Errorf("%w: empty", ErrInvalidTag)
	}
	if strings.ContainsAny(tag, "[]") {
		return fmt.Errorf("%w: %q contains a bracket", ErrInvalidTag, tag)
	}
	return nil
}

// Encode frames body for the plugin identified by tag as "[tag]body".
func Encode(tag, body string) (string, error) {
	return EncodeReserved(tag, body, 0)
}

// EncodeReserved is Encode with reserved characters of the ceiling held back
// for whatever the transport prepends (RolePrefixLen for the relay).
func EncodeReserved(tag, body string, reserved int) (string, error) {
	if err := ValidateTag(tag); err != nil {
		return "", err
	}
	if reserved < 0 {
		reserved = 0
	}
	n := reserved + len(tag) + 2 + len(body)
	if n > MaxMessageLen {
		return "", fmt.Errorf("%w: %d > %d", ErrMessageTooLong, n, MaxMessageLen)
	}

	var b strings.Builder
	b.Grow(len(tag) + 2 + len(body))
	b.WriteByte(openBracket)
	b.WriteString(tag)
	b.WriteByte(closeBracket)
	b.WriteString(body)
	return b.String(), nil
}

// MaxBodyLen returns the longest body tag can send once reserved characters
// are held back. It is never negative.
func MaxBodyLen(tag string, reserved int) int {
	n := MaxMessageLen - reserved - len(tag) - 2
	if n < 0 {
		return 0
	}
	return n
}

// EncodeIncoming builds the value a transport writes into a participant's
// incoming variable.
func EncodeIncoming(tag string, sender Identity, body string) string {
	addr := ""
	if !sender.IsZero() {
		addr = sender.String()
	}
	return "[" + tag + "][" + addr + "]" + body
}

// WithRole prepends the transport role prefix, e.g. "[PC][Chat]hi".
func WithRole(role, framed string) string {
	return "[" + role + "]" + framed
}
