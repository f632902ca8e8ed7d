package protocol

import "strconv"

const (
	// MaxMessageLen is the hard ceiling of the shared variable, counting the
	// transport role prefix, the tag framing and the body.
	MaxMessageLen = 128

	RoleClient = "PC"
	RoleHost   = "PH"

	// RolePrefixLen is the length of "[PC]" or "[PH]".
	RolePrefixLen = 4

	openBracket  = '['
	closeBracket = ']'
)

// Identity is an opaque address of a remote participant. Zero means no
// specific sender.
type Identity uint64

// IsZero reports whether the identity carries no sender.
func (id Identity) IsZero() bool {
	return id == 0
}

func (id Identity) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParsedMessage is one decoded incoming value.
type ParsedMessage struct {
	Tag    string
	Sender Identity
	Body   string
}
