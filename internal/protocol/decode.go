package protocol

import "strconv"

// Decode parses an incoming value of the form "[tag][sender]body".
//
// Decode never fails. A field whose opening bracket is not at the cursor,
// or whose closing bracket is missing, is empty and the cursor stays put, so
// the remaining text becomes the body. The body is not scanned for brackets.
func Decode(raw string) ParsedMessage {
	tag, cursor := bracketField(raw, 0)
	sender, cursor := bracketField(raw, cursor)
	return ParsedMessage{
		Tag:    tag,
		Sender: ParseIdentity(sender),
		Body:   raw[cursor:],
	}
}

// ParseOutgoing splits an outgoing value "[tag]body" back into its parts.
// It is the exact inverse of Encode.
func ParseOutgoing(raw string) (tag, body string) {
	tag, cursor := bracketField(raw, 0)
	return tag, raw[cursor:]
}

// StripRole removes a leading transport role prefix and returns the role.
// Values without a recognised prefix are returned unchanged with an empty
// role.
func StripRole(raw string) (role, rest string) {
	field, cursor := bracketField(raw, 0)
	if field != RoleClient && field != RoleHost {
		return "", raw
	}
	return field, raw[cursor:]
}

// ParseIdentity converts a decimal address into an Identity. Empty, "0" and
// unparseable input all yield the zero identity.
func ParseIdentity(s string) Identity {
	if s == "" || s == "0" {
		return 0
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return Identity(v)
}

// bracketField reads "[...]" starting exactly at cursor and returns its
// content and the index just past the closing bracket.
func bracketField(raw string, cursor int) (string, int) {
	if cursor >= len(raw) || raw[cursor] != openBracket {
		return "", cursor
	}
	for i := cursor + 1; i < len(raw); i++ {
		if raw[i] == closeBracket {
			return raw[cursor+1 : i], i + 1
		}
	}
	return "", cursor
}
