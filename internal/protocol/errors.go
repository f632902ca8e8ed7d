package protocol

import "errors"

var (
	ErrMessageTooLong = errors.New("protocol: message too long")
	ErrInvalidTag     = errors.New("protocol: invalid plugin tag")
)
