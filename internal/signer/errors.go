package signer

import "errors"

var (
	// ErrEmptySecret is returned when signing is attempted without a key.
	ErrEmptySecret = errors.New("signing secret is empty")
	// ErrMalformedInput is returned when a signed component is not valid UTF-8.
	ErrMalformedInput = errors.New("signature input is not valid UTF-8")
)
