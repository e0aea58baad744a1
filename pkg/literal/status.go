// SPDX-License-Identifier: MIT
package literal

import "github.com/pkg/errors"

// Status is the outcome of a literal parse.
type Status uint8

const (
	Valid Status = iota
	OutOfRange
	InvalidCharacterSequence
	InvalidLiteralType
)

// Sentinel errors for each failing Status. Errors returned by this package wrap
// one of these, so callers can match with errors.Is.
var (
	ErrOutOfRange               = errors.New("literal out of numeric range for type")
	ErrInvalidCharacterSequence = errors.New("literal contains invalid character sequence for type")
	ErrInvalidLiteralType       = errors.New("requested type is not a valid numeric literal type")
)

func (s Status) String() string {
	switch s {
	case Valid:
		return "Valid"
	case OutOfRange:
		return "OutOfRange"
	case InvalidCharacterSequence:
		return "InvalidCharacterSequence"
	case InvalidLiteralType:
		return "InvalidLiteralType"
	default:
		return "Unknown"
	}
}

// Err returns the sentinel error for s, or nil when s is Valid.
func (s Status) Err() error {
	switch s {
	case Valid:
		return nil
	case OutOfRange:
		return ErrOutOfRange
	case InvalidCharacterSequence:
		return ErrInvalidCharacterSequence
	default:
		return ErrInvalidLiteralType
	}
}

// StatusOf maps an error produced by this package back to its Status. Errors
// from elsewhere report InvalidLiteralType.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return Valid
	case errors.Is(err, ErrOutOfRange):
		return OutOfRange
	case errors.Is(err, ErrInvalidCharacterSequence):
		return InvalidCharacterSequence
	default:
		return InvalidLiteralType
	}
}
