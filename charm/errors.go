package charm

import "errors"

var (
	// ErrInvalidVKHash indicates a verification key hash is not 32 bytes.
	ErrInvalidVKHash = errors.New("charm: verification key hash must be 32 bytes")

	// ErrInvalidTxID indicates a transaction id is not 32 bytes.
	ErrInvalidTxID = errors.New("charm: transaction id must be 32 bytes")

	// ErrInvalidHex indicates a hex-encoded field is malformed.
	ErrInvalidHex = errors.New("charm: invalid hex encoding")

	// ErrEmptyTag indicates an application tag is empty.
	ErrEmptyTag = errors.New("charm: application tag must not be empty")

	// ErrUnknownDataType indicates a data envelope carries an unknown type tag.
	ErrUnknownDataType = errors.New("charm: unknown data type tag")

	// ErrInvalidDataValue indicates a data envelope value does not match its type tag.
	ErrInvalidDataValue = errors.New("charm: invalid data value")
)
