package prove

import "errors"

var (
	// ErrNilResult indicates a nil check result was passed.
	ErrNilResult = errors.New("prove: check result is nil")

	// ErrEncodeResult indicates the check result could not be encoded.
	ErrEncodeResult = errors.New("prove: encode check result")

	// ErrDeriveKey indicates commitment key derivation failed.
	ErrDeriveKey = errors.New("prove: derive commitment key")
)
