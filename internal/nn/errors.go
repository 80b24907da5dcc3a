package nn

import "errors"

var (
	// ErrInputSize is returned when a module receives the wrong number of
	// inputs.
	ErrInputSize = errors.New("input size mismatch")

	// ErrTargetSize is returned when predictions and targets differ in length.
	ErrTargetSize = errors.New("target size mismatch")

	// ErrMissingParameter is returned by LoadStateDict for an absent key.
	ErrMissingParameter = errors.New("missing parameter")

	// ErrChecksumMismatch is returned for a checkpoint whose parameters were
	// modified after it was written, or that carries no checksum.
	ErrChecksumMismatch = errors.New("checksum mismatch")
)
