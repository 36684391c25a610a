// Package splash implements the Splash progressive codec: a shared
// canvas-evolution engine that reconstructs an image by iteratively
// selecting the worst row or column, splatting a handful of true samples
// along it, and rebalancing the error rulers that drive the next choice.
package splash

import "errors"

var (
	// ErrInvalidDimensions is returned by Open when width or height is zero or negative.
	ErrInvalidDimensions = errors.New("splash: width and height must be positive")

	// ErrOutOfMemory names the resource-exhaustion error kind. Nothing in this
	// package returns it: Open allocates with make, and a failed allocation
	// aborts in the Go runtime rather than returning an error.
	ErrOutOfMemory = errors.New("splash: out of memory")

	// ErrRadiusTooLarge is returned by Params.Validate when Radius exceeds the
	// one-byte wire representation (spec §9, radius-255 wire cap open question).
	ErrRadiusTooLarge = errors.New("splash: radius must fit in one byte (<=255)")

	// ErrInvalidRadius is returned by Params.Validate when Radius is less than 1.
	ErrInvalidRadius = errors.New("splash: radius must be >= 1")

	// ErrInvalidDivisor is returned by Params.Validate when PPF or PPK is less than 1.
	ErrInvalidDivisor = errors.New("splash: ppf and ppk must be >= 1")

	// ErrMalformedPacket is returned by Decode when the packet header, magic,
	// version, or declared length do not match spec §7's fatal conditions.
	ErrMalformedPacket = errors.New("splash: malformed packet")

	// errTruncatedStream is the internal sentinel for spec §7's non-fatal
	// "truncated sample stream" condition. It never escapes Decode: the
	// driver logs it and returns the partially converged canvas instead.
	errTruncatedStream = errors.New("splash: truncated sample stream")
)
