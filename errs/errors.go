// Package errs defines the sentinel error values shared by all bsdiff4
// packages.
//
// Call sites wrap these sentinels with fmt.Errorf("...: %w", ...) to add
// context, so callers can always match with errors.Is regardless of how
// deep the failure occurred.
package errs

import "errors"

var (
	// ErrBadMagic indicates the patch does not start with the BSDIFF40 tag.
	ErrBadMagic = errors.New("invalid patch magic")

	// ErrInvalidLength indicates a header or control field decoded to a
	// negative value where a non-negative length is required.
	ErrInvalidLength = errors.New("invalid length field")

	// ErrIntegerOverflow indicates a decoded length does not fit in the
	// platform's int type.
	ErrIntegerOverflow = errors.New("length exceeds platform size")

	// ErrCorruptBlock indicates a compressed block failed to decompress,
	// either because the stream is damaged or because it was truncated.
	ErrCorruptBlock = errors.New("corrupt compressed block")

	// ErrMalformedControlBlock indicates the decompressed control block is
	// not an exact multiple of the 24-byte record size.
	ErrMalformedControlBlock = errors.New("malformed control block")

	// ErrShortRead indicates the original source ended before an
	// instruction's copy step was satisfied.
	ErrShortRead = errors.New("short read from original source")

	// ErrStreamExhausted indicates the diff or extra stream does not hold
	// exactly the bytes the instruction sequence demands: either a read past
	// its end, or bytes left over after the last instruction.
	ErrStreamExhausted = errors.New("patch stream length mismatch")

	// ErrTargetLengthMismatch indicates replay finished but produced a
	// different number of bytes than the header's target length.
	ErrTargetLengthMismatch = errors.New("output length does not match target length")

	// ErrInvalidChecksum indicates a checksum configuration value is not a
	// valid hex-encoded 16-byte digest.
	ErrInvalidChecksum = errors.New("invalid checksum value")
)
