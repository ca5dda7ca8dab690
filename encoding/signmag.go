// Package encoding implements the signed-magnitude integer codec used by
// the BSDIFF40 header and control block.
//
// Unlike two's complement, the wire format carries the sign in the most
// significant bit and the absolute value in the remaining 63 bits, always
// little-endian. A value with the sign bit set and an all-zero magnitude
// is a negatively-signed zero and decodes to 0.
package encoding

import (
	"encoding/binary"
	"fmt"

	"github.com/patchkit/bsdiff4/errs"
)

// signBit masks the sign flag of an 8-byte signed-magnitude field.
const signBit = uint64(1) << 63

// DecodeMagnitude decodes the first 8 bytes of b as a little-endian
// signed-magnitude integer.
//
// The magnitude occupies 63 bits, so the result always fits in an int64
// without overflow; a sign bit over a zero magnitude decodes to 0.
//
// Parameters:
//   - b: Byte slice containing the field (must be at least 8 bytes)
//
// Returns:
//   - int64: Decoded value
func DecodeMagnitude(b []byte) int64 {
	y := binary.LittleEndian.Uint64(b)
	v := int64(y &^ signBit)
	if y&signBit != 0 {
		return -v
	}

	return v
}

// DecodeNonNegative decodes the first 8 bytes of b as a little-endian
// signed-magnitude integer that must not be negative.
//
// Length fields in the header and control block use this form: the
// encoding can express a sign, but a set sign bit (including a
// negatively-signed zero) marks the patch as corrupt.
//
// Parameters:
//   - b: Byte slice containing the field (must be at least 8 bytes)
//
// Returns:
//   - uint64: Decoded magnitude
//   - error: errs.ErrInvalidLength if the sign bit is set
func DecodeNonNegative(b []byte) (uint64, error) {
	y := binary.LittleEndian.Uint64(b)
	if y&signBit != 0 {
		return 0, fmt.Errorf("%w: sign bit set", errs.ErrInvalidLength)
	}

	return y, nil
}

// PutMagnitude encodes v into the first 8 bytes of b in signed-magnitude
// form.
//
// The magnitude must fit in 63 bits; v must be greater than
// math.MinInt64, whose magnitude is not representable.
func PutMagnitude(b []byte, v int64) {
	y := uint64(v)
	if v < 0 {
		y = uint64(-v) | signBit
	}

	binary.LittleEndian.PutUint64(b, y)
}

// AppendMagnitude appends the 8-byte signed-magnitude encoding of v to dst
// and returns the extended slice.
func AppendMagnitude(dst []byte, v int64) []byte {
	y := uint64(v)
	if v < 0 {
		y = uint64(-v) | signBit
	}

	return binary.LittleEndian.AppendUint64(dst, y)
}
