package patch

import (
	"fmt"
	"math"

	"github.com/patchkit/bsdiff4/encoding"
	"github.com/patchkit/bsdiff4/errs"
	"github.com/patchkit/bsdiff4/format"
)

// Instruction is one decoded control record.
//
// Replaying an instruction performs three steps in order: copy CopyLen
// bytes from the current original position while adding the next CopyLen
// diff-stream bytes modulo 256, append the next InsertLen extra-stream
// bytes verbatim, then move the original cursor by SeekDelta.
type Instruction struct {
	// CopyLen is the number of bytes taken from the original and the diff
	// stream. Never negative.
	CopyLen int
	// InsertLen is the number of bytes taken from the extra stream.
	// Never negative.
	InsertLen int
	// SeekDelta moves the original cursor after the copy step. May be
	// negative, zero, or positive.
	SeekDelta int64
}

// decodeInstructions parses a decompressed control block into its ordered
// instruction sequence.
//
// The block must be an exact multiple of the 24-byte record size. Records
// are decoded in stream order and that order is preserved; it is the
// replay order required by Apply.
func decodeInstructions(block []byte) ([]Instruction, error) {
	if len(block)%format.ControlRecordSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d",
			errs.ErrMalformedControlBlock, len(block), format.ControlRecordSize)
	}

	instructions := make([]Instruction, 0, len(block)/format.ControlRecordSize)
	for off := 0; off < len(block); off += format.ControlRecordSize {
		rec := block[off : off+format.ControlRecordSize]

		copyLen, err := decodeLength(rec[0:format.FieldSize], "copy length")
		if err != nil {
			return nil, err
		}

		insertLen, err := decodeLength(rec[format.FieldSize:2*format.FieldSize], "insert length")
		if err != nil {
			return nil, err
		}

		instructions = append(instructions, Instruction{
			CopyLen:   copyLen,
			InsertLen: insertLen,
			SeekDelta: encoding.DecodeMagnitude(rec[2*format.FieldSize:]),
		})
	}

	return instructions, nil
}

// decodeLength decodes a signed-magnitude field that must be non-negative
// and must fit in the platform's int type.
func decodeLength(b []byte, field string) (int, error) {
	v, err := encoding.DecodeNonNegative(b)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}

	if v > math.MaxInt {
		return 0, fmt.Errorf("%s: %w: %d", field, errs.ErrIntegerOverflow, v)
	}

	return int(v), nil
}
