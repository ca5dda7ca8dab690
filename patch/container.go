package patch

import (
	"bytes"
	"fmt"
	"io"

	"github.com/patchkit/bsdiff4/compress"
	"github.com/patchkit/bsdiff4/errs"
	"github.com/patchkit/bsdiff4/format"
)

// Patch is the parsed representation of a BSDIFF40 container: the target
// length, the decoded instruction sequence, and the two decompressed
// payload streams.
//
// A Patch is immutable after Parse. It owns its decompressed buffers for
// its lifetime; Apply borrows them read-only with fresh per-call cursors.
type Patch struct {
	targetLength int
	instructions []Instruction
	diff         []byte
	extra        []byte
}

// Parse reads and decodes a complete patch container from r.
//
// The source only needs to be an ordered byte stream; it is consumed
// fully. Parsing is eager: all three blocks are decompressed and the
// control block is decoded before Parse returns. No apply-time work is
// deferred into the returned Patch.
//
// Parameters:
//   - r: Source positioned at the first byte of the container
//
// Returns:
//   - *Patch: Parsed container, ready for Apply
//   - error: errs.ErrBadMagic, errs.ErrInvalidLength, errs.ErrIntegerOverflow,
//     errs.ErrCorruptBlock, or errs.ErrMalformedControlBlock
func Parse(r io.Reader) (*Patch, error) {
	header := make([]byte, format.HeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("reading patch header: %w", err)
	}

	if !bytes.Equal(header[:len(format.Magic)], []byte(format.Magic)) {
		return nil, fmt.Errorf("%w: %q", errs.ErrBadMagic, header[:len(format.Magic)])
	}

	controlLen, err := decodeLength(header[format.ControlLenOffset:], "control block length")
	if err != nil {
		return nil, err
	}

	diffLen, err := decodeLength(header[format.DiffLenOffset:], "diff block length")
	if err != nil {
		return nil, err
	}

	targetLength, err := decodeLength(header[format.TargetLenOffset:], "target length")
	if err != nil {
		return nil, err
	}

	controlBlock, err := compress.DecompressBounded(r, int64(controlLen))
	if err != nil {
		return nil, fmt.Errorf("control block: %w", err)
	}

	instructions, err := decodeInstructions(controlBlock)
	if err != nil {
		return nil, err
	}

	diff, err := compress.DecompressBounded(r, int64(diffLen))
	if err != nil {
		return nil, fmt.Errorf("diff block: %w", err)
	}

	extra, err := compress.DecompressToEnd(r)
	if err != nil {
		return nil, fmt.Errorf("extra block: %w", err)
	}

	return &Patch{
		targetLength: targetLength,
		instructions: instructions,
		diff:         diff,
		extra:        extra,
	}, nil
}

// TargetLength returns the exact byte length the reconstructed target
// must have.
func (p *Patch) TargetLength() int {
	return p.targetLength
}

// NumInstructions returns the number of control records in the patch.
func (p *Patch) NumInstructions() int {
	return len(p.instructions)
}
