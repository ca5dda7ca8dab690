package patch

import (
	"bytes"
	"fmt"
	"io"

	"github.com/patchkit/bsdiff4/errs"
	"github.com/patchkit/bsdiff4/internal/pool"
)

// Apply replays the patch against original, writing the reconstructed
// target to output.
//
// The original must be seekable; its cursor is expected to be at the
// position the patch was generated against (normally the start). Output
// is written strictly sequentially. On error the bytes already written
// to output are unspecified and should be discarded by the caller.
//
// Apply is safe to call concurrently on the same Patch as long as each
// call uses its own original and output.
//
// Parameters:
//   - original: Seekable source of the original content
//   - output: Sink for the reconstructed target
//
// Returns:
//   - error: errs.ErrShortRead, errs.ErrStreamExhausted,
//     errs.ErrTargetLengthMismatch, or the underlying I/O error
func (p *Patch) Apply(original io.ReadSeeker, output io.Writer) error {
	chunk, release := pool.GetChunk()
	defer release()

	var diffPos, extraPos, written int

	for i, instr := range p.instructions {
		// Copy step: original bytes plus diff bytes, modulo 256. Wrap-around
		// on the byte addition is expected, not an error.
		remaining := instr.CopyLen
		for remaining > 0 {
			n := min(remaining, len(chunk))

			if _, err := io.ReadFull(original, chunk[:n]); err != nil {
				return fmt.Errorf("instruction %d: %w: %w", i, errs.ErrShortRead, err)
			}

			if diffPos+n > len(p.diff) {
				return fmt.Errorf("instruction %d: diff stream: %w", i, errs.ErrStreamExhausted)
			}

			for j, b := range p.diff[diffPos : diffPos+n] {
				chunk[j] += b
			}

			if _, err := output.Write(chunk[:n]); err != nil {
				return fmt.Errorf("instruction %d: writing output: %w", i, err)
			}

			diffPos += n
			remaining -= n
		}

		// Insert step: literal bytes from the extra stream.
		if extraPos+instr.InsertLen > len(p.extra) {
			return fmt.Errorf("instruction %d: extra stream: %w", i, errs.ErrStreamExhausted)
		}

		if instr.InsertLen > 0 {
			if _, err := output.Write(p.extra[extraPos : extraPos+instr.InsertLen]); err != nil {
				return fmt.Errorf("instruction %d: writing output: %w", i, err)
			}

			extraPos += instr.InsertLen
		}

		written += instr.CopyLen + instr.InsertLen

		// Seek step: move the original cursor relative to its position after
		// the copy step.
		if _, err := original.Seek(instr.SeekDelta, io.SeekCurrent); err != nil {
			return fmt.Errorf("instruction %d: seeking original: %w", i, err)
		}
	}

	// A correct patch consumes both payload streams exactly; leftover bytes
	// mean the container and control block disagree.
	if diffPos != len(p.diff) {
		return fmt.Errorf("diff stream: %d bytes unconsumed: %w", len(p.diff)-diffPos, errs.ErrStreamExhausted)
	}
	if extraPos != len(p.extra) {
		return fmt.Errorf("extra stream: %d bytes unconsumed: %w", len(p.extra)-extraPos, errs.ErrStreamExhausted)
	}

	if written != p.targetLength {
		return fmt.Errorf("%w: wrote %d bytes, want %d", errs.ErrTargetLengthMismatch, written, p.targetLength)
	}

	return nil
}

// ApplyToBuffer applies the patch to an in-memory original and returns
// the reconstructed target as a new buffer pre-sized to TargetLength.
//
// Parameters:
//   - original: Complete original content
//
// Returns:
//   - []byte: Reconstructed target, exactly TargetLength bytes
//   - error: Same failure modes as Apply
func (p *Patch) ApplyToBuffer(original []byte) ([]byte, error) {
	out := bytes.NewBuffer(make([]byte, 0, p.targetLength))

	if err := p.Apply(bytes.NewReader(original), out); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
