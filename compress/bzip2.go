// Package compress provides the bzip2 block codec used by the BSDIFF40
// patch container.
//
// All three container blocks (control, diff, extra) are independent bzip2
// streams. Parsing needs two read shapes: bounded decompression, which
// consumes an exactly-declared number of compressed bytes, and to-end
// decompression for the final block, which relies on the bzip2 stream's
// own end marker.
package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dsnet/compress/bzip2"

	"github.com/patchkit/bsdiff4/errs"
)

// Bzip2Codec implements Codec using bzip2 streams.
//
// The zero value is ready to use. Compression is only needed by patch
// writers; the container parser uses the decompression side.
type Bzip2Codec struct{}

var _ Codec = (*Bzip2Codec)(nil)

// NewBzip2Codec creates a new bzip2 codec.
func NewBzip2Codec() Bzip2Codec {
	return Bzip2Codec{}
}

// Compress compresses data into a single bzip2 stream.
func (c Bzip2Codec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	zw, err := bzip2.NewWriter(&buf, &bzip2.WriterConfig{Level: bzip2.BestCompression})
	if err != nil {
		return nil, err
	}

	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress decompresses a single bzip2 stream.
func (c Bzip2Codec) Decompress(data []byte) ([]byte, error) {
	return DecompressToEnd(bytes.NewReader(data))
}

// DecompressBounded decompresses a bzip2 stream that occupies exactly n
// compressed bytes of r.
//
// The decoder never reads past the bounded range regardless of its
// internal buffering, and on success the full range has been consumed, so
// r is positioned exactly at the first byte after the block.
//
// Parameters:
//   - r: Source positioned at the start of the compressed block
//   - n: Declared compressed length of the block
//
// Returns:
//   - []byte: All decompressed bytes
//   - error: errs.ErrCorruptBlock if the stream is damaged or truncated
func DecompressBounded(r io.Reader, n int64) ([]byte, error) {
	lr := &io.LimitedReader{R: r, N: n}

	block, err := decompress(lr)
	if err != nil {
		return nil, err
	}

	// The bzip2 end marker may precede the declared length; skip any slack
	// so the caller's cursor lands on the next block.
	if _, err := io.Copy(io.Discard, lr); err != nil {
		return nil, fmt.Errorf("%w: draining bounded range: %w", errs.ErrCorruptBlock, err)
	}

	return block, nil
}

// DecompressToEnd decompresses the single bzip2 stream occupying the
// remainder of r, consuming r fully.
//
// Returns:
//   - []byte: All decompressed bytes
//   - error: errs.ErrCorruptBlock if the stream is damaged or truncated
func DecompressToEnd(r io.Reader) ([]byte, error) {
	return decompress(r)
}

func decompress(r io.Reader) ([]byte, error) {
	zr, err := bzip2.NewReader(r, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCorruptBlock, err)
	}

	block, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCorruptBlock, err)
	}

	if err := zr.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCorruptBlock, err)
	}

	return block, nil
}
