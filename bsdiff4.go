// Package bsdiff4 parses and applies BSDIFF40 binary patches.
//
// A BSDIFF40 patch encodes the difference between an original and a new
// byte sequence as an 8-byte magic tag, three signed-magnitude lengths,
// and three bzip2-compressed blocks: a control block of copy/insert/seek
// instruction triplets, a diff block added byte-wise (modulo 256) to
// copied original bytes, and an extra block of literal insertions.
//
// # Basic Usage
//
// Applying an in-memory patch to an in-memory original:
//
//	import "github.com/patchkit/bsdiff4"
//
//	target, err := bsdiff4.Apply(patchBytes, originalBytes)
//	if err != nil {
//	    return err
//	}
//
// Streaming from files:
//
//	p, err := bsdiff4.Parse(patchFile)
//	if err != nil {
//	    return err
//	}
//	err = p.Apply(originalFile, targetFile)
//
// A parsed patch is immutable and may be applied repeatedly, including
// concurrently against independent original/output pairs.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the patch
// package. For the container internals, the signed-magnitude integer
// codec, and the bzip2 block codec, use the patch, encoding, and
// compress packages directly. Package checksum implements the companion
// MD5 manifest digest for verifying patched output.
//
// Patch generation is out of scope: this module only applies patches.
package bsdiff4

import (
	"bytes"
	"io"

	"github.com/patchkit/bsdiff4/patch"
)

// Parse reads and decodes a complete BSDIFF40 container from r.
func Parse(r io.Reader) (*patch.Patch, error) {
	return patch.Parse(r)
}

// ParseBytes decodes a complete BSDIFF40 container held in memory.
func ParseBytes(b []byte) (*patch.Patch, error) {
	return patch.Parse(bytes.NewReader(b))
}

// Apply parses patchBytes and applies it to original, returning the
// reconstructed target.
//
// Parameters:
//   - patchBytes: Complete patch container
//   - original: Complete original content
//
// Returns:
//   - []byte: Reconstructed target
//   - error: Parse or apply failure (see the errs package for kinds)
func Apply(patchBytes, original []byte) ([]byte, error) {
	p, err := ParseBytes(patchBytes)
	if err != nil {
		return nil, err
	}

	return p.ApplyToBuffer(original)
}

// ApplyReader parses a patch from r and applies it to a seekable
// original, writing the reconstructed target to output.
func ApplyReader(r io.Reader, original io.ReadSeeker, output io.Writer) error {
	p, err := patch.Parse(r)
	if err != nil {
		return err
	}

	return p.Apply(original, output)
}
