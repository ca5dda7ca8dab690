// Package patch implements parsing and application of BSDIFF40 binary
// patch containers.
//
// A container is parsed eagerly and completely by Parse: the header is
// validated, all three bzip2 blocks are decompressed, and the control
// block is decoded into an ordered instruction sequence. The resulting
// Patch is immutable and holds no cursor state, so a single parsed Patch
// may be applied concurrently against independent (original, output)
// pairs.
//
// Application replays the instruction sequence against a seekable
// original source:
//
//	p, err := patch.Parse(patchFile)
//	if err != nil {
//	    return err
//	}
//	target, err := p.ApplyToBuffer(originalBytes)
//
// Each instruction copies bytes from the original while adding the diff
// stream to them byte-wise modulo 256, inserts literal bytes from the
// extra stream, and finally moves the original cursor by a signed delta.
package patch
