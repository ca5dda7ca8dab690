// Package testutil builds BSDIFF40 containers for tests.
//
// It is the only place in the module that writes patches; the public
// surface is apply-only.
package testutil

import (
	"github.com/patchkit/bsdiff4/compress"
	"github.com/patchkit/bsdiff4/encoding"
	"github.com/patchkit/bsdiff4/format"
)

// Control is one raw control triplet, pre-encoding.
type Control struct {
	Copy   int64
	Insert int64
	Seek   int64
}

// BuildPatch assembles a syntactically valid container from raw parts.
//
// No consistency checking is done between the controls, the streams, and
// targetLength, so tests can deliberately build corrupt patches.
func BuildPatch(controls []Control, diff, extra []byte, targetLength int64) []byte {
	var controlBlock []byte
	for _, c := range controls {
		controlBlock = encoding.AppendMagnitude(controlBlock, c.Copy)
		controlBlock = encoding.AppendMagnitude(controlBlock, c.Insert)
		controlBlock = encoding.AppendMagnitude(controlBlock, c.Seek)
	}

	return BuildRawPatch(controlBlock, diff, extra, targetLength)
}

// BuildRawPatch assembles a container from an already-encoded control
// block, allowing tests to produce control blocks of arbitrary size and
// content.
func BuildRawPatch(controlBlock, diff, extra []byte, targetLength int64) []byte {
	codec := compress.NewBzip2Codec()

	zctrl := mustCompress(codec, controlBlock)
	zdiff := mustCompress(codec, diff)
	zextra := mustCompress(codec, extra)

	out := make([]byte, 0, format.HeaderSize+len(zctrl)+len(zdiff)+len(zextra))
	out = append(out, format.Magic...)
	out = encoding.AppendMagnitude(out, int64(len(zctrl)))
	out = encoding.AppendMagnitude(out, int64(len(zdiff)))
	out = encoding.AppendMagnitude(out, targetLength)
	out = append(out, zctrl...)
	out = append(out, zdiff...)
	out = append(out, zextra...)

	return out
}

// NaiveDiff generates a patch that reconstructs target from original
// using a single instruction: a copy over the common prefix length with
// byte-wise differences in the diff stream, and the remainder of target
// as a literal insertion.
//
// It is deliberately simple; it exists so round-trip tests have a real
// generator without the module growing a diff algorithm.
func NaiveDiff(original, target []byte) []byte {
	copyLen := min(len(original), len(target))

	diff := make([]byte, copyLen)
	for i := range diff {
		diff[i] = target[i] - original[i]
	}

	extra := target[copyLen:]

	controls := []Control{{
		Copy:   int64(copyLen),
		Insert: int64(len(extra)),
		Seek:   0,
	}}

	return BuildPatch(controls, diff, extra, int64(len(target)))
}

func mustCompress(codec compress.Bzip2Codec, data []byte) []byte {
	out, err := codec.Compress(data)
	if err != nil {
		panic(err)
	}

	return out
}
