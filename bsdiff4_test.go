package bsdiff4_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/patchkit/bsdiff4"
	"github.com/patchkit/bsdiff4/errs"
	"github.com/patchkit/bsdiff4/internal/testutil"
)

func patternBytes(n int, seed byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)*7 + seed
	}

	return b
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		original []byte
		target   []byte
	}{
		{"identical", []byte("hello world"), []byte("hello world")},
		{"single byte change", []byte("hello world"), []byte("hello werld")},
		{"target longer", []byte("short"), []byte("short and then some")},
		{"target shorter", []byte("a much longer original"), []byte("tiny")},
		{"empty original", nil, []byte("built from nothing")},
		{"empty target", []byte("everything removed"), nil},
		{"both empty", nil, nil},
		{"binary with wrap-around deltas", patternBytes(4096, 3), patternBytes(4096, 251)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := testutil.NaiveDiff(tt.original, tt.target)

			got, err := bsdiff4.Apply(raw, tt.original)
			require.NoError(t, err)
			require.True(t, bytes.Equal(tt.target, got))
		})
	}
}

func TestApplyReader(t *testing.T) {
	original := patternBytes(1000, 17)
	target := patternBytes(1200, 90)
	raw := testutil.NaiveDiff(original, target)

	var out bytes.Buffer
	err := bsdiff4.ApplyReader(bytes.NewReader(raw), bytes.NewReader(original), &out)
	require.NoError(t, err)
	require.Equal(t, target, out.Bytes())
}

func TestParse(t *testing.T) {
	original := []byte("hello world")
	raw := testutil.NaiveDiff(original, original)

	t.Run("exposes header fields", func(t *testing.T) {
		p, err := bsdiff4.ParseBytes(raw)
		require.NoError(t, err)
		require.Equal(t, len(original), p.TargetLength())
		require.Equal(t, 1, p.NumInstructions())
	})

	t.Run("repeated applies of one parse agree", func(t *testing.T) {
		p, err := bsdiff4.ParseBytes(raw)
		require.NoError(t, err)

		first, err := p.ApplyToBuffer(original)
		require.NoError(t, err)

		second, err := p.ApplyToBuffer(original)
		require.NoError(t, err)

		require.Equal(t, first, second)
	})

	t.Run("bad magic", func(t *testing.T) {
		corrupted := append([]byte{}, raw...)
		copy(corrupted, "BSDIFF41")

		_, err := bsdiff4.ParseBytes(corrupted)
		require.ErrorIs(t, err, errs.ErrBadMagic)
	})

	t.Run("mismatched original fails", func(t *testing.T) {
		p, err := bsdiff4.ParseBytes(raw)
		require.NoError(t, err)

		_, err = p.ApplyToBuffer([]byte("too short"))
		require.ErrorIs(t, err, errs.ErrShortRead)
	})
}

func TestRoundTrip_LargerThanChunk(t *testing.T) {
	// Exceeds the apply loop's 64KiB scratch chunk so the copy step runs
	// through multiple iterations.
	original := patternBytes(3*64*1024+123, 1)
	target := patternBytes(3*64*1024+123, 2)
	raw := testutil.NaiveDiff(original, target)

	got, err := bsdiff4.Apply(raw, original)
	require.NoError(t, err)
	require.True(t, bytes.Equal(target, got))
}
