// Package checksum provides the MD5 content digest used to validate
// patched output against a value from a patch manifest.
//
// The digest is configured as a hex-encoded string (JSON via
// encoding.TextUnmarshaler, YAML via yaml.Unmarshaler) and compared
// against a freshly computed hash of candidate bytes. It is independent
// of the patch algorithm itself.
package checksum

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/patchkit/bsdiff4/errs"
)

// Size is the digest length in bytes.
const Size = md5.Size

// Checksum is a fixed-size MD5 content digest.
//
// The zero value matches only content whose digest is all zero bytes;
// construct real values with Parse or Sum.
type Checksum [Size]byte

// Parse decodes a hex-encoded digest string.
//
// Parameters:
//   - s: Hex string, exactly 2*Size characters
//
// Returns:
//   - Checksum: Decoded digest
//   - error: errs.ErrInvalidChecksum on bad hex or wrong length
func Parse(s string) (Checksum, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Checksum{}, fmt.Errorf("%w: %w", errs.ErrInvalidChecksum, err)
	}

	if len(raw) != Size {
		return Checksum{}, fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidChecksum, len(raw), Size)
	}

	return Checksum(raw), nil
}

// Sum computes the digest of data.
func Sum(data []byte) Checksum {
	return md5.Sum(data)
}

// Matches reports whether data hashes to this digest.
func (c Checksum) Matches(data []byte) bool {
	return md5.Sum(data) == [Size]byte(c)
}

// String returns the digest as a lowercase hex string.
func (c Checksum) String() string {
	return hex.EncodeToString(c[:])
}

// MarshalText implements encoding.TextMarshaler.
func (c Checksum) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting the same
// hex form as Parse. This is what encoding/json uses for string values.
func (c *Checksum) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler for manifest-style config
// values such as `checksum: "d41d8cd98f00b204e9800998ecf8427e"`.
func (c *Checksum) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}
