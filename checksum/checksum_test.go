package checksum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/patchkit/bsdiff4/errs"
)

const (
	emptyMD5      = "d41d8cd98f00b204e9800998ecf8427e"
	helloWorldMD5 = "5eb63bbbe01eeed093cb22bb8f5acdc3"
)

func TestParse(t *testing.T) {
	t.Run("valid digest", func(t *testing.T) {
		c, err := Parse(helloWorldMD5)
		require.NoError(t, err)
		require.Equal(t, helloWorldMD5, c.String())
	})

	t.Run("invalid hex", func(t *testing.T) {
		_, err := Parse("zzzz8cd98f00b204e9800998ecf8427e")
		require.ErrorIs(t, err, errs.ErrInvalidChecksum)
	})

	t.Run("wrong length", func(t *testing.T) {
		_, err := Parse("d41d8cd9")
		require.ErrorIs(t, err, errs.ErrInvalidChecksum)
	})
}

func TestChecksum_Matches(t *testing.T) {
	t.Run("matching content", func(t *testing.T) {
		c, err := Parse(helloWorldMD5)
		require.NoError(t, err)
		require.True(t, c.Matches([]byte("hello world")))
	})

	t.Run("empty content", func(t *testing.T) {
		c, err := Parse(emptyMD5)
		require.NoError(t, err)
		require.True(t, c.Matches(nil))
	})

	t.Run("mismatching content", func(t *testing.T) {
		c, err := Parse(helloWorldMD5)
		require.NoError(t, err)
		require.False(t, c.Matches([]byte("hello world!")))
	})
}

func TestSum(t *testing.T) {
	require.Equal(t, helloWorldMD5, Sum([]byte("hello world")).String())
}

func TestChecksum_JSON(t *testing.T) {
	var manifest struct {
		Checksum Checksum `json:"checksum"`
	}

	err := json.Unmarshal([]byte(`{"checksum": "`+helloWorldMD5+`"}`), &manifest)
	require.NoError(t, err)
	require.True(t, manifest.Checksum.Matches([]byte("hello world")))

	out, err := json.Marshal(manifest)
	require.NoError(t, err)
	require.JSONEq(t, `{"checksum": "`+helloWorldMD5+`"}`, string(out))
}

func TestChecksum_YAML(t *testing.T) {
	t.Run("valid manifest value", func(t *testing.T) {
		var manifest struct {
			Checksum Checksum `yaml:"checksum"`
		}

		err := yaml.Unmarshal([]byte("checksum: "+helloWorldMD5+"\n"), &manifest)
		require.NoError(t, err)
		require.True(t, manifest.Checksum.Matches([]byte("hello world")))
	})

	t.Run("invalid manifest value", func(t *testing.T) {
		var manifest struct {
			Checksum Checksum `yaml:"checksum"`
		}

		err := yaml.Unmarshal([]byte("checksum: nothex\n"), &manifest)
		require.Error(t, err)
	})
}
