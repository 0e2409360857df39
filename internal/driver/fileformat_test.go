package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosmogony/internal/cosmerr"
)

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		name string
		want Format
	}{
		{"out.json", FormatJSON},
		{"out.jsonl", FormatJSONStream},
		{"out.json.gz", FormatJSONGz},
		{"out.jsonl.gz", FormatJSONStreamGz},
	}
	for _, c := range cases {
		got, err := DetectFormat(c.name)
		require.NoError(t, err, c.name)
		assert.Equal(t, c.want, got, c.name)
	}
}

func TestDetectFormatUnknownExtension(t *testing.T) {
	_, err := DetectFormat("out.txt")
	assert.ErrorIs(t, err, cosmerr.ErrUnknownFormat)
}

func TestStreamableAndGzipped(t *testing.T) {
	assert.False(t, FormatJSON.Streamable(), "single-document formats must not be streamable")
	assert.False(t, FormatJSONGz.Streamable(), "single-document formats must not be streamable")
	assert.True(t, FormatJSONStream.Streamable(), "newline-delimited formats must be streamable")
	assert.True(t, FormatJSONStreamGz.Streamable(), "newline-delimited formats must be streamable")

	assert.False(t, FormatJSON.Gzipped(), "uncompressed formats must not report gzipped")
	assert.False(t, FormatJSONStream.Gzipped(), "uncompressed formats must not report gzipped")
	assert.True(t, FormatJSONGz.Gzipped(), "compressed formats must report gzipped")
	assert.True(t, FormatJSONStreamGz.Gzipped(), "compressed formats must report gzipped")
}
