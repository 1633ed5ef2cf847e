package shipment

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomSuffix_UniformOverByteRange(t *testing.T) {
	// Feed every byte value exactly once. Rejection sampling accepts 252 of
	// the 256 values, which maps to each alphabet character exactly 7 times;
	// a plain modulo would map the first four characters 8 times instead.
	src := make([]byte, 256)
	for i := range src {
		src[i] = byte(i)
	}

	out, err := randomSuffix(bytes.NewReader(src), trackingCodeAlphabet, 252)

	require.NoError(t, err)
	require.Len(t, out, 252)

	freq := make(map[rune]int)
	for _, r := range out {
		freq[r]++
	}

	require.Len(t, freq, len(trackingCodeAlphabet))
	for _, r := range trackingCodeAlphabet {
		assert.Equal(t, 7, freq[r], "character %q should be drawn uniformly", r)
	}
}

func TestRandomSuffix_ExhaustedSource_ReturnsError(t *testing.T) {
	// All-rejected input forces another read from an empty source.
	rejected := bytes.Repeat([]byte{255}, trackingCodeSuffixLen)

	_, err := randomSuffix(bytes.NewReader(rejected), trackingCodeAlphabet, trackingCodeSuffixLen)

	require.Error(t, err)
}
