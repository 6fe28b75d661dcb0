package anchor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_AcceptsSHA256(t *testing.T) {
	v := strings.Repeat("a", 64)
	out, err := Normalize(v)
	require.NoError(t, err)
	assert.Equal(t, v, out)
}

func TestNormalize_PadsSHA1(t *testing.T) {
	sha1 := strings.Repeat("b", 40)
	out, err := Normalize(sha1)
	require.NoError(t, err)
	assert.Len(t, out, 64)
	assert.True(t, strings.HasPrefix(out, sha1))
	assert.Equal(t, strings.Repeat("0", 24), out[40:])
}

func TestNormalize_Lowercases(t *testing.T) {
	out, err := Normalize(strings.Repeat("AB", 32))
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("ab", 32), out)
}

func TestNormalize_TrimsWhitespace(t *testing.T) {
	out, err := Normalize("  " + strings.Repeat("c", 64) + "\n")
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("c", 64), out)
}

func TestNormalize_RejectsOtherLengths(t *testing.T) {
	_, err := Normalize("abc")
	assert.Error(t, err)
}

func TestNormalize_RejectsNonHex(t *testing.T) {
	_, err := Normalize(strings.Repeat("g", 40))
	assert.Error(t, err)
}

func TestExtractSHA1_ReturnsPrefix(t *testing.T) {
	anchor := strings.Repeat("c", 40) + strings.Repeat("0", 24)
	out, err := ExtractSHA1(anchor)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("c", 40), out)
}

func TestExtractSHA1_RejectsWrongLength(t *testing.T) {
	_, err := ExtractSHA1(strings.Repeat("c", 40))
	assert.Error(t, err)
}

func TestExtractSHA1_RejectsNonHex(t *testing.T) {
	_, err := ExtractSHA1(strings.Repeat("z", 64))
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	sha1 := strings.Repeat("d", 40)
	anchor, err := Normalize(sha1)
	require.NoError(t, err)

	back, err := ExtractSHA1(anchor)
	require.NoError(t, err)
	assert.Equal(t, sha1, back)
}
