// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalEncoding(t *testing.T) {
	tests := map[string]string{
		"UTF-8":        "utf-8",
		"utf-8-sig":    "utf-8",
		"latin1":       "latin-1",
		"ISO-8859-1":   "latin-1",
		"Windows-1252": "cp1252",
		" utf16 ":      "utf-16",
	}
	for in, want := range tests {
		got, err := CanonicalEncoding(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := CanonicalEncoding("koi8-r")
	assert.Error(t, err)
}

func TestDecodeRejectsInvalidUTF8(t *testing.T) {
	_, err := Decode([]byte{'a', 0xe9, 'b'}, "utf-8")
	assert.Error(t, err)

	s, err := Decode([]byte{'a', 0xe9, 'b'}, "latin-1")
	require.NoError(t, err)
	assert.Equal(t, "aéb", s)
}

func TestDecodeCP1252Quotes(t *testing.T) {
	s, err := Decode([]byte{0x93, 'h', 'i', 0x94}, "cp1252")
	require.NoError(t, err)
	assert.Equal(t, "“hi”", s)
}

func TestDecodeUTF16RequiresBOM(t *testing.T) {
	_, err := Decode([]byte{'a', 0, 'b', 0}, "utf-16")
	assert.Error(t, err)

	s, err := Decode([]byte{0xff, 0xfe, 'a', 0, 'b', 0}, "utf-16")
	require.NoError(t, err)
	assert.Equal(t, "ab", s)
}
