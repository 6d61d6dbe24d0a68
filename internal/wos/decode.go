// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wos

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decoders maps accepted encoding names to a constructor for a strict
// decoder. A decoder that cannot represent the input returns an error so the
// reader moves on to the next candidate.
var decoders = map[string]func() transform.Transformer{
	"utf-8": func() transform.Transformer {
		return transform.Chain(encoding.UTF8Validator, unicode.UTF8BOM.NewDecoder())
	},
	"utf-16": func() transform.Transformer {
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
	},
	"utf-16le": func() transform.Transformer {
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	},
	"utf-16be": func() transform.Transformer {
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	},
	"latin-1": func() transform.Transformer {
		return charmap.ISO8859_1.NewDecoder()
	},
	"cp1252": func() transform.Transformer {
		return charmap.Windows1252.NewDecoder()
	},
}

// aliases folds common spellings onto the names in decoders.
var aliases = map[string]string{
	"utf8":         "utf-8",
	"utf-8-sig":    "utf-8",
	"utf_8":        "utf-8",
	"utf16":        "utf-16",
	"utf_16":       "utf-16",
	"latin1":       "latin-1",
	"iso-8859-1":   "latin-1",
	"iso8859-1":    "latin-1",
	"windows-1252": "cp1252",
}

// CanonicalEncoding resolves name to a supported encoding name.
func CanonicalEncoding(name string) (string, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if a, ok := aliases[n]; ok {
		n = a
	}
	if _, ok := decoders[n]; !ok {
		return "", fmt.Errorf("unsupported encoding %q", name)
	}
	return n, nil
}

// Decode converts data from the named encoding to a UTF-8 string.
func Decode(data []byte, name string) (string, error) {
	n, err := CanonicalEncoding(name)
	if err != nil {
		return "", err
	}
	out, _, err := transform.Bytes(decoders[n](), data)
	if err != nil {
		return "", fmt.Errorf("decoding as %s: %w", n, err)
	}
	return string(out), nil
}
