// Package textkit holds small text utilities for raw source data:
// byte-order-mark handling and line splitting. It is a leaf package
// with no ties to the container packages.
package textkit

import (
	"bytes"
	"io"

	"github.com/dimchansky/utfbom"
)

// SkipBOM wraps r so a leading byte order mark, if present, is consumed
// before any read, and reports which encoding the mark announced
// (utfbom.Unknown when there is none).
func SkipBOM(r io.Reader) (io.Reader, utfbom.Encoding) {
	sr, enc := utfbom.Skip(r)
	return sr, enc
}

// TrimBOM strips a leading byte order mark from data and reports the
// encoding it announced.
func TrimBOM(data []byte) ([]byte, utfbom.Encoding) {
	sr, enc := utfbom.Skip(bytes.NewReader(data))
	rest, err := io.ReadAll(sr)
	if err != nil {
		// Reads from a bytes.Reader cannot fail.
		return data, utfbom.Unknown
	}
	return rest, enc
}

// ReadAllText reads r to the end, dropping a leading byte order mark.
func ReadAllText(r io.Reader) (string, error) {
	sr, _ := utfbom.Skip(r)
	data, err := io.ReadAll(sr)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
