// Package output encodes conversion results.
package output

import (
	"fmt"
	"io"
	"strings"
)

// Record is one converted input line.
type Record struct {
	Line   int    `cbor:"line"`
	Input  string `cbor:"input"`
	Output string `cbor:"output"`
}

// Encoder writes records. Flush pushes buffered output to the underlying
// writer.
type Encoder interface {
	Encode(Record) error
	Flush() error
}

// Format names an output encoding. It implements pflag.Value so it can be
// bound directly to a flag.
type Format string

const (
	FormatText Format = "text"
	FormatCBOR Format = "cbor"
)

// Formats lists the supported encodings.
func Formats() []Format {
	return []Format{FormatText, FormatCBOR}
}

// ParseFormat resolves a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want one of: text, cbor)", s)
}

// String implements pflag.Value.
func (f *Format) String() string {
	if f == nil || *f == "" {
		return string(FormatText)
	}
	return string(*f)
}

// Set implements pflag.Value.
func (f *Format) Set(s string) error {
	parsed, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type implements pflag.Value.
func (f *Format) Type() string {
	return "format"
}

// NewEncoder returns an encoder for f writing to w.
func NewEncoder(f Format, w io.Writer) (Encoder, error) {
	switch f {
	case FormatText, "":
		return NewTextEncoder(w), nil
	case FormatCBOR:
		return NewCBOREncoder(w)
	default:
		return nil, fmt.Errorf("unknown output format %q", string(f))
	}
}
