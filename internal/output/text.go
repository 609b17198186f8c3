package output

import (
	"bufio"
	"io"
)

// TextEncoder writes each converted string on its own line.
type TextEncoder struct {
	w *bufio.Writer
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: bufio.NewWriter(w)}
}

func (e *TextEncoder) Encode(r Record) error {
	if _, err := e.w.WriteString(r.Output); err != nil {
		return err
	}
	return e.w.WriteByte('\n')
}

func (e *TextEncoder) Flush() error {
	return e.w.Flush()
}
