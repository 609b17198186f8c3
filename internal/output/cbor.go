package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// CBOREncoder writes records as a CBOR sequence (RFC 8742): one
// self-delimiting map per record, no framing.
//
// Canonical encoding keeps the bytes stable across runs, so output can be
// hashed or diffed.
type CBOREncoder struct {
	buf *bufio.Writer
	enc *cbor.Encoder
}

func NewCBOREncoder(w io.Writer) (*CBOREncoder, error) {
	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("failed to create CBOR encoder: %w", err)
	}
	buf := bufio.NewWriter(w)
	return &CBOREncoder{buf: buf, enc: encMode.NewEncoder(buf)}, nil
}

func (e *CBOREncoder) Encode(r Record) error {
	if err := e.enc.Encode(r); err != nil {
		return fmt.Errorf("CBOR encoding failed: %w", err)
	}
	return nil
}

func (e *CBOREncoder) Flush() error {
	return e.buf.Flush()
}
