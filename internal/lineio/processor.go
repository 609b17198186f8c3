// Package lineio feeds newline-separated decimal integers through a
// converter and encodes the results.
package lineio

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"lukechampine.com/uint128"

	"github.com/opal-lang/asciinum/core/invariant"
	"github.com/opal-lang/asciinum/internal/output"
)

// ErrInvalidUTF8 marks a line that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid utf-8 sequence")

// Converter is the part of radix.Converter the processor needs.
type Converter interface {
	Convert(uint128.Uint128) string
}

// LineError describes an input line that was rejected. Processing
// continues with the next line.
type LineError struct {
	Line  int
	Input string // trimmed input, invalid UTF-8 replaced by U+FFFD
	Err   error
}

func (e *LineError) Error() string {
	if errors.Is(e.Err, ErrInvalidUTF8) {
		return fmt.Sprintf("couldn't parse ``%s``: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("couldn't parse as integer `%s`: %v", e.Input, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Stats counts what a run did with its input.
type Stats struct {
	Lines     int // physical lines read
	Converted int
	Skipped   int // blank after trimming
	Rejected  int
}

// Processor converts one integer per input line.
type Processor struct {
	conv Converter
	enc  output.Encoder
	log  zerolog.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the logger rejected lines are reported to. The default
// discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Processor) {
		p.log = l
	}
}

// NewProcessor returns a processor writing conv's results to enc.
func NewProcessor(conv Converter, enc output.Encoder, opts ...Option) *Processor {
	invariant.NotNil(conv, "converter")
	invariant.NotNil(enc, "encoder")

	p := &Processor{conv: conv, enc: enc, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// chunk is one ReadBytes result handed from the reading goroutine to Run.
type chunk struct {
	line    []byte
	err     error
	drained bool // nothing left in the read buffer
}

// readLines reads r line by line on its own goroutine until a read error
// or until done is closed. A read blocked in r outlives done; it ends
// when r returns.
func readLines(r io.Reader, done <-chan struct{}) <-chan chunk {
	ch := make(chan chunk)
	go func() {
		defer close(ch)
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadBytes('\n')
			select {
			case ch <- chunk{line: line, err: err, drained: br.Buffered() == 0}:
			case <-done:
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return ch
}

// Run reads r to EOF. Rejected lines are logged and counted; a read or
// write failure stops the run and is returned. Output is flushed whenever
// the input has nothing buffered, so interactive callers see each result
// as soon as its line is complete.
//
// Cancelling ctx returns immediately, even while a read is blocked.
func (p *Processor) Run(ctx context.Context, r io.Reader) (Stats, error) {
	invariant.ContextNotBackground(ctx, "Processor.Run")
	invariant.NotNil(r, "reader")

	done := make(chan struct{})
	defer close(done)
	lines := readLines(r, done)

	var st Stats
	for {
		var c chunk
		select {
		case <-ctx.Done():
			return st, errors.Join(ctx.Err(), p.enc.Flush())
		case c = <-lines:
		}
		if err := ctx.Err(); err != nil {
			return st, errors.Join(err, p.enc.Flush())
		}

		if len(c.line) > 0 {
			st.Lines++
			if err := p.processLine(st.Lines, c.line, &st); err != nil {
				return st, err
			}
		}

		if c.err != nil {
			if errors.Is(c.err, io.EOF) {
				break
			}
			return st, errors.Join(fmt.Errorf("couldn't read stream: %w", c.err), p.enc.Flush())
		}

		if c.drained {
			if err := p.enc.Flush(); err != nil {
				return st, fmt.Errorf("couldn't write output: %w", err)
			}
		}
	}

	if err := p.enc.Flush(); err != nil {
		return st, fmt.Errorf("couldn't write output: %w", err)
	}
	p.log.Debug().
		Int("lines", st.Lines).
		Int("converted", st.Converted).
		Int("skipped", st.Skipped).
		Int("rejected", st.Rejected).
		Msg("input exhausted")
	return st, nil
}

// processLine handles one raw line. Only encoder failures are returned.
func (p *Processor) processLine(n int, raw []byte, st *Stats) error {
	trimmed := TrimControl(raw)
	if len(trimmed) == 0 {
		st.Skipped++
		return nil
	}

	value, err := parseLine(trimmed)
	if err != nil {
		st.Rejected++
		lerr := &LineError{Line: n, Input: strings.ToValidUTF8(string(trimmed), "\uFFFD"), Err: err}
		p.log.Warn().Int("line", n).Str("input", lerr.Input).Msg(lerr.Error())
		return nil
	}

	rec := output.Record{Line: n, Input: string(trimmed), Output: p.conv.Convert(value)}
	if err := p.enc.Encode(rec); err != nil {
		return fmt.Errorf("couldn't write output: %w", err)
	}
	st.Converted++
	return nil
}

func parseLine(b []byte) (uint128.Uint128, error) {
	if !utf8.Valid(b) {
		return uint128.Zero, ErrInvalidUTF8
	}
	return ParseUint128(string(b))
}
