package radix

import (
	"fmt"
	"slices"

	"lukechampine.com/uint128"

	"github.com/opal-lang/asciinum/core/invariant"
)

// Converter writes integers in the numeral system of one corpus.
type Converter struct {
	corpus Corpus
	radix  uint64
}

// NewConverter builds the corpus for s once and returns a converter that
// reuses it for every call.
//
// Every Settings value yields a valid corpus; a corpus that fails
// validation here is a bug in the alphabet builder and panics with an
// *invariant.Violation.
func NewConverter(s Settings) *Converter {
	corpus := s.Corpus()
	err := corpus.Validate()
	invariant.Precondition(err == nil, "corpus for %q: %v", s.Selector(), err)
	return &Converter{corpus: corpus, radix: uint64(corpus.Radix())}
}

// NewConverterFromCorpus returns a converter for a caller-supplied corpus.
// Unlike NewConverter it reports an invalid corpus as an error wrapping
// ErrInvalidCorpus.
func NewConverterFromCorpus(c Corpus) (*Converter, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new converter: %w", err)
	}
	return &Converter{corpus: c, radix: uint64(c.Radix())}, nil
}

// Corpus returns the digit alphabet.
func (c *Converter) Corpus() Corpus { return c.corpus }

// Radix returns the base of the numeral system.
func (c *Converter) Radix() int { return int(c.radix) }

// Convert writes v most significant digit first. Zero is the first corpus
// character.
func (c *Converter) Convert(v uint128.Uint128) string {
	buf := make([]byte, 0, maxDigits)
	for d := range Digits(v, c.radix) {
		invariant.InRange(int(d), 0, int(c.radix)-1, "digit")
		buf = append(buf, c.corpus[d])
	}
	slices.Reverse(buf)
	return string(buf)
}

// ConvertUint64 is Convert for values that fit in 64 bits.
func (c *Converter) ConvertUint64(v uint64) string {
	return c.Convert(uint128.From64(v))
}
