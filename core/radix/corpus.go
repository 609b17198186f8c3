package radix

import (
	"errors"
	"fmt"
)

// ErrInvalidCorpus is returned for a corpus that cannot act as a digit
// alphabet.
var ErrInvalidCorpus = errors.New("invalid corpus")

// Corpus is an ordered digit alphabet. Digit value v is written as the byte
// at index v, so the corpus length is the radix.
type Corpus string

// Radix returns the base of the numeral system the corpus describes.
func (c Corpus) Radix() int {
	return len(c)
}

// Validate checks that c has at least two characters, all printable ASCII
// and pairwise distinct.
func (c Corpus) Validate() error {
	if len(c) < 2 {
		return fmt.Errorf("%w: need at least 2 characters, got %d", ErrInvalidCorpus, len(c))
	}

	var seen [128]bool
	for i := 0; i < len(c); i++ {
		b := c[i]
		if b < 0x21 || b > 0x7e {
			return fmt.Errorf("%w: byte 0x%02x at index %d is not a printable ASCII character", ErrInvalidCorpus, b, i)
		}
		if seen[b] {
			return fmt.Errorf("%w: character %q repeats at index %d", ErrInvalidCorpus, b, i)
		}
		seen[b] = true
	}
	return nil
}
