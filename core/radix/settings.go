package radix

import (
	"fmt"

	"github.com/opal-lang/asciinum/core/invariant"
)

// Character blocks that make up a corpus.
const (
	symbolsAll      = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	symbolsUnixSafe = "!\"#$%&'()*+,-.:;<=>?@[\\]^_`{|}~"
	numbersAll      = "0123456789"
	lettersLower    = "abcdefghijklmnopqrstuvwxyz"
	lettersUpper    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lettersOrdered  = "AaBbCcDdEeFfGgHhIiJjKkLlMmNnOoPpQqRrSsTtUuVvWwXxYyZz"
)

// Symbols selects the punctuation block.
type Symbols uint8

const (
	// SymbolsAll uses every printable non-alphanumeric ASCII character.
	SymbolsAll Symbols = iota
	// SymbolsUnixSafe is SymbolsAll without '/', so results can be used as
	// path components.
	SymbolsUnixSafe
	SymbolsDisabled
)

// Numbers selects the decimal digit block.
type Numbers uint8

const (
	NumbersAll Numbers = iota
	NumbersDisabled
)

// Letters selects the letter block. There is no disabled mode, so every
// corpus contains at least 26 characters.
type Letters uint8

const (
	// LettersInsensitive is a-z.
	LettersInsensitive Letters = iota
	// LettersSensitive is A-Z followed by a-z.
	LettersSensitive
	// LettersSensitiveOrdered is AaBb...Zz. Same characters as
	// LettersSensitive but different digit values.
	LettersSensitiveOrdered
)

func (s Symbols) String() string {
	switch s {
	case SymbolsAll:
		return "all"
	case SymbolsUnixSafe:
		return "unixsafe"
	case SymbolsDisabled:
		return "disabled"
	default:
		return fmt.Sprintf("Symbols(%d)", uint8(s))
	}
}

func (n Numbers) String() string {
	switch n {
	case NumbersAll:
		return "all"
	case NumbersDisabled:
		return "disabled"
	default:
		return fmt.Sprintf("Numbers(%d)", uint8(n))
	}
}

func (l Letters) String() string {
	switch l {
	case LettersInsensitive:
		return "insensitive"
	case LettersSensitive:
		return "sensitive"
	case LettersSensitiveOrdered:
		return "ordered"
	default:
		return fmt.Sprintf("Letters(%d)", uint8(l))
	}
}

func (s Symbols) block() string {
	switch s {
	case SymbolsAll:
		return symbolsAll
	case SymbolsUnixSafe:
		return symbolsUnixSafe
	case SymbolsDisabled:
		return ""
	}
	invariant.Precondition(false, "unknown symbols mode %d", uint8(s))
	return ""
}

func (n Numbers) block() string {
	switch n {
	case NumbersAll:
		return numbersAll
	case NumbersDisabled:
		return ""
	}
	invariant.Precondition(false, "unknown numbers mode %d", uint8(n))
	return ""
}

func (l Letters) block() string {
	switch l {
	case LettersInsensitive:
		return lettersLower
	case LettersSensitive:
		return lettersUpper + lettersLower
	case LettersSensitiveOrdered:
		return lettersOrdered
	}
	invariant.Precondition(false, "unknown letters mode %d", uint8(l))
	return ""
}

// Settings is an immutable selection of the three corpus blocks.
type Settings struct {
	symbols Symbols
	numbers Numbers
	letters Letters
}

// NewSettings bundles the three block selections.
func NewSettings(symbols Symbols, numbers Numbers, letters Letters) Settings {
	return Settings{symbols: symbols, numbers: numbers, letters: letters}
}

// DefaultSettings returns the selection used when none is given: no
// symbols, all numbers, sensitive-ordered letters ("dao", radix 62).
func DefaultSettings() Settings {
	return NewSettings(SymbolsDisabled, NumbersAll, LettersSensitiveOrdered)
}

func (s Settings) Symbols() Symbols { return s.symbols }
func (s Settings) Numbers() Numbers { return s.numbers }
func (s Settings) Letters() Letters { return s.letters }

// Corpus concatenates the selected blocks: symbols, then numbers, then
// letters.
func (s Settings) Corpus() Corpus {
	c := Corpus(s.symbols.block() + s.numbers.block() + s.letters.block())
	invariant.Postcondition(c.Radix() >= 2, "corpus for %q must hold at least 2 characters, got %d", s.Selector(), c.Radix())
	return c
}

// Selector returns the 3-character form accepted by ParseSettings.
func (s Settings) Selector() string {
	return string([]byte{
		selectorChar(symbolSelectors[:], int(s.symbols), "symbols mode"),
		selectorChar(numberSelectors[:], int(s.numbers), "numbers mode"),
		selectorChar(letterSelectors[:], int(s.letters), "letters mode"),
	})
}

func selectorChar(table []byte, i int, name string) byte {
	invariant.InRange(i, 0, len(table)-1, name)
	return table[i]
}

// String implements fmt.Stringer.
func (s Settings) String() string {
	return fmt.Sprintf("symbols=%s numbers=%s letters=%s", s.symbols, s.numbers, s.letters)
}
