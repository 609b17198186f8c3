package radix

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Selector characters, indexed by mode.
var (
	symbolSelectors = [...]byte{SymbolsAll: 'a', SymbolsUnixSafe: 'u', SymbolsDisabled: 'd'}
	numberSelectors = [...]byte{NumbersAll: 'a', NumbersDisabled: 'd'}
	letterSelectors = [...]byte{LettersInsensitive: 'i', LettersSensitive: 's', LettersSensitiveOrdered: 'o'}
)

// ConfigError reports a selector that names no valid Settings.
type ConfigError struct {
	Arg      string
	Position int    // 1-based selector position, 0 when the length is wrong
	Allowed  string // allowed characters at Position
	Hint     string // optional suggestion, e.g. a close preset name
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Position == 0 {
		return "must be 3 characters long"
	}
	return fmt.Sprintf("%s character of radix arg must be one of these: {%s}", ordinal(e.Position), e.Allowed)
}

func ordinal(pos int) string {
	switch pos {
	case 1:
		return "first"
	case 2:
		return "second"
	case 3:
		return "third"
	default:
		return fmt.Sprintf("#%d", pos)
	}
}

func allowed(set []byte) string {
	parts := make([]string, len(set))
	for i, b := range set {
		parts[i] = string(b)
	}
	return strings.Join(parts, ",")
}

// ParseSettings parses a corpus selector.
//
// A 3-character selector is read positionally:
//
//	1: symbols  a=all u=unixsafe d=disabled
//	2: numbers  a=all d=disabled
//	3: letters  i=insensitive s=sensitive o=ordered
//
// Any other argument is looked up as a preset name (see Presets). Failures
// are returned as *ConfigError.
func ParseSettings(arg string) (Settings, error) {
	if utf8.RuneCountInString(arg) != 3 {
		if s, ok := LookupPreset(arg); ok {
			return s, nil
		}
		return Settings{}, &ConfigError{Arg: arg, Hint: suggestPreset(arg)}
	}

	// Compare runes so a multi-byte character fails at its own position.
	runes := []rune(arg)

	symbols, ok := lookupSelector(symbolSelectors[:], runes[0])
	if !ok {
		return Settings{}, &ConfigError{Arg: arg, Position: 1, Allowed: allowed(symbolSelectors[:])}
	}
	numbers, ok := lookupSelector(numberSelectors[:], runes[1])
	if !ok {
		return Settings{}, &ConfigError{Arg: arg, Position: 2, Allowed: allowed(numberSelectors[:])}
	}
	letters, ok := lookupSelector(letterSelectors[:], runes[2])
	if !ok {
		return Settings{}, &ConfigError{Arg: arg, Position: 3, Allowed: allowed(letterSelectors[:])}
	}

	return NewSettings(Symbols(symbols), Numbers(numbers), Letters(letters)), nil
}

// MustParseSettings is like ParseSettings but panics on error. Intended for
// package-level variables and tests.
func MustParseSettings(arg string) Settings {
	s, err := ParseSettings(arg)
	if err != nil {
		panic(fmt.Sprintf("radix: MustParseSettings(%q): %v", arg, err))
	}
	return s
}

func lookupSelector(set []byte, r rune) (uint8, bool) {
	for i, b := range set {
		if rune(b) == r {
			return uint8(i), true
		}
	}
	return 0, false
}
