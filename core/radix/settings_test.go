package radix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/opal-lang/asciinum/core/invariant"
	"github.com/opal-lang/asciinum/core/radix"
)

var (
	allSymbols = []radix.Symbols{radix.SymbolsAll, radix.SymbolsUnixSafe, radix.SymbolsDisabled}
	allNumbers = []radix.Numbers{radix.NumbersAll, radix.NumbersDisabled}
	allLetters = []radix.Letters{radix.LettersInsensitive, radix.LettersSensitive, radix.LettersSensitiveOrdered}
)

// eachSettings calls fn for every one of the 18 valid combinations.
func eachSettings(fn func(radix.Settings)) {
	for _, s := range allSymbols {
		for _, n := range allNumbers {
			for _, l := range allLetters {
				fn(radix.NewSettings(s, n, l))
			}
		}
	}
}

func TestCorpusBlocks(t *testing.T) {
	tests := []struct {
		selector string
		want     radix.Corpus
	}{
		{"ddi", "abcdefghijklmnopqrstuvwxyz"},
		{"dds", "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"},
		{"ddo", "AaBbCcDdEeFfGgHhIiJjKkLlMmNnOoPpQqRrSsTtUuVvWwXxYyZz"},
		{"dai", "0123456789abcdefghijklmnopqrstuvwxyz"},
		{"adi", "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~abcdefghijklmnopqrstuvwxyz"},
		{"udi", "!\"#$%&'()*+,-.:;<=>?@[\\]^_`{|}~abcdefghijklmnopqrstuvwxyz"},
		{"aas", "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			got := radix.MustParseSettings(tt.selector).Corpus()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("corpus mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCorpusSizes(t *testing.T) {
	symbols := map[radix.Symbols]int{radix.SymbolsAll: 32, radix.SymbolsUnixSafe: 31, radix.SymbolsDisabled: 0}
	numbers := map[radix.Numbers]int{radix.NumbersAll: 10, radix.NumbersDisabled: 0}
	letters := map[radix.Letters]int{radix.LettersInsensitive: 26, radix.LettersSensitive: 52, radix.LettersSensitiveOrdered: 52}

	eachSettings(func(s radix.Settings) {
		want := symbols[s.Symbols()] + numbers[s.Numbers()] + letters[s.Letters()]
		if got := s.Corpus().Radix(); got != want {
			t.Errorf("%s: radix = %d, want %d", s.Selector(), got, want)
		}
	})
}

func TestCorpusAlwaysValid(t *testing.T) {
	eachSettings(func(s radix.Settings) {
		c := s.Corpus()
		if err := c.Validate(); err != nil {
			t.Errorf("%s: %v", s.Selector(), err)
		}
		if c.Radix() < 2 {
			t.Errorf("%s: radix %d < 2", s.Selector(), c.Radix())
		}
	})
}

func TestUnixSafeHasNoSlash(t *testing.T) {
	for _, n := range allNumbers {
		for _, l := range allLetters {
			c := radix.NewSettings(radix.SymbolsUnixSafe, n, l).Corpus()
			for i := 0; i < len(c); i++ {
				if c[i] == '/' {
					t.Fatalf("%q contains '/'", c)
				}
			}
		}
	}
}

func TestSensitiveAndOrderedDiffer(t *testing.T) {
	sensitive := radix.MustParseSettings("das").Corpus()
	ordered := radix.MustParseSettings("dao").Corpus()
	if sensitive == ordered {
		t.Fatal("sensitive and ordered corpora must not be identical")
	}

	// Same character set, different digit values.
	count := func(c radix.Corpus) map[byte]int {
		m := map[byte]int{}
		for i := 0; i < len(c); i++ {
			m[c[i]]++
		}
		return m
	}
	if diff := cmp.Diff(count(sensitive), count(ordered)); diff != "" {
		t.Errorf("character sets differ (-sensitive +ordered):\n%s", diff)
	}
}

func TestDefaultSettings(t *testing.T) {
	s := radix.DefaultSettings()
	if got := s.Selector(); got != "dao" {
		t.Errorf("Selector() = %q, want dao", got)
	}
	if got := s.String(); got != "symbols=disabled numbers=all letters=ordered" {
		t.Errorf("String() = %q", got)
	}
}

func TestCorpusValidate(t *testing.T) {
	tests := []struct {
		name    string
		corpus  radix.Corpus
		wantErr bool
	}{
		{"binary", "01", false},
		{"empty", "", true},
		{"single", "a", true},
		{"duplicate", "abca", true},
		{"space", "a b", true},
		{"control", "ab\x7f", true},
		{"non ascii", "ab\xc3\xa9", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.corpus.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUnknownModePanicsWithViolation(t *testing.T) {
	tests := []struct {
		name     string
		settings radix.Settings
	}{
		{"symbols", radix.NewSettings(radix.Symbols(9), radix.NumbersAll, radix.LettersInsensitive)},
		{"numbers", radix.NewSettings(radix.SymbolsAll, radix.Numbers(9), radix.LettersInsensitive)},
		{"letters", radix.NewSettings(radix.SymbolsAll, radix.NumbersAll, radix.Letters(9))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, fn := range []func(){
				func() { _ = tt.settings.Selector() },
				func() { _ = tt.settings.Corpus() },
			} {
				v := catchViolation(fn)
				if v == nil {
					t.Fatal("expected *invariant.Violation panic")
				}
				if diff := cmp.Diff(invariant.KindPrecondition, v.Kind); diff != "" {
					t.Errorf("kind mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func catchViolation(fn func()) (v *invariant.Violation) {
	defer func() {
		v, _ = invariant.AsViolation(recover())
	}()
	fn()
	return nil
}
