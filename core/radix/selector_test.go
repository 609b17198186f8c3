package radix_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/opal-lang/asciinum/core/radix"
)

func TestParseSettingsRejects(t *testing.T) {
	tests := []struct {
		arg      string
		position int
		message  string
	}{
		{"a", 0, "must be 3 characters long"},
		{"aa", 0, "must be 3 characters long"},
		{"aaix", 0, "must be 3 characters long"},
		{"haha\r\nhehe", 0, "must be 3 characters long"},
		{"", 0, "must be 3 characters long"},
		{"asd", 2, "second character of radix arg must be one of these: {a,d}"},
		{"efg", 1, "first character of radix arg must be one of these: {a,u,d}"},
		{"iua", 1, "first character of radix arg must be one of these: {a,u,d}"},
		{"suu", 1, "first character of radix arg must be one of these: {a,u,d}"},
		{"oud", 1, "first character of radix arg must be one of these: {a,u,d}"},
		{"daa", 3, "third character of radix arg must be one of these: {i,s,o}"},
		{"daé", 3, "third character of radix arg must be one of these: {i,s,o}"},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			_, err := radix.ParseSettings(tt.arg)
			var cfgErr *radix.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *ConfigError, got %T: %v", err, err)
			}
			if cfgErr.Position != tt.position {
				t.Errorf("Position = %d, want %d", cfgErr.Position, tt.position)
			}
			if cfgErr.Error() != tt.message {
				t.Errorf("Error() = %q, want %q", cfgErr.Error(), tt.message)
			}
			if cfgErr.Arg != tt.arg {
				t.Errorf("Arg = %q, want %q", cfgErr.Arg, tt.arg)
			}
		})
	}
}

func TestParseSettingsAccepts(t *testing.T) {
	tests := []struct {
		arg  string
		want radix.Settings
	}{
		{"aai", radix.NewSettings(radix.SymbolsAll, radix.NumbersAll, radix.LettersInsensitive)},
		{"udi", radix.NewSettings(radix.SymbolsUnixSafe, radix.NumbersDisabled, radix.LettersInsensitive)},
		{"das", radix.NewSettings(radix.SymbolsDisabled, radix.NumbersAll, radix.LettersSensitive)},
		{"ado", radix.NewSettings(radix.SymbolsAll, radix.NumbersDisabled, radix.LettersSensitiveOrdered)},
		{"base62", radix.NewSettings(radix.SymbolsDisabled, radix.NumbersAll, radix.LettersSensitive)},
		{"BASE36", radix.NewSettings(radix.SymbolsDisabled, radix.NumbersAll, radix.LettersInsensitive)},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := radix.ParseSettings(tt.arg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(radix.Settings{})); diff != "" {
				t.Errorf("settings mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSelectorRoundTrip(t *testing.T) {
	eachSettings(func(s radix.Settings) {
		got, err := radix.ParseSettings(s.Selector())
		if err != nil {
			t.Fatalf("%s: %v", s.Selector(), err)
		}
		if got != s {
			t.Errorf("ParseSettings(%q) = %v, want %v", s.Selector(), got, s)
		}
	})
}

func TestParseSettingsHint(t *testing.T) {
	_, err := radix.ParseSettings("bse62")
	var cfgErr *radix.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %v", err)
	}
	if cfgErr.Hint != "did you mean base62?" {
		t.Errorf("Hint = %q", cfgErr.Hint)
	}

	_, err = radix.ParseSettings("q")
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %v", err)
	}
	if cfgErr.Hint != "" {
		t.Errorf("expected no hint for %q, got %q", "q", cfgErr.Hint)
	}
}

func TestMustParseSettingsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	radix.MustParseSettings("zzz")
}
