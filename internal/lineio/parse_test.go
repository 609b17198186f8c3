package lineio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	"github.com/opal-lang/asciinum/internal/lineio"
)

func TestParseUint128(t *testing.T) {
	tests := []struct {
		in   string
		want uint128.Uint128
	}{
		{"0", uint128.Zero},
		{"+7", uint128.From64(7)},
		{"000123", uint128.From64(123)},
		{"18446744073709551616", uint128.New(0, 1)},
		{"340282366920938463463374607431768211455", uint128.Max},
		{strings.Repeat("0", 200) + "340282366920938463463374607431768211455", uint128.Max},
	}

	for _, tt := range tests {
		t.Run(tt.in[max(0, len(tt.in)-40):], func(t *testing.T) {
			assert.NotPanics(t, func() { _, _ = lineio.ParseUint128(tt.in) })
			got, err := lineio.ParseUint128(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equals(got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestParseUint128Errors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", lineio.ErrEmpty},
		{"+", lineio.ErrSyntax},
		{"-1", lineio.ErrSyntax},
		{"12a", lineio.ErrSyntax},
		{" 12", lineio.ErrSyntax},
		{"1_000", lineio.ErrSyntax},
		{"0x10", lineio.ErrSyntax},
		{"١٢", lineio.ErrSyntax},
		{"340282366920938463463374607431768211456", lineio.ErrRange},
		{"99999999999999999999999999999999999999999999", lineio.ErrRange},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := lineio.ParseUint128(tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
