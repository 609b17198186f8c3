package lineio

import (
	"errors"
	"math/big"

	"lukechampine.com/uint128"

	"github.com/opal-lang/asciinum/core/invariant"
)

var (
	// ErrSyntax is returned for text that is not a decimal unsigned integer.
	ErrSyntax = errors.New("invalid digit found in string")
	// ErrRange is returned for values above 2^128-1.
	ErrRange = errors.New("number too large to fit in target type")
	// ErrEmpty is returned for an empty string.
	ErrEmpty = errors.New("cannot parse integer from empty string")
)

// ParseUint128 parses s as a decimal unsigned 128-bit integer. An optional
// leading '+' is accepted; anything else that is not an ASCII digit is a
// syntax error.
func ParseUint128(s string) (uint128.Uint128, error) {
	digits := s
	if len(digits) > 0 && digits[0] == '+' {
		digits = digits[1:]
	}
	if digits == "" {
		if s == "" {
			return uint128.Zero, ErrEmpty
		}
		return uint128.Zero, ErrSyntax
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return uint128.Zero, ErrSyntax
		}
	}

	n, ok := new(big.Int).SetString(digits, 10)
	invariant.Invariant(ok, "digit-only string %q rejected by big.Int", digits)
	if n.BitLen() > 128 {
		return uint128.Zero, ErrRange
	}
	return uint128.FromBig(n), nil
}
