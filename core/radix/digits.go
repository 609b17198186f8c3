package radix

import (
	"iter"

	"lukechampine.com/uint128"

	"github.com/opal-lang/asciinum/core/invariant"
)

// maxDigits is the length of uint128.Max in base 2, the longest possible
// digit sequence.
const maxDigits = 128

// Digits yields the digit values of v in the given radix, least
// significant first. Every yielded value is in [0, radix). A value smaller
// than the radix, zero included, yields exactly one digit.
//
// The sequence is restartable: each range over it starts again from v.
// radix must be at least 2.
func Digits(v uint128.Uint128, radix uint64) iter.Seq[uint64] {
	invariant.Precondition(radix >= 2, "radix must be at least 2, got %d", radix)

	return func(yield func(uint64) bool) {
		n := v
		for n.Cmp64(radix) >= 0 {
			q, r := n.QuoRem64(radix)
			if !yield(r) {
				return
			}
			invariant.Invariant(q.Cmp(n) < 0, "quotient must shrink")
			n = q
		}
		yield(n.Lo)
	}
}

// AppendDigits appends the digit values of v to dst, least significant
// first, and returns the extended slice.
func AppendDigits(dst []uint64, v uint128.Uint128, radix uint64) []uint64 {
	for d := range Digits(v, radix) {
		dst = append(dst, d)
	}
	return dst
}
