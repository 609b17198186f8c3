// Package radix expresses unsigned 128-bit integers in a positional numeral
// system whose digits are printable ASCII characters.
//
// A Settings value picks three independent character blocks (symbols,
// numbers, letters). Their concatenation, always in that order, is the
// Corpus: the digit alphabet. The corpus length is the radix, and digit
// value v is written as the byte at index v.
//
//	conv := radix.NewConverter(radix.DefaultSettings())
//	fmt.Println(conv.Convert(uint128.Max)) // 7t42bDG5jpsS9t8Tw7cqO7
//
// Settings are usually parsed from a 3-character selector such as "dao"
// (symbols disabled, numbers all, letters sensitive-ordered) or from a
// preset name such as "base62"; see ParseSettings.
//
// Converters are immutable and safe for concurrent use.
package radix
