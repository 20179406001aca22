package token

import (
	"math/big"
	"strings"
)

// ParseNumber strips spec.md §4.1's underscore separators and parses the
// literal as an arbitrary-precision unsigned integer, base 16 for
// 0x-prefixed literals and base 10 otherwise. Number arithmetic itself is
// an out-of-scope external collaborator (spec.md §1); this is just the
// literal decode the lexer/parser boundary needs to populate the AST.
func ParseNumber(literal string) (*big.Int, bool) {
	clean := strings.ReplaceAll(literal, "_", "")
	n := new(big.Int)
	if strings.HasPrefix(clean, "0x") || strings.HasPrefix(clean, "0X") {
		_, ok := n.SetString(clean[2:], 16)
		return n, ok
	}
	_, ok := n.SetString(clean, 10)
	return n, ok
}
