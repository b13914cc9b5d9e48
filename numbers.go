package puzzlekit

import (
	"fmt"
	"strconv"

	"github.com/iw2rmb/puzzlekit/internal/ascii"
)

// ExtractNumbers returns a scanner over all disjoint maximal runs of ASCII
// digits in s, each possibly preceded by an immediately adjacent '-' sign.
//
// The yielded tokens are substrings of s; no copies are made. A '-' with no
// digit directly after it is never part of a token, so "7-7-23" yields
// "7", "-7", "-23".
func ExtractNumbers(s string) *Numbers {
	return &Numbers{remainder: s}
}

// Numbers is a forward-only cursor over the numbers of a source string,
// created by ExtractNumbers. A fresh cursor can be created from the same
// source at any time; cursors are independent.
type Numbers struct {
	remainder string
}

// Next returns the next number token and true, or "" and false once the
// source is exhausted.
func (n *Numbers) Next() (string, bool) {
	digit := -1
	for i := 0; i < len(n.remainder); i++ {
		if ascii.IsDigit(n.remainder[i]) {
			digit = i
			break
		}
	}
	if digit < 0 {
		n.remainder = ""
		return "", false
	}

	start := digit
	if digit > 0 && n.remainder[digit-1] == '-' {
		start = digit - 1
	}

	end := digit + 1
	for end < len(n.remainder) && ascii.IsDigit(n.remainder[end]) {
		end++
	}

	token := n.remainder[start:end]
	n.remainder = n.remainder[end:]
	return token, true
}

// Collect drains the cursor and returns all remaining tokens in order.
func (n *Numbers) Collect() []string {
	var out []string
	for {
		tok, ok := n.Next()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}

// ExtractInts extracts every number of s and parses it as an int.
//
// It panics if a token does not fit in an int; use ExtractNumbers and parse
// the tokens yourself when inputs may hold arbitrarily large numbers.
func ExtractInts(s string) []int {
	var out []int
	numbers := ExtractNumbers(s)
	for {
		tok, ok := numbers.Next()
		if !ok {
			return out
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			panic(fmt.Sprintf("puzzlekit: number %q does not fit in an int: %v", tok, err))
		}
		out = append(out, v)
	}
}
