package shell

import "strings"

// tokenDelimiters is the exact splitting set: space, tab, carriage
// return, newline and bell.
const tokenDelimiters = " \t\r\n\a"

// Tokenize splits a raw input line into whitespace delimited words.
// Runs of delimiters collapse so empty tokens never appear, and there's
// no quoting or escaping, so a delimiter can never be part of a token.
// Empty and all-delimiter lines yield no tokens.
func Tokenize(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return strings.ContainsRune(tokenDelimiters, r)
	})
}
