// Package wildcard matches base names against case-insensitive '?' and '*'
// patterns.
package wildcard

import "unicode"

// Match reports whether the whole of name matches the whole of pattern.
// '?' matches exactly one character and '*' matches any run, including an
// empty one. Every other character matches itself ignoring case.
//
// Backtracking only ever resumes from the most recent '*', so the loop runs
// without recursion regardless of how many stars the pattern holds.
func Match(name, pattern string) bool {
	s := []rune(name)
	p := []rune(pattern)

	si, pi := 0, 0
	star, mark := -1, 0
	for si < len(s) {
		switch {
		case pi < len(p) && p[pi] == '*':
			star = pi
			mark = si
			pi++
		case pi < len(p) && (p[pi] == '?' || equalFold(p[pi], s[si])):
			si++
			pi++
		case star >= 0:
			// let the last star swallow one more character
			mark++
			si = mark
			pi = star + 1
		default:
			return false
		}
	}
	for pi < len(p) && p[pi] == '*' {
		pi++
	}
	return pi == len(p)
}

// MatchAny reports whether name matches at least one of the patterns
func MatchAny(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if Match(name, pattern) {
			return true
		}
	}
	return false
}

func equalFold(a, b rune) bool {
	return a == b || unicode.ToUpper(a) == unicode.ToUpper(b)
}
