package wildcard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    bool
	}{
		{"", "", true},
		{"", "?", false},
		{"", "*", true},
		{"a", "", false},
		{"a", "?", true},
		{"a", "*", true},
		{"same", "same", true},
		{"not", "same", false},
		{"abc", "abc", true},
		{"abc", "ABC", true},
		{"ABC", "abc", true},
		{"abc", "a*", true},
		{"ABC", "A*", true},
		{"abc", "ab?", true},
		{"ABC", "a??", true},
		{"abc", "*c", true},
		{"ABC", "*c", true},
		{"abc", "abc?", false},
		{"abc", "?abc", false},
		{"abc", "a*c", true},
		{"ABC", "a*c", true},
		{"abc", "a*b*c", true},
		{"abcbc", "a*bc", true},
		{"abcb", "a*bc", false},
		{"secret.bin", "*.bin", true},
		{"secret.BIN", "*.bin", true},
		{"secret.bin.txt", "*.bin", false},
		{".git", ".git", true},
		{"q", "q", true},
		{"Q", "q", true},
		{"ÉTÉ", "été", true},
		{"x", "**", true},
		{"", "**?", false},
	}

	for _, tt := range tests {
		t.Run(tt.name+"~"+tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.name, tt.pattern))
		})
	}
}

func TestMatchManyStars(t *testing.T) {
	name := strings.Repeat("a", 200)
	pattern := strings.Repeat("*", 1000) + "b"
	assert.False(t, Match(name, pattern))
	assert.True(t, Match(name+"b", pattern))
}

func TestMatchAny(t *testing.T) {
	patterns := []string{"q", "*.bin", ".git", ".svg", ".vs"}
	assert.True(t, MatchAny("firmware.bin", patterns))
	assert.True(t, MatchAny(".VS", patterns))
	assert.False(t, MatchAny("main.go", patterns))
	assert.False(t, MatchAny("anything", nil))
}
