// Package replace applies ordered literal substitutions to file names and
// decoded file contents.
package replace

import (
	"sort"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ErrEmptyFrom is returned when a pair with an empty search string is added
var ErrEmptyFrom = errors.Base("replacement source string is empty")

// Pair is a single from -> to substitution
type Pair struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// Map is an ordered set of substitutions with unique From keys, kept sorted
// by From. Pairs are applied one after another, so a later pair may match
// text introduced by an earlier pair's To.
type Map struct {
	pairs []Pair
}

// New builds a Map from a plain map
func New(m map[string]string) *Map {
	r := &Map{}
	for from, to := range m {
		r.Set(from, to)
	}
	return r
}

// Set adds or overwrites the substitution for from
func (m *Map) Set(from, to string) {
	i := sort.Search(len(m.pairs), func(i int) bool { return m.pairs[i].From >= from })
	if i < len(m.pairs) && m.pairs[i].From == from {
		m.pairs[i].To = to
		return
	}
	m.pairs = append(m.pairs, Pair{})
	copy(m.pairs[i+1:], m.pairs[i:])
	m.pairs[i] = Pair{From: from, To: to}
}

// Parse adds a "FROM=TO" pair, splitting at the first '='
func (m *Map) Parse(arg string) error {
	from, to, ok := strings.Cut(arg, "=")
	if !ok {
		return errors.Errorf("replacement %q must have the form FROM=TO", arg)
	}
	if from == "" {
		return errors.WithStack(ErrEmptyFrom)
	}
	m.Set(from, to)
	return nil
}

// Pairs returns the substitutions in application order
func (m *Map) Pairs() []Pair {
	if m == nil {
		return nil
	}
	out := make([]Pair, len(m.pairs))
	copy(out, m.pairs)
	return out
}

// Len returns the number of pairs
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.pairs)
}

// Apply runs every pair over text in order
func (m *Map) Apply(text string) string {
	if m == nil {
		return text
	}
	for _, p := range m.pairs {
		text = Replace(text, p.From, p.To)
	}
	return text
}

// Replace substitutes non-overlapping occurrences of from, scanning left to
// right and resuming after each inserted to. An empty from never matches.
func Replace(text, from, to string) string {
	if from == "" || !strings.Contains(text, from) {
		return text
	}
	return strings.ReplaceAll(text, from, to)
}
