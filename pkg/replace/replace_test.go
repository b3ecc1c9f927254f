package replace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplace(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		from, to string
		want     string
	}{
		{"simple", "Hello NAME", "NAME", "World", "Hello World"},
		{"multiple", "a-a-a", "a", "b", "b-b-b"},
		{"no_match", "Hello", "NAME", "x", "Hello"},
		{"empty_from", "Hello", "", "x", "Hello"},
		{"to_contains_from", "aa", "a", "aa", "aaaa"},
		{"non_overlapping", "aaa", "aa", "b", "ba"},
		{"delete", "xNAMEx", "NAME", "", "xx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Replace(tt.text, tt.from, tt.to))
		})
	}
}

func TestMapOrder(t *testing.T) {
	m := New(map[string]string{
		"b": "c",
		"a": "b",
	})
	pairs := m.Pairs()
	require.Len(t, pairs, 2)
	assert.Equal(t, "a", pairs[0].From)
	assert.Equal(t, "b", pairs[1].From)

	// "a" -> "b" runs first, then "b" -> "c" sees its output
	assert.Equal(t, "cc", m.Apply("ab"))
}

func TestMapSetOverwrites(t *testing.T) {
	m := &Map{}
	m.Set("NAME", "one")
	m.Set("NAME", "two")
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, "two", m.Apply("NAME"))
}

func TestMapDeterministic(t *testing.T) {
	m := New(map[string]string{"foo": "bar", "Foo": "Bar", "x": ""})
	in := "foo Foo x fox"
	assert.Equal(t, m.Apply(in), m.Apply(in))
}

func TestMapParse(t *testing.T) {
	m := &Map{}
	require.NoError(t, m.Parse("NAME=World"))
	require.NoError(t, m.Parse("KEY=a=b"))
	require.NoError(t, m.Parse("GONE="))

	assert.Equal(t, "World a=b ", m.Apply("NAME KEY GONE"))

	assert.Error(t, m.Parse("novalue"))
	assert.ErrorIs(t, m.Parse("=x"), ErrEmptyFrom)
}

func TestNilMap(t *testing.T) {
	var m *Map
	assert.Equal(t, "text", m.Apply("text"))
	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Pairs())
}
