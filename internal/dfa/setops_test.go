package dfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func partial() *DFA {
	return MustNew(Description{
		States:      []StateSpec{{Name: "a"}, {Name: "b", Final: true}},
		Alphabet:    []Symbol{"0", "1"},
		Transitions: []Transition{{"a", "0", "b"}, {"b", "1", "b"}},
		Start:       "a",
	})
}

func TestComplete(t *testing.T) {
	d := partial()
	c := d.Complete()
	require.True(t, c.Total())
	assert.Len(t, c.States(), 3)
	assert.False(t, c.IsAccepting("sink"))
	for _, w := range words(6) {
		assert.Equal(t, d.Accepts(w), c.Accepts(w), "word %v", w)
	}
	total := ZerosModThree()
	assert.Same(t, total, total.Complete())
}

func TestCompleteAvoidsNameClash(t *testing.T) {
	d := MustNew(Description{
		States:   []StateSpec{{Name: "sink", Final: true}},
		Alphabet: []Symbol{"x"},
		Start:    "sink",
	})
	c := d.Complete()
	assert.Equal(t, []State{"sink", "sink1"}, c.States())
	assert.True(t, c.Accepts(nil))
	assert.False(t, c.Accepts(word("x")))
}

func TestComplement(t *testing.T) {
	d := partial()
	c := d.Complement()
	for _, w := range words(6) {
		assert.NotEqual(t, d.Accepts(w), c.Accepts(w), "word %v", w)
	}
}

func TestIntersectAndUnion(t *testing.T) {
	a, b := ZerosModThree(), EndsWithTwoZeros()
	both, err := Intersect(a, b)
	require.NoError(t, err)
	either, err := Union(a, b)
	require.NoError(t, err)
	for _, w := range words(7) {
		assert.Equal(t, a.Accepts(w) && b.Accepts(w), both.Accepts(w), "intersect %v", w)
		assert.Equal(t, a.Accepts(w) || b.Accepts(w), either.Accepts(w), "union %v", w)
	}
}

func TestProductNeedsSameAlphabet(t *testing.T) {
	other := MustNew(Description{
		States:   []StateSpec{{Name: "s", Final: true}},
		Alphabet: []Symbol{"a"},
		Start:    "s",
	})
	_, err := Intersect(ZerosModThree(), other)
	assert.ErrorIs(t, err, ErrAlphabet)
}
