package dfaspec

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automatalab/internal/dfa"
)

func load(t *testing.T, path, name string) *dfa.DFA {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	d, err := Load(path, f, name)
	require.NoError(t, err)
	return d
}

func word(s string) []dfa.Symbol {
	var w []dfa.Symbol
	for _, f := range strings.Fields(s) {
		w = append(w, dfa.Symbol(f))
	}
	return w
}

func TestLoadZeros(t *testing.T) {
	d := load(t, "testdata/zeros.dfa", "zeros_mod3")
	assert.Equal(t, []dfa.State{"q0", "q1", "q2"}, d.States())
	assert.Equal(t, []dfa.Symbol{"0", "1"}, d.Alphabet())
	assert.Equal(t, dfa.State("q0"), d.Start())
	assert.True(t, d.Total())
	assert.True(t, d.Accepts(word("0 0")))
	assert.False(t, d.Accepts(word("0")))
	assert.True(t, d.Accepts(word("1 1 1 0 0")))
	assert.False(t, d.Accepts(word("0 1 0 1 0 1 0")))

	same := dfa.ZerosModThree()
	assert.Equal(t, same.Transitions(), d.Transitions())
	assert.Equal(t, same.Accepting(), d.Accepting())
}

func TestLoadFirstByDefault(t *testing.T) {
	d := load(t, "testdata/zeros.dfa", "")
	assert.Equal(t, []dfa.State{"q2"}, d.Accepting())
	assert.False(t, d.Accepts(word("0 0 0")))
}

func TestFinalFlag(t *testing.T) {
	d := load(t, "testdata/zeros.dfa", "ends_00")
	assert.Equal(t, []dfa.State{"q2"}, d.Accepting())
	assert.True(t, d.Accepts(word("0 0 0")))
	assert.False(t, d.Accepts(word("0 0 1")))
}

func TestPartial(t *testing.T) {
	d := load(t, "testdata/partial.dfa", "abc")
	assert.False(t, d.Total())
	assert.True(t, d.Accepts(word("a c")))
	assert.True(t, d.Accepts(word("a b b c")))
	assert.False(t, d.Accepts(word("a b")))
	assert.False(t, d.Accepts(word("c")))
}

func TestBuildAll(t *testing.T) {
	src, err := os.ReadFile("testdata/zeros.dfa")
	require.NoError(t, err)
	f, err := ParseString("zeros.dfa", string(src))
	require.NoError(t, err)
	all, err := f.Build()
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Contains(t, all, "zeros_mod3")
	assert.Contains(t, all, "ends_00")
}

func TestUnknownStateIsReported(t *testing.T) {
	f, err := os.Open("testdata/broken.dfa")
	require.NoError(t, err)
	defer f.Close()
	_, err = Load("testdata/broken.dfa", f, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, dfa.ErrUnknownState)
	assert.Contains(t, err.Error(), "testdata/broken.dfa:1:1")
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name, src, lookup string
	}{
		{"syntax", "dfa x { states p q; }", ""},
		{"missing arrow", "dfa x { states p; start p; p 0 p; }", ""},
		{"empty file", "# nothing here\n", ""},
		{"unknown name", "dfa x { states p; start p; }", "y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.name, strings.NewReader(tt.src), tt.lookup)
			assert.Error(t, err)
		})
	}
}

func TestDuplicateNames(t *testing.T) {
	f, err := ParseString("dup", "dfa x { states p; start p; } dfa x { states q; start q; }")
	require.NoError(t, err)
	_, err = f.Build()
	assert.Error(t, err)
}

func TestClausesAccumulate(t *testing.T) {
	f, err := ParseString("acc", `dfa x {
		states p;
		states final q;
		alphabet a;
		alphabet b;
		start p;
		p a -> q;
		q b -> p;
	}`)
	require.NoError(t, err)
	a, err := f.Lookup("x")
	require.NoError(t, err)
	desc := a.Description()
	assert.Len(t, desc.States, 2)
	assert.Len(t, desc.Alphabet, 2)
	assert.Len(t, desc.Transitions, 2)
	d, err := a.Build()
	require.NoError(t, err)
	assert.True(t, d.Accepts(word("a b a")))
}
