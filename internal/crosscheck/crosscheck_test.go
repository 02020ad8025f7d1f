package crosscheck

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrammarSyntax(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"a", "a"},
		{"ab", "cat(a,b)"},
		{"a|b|c", "alt(a,b,c)"},
		{"a|bc*", "alt(a,cat(b,star(c)))"},
		{"(a|b)*c", "cat(star(group(alt(a,b))),c)"},
		{"a**", "star(star(a))"},
		{" ( a ) ", "group(a)"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			ast, err := Parse(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ast.Syntax())
		})
	}
}

func TestGrammarRejects(t *testing.T) {
	for _, src := range []string{"", "*a", "|a", "a|", "()", "(a", "a)", "aB", "a+"} {
		_, err := Parse(src)
		assert.Error(t, err, "pattern %q", src)
	}
}

func TestCompareAgrees(t *testing.T) {
	for _, src := range []string{
		"a",
		"(abc|(cd*|ab)*|cde(fd)*)*",
		"abc(cd|(ab)*)|def|abc|(c*d*a*)*",
		"abc(cd*|e)|(ab|cd*(ab)ab",
		"*abc",
		"a1",
	} {
		r := Compare(src)
		assert.True(t, r.Agree(), "pattern %q: tree=%q (%v) grammar=%q (%v)", src, r.Tree, r.TreeErr, r.Grammar, r.GrammarErr)
	}
}

func TestCompareReport(t *testing.T) {
	r := Compare("a|b*")
	require.NoError(t, r.TreeErr)
	require.NoError(t, r.GrammarErr)
	assert.Equal(t, "alt(a,star(b))", r.Tree)
	assert.Equal(t, r.Tree, r.Grammar)
	assert.Equal(t, "a|b*", r.Spelled)

	r = Compare("(a")
	assert.Error(t, r.TreeErr)
	assert.Error(t, r.GrammarErr)
	assert.Empty(t, r.Tree)
	assert.True(t, r.Agree())
}

func TestReportDisagreement(t *testing.T) {
	assert.False(t, Report{Tree: "a", Grammar: "b"}.Agree())
	assert.False(t, Report{TreeErr: assert.AnError, Grammar: "a"}.Agree())
	assert.False(t, Report{Tree: "a", GrammarErr: assert.AnError}.Agree())
	assert.False(t, Report{Pattern: "ab", Tree: "cat(a,b)", Grammar: "cat(a,b)", Spelled: "a"}.Agree())
}

func TestCompareSpellsPatternBack(t *testing.T) {
	r := Compare(" ( a | b ) * c ")
	require.NoError(t, r.TreeErr)
	assert.Equal(t, "(a|b)*c", r.Spelled)
	assert.True(t, r.Agree())
}

// Random strings over the token alphabet exercise both accept and reject paths.
func TestCompareRandomPatterns(t *testing.T) {
	const alphabet = "ab()|* "
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		n := 1 + rng.Intn(8)
		buf := make([]byte, n)
		for j := range buf {
			buf[j] = alphabet[rng.Intn(len(alphabet))]
		}
		r := Compare(string(buf))
		if !r.Agree() {
			t.Fatalf("pattern %q: tree=%q (%v) grammar=%q (%v)", buf, r.Tree, r.TreeErr, r.Grammar, r.GrammarErr)
		}
	}
}
