package binding

import (
	"testing"

	"github.com/operon-lang/opscan/grammar"
	"github.com/operon-lang/opscan/internal/test"
)

func TestCapsule(t *testing.T) {
	g, e := grammar.New("operon", grammar.Externals())
	test.Assert(t, e == nil, "unexpected error: %v", e)

	c, e := Wrap(g)
	test.Assert(t, e == nil, "unexpected error: %v", e)
	test.Assert(t, c.Language() == g, "capsule does not return the wrapped grammar")
}

func TestExport(t *testing.T) {
	g, e := grammar.New("operon", grammar.Externals())
	test.Assert(t, e == nil, "unexpected error: %v", e)

	ex, e := NewExport(g)
	test.Assert(t, e == nil, "unexpected error: %v", e)
	test.ExpectString(t, "operon", ex.Name())
	test.Assert(t, ex.Language() == g, "export does not return the wrapped grammar")
}

func TestNilGrammar(t *testing.T) {
	_, e := Wrap(nil)
	test.ExpectErrorCode(t, NilGrammarError, e)

	_, e = NewExport(nil)
	test.ExpectErrorCode(t, NilGrammarError, e)
}
