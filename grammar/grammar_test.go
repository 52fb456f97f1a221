package grammar

import (
	"strings"
	"testing"

	"github.com/operon-lang/opscan/internal/test"
	"github.com/operon-lang/opscan/scanner"
	"github.com/operon-lang/opscan/source"
)

func operon(t *testing.T) *Grammar {
	t.Helper()
	g, e := New("operon", Externals())
	test.Assert(t, e == nil, "unexpected error: %v", e)
	return g
}

func TestExternalsCoverAllKinds(t *testing.T) {
	g := operon(t)
	set, e := g.KindSet("newline", "indent", "dedent", "string_start",
		"string_content", "escape_interpolation", "string_end")
	test.Assert(t, e == nil, "unexpected error: %v", e)
	test.Assert(t, set == scanner.AllKinds, "expecting all kinds, got %b", set)
}

func TestKindSet(t *testing.T) {
	g := operon(t)

	set, e := g.KindSet("newline", "indent", "dedent")
	test.Assert(t, e == nil, "unexpected error: %v", e)
	test.Assert(t, set == scanner.Kinds(scanner.Newline, scanner.Indent, scanner.Dedent),
		"unexpected set %b", set)

	set, e = g.KindSet()
	test.Assert(t, e == nil, "unexpected error: %v", e)
	test.Assert(t, set == 0, "expecting empty set, got %b", set)

	_, e = g.KindSet("newline", "comment")
	test.ExpectErrorCode(t, UnknownTermError, e)
}

func TestKind(t *testing.T) {
	g := operon(t)

	k, found := g.Kind("string_start")
	test.ExpectBool(t, true, found)
	test.Assert(t, k == scanner.StringStart, "expecting string-start, got %s", k)

	_, found = g.Kind("comment")
	test.ExpectBool(t, false, found)
}

func TestDuplicateTerm(t *testing.T) {
	_, e := New("operon", []Term{
		{"newline", scanner.Newline},
		{"newline", scanner.Indent},
	})
	test.ExpectErrorCode(t, DuplicateTermError, e)
}

func TestNoMatchError(t *testing.T) {
	src := source.New("lib.op", []byte("a:\nb"))
	e := MakeNoMatchError(src.At(3), "indent", "newline")

	test.ExpectErrorCode(t, NoMatchError, e)
	test.ExpectString(t, "lib.op", e.SourceName)
	test.ExpectInt(t, 2, e.Line)
	test.ExpectInt(t, 1, e.Col)
	test.Assert(t, strings.Contains(e.Error(), "expecting indent or newline"),
		"unexpected message %q", e.Error())
	test.Assert(t, strings.Contains(e.Error(), "in lib.op at line 2 col 1"),
		"expecting position in message, got %q", e.Error())
}

func TestNewState(t *testing.T) {
	g := operon(t)
	s := g.NewState()
	test.Assert(t, s != nil, "expecting a state")
	test.ExpectInt(t, 0, s.Depth())
	test.ExpectBool(t, false, s.Interpolation())
}
