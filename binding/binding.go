// Package binding contains the thin adapters exposing a compiled grammar and
// its tokenizer to embedding runtimes. Neither adapter contains tokenizer
// logic; they wrap the native entry point the way a host expects to receive
// it: as an opaque capability, optionally tagged with a human-readable name.
package binding

import (
	"github.com/operon-lang/opscan"
	"github.com/operon-lang/opscan/grammar"
)

// Error codes used by binding:
const (
	// NilGrammarError indicates an attempt to wrap a nil grammar.
	NilGrammarError = opscan.BindingErrors + iota
)

// Capsule is an opaque capability object around the grammar+tokenizer entry
// point. Hosts pass it around without inspecting it.
type Capsule struct {
	g *grammar.Grammar
}

// Wrap creates a capsule around a compiled grammar.
func Wrap(g *grammar.Grammar) (Capsule, error) {
	if g == nil {
		return Capsule{}, opscan.FormatError(NilGrammarError, "cannot wrap nil grammar")
	}
	return Capsule{g}, nil
}

// Language returns the wrapped entry point.
func (c Capsule) Language() *grammar.Grammar {
	return c.g
}

// Export is a capsule that additionally exposes the language name, for hosts
// that surface it to users.
type Export struct {
	Capsule
}

// NewExport creates a named export around a compiled grammar.
func NewExport(g *grammar.Grammar) (Export, error) {
	c, e := Wrap(g)
	if e != nil {
		return Export{}, e
	}
	return Export{c}, nil
}

// Name returns the human-readable language name.
func (e Export) Name() string {
	return e.g.Name
}
