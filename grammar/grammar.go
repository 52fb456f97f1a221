// Package grammar defines the declarative grammar's view of the external
// tokenizer: the table binding the grammar's external term names to scanner
// token kinds. Rule composition and tree construction live outside this
// module; they only consume the classifications resolved here.
package grammar

import (
	"strings"

	"github.com/operon-lang/opscan"
	"github.com/operon-lang/opscan/scanner"
)

// Error codes used by grammar:
const (
	// UnknownTermError indicates a term name with no external token binding.
	UnknownTermError = opscan.GrammarErrors + iota

	// DuplicateTermError indicates two bindings sharing one term name.
	DuplicateTermError

	// NoMatchError indicates that no acceptable external token was
	// recognized where the grammar required one.
	NoMatchError
)

// Term binds one external term name to the token kind the scanner emits
// for it.
type Term struct {
	Name string
	Kind scanner.Kind
}

// Externals returns the canonical external term table of the Operon grammar.
func Externals() []Term {
	return []Term{
		{"newline", scanner.Newline},
		{"indent", scanner.Indent},
		{"dedent", scanner.Dedent},
		{"string_start", scanner.StringStart},
		{"string_content", scanner.StringContent},
		{"escape_interpolation", scanner.EscapeInterpolation},
		{"string_end", scanner.StringEnd},
	}
}

// Grammar is a compiled grammar as far as the tokenizer is concerned:
// a language name and the external term table.
type Grammar struct {
	Name  string
	kinds map[string]scanner.Kind
}

// New creates a grammar with the given external term table.
func New(name string, terms []Term) (*Grammar, error) {
	kinds := make(map[string]scanner.Kind, len(terms))
	for _, t := range terms {
		if _, used := kinds[t.Name]; used {
			return nil, opscan.FormatError(DuplicateTermError, "duplicate external term %q", t.Name)
		}
		kinds[t.Name] = t.Kind
	}

	return &Grammar{Name: name, kinds: kinds}, nil
}

// Kind resolves a single external term name.
func (g *Grammar) Kind(name string) (scanner.Kind, bool) {
	k, found := g.kinds[name]
	return k, found
}

// KindSet resolves a set of external term names to the acceptable-kind set
// passed to Scan.
func (g *Grammar) KindSet(names ...string) (scanner.KindSet, error) {
	var res scanner.KindSet
	for _, name := range names {
		k, found := g.kinds[name]
		if !found {
			return 0, opscan.FormatError(UnknownTermError, "unknown external term %q", name)
		}
		res |= scanner.Kinds(k)
	}
	return res, nil
}

// NewState creates a fresh scanner state for one parse session over this
// grammar.
func (g *Grammar) NewState() *scanner.State {
	return scanner.New()
}

// MakeNoMatchError creates the error the grammar layer reports when a scan
// comes back empty at a point where one of the named external terms was
// required. The scanner itself never raises it: a failed scan just consumes
// nothing, and turning that into a diagnostic is the grammar's business.
func MakeNoMatchError(pos opscan.SourcePos, names ...string) *opscan.Error {
	return opscan.FormatErrorPos(pos, NoMatchError, "expecting %s", strings.Join(names, " or "))
}
