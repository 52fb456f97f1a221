/*
Package scanner recognizes the context-sensitive tokens of the Operon
lexical grammar: newline/indent/dedent structure and string literals with
prefixes, triple quoting, escapes, and interpolation boundaries.

The scanner is a plain state value threaded through every call. A State owns
two stacks: the widths of currently open indentation blocks and the
descriptors of currently open string literals. One State serves one parse
session at a time; independent sessions use independent States. State
snapshots for incremental reparsing are produced by Serialize and brought
back by Restore.

Every scan has exactly two outcomes: one recognized token, or no match with
no input consumed. Lexical errors (unterminated literals, inconsistent
indentation) surface as "no match"; the grammar layer decides what to do
with them.
*/
package scanner

// Delimiter describes one open string literal: its quote character and the
// modifiers that affect how content is scanned. Bytes/unicode prefixes are
// recognized by the start scanner but change nothing here, so they are not
// recorded.
type Delimiter struct {
	Quote  rune
	Triple bool
	Raw    bool
	Format bool
}

// State is the persistent scanner state. The zero value is a valid empty
// state: no open blocks, no open strings.
type State struct {
	indents       []uint16
	delimiters    []Delimiter
	interpolation bool
}

// New creates an empty scanner state.
func New() *State {
	return &State{}
}

// Depth returns the number of currently open indentation blocks.
func (s *State) Depth() int {
	return len(s.indents)
}

// Interpolation reports whether the innermost open string literal is a
// format string, i.e. whether "{" at the cursor starts an embedded
// expression. False when no string is open.
func (s *State) Interpolation() bool {
	return s.interpolation
}

func (s *State) topIndent() int {
	if len(s.indents) == 0 {
		return 0
	}
	return int(s.indents[len(s.indents)-1])
}

func (s *State) pushIndent(width int) {
	s.indents = append(s.indents, uint16(width))
}

func (s *State) popIndent() {
	s.indents = s.indents[:len(s.indents)-1]
}

func (s *State) openDelimiter() (Delimiter, bool) {
	if len(s.delimiters) == 0 {
		return Delimiter{}, false
	}
	return s.delimiters[len(s.delimiters)-1], true
}

// interpolation is derived state: it mirrors the format flag of the
// innermost open literal and must be recomputed after every push and pop.
func (s *State) syncInterpolation() {
	d, open := s.openDelimiter()
	s.interpolation = open && d.Format
}

func (s *State) pushDelimiter(d Delimiter) {
	s.delimiters = append(s.delimiters, d)
	s.syncInterpolation()
}

func (s *State) popDelimiter() {
	s.delimiters = s.delimiters[:len(s.delimiters)-1]
	s.syncInterpolation()
}

func (s *State) reset() {
	s.indents = s.indents[:0]
	s.delimiters = s.delimiters[:0]
	s.interpolation = false
}

// Equal reports whether two states describe the same logical scanner state.
func (s *State) Equal(other *State) bool {
	if len(s.indents) != len(other.indents) || len(s.delimiters) != len(other.delimiters) ||
		s.interpolation != other.interpolation {
		return false
	}

	for i, w := range s.indents {
		if other.indents[i] != w {
			return false
		}
	}
	for i, d := range s.delimiters {
		if other.delimiters[i] != d {
			return false
		}
	}
	return true
}
