package scanner

// Cursor is the view of the input the scanner works through. source.Cursor
// implements it; embedding runtimes may supply their own.
//
// A cursor serves one scan attempt. Peek returns the code point at the
// current position (0 at end of input), Advance consumes it as token text,
// Skip consumes it as insignificant surroundings. MarkEnd pins the token end
// at the current position without stopping the scan, so the scanner may look
// ahead past it. A failed scan is abandoned together with its cursor and
// consumes nothing.
type Cursor interface {
	Peek() rune
	Advance()
	Skip()
	MarkEnd()
	Eof() bool
	End() int
}

// Scan tries to recognize one token of one of the acceptable kinds at the
// cursor. End-of-input dedent flushing takes priority over string
// recognition, which takes priority over line structure: an open literal
// must progress before indentation is reinterpreted, and unterminated
// blocks must resolve at end of input before anything else.
//
// On success the returned token carries the kind and the marked end
// position. On failure no input is consumed.
func (s *State) Scan(cur Cursor, valid KindSet) (Token, bool) {
	// Unterminated blocks drain one level per call at end of input.
	if valid.Has(Dedent) && len(s.indents) > 0 && cur.Eof() {
		s.popIndent()
		return Token{Dedent, cur.End()}, true
	}

	if valid&stringKinds != 0 {
		if tok, ok := s.scanString(cur, valid); ok {
			return tok, true
		}
	}

	if valid&lineKinds != 0 {
		return s.scanLine(cur, valid)
	}

	return Token{}, false
}
