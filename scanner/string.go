package scanner

// scanString recognizes the next piece of a string literal: an opening
// delimiter with its prefix letters, a run of content, a doubled-brace
// escape, or the closing delimiter. Which pieces are tried is gated by the
// acceptable kinds and by whether a literal is currently open.
func (s *State) scanString(cur Cursor, valid KindSet) (Token, bool) {
	if valid.Has(StringStart) {
		if tok, ok := s.scanStart(cur); ok {
			return tok, true
		}
	}

	d, open := s.openDelimiter()
	if !open {
		return Token{}, false
	}

	if valid.Has(StringContent) {
		tok, ok, handedOff := s.scanContent(cur, d, valid)
		if ok {
			return tok, true
		}
		// An interpolation hand-off aborts the whole string scan: the brace
		// belongs to the grammar's expression rules, and the end scan must
		// not run on the cursor that already stepped over it.
		if handedOff {
			return Token{}, false
		}
	}

	if valid.Has(StringEnd) {
		return s.scanEnd(cur, d)
	}

	return Token{}, false
}

// scanStart consumes prefix letters and the opening quote run. Prefix
// letters accumulate in any order and combination; validating odd
// combinations is left to a later pass.
func (s *State) scanStart(cur Cursor) (Token, bool) {
	d := Delimiter{}

loop:
	for {
		switch cur.Peek() {
		case 'r', 'R':
			d.Raw = true
		case 'f', 'F':
			d.Format = true
		case 'b', 'B', 'u', 'U':
			// recognized, not load-bearing
		default:
			break loop
		}
		cur.Advance()
	}

	quote := cur.Peek()
	if quote != '"' && quote != '\'' {
		return Token{}, false
	}
	d.Quote = quote
	cur.Advance()

	if cur.Peek() == quote {
		cur.Advance()
		if cur.Peek() == quote {
			cur.Advance()
			d.Triple = true
		} else {
			// Empty two-character literal: the whole thing is the start
			// token, no content or end phases follow.
			cur.MarkEnd()
			return Token{StringStart, cur.End()}, true
		}
	}

	cur.MarkEnd()
	s.pushDelimiter(d)
	return Token{StringStart, cur.End()}, true
}

// scanContent accumulates literal text until the closing sequence, an
// interpolation boundary, an unescaped terminator in a one-line literal, or
// end of input. Escape pairs are counted as content and never interpreted.
// handedOff reports that a lone brace started an interpolation expression;
// the caller must fail the scan without trying anything else.
func (s *State) scanContent(cur Cursor, d Delimiter, valid KindSet) (tok Token, ok, handedOff bool) {
	hasContent := false

	for {
		if cur.Eof() {
			break
		}

		c := cur.Peek()

		if c == d.Quote {
			if !d.Triple {
				break
			}

			cur.MarkEnd()
			cur.Advance()
			if cur.Peek() == d.Quote {
				cur.Advance()
				if cur.Peek() == d.Quote {
					// Closing run found; content stops just before it.
					if hasContent {
						return Token{StringContent, cur.End()}, true, false
					}
					if valid.Has(StringEnd) {
						cur.Advance()
						cur.MarkEnd()
						s.popDelimiter()
						return Token{StringEnd, cur.End()}, true, false
					}
					return Token{}, false, false
				}
			}
			// A short quote run inside a triple-quoted literal is content.
			hasContent = true
			continue
		}

		// A raw terminator leaves a one-line literal unterminated; stop
		// without consuming it and let the end scan report no match.
		if !d.Triple && isLineBreak(c) {
			break
		}

		if d.Format && (c == '{' || c == '}') {
			if hasContent {
				cur.MarkEnd()
				return Token{StringContent, cur.End()}, true, false
			}
			cur.Advance()
			if cur.Peek() == c {
				// Doubled brace: a literal brace character.
				cur.Advance()
				cur.MarkEnd()
				return Token{EscapeInterpolation, cur.End()}, true, false
			}
			// A lone brace hands control to the grammar's expression rules.
			return Token{}, false, true
		}

		if !d.Raw && c == '\\' {
			cur.Advance()
			if !cur.Eof() {
				cur.Advance()
			}
			hasContent = true
			continue
		}

		cur.Advance()
		hasContent = true
	}

	if hasContent {
		cur.MarkEnd()
		return Token{StringContent, cur.End()}, true, false
	}

	return Token{}, false, false
}

// scanEnd requires the exact closing sequence at the cursor.
func (s *State) scanEnd(cur Cursor, d Delimiter) (Token, bool) {
	if cur.Peek() != d.Quote {
		return Token{}, false
	}

	cur.Advance()
	if d.Triple {
		for i := 0; i < 2; i++ {
			if cur.Peek() != d.Quote {
				return Token{}, false
			}
			cur.Advance()
		}
	}

	cur.MarkEnd()
	s.popDelimiter()
	return Token{StringEnd, cur.End()}, true
}
