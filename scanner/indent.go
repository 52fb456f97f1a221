package scanner

func isSpace(c rune) bool {
	return c == ' ' || c == '\t'
}

func isLineBreak(c rune) bool {
	return c == '\n' || c == '\r'
}

// skipComment skips a comment run up to (not including) the line terminator.
func skipComment(cur Cursor) {
	for !cur.Eof() && !isLineBreak(cur.Peek()) {
		cur.Skip()
	}
}

// skipLineBreak consumes one line terminator using fn, accepting both the
// one-character and the two-character convention.
func skipLineBreak(cur Cursor, fn func()) {
	fn()
	if cur.Peek() == '\n' {
		fn()
	}
}

// measureIndent counts the leading whitespace of the line at the cursor.
// Width is the raw number of space and tab characters; tabs are not
// expanded to a stop, so visually aligned mixed indentation may compare
// unequal.
func measureIndent(cur Cursor) int {
	width := 0
	for isSpace(cur.Peek()) {
		width++
		cur.Skip()
	}
	return width
}

// scanLine recognizes line structure: a newline, or a newline reinterpreted
// as an indentation change. The emitted token always ends right after the
// line terminator; everything measured beyond it is lookahead.
func (s *State) scanLine(cur Cursor, valid KindSet) (Token, bool) {
	for isSpace(cur.Peek()) {
		cur.Skip()
	}
	if cur.Peek() == '#' {
		skipComment(cur)
	}

	if !isLineBreak(cur.Peek()) {
		return Token{}, false
	}

	skipLineBreak(cur, cur.Advance)
	cur.MarkEnd()

	width := measureIndent(cur)

	// Blank and comment-only lines never carry structure; measure the next
	// line instead.
	for isLineBreak(cur.Peek()) || cur.Peek() == '#' {
		if cur.Peek() == '#' {
			skipComment(cur)
		}
		if isLineBreak(cur.Peek()) {
			skipLineBreak(cur, cur.Skip)
		}
		width = measureIndent(cur)
	}

	top := s.topIndent()
	switch {
	case width > top && valid.Has(Indent):
		s.pushIndent(width)
		return Token{Indent, cur.End()}, true

	case width < top && valid.Has(Dedent):
		// One level per call; the grammar re-invokes for deeper dedents.
		s.popIndent()
		return Token{Dedent, cur.End()}, true

	default:
		if valid.Has(Newline) {
			return Token{Newline, cur.End()}, true
		}
		return Token{}, false
	}
}
