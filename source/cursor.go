package source

import (
	"unicode/utf8"
)

// Cursor walks a Source one code point at a time on behalf of a single scan
// attempt. It distinguishes text consumed as part of the token (Advance)
// from text skipped around it (Skip), and keeps a marked token end that may
// trail behind lookahead. A scan that recognizes nothing simply abandons its
// cursor, so a failed attempt never consumes input.
type Cursor struct {
	src      *Source
	pos      int
	start    int
	end      int
	advanced bool
}

// NewCursor creates a cursor positioned at byte offset pos.
// The marked end starts at pos.
func NewCursor(src *Source, pos int) *Cursor {
	if pos < 0 {
		pos = 0
	} else if pos > src.Len() {
		pos = src.Len()
	}
	return &Cursor{src: src, pos: pos, start: pos, end: pos}
}

// Peek returns the code point at the current position, 0 at end of input.
func (c *Cursor) Peek() rune {
	if c.pos >= c.src.Len() {
		return 0
	}

	r, _ := utf8.DecodeRune(c.src.content[c.pos:])
	return r
}

// Eof reports whether the current position is past the last code point.
func (c *Cursor) Eof() bool {
	return c.pos >= c.src.Len()
}

func (c *Cursor) step() {
	if c.pos >= c.src.Len() {
		return
	}

	_, size := utf8.DecodeRune(c.src.content[c.pos:])
	c.pos += size
}

// Advance consumes the current code point as part of the token text.
func (c *Cursor) Advance() {
	c.advanced = true
	c.step()
}

// Skip consumes the current code point without including it in the token
// text. Skips before the first Advance move the token start forward.
func (c *Cursor) Skip() {
	c.step()
	if !c.advanced {
		c.start = c.pos
	}
}

// MarkEnd records the current position as the token end. Lookahead past the
// mark does not extend the token.
func (c *Cursor) MarkEnd() {
	c.end = c.pos
}

// Pos returns the current byte offset, which may be ahead of the marked end.
func (c *Cursor) Pos() int {
	return c.pos
}

// End returns the marked token end.
func (c *Cursor) End() int {
	return c.end
}

// Text returns the token text between the token start and the marked end.
func (c *Cursor) Text() string {
	if c.end <= c.start {
		return ""
	}
	return string(c.src.content[c.start:c.end])
}
