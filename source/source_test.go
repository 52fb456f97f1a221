package source

import (
	"fmt"
	"testing"
)

func TestLineCol(t *testing.T) {
	src := New("test", []byte("abc\nde\n\nfg"))
	samples := []struct {
		pos, line, col int
	}{
		{-1, 1, 1},
		{0, 1, 1},
		{2, 1, 3},
		{3, 1, 4},
		{4, 2, 1},
		{6, 2, 3},
		{7, 3, 1},
		{8, 4, 1},
		{9, 4, 2},
		{10, 4, 3},
		{100, 4, 3},
	}

	for i, sample := range samples {
		t.Run(fmt.Sprintf("sample #%d", i), func(t *testing.T) {
			line, col := src.LineCol(sample.pos)
			if line != sample.line || col != sample.col {
				t.Fatalf("pos %d: expecting %d:%d, got %d:%d", sample.pos, sample.line, sample.col, line, col)
			}
		})
	}
}

func TestLineColRunes(t *testing.T) {
	src := New("test", []byte("дé\nx"))
	line, col := src.LineCol(4) // after both multibyte runes
	if line != 1 || col != 3 {
		t.Fatalf("expecting 1:3, got %d:%d", line, col)
	}
}

func TestAt(t *testing.T) {
	src := New("test", []byte("ab\ncd"))
	p := src.At(4)
	if p.SourceName() != "test" || p.Pos() != 4 {
		t.Fatalf("expecting %q at 4, got %q at %d", "test", p.SourceName(), p.Pos())
	}
	if p.Line() != 2 || p.Col() != 2 {
		t.Fatalf("expecting 2:2, got %d:%d", p.Line(), p.Col())
	}
}

func TestEmptySource(t *testing.T) {
	src := New("test", nil)
	if src.Len() != 0 {
		t.Fatalf("expecting empty source, got %d bytes", src.Len())
	}
	line, col := src.LineCol(0)
	if line != 1 || col != 1 {
		t.Fatalf("expecting 1:1, got %d:%d", line, col)
	}
}
