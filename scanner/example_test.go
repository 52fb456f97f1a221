package scanner_test

import (
	"fmt"

	"github.com/operon-lang/opscan/scanner"
	"github.com/operon-lang/opscan/source"
)

func Example() {
	src := source.New("hello.op", []byte("f'''abc{{def'''"))
	state := scanner.New()
	pos := 0

	scan := func(valid scanner.KindSet) {
		cur := source.NewCursor(src, pos)
		tok, ok := state.Scan(cur, valid)
		if !ok {
			fmt.Println("no match")
			return
		}
		fmt.Printf("%s %q\n", tok.Kind, cur.Text())
		pos = tok.End
	}

	scan(scanner.Kinds(scanner.StringStart))
	inString := scanner.Kinds(scanner.StringContent, scanner.EscapeInterpolation, scanner.StringEnd)
	for i := 0; i < 4; i++ {
		scan(inString)
	}

	// Output:
	// string-start "f'''"
	// string-content "abc"
	// escape-interpolation "{{"
	// string-content "def"
	// string-end "'''"
}
