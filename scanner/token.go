package scanner

// Kind classifies the tokens this scanner can recognize for the grammar.
type Kind int

const (
	Newline Kind = iota
	Indent
	Dedent
	StringStart
	StringContent
	EscapeInterpolation
	StringEnd

	kindCount
)

var kindNames = [kindCount]string{
	"newline",
	"indent",
	"dedent",
	"string-start",
	"string-content",
	"escape-interpolation",
	"string-end",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "-invalid-"
	}
	return kindNames[k]
}

// KindSet represents a set of acceptable token kinds, each one coded as 1 << kind.
type KindSet uint

const AllKinds = KindSet(1<<kindCount - 1)

const (
	lineKinds   = KindSet(1<<Newline | 1<<Indent | 1<<Dedent)
	stringKinds = KindSet(1<<StringStart | 1<<StringContent | 1<<EscapeInterpolation | 1<<StringEnd)
)

// Kinds builds a KindSet from individual kinds.
func Kinds(ks ...Kind) KindSet {
	var res KindSet
	for _, k := range ks {
		res |= 1 << k
	}
	return res
}

// Has reports whether the set contains k.
func (s KindSet) Has(k Kind) bool {
	return s&(1<<k) != 0
}

// Token is the ephemeral result of a successful scan: the recognized kind
// and the byte offset just past the token text. Tokens are never persisted.
type Token struct {
	Kind Kind
	End  int
}
