package prettyprint

import "sync/atomic"

// Glyphs is the set of branch markers used to draw a tree.
type Glyphs struct {
	Pipe string
	Tail string
	Mid  string
}

var (
	// UnicodeGlyphs draws with box-drawing characters.
	UnicodeGlyphs = Glyphs{Pipe: "│", Tail: "└── ", Mid: "├── "}

	// ASCIIGlyphs is for terminals that show box-drawing characters as `???`.
	ASCIIGlyphs = Glyphs{Pipe: "|", Tail: `\-- `, Mid: "|-- "}
)

var useASCII atomic.Bool

// SetUseASCII switches ToPrettyTree between ASCII and Unicode glyphs for the
// whole process. Test harnesses usually set it once during setup.
func SetUseASCII(ascii bool) {
	useASCII.Store(ascii)
}

// UseASCII reports whether ToPrettyTree renders with ASCII glyphs.
func UseASCII() bool {
	return useASCII.Load()
}

// DefaultGlyphs returns the glyphs selected by SetUseASCII.
func DefaultGlyphs() Glyphs {
	if UseASCII() {
		return ASCIIGlyphs
	}
	return UnicodeGlyphs
}
