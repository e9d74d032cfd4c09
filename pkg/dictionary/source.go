package dictionary

// BuiltinName is the name of the built-in mini word list.
const BuiltinName = "builtin"

// Source is a named, toggleable collection of raw word lines.
// Lines are kept as loaded; normalization happens when the index is rebuilt.
// A Source's Lines must not be mutated once handed to a Library.
type Source struct {
	Name    string   `json:"name"`
	Lines   []string `json:"lines"`
	Enabled bool     `json:"enabled"`
}

// NewSource creates an enabled source.
func NewSource(name string, lines []string) Source {
	return Source{Name: name, Lines: lines, Enabled: true}
}

// miniWords is a tiny demo list, enough to try the matchers without a word file.
var miniWords = []string{
	"LISTEN", "SILENT", "ENLIST", "INLETS",
	"STONE", "NOTES", "TONES",
	"APPLE", "PEAL", "PALE", "LEAP", "PEAL", "PLEA",
	"TEAM", "MEAT", "MATE", "TAME",
	"RATE", "TEAR", "TARE",
}

// Builtin returns the built-in mini word list as an enabled source.
func Builtin() Source {
	lines := make([]string, len(miniWords))
	copy(lines, miniWords)
	return NewSource(BuiltinName, lines)
}
