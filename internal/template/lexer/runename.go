package lexer

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/unicode/runenames"
)

// runenames only maps rune -> name, so \N{NAME} lookup needs a reverse
// index. It is built once, on the first named escape encountered.
var runeNameIndex struct {
	once   sync.Once
	byName map[string]rune
}

// lookupRuneName resolves a Unicode character name, as written in a \N{NAME}
// escape, to its rune. Names are matched case-insensitively.
func lookupRuneName(name string) (rune, bool) {
	runeNameIndex.once.Do(buildRuneNameIndex)

	r, ok := runeNameIndex.byName[strings.ToUpper(name)]

	return r, ok
}

func buildRuneNameIndex() {
	index := make(map[string]rune)

	for r := rune(0); r <= unicode.MaxRune; r++ {
		name := runenames.Name(r)
		if name == "" || name[0] == '<' {
			continue // unnamed, or a range label like <control>
		}

		if _, taken := index[name]; !taken {
			index[name] = r
		}
	}

	runeNameIndex.byName = index
}
