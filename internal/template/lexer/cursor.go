package lexer

import "unicode/utf8"

// eof is the end-of-input sentinel. The cursor never fails; running past the
// end of the source yields eof forever.
const eof rune = -1

// cursor walks a source string one rune at a time. It supports peeking an
// arbitrary number of runes ahead without consuming them, which the scanner
// uses to probe multi-character delimiters. All offsets are byte offsets
// into the source.
type cursor struct {
	src        string
	pos        int    // byte offset of the next unconsumed rune
	ahead      []rune // runes decoded past pos by peek, oldest first
	aheadBytes int    // total encoded size of ahead, excluding eof entries
}

func newCursor(src string) *cursor {
	return &cursor{src: src}
}

// offset reports the byte offset of the next unconsumed rune. Peeked runes
// are not consumed and do not move the offset.
func (c *cursor) offset() int {
	return c.pos
}

// next consumes and returns one rune, or eof at end of input.
func (c *cursor) next() rune {
	if len(c.ahead) > 0 {
		ch := c.ahead[0]
		c.ahead = c.ahead[1:]
		if ch != eof {
			size := utf8.RuneLen(ch)
			c.pos += size
			c.aheadBytes -= size
		}
		return ch
	}

	if c.pos >= len(c.src) {
		return eof
	}

	ch, size := utf8.DecodeRuneInString(c.src[c.pos:])
	c.pos += size

	return ch
}

// peek returns the k-th rune ahead of the cursor (k >= 1) without consuming
// it, extending the lookahead buffer as needed.
func (c *cursor) peek(k int) rune {
	if k < 1 {
		panic("cursor lookahead distance must be at least 1")
	}

	for len(c.ahead) < k {
		at := c.pos + c.aheadBytes
		if at >= len(c.src) {
			c.ahead = append(c.ahead, eof)
			continue
		}

		ch, size := utf8.DecodeRuneInString(c.src[at:])
		c.ahead = append(c.ahead, ch)
		c.aheadBytes += size
	}

	return c.ahead[k-1]
}

// skip consumes n runes that were already peeked. Used to commit a
// delimiter once every one of its runes has matched.
func (c *cursor) skip(n int) {
	if n > len(c.ahead) {
		panic("cursor cannot skip more runes than were peeked")
	}

	for ; n > 0; n-- {
		c.next()
	}
}
