package lexer

import "testing"

func TestCursor_NextAndEof(t *testing.T) {
	c := newCursor("ab")

	if ch := c.next(); ch != 'a' {
		t.Errorf("Expected 'a', got %q", ch)
	}
	if ch := c.next(); ch != 'b' {
		t.Errorf("Expected 'b', got %q", ch)
	}
	if ch := c.next(); ch != eof {
		t.Errorf("Expected eof, got %q", ch)
	}
	if ch := c.next(); ch != eof {
		t.Errorf("Expected eof to repeat, got %q", ch)
	}
}

func TestCursor_PeekDoesNotConsume(t *testing.T) {
	c := newCursor("abc")

	if ch := c.peek(2); ch != 'b' {
		t.Errorf("Expected peek(2) == 'b', got %q", ch)
	}
	if got := c.offset(); got != 0 {
		t.Errorf("Expected offset 0 after peek, got %d", got)
	}
	if ch := c.next(); ch != 'a' {
		t.Errorf("Expected next() == 'a' after peek, got %q", ch)
	}
	if ch := c.peek(1); ch != 'b' {
		t.Errorf("Expected peek(1) == 'b', got %q", ch)
	}
}

func TestCursor_PeekPastEnd(t *testing.T) {
	c := newCursor("x")

	if ch := c.peek(3); ch != eof {
		t.Errorf("Expected eof past end, got %q", ch)
	}
	if ch := c.next(); ch != 'x' {
		t.Errorf("Expected 'x', got %q", ch)
	}
	if ch := c.next(); ch != eof {
		t.Errorf("Expected eof, got %q", ch)
	}
}

func TestCursor_SkipCommitsPeeked(t *testing.T) {
	c := newCursor("abcd")

	c.peek(3)
	c.skip(2)

	if got := c.offset(); got != 2 {
		t.Errorf("Expected offset 2 after skip(2), got %d", got)
	}
	if ch := c.next(); ch != 'c' {
		t.Errorf("Expected 'c' after skip, got %q", ch)
	}
}

func TestCursor_MultibyteOffsets(t *testing.T) {
	c := newCursor("héo")

	if ch := c.peek(2); ch != 'é' {
		t.Errorf("Expected peek(2) == 'é', got %q", ch)
	}

	c.next() // h
	c.next() // é

	if got := c.offset(); got != 3 {
		t.Errorf("Expected byte offset 3 after 'h'+'é', got %d", got)
	}
	if ch := c.next(); ch != 'o' {
		t.Errorf("Expected 'o', got %q", ch)
	}
}
