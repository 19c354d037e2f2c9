package rope

import (
	"fmt"
	"unicode/utf8"
)

// CharCursor navigates a rope by UTF-8 runes.
//
// The cursor is bound to one rope snapshot. Movement is in rune steps, while
// the position is kept as a byte offset. Invalid UTF-8 is stepped over one
// byte at a time and reported as utf8.RuneError.
type CharCursor struct {
	rope Rope
	pos  int
}

// CharCursor creates a rune-aware cursor at the start of r.
func (r Rope) CharCursor() *CharCursor {
	return &CharCursor{rope: r}
}

// ByteOffset returns the current cursor byte offset.
func (cc *CharCursor) ByteOffset() int {
	return cc.pos
}

// Seek moves the cursor to byte offset pos. pos should be at a rune boundary,
// otherwise subsequent moves will report utf8.RuneError for the broken
// sequence.
func (cc *CharCursor) Seek(pos int) error {
	if pos < 0 || pos > cc.rope.Len() {
		return fmt.Errorf("%w: cursor position %d for rope of length %d", ErrIndexOutOfBounds,
			pos, cc.rope.Len())
	}
	cc.pos = pos
	return nil
}

// Next returns the rune at the current cursor position and advances by one rune.
//
// If the cursor is at end-of-rope, ok is false.
func (cc *CharCursor) Next() (r rune, ok bool) {
	if cc.pos >= cc.rope.Len() {
		return 0, false
	}
	s, err := cc.rope.Report(cc.pos, min(utf8.UTFMax, cc.rope.Len()-cc.pos))
	if err != nil {
		return 0, false
	}
	r, n := utf8.DecodeRuneInString(s)
	cc.pos += n
	return r, true
}

// Prev returns the rune before the current cursor position and moves back by one rune.
//
// If the cursor is at start-of-rope, ok is false.
func (cc *CharCursor) Prev() (r rune, ok bool) {
	if cc.pos == 0 {
		return 0, false
	}
	from := max(0, cc.pos-utf8.UTFMax)
	s, err := cc.rope.Report(from, cc.pos-from)
	if err != nil {
		return 0, false
	}
	r, n := utf8.DecodeLastRuneInString(s)
	cc.pos -= n
	return r, true
}
