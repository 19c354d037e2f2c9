package rope

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCharCursorNext(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	cc := FromString("aä€b").CharCursor()
	var runes []rune
	for {
		r, ok := cc.Next()
		if !ok {
			break
		}
		runes = append(runes, r)
	}
	if string(runes) != "aä€b" {
		t.Errorf("expected runes of 'aä€b', have %q", string(runes))
	}
	if cc.ByteOffset() != 7 {
		t.Errorf("expected cursor at byte 7, is at %d", cc.ByteOffset())
	}
	r, ok := cc.Prev()
	if !ok || r != 'b' {
		t.Errorf("expected 'b' before end, have %q", r)
	}
	r, ok = cc.Prev()
	if !ok || r != '€' || cc.ByteOffset() != 3 {
		t.Errorf("expected '€' at byte 3, have %q at %d", r, cc.ByteOffset())
	}
}

func TestCharCursorAcrossLeaves(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	s := strings.Repeat("世界", 1000)
	text := FromString(s)
	if text.LeafCount() < 2 {
		t.Fatalf("expected a multi-leaf rope")
	}
	cc := text.CharCursor()
	cnt := 0
	for {
		if _, ok := cc.Next(); !ok {
			break
		}
		cnt++
	}
	if cnt != 2000 {
		t.Errorf("expected 2000 runes, have %d", cnt)
	}
	for cnt = 0; ; cnt++ {
		if _, ok := cc.Prev(); !ok {
			break
		}
	}
	if cnt != 2000 || cc.ByteOffset() != 0 {
		t.Errorf("expected to step back 2000 runes to 0, have %d to %d", cnt, cc.ByteOffset())
	}
	if err := cc.Seek(len(s) + 1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected out-of-bounds error, have %v", err)
	}
}
