package metrics

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/rope"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestWordsApplyWholeRope(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	r := rope.FromString("Hello  my\nname\tis Simon")

	value, materialized, err := Words().Apply(r, 0, r.Len())
	if err != nil {
		t.Fatalf("Words().Apply failed: %v", err)
	}
	if value.WordCount() != 5 {
		t.Fatalf("unexpected word count: got=%d want=5", value.WordCount())
	}
	if materialized.String() != "HellomynameisSimon" {
		t.Fatalf("unexpected materialized text: got=%q", materialized.String())
	}
	want := []Span{
		{Pos: 0, Len: 5},
		{Pos: 7, Len: 2},
		{Pos: 10, Len: 4},
		{Pos: 15, Len: 2},
		{Pos: 18, Len: 5},
	}
	if len(value.Spans) != len(want) {
		t.Fatalf("unexpected spans len: got=%d want=%d", len(value.Spans), len(want))
	}
	for i := range want {
		if value.Spans[i] != want[i] {
			t.Fatalf("span %d mismatch: got=%+v want=%+v", i, value.Spans[i], want[i])
		}
	}
}

func TestWordsApplySubrange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	r := rope.FromString("xx Hello world yy")
	// "Hello world"
	value, materialized, err := Words().Apply(r, 3, 14)
	if err != nil {
		t.Fatalf("Words().Apply failed: %v", err)
	}
	if value.WordCount() != 2 {
		t.Fatalf("unexpected word count: got=%d want=2", value.WordCount())
	}
	if value.Spans[0] != (Span{Pos: 3, Len: 5}) {
		t.Fatalf("first span mismatch: got=%+v", value.Spans[0])
	}
	if value.Spans[1] != (Span{Pos: 9, Len: 5}) {
		t.Fatalf("second span mismatch: got=%+v", value.Spans[1])
	}
	if materialized.String() != "Helloworld" {
		t.Fatalf("unexpected materialized text: got=%q", materialized.String())
	}
}

func TestWordsApplyBoundsValidation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	r := rope.FromString("abc")
	_, _, err := Words().Apply(r, 2, 1)
	if !errors.Is(err, rope.ErrIndexOutOfBounds) {
		t.Fatalf("expected error for invalid range, have %v", err)
	}
	value, _, err := Words().Apply(rope.Rope{}, 0, 0)
	if err != nil || value.WordCount() != 0 {
		t.Fatalf("expected no words in void rope, have %d, %v", value.WordCount(), err)
	}
}

func TestWordsAcrossLeaves(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	long := strings.Repeat("w", 3000)
	r := rope.FromString("one " + long + " two")
	if r.LeafCount() < 3 {
		t.Fatalf("expected a multi-leaf rope, have %d leaves", r.LeafCount())
	}
	value, materialized, err := Words().Apply(r, 0, r.Len())
	if err != nil {
		t.Fatal(err)
	}
	want := []Span{{Pos: 0, Len: 3}, {Pos: 4, Len: 3000}, {Pos: 3005, Len: 3}}
	if len(value.Spans) != len(want) {
		t.Fatalf("expected spans %v, have %v", want, value.Spans)
	}
	for i := range want {
		if value.Spans[i] != want[i] {
			t.Errorf("span %d mismatch: got=%+v want=%+v", i, value.Spans[i], want[i])
		}
	}
	if materialized.String() != "one"+long+"two" {
		t.Errorf("unexpected materialized text of length %d", materialized.Len())
	}
	value, _, err = Words().Apply(r, 100, 200)
	if err != nil || value.WordCount() != 1 || value.Spans[0] != (Span{Pos: 100, Len: 100}) {
		t.Errorf("expected one word [100,200), have %v, %v", value.Spans, err)
	}
}

func TestWordsRuneAcrossLeaves(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	// 'ä' is encoded as 0xC3 0xA4 and cut in two by the leaf boundary
	left := rope.FromString("x " + strings.Repeat("a", 598) + "\xc3")
	right := rope.FromString("\xa4 " + strings.Repeat("b", 599))
	r := left.Concat(right)
	if r.LeafCount() != 2 {
		t.Fatalf("expected 2 leaves, have %d", r.LeafCount())
	}
	value, materialized, err := Words().Apply(r, 0, r.Len())
	if err != nil {
		t.Fatal(err)
	}
	want := []Span{{Pos: 0, Len: 1}, {Pos: 2, Len: 600}, {Pos: 603, Len: 599}}
	if len(value.Spans) != len(want) {
		t.Fatalf("expected spans %v, have %v", want, value.Spans)
	}
	for i := range want {
		if value.Spans[i] != want[i] {
			t.Errorf("span %d mismatch: got=%+v want=%+v", i, value.Spans[i], want[i])
		}
	}
	if materialized.String() != "x"+strings.Repeat("a", 598)+"ä"+strings.Repeat("b", 599) {
		t.Errorf("unexpected materialized text")
	}
	// range ending inside the rune
	value, _, err = Words().Apply(r, 2, 601)
	if err != nil || value.WordCount() != 1 || value.Spans[0] != (Span{Pos: 2, Len: 599}) {
		t.Errorf("expected one word [2,601), have %v, %v", value.Spans, err)
	}
}
