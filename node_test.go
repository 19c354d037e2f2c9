package rope

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLeafConstruction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	leaf, err := leafFrom("one\ntwo\r\nthree")
	if err != nil {
		t.Fatal(err)
	}
	if !leaf.isLeaf() || leaf.length != 14 || leaf.newlines != 2 {
		t.Errorf("unexpected leaf: height=%d, length=%d, newlines=%d", leaf.height, leaf.length, leaf.newlines)
	}
	_, err = leafFrom(strings.Repeat("x", MaxLeaf+1))
	if !errors.Is(err, ErrConstruction) {
		t.Errorf("expected construction error for oversized leaf, have %v", err)
	}
}

func TestInternalConstruction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	children := []*node{mustLeaf("a\n"), mustLeaf("bc"), mustLeaf("\nd")}
	n, err := internalFrom(children)
	if err != nil {
		t.Fatal(err)
	}
	if n.height != 1 || n.length != 6 || n.newlines != 2 {
		t.Errorf("unexpected inner node: height=%d, length=%d, newlines=%d", n.height, n.length, n.newlines)
	}
	children[0] = mustLeaf("zzz")
	if n.children[0].text != "a\n" {
		t.Errorf("inner node shares children slice with caller")
	}
	if _, err = internalFrom(children[:1]); !errors.Is(err, ErrConstruction) {
		t.Errorf("expected construction error for single child, have %v", err)
	}
	many := make([]*node, MaxChildren+1)
	for i := range many {
		many[i] = mustLeaf("x")
	}
	if _, err = internalFrom(many); !errors.Is(err, ErrConstruction) {
		t.Errorf("expected construction error for %d children, have %v", len(many), err)
	}
}

func TestOkChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	small, big := mustLeaf("hello"), mustLeaf(strings.Repeat("x", MinLeaf))
	if small.isOkChild() || !big.isOkChild() {
		t.Errorf("leaf validity should depend on MinLeaf")
	}
	if mustInternal(big, big, big).isOkChild() {
		t.Errorf("inner node with 3 children should not be ok")
	}
	if !mustInternal(small, small, small, small).isOkChild() {
		t.Errorf("inner node with %d children should be ok", MinChildren)
	}
}

func TestFindChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	n := mustInternal(mustLeaf("abc"), mustLeaf("def"), mustLeaf("ghi"))
	tests := []struct {
		start, end    int
		index, offset int
		ok            bool
	}{
		{0, 3, 0, 0, true},
		{3, 5, 1, 3, true},
		{4, 4, 1, 3, true},
		{2, 4, 0, 0, false},
		{9, 9, 2, 6, true},
		{0, 9, 0, 0, false},
	}
	for i, test := range tests {
		index, offset, ok := n.findChild(test.start, test.end)
		if ok != test.ok || (ok && (index != test.index || offset != test.offset)) {
			t.Errorf("test #%d: findChild(%d,%d) = %d, %d, %v", i, test.start, test.end, index, offset, ok)
		}
	}
}

func TestAppendText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	n := mustInternal(mustLeaf("abc"), mustLeaf("def"), mustLeaf("ghi"))
	if s := string(n.appendText(nil, 2, 7)); s != "cdefg" {
		t.Errorf("expected 'cdefg', have %q", s)
	}
	if s := string(n.appendText(nil, 0, 9)); s != "abcdefghi" {
		t.Errorf("expected 'abcdefghi', have %q", s)
	}
	if cnt := mustInternal(mustLeaf("a\nb"), mustLeaf("\nc\n")).newlinesIn(2, 5); cnt != 1 {
		t.Errorf("expected 1 newline in range, have %d", cnt)
	}
}
