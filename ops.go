package rope

import (
	"fmt"

	"github.com/npillmayer/rope/interval"
)

// Slice returns the sub-rope [start,end) of r. The result is a window onto
// the smallest subtree of r containing the range; no text is copied.
//
// If not 0 ≤ start ≤ end ≤ r.Len(), an ErrIndexOutOfBounds error is returned.
func (r Rope) Slice(start, end int) (Rope, error) {
	if err := r.checkRange(start, end); err != nil {
		return Rope{}, err
	}
	root := r.tree()
	start, end = start+r.start, end+r.start
	for !root.isLeaf() {
		i, offset, ok := root.findChild(start, end)
		if !ok {
			break
		}
		root = root.kids()[i]
		start, end = start-offset, end-offset
	}
	return Rope{root: root, start: start, length: end - start}, nil
}

// Replace replaces range [start,end) of r by text and returns the resulting
// rope. r is left untouched.
//
// All subtrees of r completely outside the range are re-used for the result,
// so the cost is O(log n) plus the length of text.
// If not 0 ≤ start ≤ end ≤ r.Len(), an ErrIndexOutOfBounds error is returned.
func (r Rope) Replace(start, end int, text string) (Rope, error) {
	if err := r.checkRange(start, end); err != nil {
		return Rope{}, err
	}
	b := NewBuilder()
	root := r.tree()
	b.subsequence(root, r.start, r.start+start)
	b.PushString(text)
	b.subsequence(root, r.start+end, r.start+r.length)
	return b.Build(), nil
}

// Concat returns a rope for the text of r followed by the text of other.
// Neither operand is modified.
func (r Rope) Concat(other Rope) Rope {
	if other.length == 0 {
		return r
	}
	if r.length == 0 {
		return other
	}
	if r.isFull() && other.isFull() {
		root := concat(r.root, other.root)
		return Rope{root: root, length: root.length}
	}
	return NewBuilder().PushRope(r).PushRope(other).Build()
}

// Concat concatenates ropes and returns a new rope.
func Concat(r Rope, others ...Rope) Rope {
	for _, other := range others {
		r = r.Concat(other)
	}
	return r
}

// Insert inserts text at position i, resulting in a new rope.
// If i is greater than the length of r, an out-of-bounds error is returned.
func (r Rope) Insert(i int, text string) (Rope, error) {
	return r.Replace(i, i, text)
}

// Delete removes range [start,end) from r, resulting in a new rope.
func (r Rope) Delete(start, end int) (Rope, error) {
	return r.Replace(start, end, "")
}

// Split splits a rope into two new (smaller) ropes right before position i.
// Split(i) => R1=b0,...,bi-1 and R2=bi,...,bn.
func (r Rope) Split(i int) (Rope, Rope, error) {
	left, err := r.Slice(0, i)
	if err != nil {
		return Rope{}, Rope{}, err
	}
	right, err := r.Slice(i, r.length)
	if err != nil {
		return Rope{}, Rope{}, err
	}
	return left, right, nil
}

// Report outputs a substring: Report(i,l) => outputs the string bi,...,bi+l-1.
func (r Rope) Report(i, l int) (string, error) {
	sub, err := r.Slice(i, i+l)
	if err != nil {
		return "", err
	}
	return sub.String(), nil
}

// SliceInterval is Slice for an interval of positions, which may be open or
// closed at either end.
func (r Rope) SliceInterval(iv interval.Interval) (Rope, error) {
	start, end := iv.HalfOpen()
	return r.Slice(start, end)
}

// ReplaceInterval is Replace for an interval of positions, which may be open
// or closed at either end.
func (r Rope) ReplaceInterval(iv interval.Interval, text string) (Rope, error) {
	start, end := iv.HalfOpen()
	return r.Replace(start, end, text)
}

func (r Rope) checkRange(start, end int) error {
	if start < 0 || end > r.length || start > end {
		return fmt.Errorf("%w: range [%d,%d) for rope of length %d", ErrIndexOutOfBounds,
			start, end, r.length)
	}
	return nil
}
