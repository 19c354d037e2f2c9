package rope

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Rope is a persistent text, organized as a balanced tree of text fragments.
//
// A rope is a window (start, length) onto the text of a tree. Ropes are values
// and never change; all editing operations return new ropes, which share
// unchanged subtrees with their source. It is therefore safe to keep old
// versions around and to read ropes from multiple goroutines.
//
// A rope created by
//
//	Rope{}
//
// is a valid object and behaves like the empty string.
//
// Methods that take or return positions use byte offsets.
//
// Due to their internal structure ropes do have performance characteristics
// differing from Go strings or byte arrays.
//
//	Operation     |   Rope          |  String
//	--------------+-----------------+--------
//	Slice         |   O(log n)      |   O(1)
//	Iterate       |   O(n)          |   O(n)
//
//	Concatenate   |   O(log n)      |   O(n)
//	Replace       |   O(log n + m)  |   O(n)
//
// For use cases with many editing operations on large texts, ropes have stable
// performance and space characteristics.
type Rope struct {
	root   *node
	start  int
	length int
}

// FromString creates a rope from a Go string.
func FromString(s string) Rope {
	return NewBuilder().PushString(s).Build()
}

// tree returns the root of the rope's tree.
func (r Rope) tree() *node {
	if r.root == nil {
		return emptyLeaf
	}
	return r.root
}

// isFull reports whether the window of r covers the whole tree.
func (r Rope) isFull() bool {
	return r.start == 0 && r.length == r.tree().length
}

// Len returns the rope length in bytes.
func (r Rope) Len() int {
	return r.length
}

// IsVoid reports whether the rope has no bytes.
func (r Rope) IsVoid() bool {
	return r.length == 0
}

// String returns the complete rope as a Go string. This may be an expensive operation,
// as it will allocate a buffer for all the bytes of the rope and collect all
// fragments to a single continuous string.
func (r Rope) String() string {
	if r.length == 0 {
		return ""
	}
	root := r.tree()
	if root.isLeaf() {
		return root.leaf()[r.start : r.start+r.length]
	}
	buf := make([]byte, 0, r.length)
	buf = root.appendText(buf, r.start, r.start+r.length)
	return string(buf)
}

// Equals reports whether two ropes represent the same text. Ropes are
// compared by content, not by tree structure.
func (r Rope) Equals(other Rope) bool {
	if r.length != other.length {
		return false
	}
	if r.root == other.root && r.start == other.start {
		return true
	}
	return r.String() == other.String()
}

// NewlineCount returns the number of line terminators in the rope.
// "\r\n", a lone "\r" and a lone "\n" each count as one.
//
// For full ropes this is read from the tree in O(1). For windowed ropes (see
// Slice) the leaves at the window's edges are re-counted.
func (r Rope) NewlineCount() int {
	if r.isFull() {
		return r.tree().newlines
	}
	return r.root.newlinesIn(r.start, r.start+r.length)
}

// Height returns the height of the tree the rope is a window onto. A rope of
// height 0 consists of a single leaf.
func (r Rope) Height() int {
	return r.tree().height
}

// LeafCount returns the number of text fragments the rope is internally split
// into.
func (r Rope) LeafCount() int {
	cnt := 0
	_ = r.EachLeaf(func(string, int) error {
		cnt++
		return nil
	})
	return cnt
}

// EachLeaf visits all text fragments of the rope in logical order.
//
// The callback receives each fragment and its starting byte offset. Fragments
// at the edges of a windowed rope are clipped to the window. Iteration stops
// at the first callback error and returns that error to the caller.
func (r Rope) EachLeaf(f func(text string, pos int) error) error {
	if r.length == 0 {
		return nil
	}
	_, err := r.tree().eachLeaf(r.start, r.start+r.length, 0, f)
	return err
}

// newlinesIn counts line terminators in range [start,end) of a subtree.
// Children fully inside the range contribute their cached count, corrected
// for "\r\n" pairs straddling two children.
func (n *node) newlinesIn(start, end int) int {
	if start >= end {
		return 0
	}
	if start == 0 && end == n.length {
		return n.newlines
	}
	if n.isLeaf() {
		return countNewlines(n.text[start:end])
	}
	cnt, offset := 0, 0
	var prev *node
	for _, child := range n.children {
		if end <= offset {
			break
		}
		next := offset + child.length
		if next > start {
			cnt += child.newlinesIn(max(start, offset)-offset, min(end, next)-offset)
			if prev != nil && crlfSeam(prev, child) {
				cnt--
			}
			prev = child
		}
		offset = next
	}
	return cnt
}
