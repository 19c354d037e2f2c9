package rope

// mergeLeaves merges two leaves into a balanced node of height 0 or 1.
//
// If both leaves are healthy they are simply wrapped by a new parent.
// Otherwise their texts are joined and, if necessary, re-split into two
// leaves of legal size.
func mergeLeaves(a, b *node) *node {
	assert(a.isLeaf() && b.isLeaf(), "rope: mergeLeaves called with inner node")
	if a.length >= MinLeaf && b.length >= MinLeaf {
		return mustInternal(a, b)
	}
	s := a.leaf() + b.leaf()
	if len(s) <= MaxLeaf {
		return mustLeaf(s)
	}
	splitPoint := findSplitForMerge(s)
	tracer().Debugf("rope concat: re-splitting merged leaves of %d bytes at %d", len(s), splitPoint)
	return mustInternal(mustLeaf(s[:splitPoint]), mustLeaf(s[splitPoint:]))
}

// mergeNodes creates a node from the concatenation of two lists of children,
// all of which have the same height. If there are too many children for a
// single node, they are distributed among two nodes, which are then wrapped
// by a new parent. The split point is biased towards the front, while the
// back half keeps at least MinChildren children.
func mergeNodes(children1, children2 []*node) *node {
	total := len(children1) + len(children2)
	children := make([]*node, 0, total)
	children = append(children, children1...)
	children = append(children, children2...)
	if total <= MaxChildren {
		return mustInternal(children...)
	}
	splitPoint := min(MaxChildren, total-MinChildren)
	left := mustInternal(children[:splitPoint]...)
	right := mustInternal(children[splitPoint:]...)
	return mustInternal(left, right)
}

// concat concatenates two subtrees and returns the root of a balanced tree.
// Neither a nor b is modified; unchanged subtrees of both are shared with
// the result.
//
// The height of the result is max(height(a), height(b)) or one more.
func concat(a, b *node) *node {
	h1, h2 := a.height, b.height
	switch {
	case h1 < h2:
		children := b.kids()
		if h1 == h2-1 && a.isOkChild() {
			return mergeNodes([]*node{a}, children)
		}
		merged := concat(a, children[0])
		if merged.height == h2-1 {
			return mergeNodes([]*node{merged}, children[1:])
		}
		assert(merged.height == h2, "rope: concat produced a node of unexpected height")
		return mergeNodes(merged.kids(), children[1:])
	case h1 == h2:
		if a.isOkChild() && b.isOkChild() {
			return mustInternal(a, b)
		}
		if h1 == 0 {
			return mergeLeaves(a, b)
		}
		return mergeNodes(a.kids(), b.kids())
	case h1 > h2:
		children := a.kids()
		last := len(children) - 1
		if h2 == h1-1 && b.isOkChild() {
			return mergeNodes(children, []*node{b})
		}
		merged := concat(children[last], b)
		if merged.height == h1-1 {
			return mergeNodes(children[:last], []*node{merged})
		}
		assert(merged.height == h1, "rope: concat produced a node of unexpected height")
		return mergeNodes(children[:last], merged.kids())
	}
	panic("rope: unreachable state in concat")
}
