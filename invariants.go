package rope

import "fmt"

// Check validates structural tree invariants of a rope:
//
//   - inner nodes have 2…MaxChildren children of uniform height, and a height
//     one greater than their children
//   - leaves hold at most MaxLeaf bytes
//   - cached lengths and line terminator counts match the text
//   - the rope's window lies within its tree
//
// Check is meant for tests and debugging; a rope produced by this package
// always passes.
func (r Rope) Check() error {
	root := r.tree()
	if r.start < 0 || r.length < 0 || r.start+r.length > root.length {
		return fmt.Errorf("%w: window [%d,%d) outside of tree of length %d",
			ErrConstruction, r.start, r.start+r.length, root.length)
	}
	return checkNode(root, 0)
}

func checkNode(n *node, depth int) error {
	if n == nil {
		return fmt.Errorf("%w: nil node at depth %d", ErrConstruction, depth)
	}
	if n.isLeaf() {
		if n.children != nil {
			return fmt.Errorf("%w: leaf at depth %d has children", ErrConstruction, depth)
		}
		if len(n.text) > MaxLeaf {
			return fmt.Errorf("%w: leaf of length %d at depth %d exceeds %d",
				ErrConstruction, len(n.text), depth, MaxLeaf)
		}
		if n.length != len(n.text) {
			return fmt.Errorf("%w: leaf length %d != %d", ErrConstruction, n.length, len(n.text))
		}
		if cnt := countNewlines(n.text); n.newlines != cnt {
			return fmt.Errorf("%w: leaf newline count %d != %d", ErrConstruction, n.newlines, cnt)
		}
		return nil
	}
	if len(n.children) < 2 || len(n.children) > MaxChildren {
		return fmt.Errorf("%w: inner node at depth %d has %d children",
			ErrConstruction, depth, len(n.children))
	}
	length := 0
	for i, child := range n.children {
		if err := checkNode(child, depth+1); err != nil {
			return err
		}
		if child.height != n.height-1 {
			return fmt.Errorf("%w: child #%d at depth %d has height %d, parent has %d",
				ErrConstruction, i, depth+1, child.height, n.height)
		}
		length += child.length
	}
	newlines := joinedNewlines(n.children)
	if n.length != length {
		return fmt.Errorf("%w: inner length %d != %d at depth %d", ErrConstruction, n.length, length, depth)
	}
	if n.newlines != newlines {
		return fmt.Errorf("%w: inner newline count %d != %d at depth %d",
			ErrConstruction, n.newlines, newlines, depth)
	}
	return nil
}
