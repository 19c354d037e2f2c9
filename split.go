package rope

import (
	"strings"
	"unicode/utf8"
)

// countNewlines counts line terminators in s. "\r\n", a lone "\r" and a
// lone "\n" each count as one terminator.
func countNewlines(s string) int {
	cnt := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			cnt++
		case '\r':
			cnt++
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
		}
	}
	return cnt
}

// isCharBoundary reports whether position i of s is a valid place to cut s
// in two: it must not fall inside a multi-byte UTF-8 sequence, and must not
// separate a "\r\n" pair.
func isCharBoundary(s string, i int) bool {
	if i <= 0 || i >= len(s) {
		return true
	}
	if !utf8.RuneStart(s[i]) {
		return false
	}
	return !(s[i-1] == '\r' && s[i] == '\n')
}

// findSplit finds a position to split an oversized text for two leaves.
// Candidate positions are in [minSplit, min(MaxLeaf, len(s)-MinLeaf)], both
// bounds inclusive. If a line terminator ("\n", "\r\n" or a lone "\r") ends
// in this window, s is split right after the last one, keeping lines within
// leaves. Otherwise the largest candidate position which is a character
// boundary is used.
//
// Clients must ensure len(s) > MaxLeaf and minSplit <= MaxLeaf.
func findSplit(s string, minSplit int) int {
	upper := min(MaxLeaf, len(s)-MinLeaf)
	assert(minSplit >= 1 && minSplit <= upper, "rope: split window is empty")
	window := s[minSplit-1 : upper]
	for i := strings.LastIndexAny(window, "\r\n"); i >= 0; i = strings.LastIndexAny(window[:i], "\r\n") {
		if isCharBoundary(s, minSplit+i) { // not between '\r' and '\n'
			return minSplit + i
		}
	}
	for splitPoint := upper; splitPoint >= minSplit; splitPoint-- {
		if isCharBoundary(s, splitPoint) {
			return splitPoint
		}
	}
	// no boundary within the window, i.e. s is not valid UTF-8 here
	return upper
}

// findSplitForMerge splits a text resulting from merging two leaves. The
// left part will take at least as much as is needed to keep the right part
// within MaxLeaf.
func findSplitForMerge(s string) int {
	return findSplit(s, max(MinLeaf, len(s)-MaxLeaf))
}

// findSplitForBulk splits a chunk off a long text, making it as large as
// possible while leaving room for the remainder. Chunks are longer than
// MinLeaf; only the final remainder may have exactly MinLeaf bytes.
func findSplitForBulk(s string) int {
	return findSplit(s, MinLeaf+1)
}
