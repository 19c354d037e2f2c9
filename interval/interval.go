/*
Package interval implements integer intervals with open or closed bounds.

Bounds are packed into a single integer each, which makes comparisons between
open and closed bounds exact:

	start = 2*s     if the start is closed,   2*s + 1 if it is open
	end   = 2*e + 1 if the end is closed,     2*e     if it is open

An interval contains a point p iff start ≤ 2*p < end. With this encoding,
intersection, union and differences of intervals are plain min/max operations.

Intervals are used to address ranges of ropes, see rope.SliceInterval.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package interval

import (
	"fmt"
	"strings"
)

// Interval is an immutable interval of integers. The zero value is the
// empty interval [0,0).
type Interval struct {
	start int
	end   int
}

func makeInterval(start int, startClosed bool, end int, endClosed bool) Interval {
	iv := Interval{start: start << 1, end: end << 1}
	if !startClosed {
		iv.start++
	}
	if endClosed {
		iv.end++
	}
	return packed(iv.start, iv.end)
}

// packed creates an interval from packed bounds, normalizing empty
// intervals to end == start.
func packed(start, end int) Interval {
	return Interval{start: start, end: max(start, end)}
}

// OpenOpen creates (start, end).
func OpenOpen(start, end int) Interval {
	return makeInterval(start, false, end, false)
}

// OpenClosed creates (start, end].
func OpenClosed(start, end int) Interval {
	return makeInterval(start, false, end, true)
}

// ClosedOpen creates [start, end). This is the usual interval for
// addressing text ranges.
func ClosedOpen(start, end int) Interval {
	return makeInterval(start, true, end, false)
}

// ClosedClosed creates [start, end].
func ClosedClosed(start, end int) Interval {
	return makeInterval(start, true, end, true)
}

// IsStartClosed reports whether the start point belongs to the interval.
func (iv Interval) IsStartClosed() bool {
	return iv.start&1 == 0
}

// IsEndClosed reports whether the end point belongs to the interval.
func (iv Interval) IsEndClosed() bool {
	return iv.end&1 != 0
}

// IsEmpty reports whether the interval contains no point at all.
func (iv Interval) IsEmpty() bool {
	return iv.start >= iv.end
}

// IsBefore reports whether all points of the interval are less than p.
func (iv Interval) IsBefore(p int) bool {
	return iv.end <= p<<1
}

// Contains reports whether p is a point of the interval.
func (iv Interval) Contains(p int) bool {
	v := p << 1
	return iv.start <= v && v < iv.end
}

// IsAfter reports whether all points of the interval are greater than p.
func (iv Interval) IsAfter(p int) bool {
	return iv.start > p<<1
}

// Intersect returns the points common to iv and other.
func (iv Interval) Intersect(other Interval) Interval {
	return packed(max(iv.start, other.start), min(iv.end, other.end))
}

// Union returns the smallest interval covering iv and other.
func (iv Interval) Union(other Interval) Interval {
	if iv.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return iv
	}
	return packed(min(iv.start, other.start), max(iv.end, other.end))
}

// Prefix returns the part of iv before other, i.e. the first half of iv − other.
func (iv Interval) Prefix(other Interval) Interval {
	return packed(min(iv.start, other.start), min(iv.end, other.start))
}

// Suffix returns the part of iv after other, i.e. the second half of iv − other.
func (iv Interval) Suffix(other Interval) Interval {
	return packed(max(iv.start, other.end), max(iv.end, other.end))
}

// Translate shifts the interval by amount.
func (iv Interval) Translate(amount int) Interval {
	return Interval{start: iv.start + amount<<1, end: iv.end + amount<<1}
}

// TranslateNeg shifts the interval by -amount.
func (iv Interval) TranslateNeg(amount int) Interval {
	return iv.Translate(-amount)
}

// Size returns End() − Start(), regardless of open or closed bounds.
func (iv Interval) Size() int {
	return iv.End() - iv.Start()
}

// Start returns the start point (which may be excluded).
func (iv Interval) Start() int {
	return iv.start >> 1
}

// End returns the end point (which may be excluded).
func (iv Interval) End() int {
	return iv.end >> 1
}

// HalfOpen returns the integer points of the interval as [start, end).
func (iv Interval) HalfOpen() (start, end int) {
	return (iv.start + 1) >> 1, (iv.end + 1) >> 1
}

func (iv Interval) String() string {
	var b strings.Builder
	if iv.IsStartClosed() {
		b.WriteByte('[')
	} else {
		b.WriteByte('(')
	}
	fmt.Fprintf(&b, "%d, %d", iv.Start(), iv.End())
	if iv.IsEndClosed() {
		b.WriteByte(']')
	} else {
		b.WriteByte(')')
	}
	return b.String()
}
