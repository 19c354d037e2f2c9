/*
Package metrics provides some pre-manufactured metrics on ropes.

Metrics work on ranges [i,j) of byte positions of a rope. They measure the
text in terms of user-perceived characters (grapheme clusters), display width
on a fixed-width output device, words and wrapped lines.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package metrics

import (
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/grapheme"
)

// tracer writes to trace with key 'rope'
func tracer() tracing.Trace {
	return tracing.Select("rope")
}

var setupOnce sync.Once

// setupClasses initializes the Unicode tables for grapheme segmentation.
func setupClasses() {
	setupOnce.Do(grapheme.SetupGraphemeClasses)
}
