/*
Package rope offers a persistent rope for handling large, frequently edited texts.

# Ropes

Ropes organize fragments of immutable text internally in a balanced tree.
Concatenation, slicing and range-replacement thus run in O(log n) instead of
O(n), and producing a new rope never invalidates a previously produced one:
old and new versions share all unchanged subtrees. This package aims towards
applications like text editors, which repeatedly transform large texts and
need to keep older versions (undo, snapshots, concurrent readers) around
cheaply.

The tree is a B-tree-like structure: leaves hold flat text runs of between
MinLeaf and MaxLeaf bytes, inner nodes hold between MinChildren and
MaxChildren children of uniform height. Every node caches its height, its
length in bytes and its number of line terminators.

_________________________________________________________________________

From a paper by Hans-J. Boehm, Russ Atkinson and Michael Plass, 1995:

Ropes, an Alternative to Strings

1. Immutable strings, i.e. strings that cannot be modified in place, should be well
supported. A procedure should be able to operate on a string it was passed
without danger of accidentally modifying the caller’s data structures. […]

2. Commonly occurring operations on strings should be efficient. In particular (non-destructive)
concatenation of strings and non-destructive substring operations should be fast,
and should not require excessive amounts of space.

_________________________________________________________________________

# Positions

All positions are byte offsets into the UTF-8 text. Ropes do not validate
UTF-8 and do not know about grapheme clusters; the only place where encoding
boundaries matter is the builder, which never splits a leaf inside a
multi-byte rune or between "\r" and "\n".

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package rope

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer writes to trace with key 'rope'
func tracer() tracing.Trace {
	return tracing.Select("rope")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// RopeError is an error type for the rope module
type RopeError string

func (e RopeError) Error() string {
	return string(e)
}

// ErrConstruction is flagged whenever a tree node would violate its size
// bounds, i.e. a leaf text longer than MaxLeaf or an inner node with a child
// count outside of [2, MaxChildren].
const ErrConstruction = RopeError("illegal node construction")

// ErrIndexOutOfBounds is flagged whenever a rope position is
// negative, greater than the length of the rope, or a range is reversed.
const ErrIndexOutOfBounds = RopeError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = RopeError("illegal arguments")
