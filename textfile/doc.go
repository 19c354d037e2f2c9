/*
Package textfile provides API helpers to load UTF-8 text files as ropes.

Files are read in fragments by a producer goroutine and broadcast to the
rope builder through a bounded prefetch queue, so reading and tree building
overlap. The loading API itself is synchronous.

Fragment boundaries never split a UTF-8 sequence or a "\r\n" pair; bytes
at the end of a fragment which might belong to the next one are carried
over.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rope'
func tracer() tracing.Trace {
	return tracing.Select("rope")
}

var (
	// ErrInvalidConfig is returned for malformed loader configurations.
	ErrInvalidConfig = errors.New("textfile: invalid configuration")
	// ErrNotRegular is returned when trying to load something other than a
	// regular file.
	ErrNotRegular = errors.New("textfile: not a regular file")
	// ErrBroadcastClosed is returned if the fragment broadcast has been shut
	// down before all fragments have been delivered.
	ErrBroadcastClosed = errors.New("textfile: fragment broadcast closed prematurely")
)
