package metrics

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/rope"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
)

// GraphemeCount returns the number of grapheme clusters (user-perceived
// characters) in range [i,j) of a text.
func GraphemeCount(text rope.Rope, i, j int) (int, error) {
	part, err := text.Slice(i, j)
	if err != nil {
		return -1, fmt.Errorf("metrics.GraphemeCount could not be applied: %w", err)
	}
	cnt := 0
	err = eachGrapheme(part.Reader(), func([]byte) { cnt++ })
	if err != nil {
		return -1, fmt.Errorf("metrics.GraphemeCount could not be applied: %w", err)
	}
	return cnt, nil
}

// Width returns the display width of range [i,j) of a text on a fixed-width
// output device, in multiples of an 'en'. East Asian wide characters count as 2.
//
// If context is nil, uax11.LatinContext is used.
func Width(text rope.Rope, i, j int, context *uax11.Context) (int, error) {
	part, err := text.Slice(i, j)
	if err != nil {
		return -1, fmt.Errorf("metrics.Width could not be applied: %w", err)
	}
	if context == nil {
		context = uax11.LatinContext
	}
	w := 0
	err = eachGrapheme(part.Reader(), func(grphm []byte) {
		w += uax11.Width(grphm, context)
	})
	if err != nil {
		return -1, fmt.Errorf("metrics.Width could not be applied: %w", err)
	}
	return w, nil
}

// eachGrapheme segments the text read from r into grapheme clusters and
// calls f for each of them. The byte slice passed to f is only valid during
// the call.
func eachGrapheme(r io.Reader, f func(grphm []byte)) error {
	setupClasses()
	segmenter := segment.NewSegmenter(grapheme.NewBreaker(1))
	segmenter.Init(bufio.NewReader(r))
	for segmenter.Next() {
		f(segmenter.Bytes())
	}
	return segmenter.Err()
}

// stringWidth is the display width of s, summed up cluster by cluster.
func stringWidth(s string, context *uax11.Context) int {
	if s == "" {
		return 0
	}
	w := 0
	eachGrapheme(strings.NewReader(s), func(grphm []byte) {
		w += uax11.Width(grphm, context)
	})
	return w
}
