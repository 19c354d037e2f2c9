package metrics

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/npillmayer/rope"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

/*
Wikipedia:

	1. |  SpaceLeft := LineWidth
	2. |  for each Word in Text
	3. |      if (Width(Word) + SpaceWidth) > SpaceLeft
	4. |           insert line break before Word in Text
	5. |           SpaceLeft := LineWidth - Width(Word)
	6. |      else
	7. |           SpaceLeft := SpaceLeft - (Width(Word) + SpaceWidth)
*/

// Wrap breaks a text into lines of at most linewidth 'en's, using a
// first-fit strategy on UAX#14 line break opportunities. It returns the
// byte positions where lines end; the last one is always text.Len() for a
// non-void text.
//
// Trailing white space of a line may hang over the margin. A segment wider
// than linewidth gets a line of its own. Hard line breaks ("\n", "\r") in
// the text always end a line.
//
// If context is nil, uax11.LatinContext is used.
func Wrap(text rope.Rope, linewidth int, context *uax11.Context) ([]int, error) {
	if linewidth <= 0 {
		return nil, fmt.Errorf("%w: line width %d", rope.ErrIllegalArguments, linewidth)
	}
	if context == nil {
		context = uax11.LatinContext
	}
	setupClasses()
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(text.Reader()))
	breaks := make([]int, 0, 20)
	spaceleft := linewidth
	pos, linestart := 0, 0
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		visible := strings.TrimRight(frag, "\r\n")
		fraglen := stringWidth(visible, context)
		inklen := stringWidth(strings.TrimRight(visible, " \t"), context)
		if inklen > spaceleft && pos > linestart { // fragment overshoots line
			breaks = append(breaks, pos)
			tracer().Debugf("metrics: break @ %d", pos)
			linestart, spaceleft = pos, linewidth
		}
		spaceleft -= fraglen
		pos += len(frag)
		if len(visible) < len(frag) { // mandatory break
			breaks = append(breaks, pos)
			linestart, spaceleft = pos, linewidth
		}
	}
	if err := segmenter.Err(); err != nil {
		return breaks, fmt.Errorf("metrics.Wrap could not be applied: %w", err)
	}
	if pos > linestart { // we have a partial line to consume
		breaks = append(breaks, pos)
	}
	return breaks, nil
}
