package metrics

import (
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/rope"
)

// Span is a byte range [Pos,Pos+Len) of a rope.
type Span struct {
	Pos int
	Len int
}

// WordsValue holds the words found by a WordsMetric.
type WordsValue struct {
	Spans []Span
}

// WordCount returns the number of words found.
func (v WordsValue) WordCount() int {
	return len(v.Spans)
}

// WordsMetric finds words, i.e. maximal runs of non-space runes.
type WordsMetric struct{}

// Words returns a metric which locates the words of a text.
func Words() WordsMetric {
	return WordsMetric{}
}

// Apply locates the words in range [i,j) of a text. Spans are reported as
// positions of text. Apply also returns a rope of all the words concatenated,
// without any white space in between. It shares its leaves with text
// wherever possible.
//
// The text is scanned fragment by fragment, thus words and runes crossing
// leaf boundaries are handled without flattening the range.
func (WordsMetric) Apply(text rope.Rope, i, j int) (WordsValue, rope.Rope, error) {
	part, err := text.Slice(i, j)
	if err != nil {
		return WordsValue{}, rope.Rope{}, err
	}
	scan := wordScanner{base: i, start: -1}
	_ = part.EachLeaf(func(frag string, pos int) error {
		scan.feed(frag, pos)
		return nil
	})
	value := WordsValue{Spans: scan.finish(part.Len())}
	tracer().Debugf("metrics: found %d words in [%d,%d)", len(value.Spans), i, j)
	if len(value.Spans) == 0 {
		return value, rope.Rope{}, nil
	}
	b := rope.NewBuilder()
	for _, span := range value.Spans {
		word, err := text.Slice(span.Pos, span.Pos+span.Len)
		if err != nil {
			return value, rope.Rope{}, err
		}
		b.PushRope(word)
	}
	return value, b.Build(), nil
}

// wordScanner collects word spans from consecutive fragments of a text.
// A rune cut in two by a fragment boundary is carried over to the next
// fragment.
type wordScanner struct {
	base  int    // position of the scanned range within the rope
	start int    // start of the current word, or -1 between words
	carry string // incomplete rune at the end of the previous fragment
	spans []Span
}

func (ws *wordScanner) feed(frag string, pos int) {
	if ws.carry != "" {
		pos -= len(ws.carry)
		frag = ws.carry + frag
		ws.carry = ""
	}
	for k := 0; k < len(frag); {
		if !utf8.FullRuneInString(frag[k:]) {
			ws.carry = frag[k:]
			return
		}
		r, size := utf8.DecodeRuneInString(frag[k:])
		if unicode.IsSpace(r) {
			ws.endWord(pos + k)
		} else if ws.start < 0 {
			ws.start = pos + k
		}
		k += size
	}
}

func (ws *wordScanner) endWord(at int) {
	if ws.start >= 0 {
		ws.spans = append(ws.spans, Span{Pos: ws.base + ws.start, Len: at - ws.start})
		ws.start = -1
	}
}

// finish closes a word running up to the end of the range and returns all
// spans. Bytes of a truncated rune belong to a word.
func (ws *wordScanner) finish(end int) []Span {
	if ws.carry != "" && ws.start < 0 {
		ws.start = end - len(ws.carry)
	}
	ws.endWord(end)
	return ws.spans
}
