package rope

import "io"

// Reader returns a reader for the bytes of a rope.
func (r Rope) Reader() io.Reader {
	return &ropeReader{rope: r}
}

type ropeReader struct {
	rope   Rope
	cursor int
}

func (rr *ropeReader) Read(p []byte) (n int, err error) {
	l := len(p)
	if rr.cursor+l > rr.rope.Len() {
		l = rr.rope.Len() - rr.cursor
		if l == 0 {
			return 0, io.EOF
		}
	}
	s, err := rr.rope.Report(rr.cursor, l)
	if err != nil {
		return 0, err
	}
	n = copy(p, s)
	rr.cursor += n
	return n, nil
}

// WriteTo writes the rope's fragments to w, without collecting them into a
// single buffer first. It implements io.WriterTo, which io.Copy prefers.
func (rr *ropeReader) WriteTo(w io.Writer) (int64, error) {
	var total int64
	rest, err := rr.rope.Slice(rr.cursor, rr.rope.Len())
	if err != nil {
		return 0, err
	}
	err = rest.EachLeaf(func(text string, _ int) error {
		n, err := io.WriteString(w, text)
		total += int64(n)
		rr.cursor += n
		return err
	})
	return total, err
}
