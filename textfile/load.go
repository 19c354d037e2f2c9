package textfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/guiguan/caster"
	"github.com/npillmayer/rope"
)

// Some constants for fragment size defaults
const (
	sixteenKb    = 16384
	sixtyfourKb  = 65536
	oneMb        = 1048576
	maxFragment  = 4 * oneMb
	prefetchSize = 8
)

// Config controls how a text is loaded.
type Config struct {
	// FragmentSize is the number of bytes read from the source at once.
	// 0 lets the loader select a size depending on the file size.
	FragmentSize int
	// Prefetch is the number of fragments which may be read ahead of the
	// rope builder. 0 selects a default.
	Prefetch int
}

// normalized fills in defaults. size is the size of the input in bytes, or -1
// if unknown.
func (cfg Config) normalized(size int64) Config {
	if cfg.FragmentSize == 0 {
		switch {
		case size < 0:
			cfg.FragmentSize = sixtyfourKb
		case size < sixtyfourKb:
			cfg.FragmentSize = max(int(size), 1)
		case size < oneMb:
			cfg.FragmentSize = sixteenKb
		default:
			cfg.FragmentSize = sixtyfourKb
		}
	}
	if cfg.Prefetch == 0 {
		cfg.Prefetch = prefetchSize
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.FragmentSize < 0 || cfg.FragmentSize > maxFragment {
		return fmt.Errorf("%w: fragment size must be in [0, %d]", ErrInvalidConfig, maxFragment)
	}
	if cfg.Prefetch < 0 {
		return fmt.Errorf("%w: prefetch must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Load reads a file, which should be a UTF-8 text file, and returns its
// content as a rope. The zero Config selects sensible defaults.
func Load(name string, cfg Config) (rope.Rope, error) {
	if err := cfg.validate(); err != nil {
		return rope.Rope{}, err
	}
	file, info, err := openFile(name)
	if err != nil {
		return rope.Rope{}, err
	}
	defer file.Close()
	cfg = cfg.normalized(info.Size())
	tracer().Debugf("textfile: loading %q, %d bytes in fragments of %d", name, info.Size(), cfg.FragmentSize)
	return load(context.Background(), file, cfg)
}

// FromReader reads all text from r and returns it as a rope. Loading stops
// early if ctx is cancelled, returning the context's error.
func FromReader(ctx context.Context, r io.Reader, cfg Config) (rope.Rope, error) {
	if err := cfg.validate(); err != nil {
		return rope.Rope{}, err
	}
	return load(ctx, r, cfg.normalized(-1))
}

// openFile opens an OS file and collects some useful information on it,
// checking for error conditions.
func openFile(name string) (*os.File, os.FileInfo, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, nil, err
	}
	return file, fi, nil
}

// load runs the fragment pipeline: a reader goroutine publishes fragments to
// a broadcaster, the calling goroutine subscribes and pushes every fragment
// to a rope builder.
func load(ctx context.Context, r io.Reader, cfg Config) (rope.Rope, error) {
	if err := ctx.Err(); err != nil {
		return rope.Rope{}, err
	}
	cast := caster.New(ctx)
	// subscribe before the first fragment is published
	fragments, ok := cast.Sub(ctx, uint(cfg.Prefetch))
	if !ok {
		cast.Close()
		return rope.Rope{}, ErrBroadcastClosed
	}
	errc := make(chan error, 1)
	go func() {
		defer cast.Close()
		errc <- readFragments(ctx, r, cast, cfg.FragmentSize)
	}()
	b := rope.NewBuilder()
	cnt := 0
	for msg := range fragments {
		b.PushString(msg.(string))
		cnt++
	}
	var err error
	select {
	case err = <-errc:
	case <-ctx.Done():
		err = ctx.Err()
	}
	if err != nil {
		tracer().Errorf("textfile: loading failed after %d fragments: %v", cnt, err)
		return rope.Rope{}, err
	}
	text := b.Build()
	tracer().Debugf("textfile: loaded %d bytes from %d fragments", text.Len(), cnt)
	return text, nil
}

// readFragments reads r in chunks of size bytes and publishes them as
// strings. Bytes at the end of a chunk which may continue in the next chunk
// are carried over.
func readFragments(ctx context.Context, r io.Reader, cast *caster.Caster, size int) error {
	buf := make([]byte, size)
	var carry []byte
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := io.ReadFull(r, buf)
		eof := errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
		if err != nil && !eof {
			return err
		}
		chunk := append(carry, buf[:n]...)
		cut := len(chunk)
		if !eof {
			cut = completePrefix(chunk)
		}
		carry = append([]byte(nil), chunk[cut:]...)
		if cut > 0 {
			if !cast.Pub(string(chunk[:cut])) {
				return ErrBroadcastClosed
			}
		}
		if eof {
			return nil
		}
	}
}

// completePrefix returns the length of the longest prefix of b which does
// not end in an incomplete UTF-8 sequence or a "\r" which might be followed
// by "\n".
func completePrefix(b []byte) int {
	cut := len(b)
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if utf8.RuneStart(b[i]) {
			if !utf8.FullRune(b[i:]) {
				cut = i
			}
			break
		}
	}
	if cut > 0 && b[cut-1] == '\r' {
		cut--
	}
	return cut
}
