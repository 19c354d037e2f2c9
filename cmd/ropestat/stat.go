package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/rope"
	"github.com/npillmayer/rope/metrics"
	"github.com/npillmayer/rope/textfile"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

type statOptions struct {
	wrap     int    // line width for wrapped output, 0 = no output, -1 = terminal
	dot      string // file name for DOT output
	fragment int    // fragment size for loading
	noColor  bool
	debug    bool
}

// runStat loads a file and writes a report to out.
func runStat(out io.Writer, name string, opts statOptions) error {
	text, err := textfile.Load(name, textfile.Config{FragmentSize: opts.fragment})
	if err != nil {
		return err
	}
	rope.T().P("cmd", "ropestat").Infof("loaded %q with %d bytes", name, text.Len())
	if opts.noColor || !isTerminal(out) {
		color.NoColor = true
	}
	label := color.New(color.FgBlue)
	graphemes, err := metrics.GraphemeCount(text, 0, text.Len())
	if err != nil {
		return err
	}
	words, _, err := metrics.Words().Apply(text, 0, text.Len())
	if err != nil {
		return err
	}
	report := []struct {
		key   string
		value any
	}{
		{"file", name},
		{"bytes", text.Len()},
		{"graphemes", graphemes},
		{"words", words.WordCount()},
		{"newlines", text.NewlineCount()},
		{"height", text.Height()},
		{"leaves", text.LeafCount()},
	}
	for _, line := range report {
		label.Fprintf(out, "%-10s", line.key)
		fmt.Fprintf(out, " %v\n", line.value)
	}
	if opts.dot != "" {
		if err := writeDot(text, opts.dot); err != nil {
			return err
		}
	}
	if opts.wrap != 0 {
		width := opts.wrap
		if width < 0 {
			width = terminalWidth()
		}
		return printWrapped(out, text, width)
	}
	return nil
}

func writeDot(text rope.Rope, name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	rope.Rope2Dot(text, f)
	return f.Close()
}

// printWrapped outputs a text wrapped to width, prefixing lines with their
// line number.
func printWrapped(out io.Writer, text rope.Rope, width int) error {
	breaks, err := metrics.Wrap(text, width, uax11.ContextFromEnvironment())
	if err != nil {
		return err
	}
	lineno := color.New(color.FgRed)
	start := 0
	for i, end := range breaks {
		line, err := text.Report(start, end-start)
		if err != nil {
			return err
		}
		lineno.Fprintf(out, "%4d ", i+1)
		fmt.Fprintln(out, strings.TrimRight(line, " \t\r\n"))
		start = end
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth guesses a line width from the terminal attached to stdout.
func terminalWidth() int {
	width := 65
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			switch {
			case w > 65:
				width = w - 10
			case w > 30:
				width = w - 5
			case w > 10:
				width = w
			default:
				width = 10
			}
		}
	}
	rope.T().P("cmd", "ropestat").Infof("setting line length to %d en", width)
	return width
}
