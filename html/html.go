/*
Package html creates ropes from the textual content of HTML.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package html

import (
	"io"

	"github.com/npillmayer/rope"
	"golang.org/x/net/html"
)

// InnerText creates a rope for the textual content of an HTML element and all
// its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents). Content of <script> and <style>
// elements is skipped.
func InnerText(n *html.Node) (rope.Rope, error) {
	if n == nil {
		return rope.Rope{}, rope.ErrIllegalArguments
	}
	b := rope.NewBuilder()
	collectText(n, b)
	return b.Build(), nil
}

func collectText(n *html.Node, b *rope.Builder) {
	switch n.Type {
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return
		}
	case html.TextNode:
		b.PushString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// TextFromHTML creates a rope from the textual content of an HTML fragment.
// It does no interpretation of layout and styling, but extracts the pure text.
func TextFromHTML(input io.Reader) (rope.Rope, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return rope.Rope{}, err
	}
	b := rope.NewBuilder()
	for _, n := range nodes {
		collectText(n, b)
	}
	return b.Build(), nil
}
