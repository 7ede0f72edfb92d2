// Package htmldoc implements ports.Document over golang.org/x/net/html.
// It parses a full HTML page, exposes its <a> elements for rewriting and
// renders the mutated tree back out.
package htmldoc

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/corey/svcdash/internal/ports"
)

// Ensure Document implements the interface.
var _ ports.Document = (*Document)(nil)

// Document is a parsed HTML page.
type Document struct {
	root *html.Node
}

// Parse reads an HTML document from r.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{root: root}, nil
}

// ParseBytes parses an in-memory HTML document.
func ParseBytes(b []byte) (*Document, error) {
	return Parse(bytes.NewReader(b))
}

// Anchors returns every <a> element, in document order.
func (d *Document) Anchors() []ports.Anchor {
	var out []ports.Anchor
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.A {
			out = append(out, &Anchor{node: n})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return out
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String renders the document, returning "" on failure.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// Anchor wraps a single <a> node.
type Anchor struct {
	node *html.Node
}

// Href returns the href attribute.
func (a *Anchor) Href() string {
	v, _ := a.Attr("href")
	return v
}

// SetHref overwrites href, appending the attribute if it is missing.
func (a *Anchor) SetHref(href string) {
	for i := range a.node.Attr {
		if a.node.Attr[i].Namespace == "" && a.node.Attr[i].Key == "href" {
			a.node.Attr[i].Val = href
			return
		}
	}
	a.node.Attr = append(a.node.Attr, html.Attribute{Key: "href", Val: href})
}

// Attr returns the named attribute. The parser lower-cases keys.
func (a *Anchor) Attr(key string) (string, bool) {
	for _, attr := range a.node.Attr {
		if attr.Namespace == "" && attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}
