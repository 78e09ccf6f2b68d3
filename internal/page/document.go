// Package page models an admin change-form as a mutable element tree.
//
// A Document is parsed from the HTML the admin backend serves and then used
// the way a browser page is: controllers look elements up by selector, read
// and write field values, toggle disabled/hidden state, insert new elements
// and attach click listeners. A Document is not safe for concurrent use; all
// access happens on the UI loop.
package page

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var ErrNoTokenField = errors.New("auth token field not found on page")

type Document struct {
	root      *html.Node
	listeners map[*html.Node][]func()
	selectors map[string]cascadia.Sel
}

// parses an HTML page into a document
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	return &Document{
		root:      root,
		listeners: make(map[*html.Node][]func()),
		selectors: make(map[string]cascadia.Sel),
	}, nil
}

func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// returns the first element matching selector, or nil when nothing matches
func (d *Document) Query(selector string) (*Element, error) {
	sel, err := d.compile(selector)
	if err != nil {
		return nil, err
	}

	n := cascadia.Query(d.root, sel)
	if n == nil {
		return nil, nil
	}

	return d.wrap(n), nil
}

// returns every element matching selector in document order
func (d *Document) QueryAll(selector string) ([]*Element, error) {
	sel, err := d.compile(selector)
	if err != nil {
		return nil, err
	}

	nodes := cascadia.QueryAll(d.root, sel)
	elements := make([]*Element, 0, len(nodes))

	for _, n := range nodes {
		elements = append(elements, d.wrap(n))
	}

	return elements, nil
}

// creates a detached element; attach it with InsertAfter or AppendChild
func (d *Document) CreateElement(tag string, text string, attrs ...html.Attribute) *Element {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}

	if text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}

	return d.wrap(n)
}

// number of click listeners attached anywhere in the document
func (d *Document) ListenerCount() int {
	count := 0
	for _, fns := range d.listeners {
		count += len(fns)
	}

	return count
}

// serializes the current state of the document
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}

	return buf.String()
}

func (d *Document) compile(selector string) (cascadia.Sel, error) {
	if sel, ok := d.selectors[selector]; ok {
		return sel, nil
	}

	sel, err := cascadia.Parse(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}

	d.selectors[selector] = sel

	return sel, nil
}

func (d *Document) wrap(n *html.Node) *Element {
	return &Element{doc: d, node: n}
}

// reads the anti-forgery token from a hidden input each time it is asked
type FieldToken struct {
	Doc      *Document
	Selector string
}

func (t FieldToken) Token() (string, error) {
	el, err := t.Doc.Query(t.Selector)
	if err != nil {
		return "", err
	}

	if el == nil {
		return "", ErrNoTokenField
	}

	return el.Value(), nil
}
