package page

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// a handle on one node of a Document
type Element struct {
	doc  *Document
	node *html.Node
}

func (e *Element) Tag() string {
	return e.node.Data
}

func (e *Element) ID() string {
	id, _ := e.Attr("id")
	return id
}

func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}

	return "", false
}

func (e *Element) SetAttr(key, val string) {
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			e.node.Attr[i].Val = val
			return
		}
	}

	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: val})
}

func (e *Element) RemoveAttr(key string) {
	attrs := e.node.Attr[:0]
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		attrs = append(attrs, a)
	}

	e.node.Attr = attrs
}

// current value of a form control; textareas hold it as text content
func (e *Element) Value() string {
	switch e.node.DataAtom {
	case atom.Textarea:
		return e.Text()
	case atom.Input:
		v, _ := e.Attr("value")
		return v
	case atom.Select:
		for _, opt := range e.descendants(atom.Option) {
			if _, selected := opt.Attr("selected"); selected {
				return opt.optionValue()
			}
		}
		if opts := e.descendants(atom.Option); len(opts) > 0 {
			return opts[0].optionValue()
		}
		return ""
	case atom.Option:
		return e.optionValue()
	default:
		return e.Text()
	}
}

func (e *Element) SetValue(v string) {
	switch e.node.DataAtom {
	case atom.Input, atom.Option:
		e.SetAttr("value", v)
	default:
		e.SetText(v)
	}
}

// concatenated text of the element and its descendants
func (e *Element) Text() string {
	var b strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node)

	return b.String()
}

// replaces all children with a single text node
func (e *Element) SetText(s string) {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}

	if s != "" {
		e.node.AppendChild(&html.Node{Type: html.TextNode, Data: s})
	}
}

func (e *Element) Enabled() bool {
	_, disabled := e.Attr("disabled")
	return !disabled
}

func (e *Element) SetEnabled(enabled bool) {
	if enabled {
		e.RemoveAttr("disabled")
		return
	}

	e.SetAttr("disabled", "")
}

// false when the element carries the hidden attribute or an inline display:none
func (e *Element) Visible() bool {
	if _, hidden := e.Attr("hidden"); hidden {
		return false
	}

	style, _ := e.Attr("style")

	return !strings.Contains(strings.ReplaceAll(style, " ", ""), "display:none")
}

func (e *Element) SetVisible(visible bool) {
	if !visible {
		e.SetAttr("hidden", "")
		return
	}

	e.RemoveAttr("hidden")

	if style, ok := e.Attr("style"); ok {
		compact := strings.ReplaceAll(style, " ", "")
		compact = strings.ReplaceAll(compact, "display:none;", "")
		compact = strings.ReplaceAll(compact, "display:none", "")
		if compact == "" {
			e.RemoveAttr("style")
		} else {
			e.SetAttr("style", compact)
		}
	}
}

// parent element, nil for the document root
func (e *Element) Parent() *Element {
	if e.node.Parent == nil || e.node.Parent.Type != html.ElementNode {
		return nil
	}

	return e.doc.wrap(e.node.Parent)
}

func (e *Element) AppendChild(child *Element) {
	detach(child.node)
	e.node.AppendChild(child.node)
}

// inserts sibling directly after e
func (e *Element) InsertAfter(sibling *Element) {
	if e.node.Parent == nil {
		return
	}

	detach(sibling.node)
	e.node.Parent.InsertBefore(sibling.node, e.node.NextSibling)
}

// registers a click listener
func (e *Element) OnClick(fn func()) {
	e.doc.listeners[e.node] = append(e.doc.listeners[e.node], fn)
}

// dispatches a click; disabled elements swallow it like a browser control does
func (e *Element) Click() bool {
	if !e.Enabled() {
		return false
	}

	fns := e.doc.listeners[e.node]
	for _, fn := range fns {
		fn()
	}

	return len(fns) > 0
}

func (e *Element) Same(other *Element) bool {
	return other != nil && e.node == other.node
}

func (e *Element) descendants(a atom.Atom) []*Element {
	var out []*Element

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.DataAtom == a {
				out = append(out, e.doc.wrap(c))
			}
			walk(c)
		}
	}
	walk(e.node)

	return out
}

func (e *Element) optionValue() string {
	if v, ok := e.Attr("value"); ok {
		return v
	}

	return e.Text()
}

func detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}
