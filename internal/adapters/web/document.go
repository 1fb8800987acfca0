package web

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"petverse/internal/domain"
	"petverse/internal/ports/output"
)

const i18nAttr = "data-i18n"

var _ output.Document = (*Document)(nil)

// Document is a parsed HTML page. All mutations go through its lock, so
// surfaces and the locale engine may touch it from different goroutines.
type Document struct {
	mu    sync.Mutex
	root  *html.Node
	title string
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	d := &Document{root: root}
	if t := d.find(func(n *html.Node) bool { return n.DataAtom == atom.Title }); t != nil {
		d.title = textContent(t)
	}
	return d, nil
}

// Require fails when any of ids is missing from the document.
func (d *Document) Require(ids ...string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	var errs []error
	for _, id := range ids {
		if d.byID(id) == nil {
			errs = append(errs, fmt.Errorf("%w: #%s", domain.ErrMissingElement, id))
		}
	}
	return errors.Join(errs...)
}

func (d *Document) TranslatableNodes() []output.Node {
	d.mu.Lock()
	defer d.mu.Unlock()
	var nodes []output.Node
	walk(d.root, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		key, ok := attr(n, i18nAttr)
		if !ok || key == "" {
			return
		}
		kind := output.NodeText
		switch n.DataAtom {
		case atom.Input, atom.Textarea:
			kind = output.NodeInput
		case atom.Title:
			kind = output.NodeTitle
		}
		nodes = append(nodes, &element{doc: d, n: n, key: key, kind: kind})
	})
	return nodes
}

func (d *Document) SetTitle(s string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.title = s
	if t := d.find(func(n *html.Node) bool { return n.DataAtom == atom.Title }); t != nil {
		setText(t, s)
	}
}

// SelectLocale marks the matching option of #languageSelect as selected.
func (d *Document) SelectLocale(code string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	sel := d.byID("languageSelect")
	if sel == nil {
		return
	}
	walk(sel, func(n *html.Node) {
		if n.DataAtom != atom.Option {
			return
		}
		if v, _ := attr(n, "value"); v == code {
			setAttr(n, "selected", "selected")
		} else {
			removeAttr(n, "selected")
		}
	})
}

// Title returns the document title.
func (d *Document) Title() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.title
}

// Text returns the text content of the element with the given id.
func (d *Document) Text(id string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if n := d.byID(id); n != nil {
		return textContent(n)
	}
	return ""
}

// Attr returns an attribute of the element with the given id.
func (d *Document) Attr(id, name string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if n := d.byID(id); n != nil {
		return attr(n, name)
	}
	return "", false
}

// KeyText returns the text (or placeholder for inputs) of the first node
// marked with key.
func (d *Document) KeyText(key string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := d.find(func(n *html.Node) bool {
		k, ok := attr(n, i18nAttr)
		return ok && k == key
	})
	if n == nil {
		return ""
	}
	if n.DataAtom == atom.Input || n.DataAtom == atom.Textarea {
		p, _ := attr(n, "placeholder")
		return p
	}
	return textContent(n)
}

// Render writes the current markup to w.
func (d *Document) Render(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return html.Render(w, d.root)
}

// update runs f with the lock held on the element with the given id.
func (d *Document) update(id string, f func(n *html.Node)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if n := d.byID(id); n != nil {
		f(n)
	}
}

func (d *Document) byID(id string) *html.Node {
	return d.find(func(n *html.Node) bool {
		v, ok := attr(n, "id")
		return ok && v == id
	})
}

func (d *Document) find(match func(*html.Node) bool) *html.Node {
	var found *html.Node
	walk(d.root, func(n *html.Node) {
		if found == nil && n.Type == html.ElementNode && match(n) {
			found = n
		}
	})
	return found
}

// element is a node carrying a data-i18n key.
type element struct {
	doc  *Document
	n    *html.Node
	key  string
	kind output.NodeKind
}

func (e *element) Key() string           { return e.key }
func (e *element) Kind() output.NodeKind { return e.kind }

func (e *element) SetText(s string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	setText(e.n, s)
}

func (e *element) SetPlaceholder(s string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	setAttr(e.n, "placeholder", s)
}

func walk(n *html.Node, f func(*html.Node)) {
	f(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, f)
	}
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	out := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Key != key {
			out = append(out, a)
		}
	}
	n.Attr = out
}

func removeChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
	}
}

func setText(n *html.Node, s string) {
	removeChildren(n)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: s})
}

func textContent(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	})
	return strings.TrimSpace(b.String())
}
