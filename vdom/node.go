package vdom

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/a-h/templ"

	"github.com/sirkon/a11ycheck/element"
)

var (
	_ templ.Component = (*Node)(nil)
	_ element.Owned   = (*Node)(nil)
	_ element.Node    = (*Node)(nil)
	_ slog.LogValuer  = (*Node)(nil)
)

// Node is a built tag element.
type Node struct {
	Tag      string
	Props    *element.Props
	Children []any

	owner    *Instance
	rendered *Instance
}

// Owner returns the component instance that rendered the node.
func (n *Node) Owner() (element.Owner, bool) {
	if n.owner == nil {
		return nil, false
	}
	return n.owner, true
}

// ElementID returns the id property.
func (n *Node) ElementID() string {
	return n.Props.String("id")
}

// TextContent returns the concatenated text of all descendants.
func (n *Node) TextContent() string {
	var b strings.Builder
	n.walkText(&b, false)
	return b.String()
}

// AccessibleText is like TextContent, but an aria-label replaces the content
// of its element and images contribute their alt text.
func (n *Node) AccessibleText() string {
	var b strings.Builder
	n.walkText(&b, true)
	return b.String()
}

func (n *Node) walkText(b *strings.Builder, accessible bool) {
	if accessible {
		if label := n.Props.String("aria-label"); label != "" {
			b.WriteString(label)
			return
		}
		if n.Tag == "img" {
			b.WriteString(n.Props.String("alt"))
			return
		}
	}

	for _, c := range n.Children {
		switch x := c.(type) {
		case *Node:
			x.walkText(b, accessible)
		case string:
			b.WriteString(x)
		case nil, bool:
		default:
			fmt.Fprint(b, x)
		}
	}
}

// LogValue keeps log records short.
func (n *Node) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("tag", n.Tag),
		slog.String("id", n.ElementID()),
	)
}

// voidTags have no closing tag.
var voidTags = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {}, "img": {},
	"input": {}, "link": {}, "meta": {}, "source": {}, "track": {}, "wbr": {},
}

// attrNames maps property names to HTML attribute names.
var attrNames = map[string]string{
	"className": "class",
	"htmlFor":   "for",
	"tabIndex":  "tabindex",

	"onClick":    "onclick",
	"onKeyDown":  "onkeydown",
	"onKeyUp":    "onkeyup",
	"onKeyPress": "onkeypress",
}

// Render writes the node as HTML. Function valued properties (event
// handlers), nil and false values are not rendered.
func (n *Node) Render(ctx context.Context, w io.Writer) error {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(n.Tag)
	for name, value := range n.Props.All() {
		attr, ok := attrValue(value)
		if !ok {
			continue
		}
		if mapped, ok := attrNames[name]; ok {
			name = mapped
		}
		b.WriteString(" ")
		b.WriteString(templ.EscapeString(name))
		if attr != nil {
			b.WriteString(`="`)
			b.WriteString(templ.EscapeString(*attr))
			b.WriteString(`"`)
		}
	}
	b.WriteString(">")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	if _, void := voidTags[n.Tag]; void {
		return nil
	}

	for _, c := range n.Children {
		if err := renderChild(ctx, w, c); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</"+n.Tag+">")
	return err
}

func renderChild(ctx context.Context, w io.Writer, c any) error {
	switch x := c.(type) {
	case nil, bool:
		return nil
	case templ.Component:
		return x.Render(ctx, w)
	case string:
		_, err := io.WriteString(w, templ.EscapeString(x))
		return err
	default:
		_, err := io.WriteString(w, templ.EscapeString(fmt.Sprint(x)))
		return err
	}
}

// attrValue returns nil text for boolean attributes.
func attrValue(v any) (*string, bool) {
	switch x := v.(type) {
	case nil:
		return nil, false
	case bool:
		return nil, x
	case string:
		return &x, true
	case fmt.Stringer:
		s := x.String()
		return &s, true
	case int, int64, float64:
		s := fmt.Sprint(x)
		return &s, true
	default:
		// Handlers and other Go values have no HTML form.
		return nil, false
	}
}
