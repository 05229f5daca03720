package checkcli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/sirkon/a11ycheck/element"
	"github.com/sirkon/a11ycheck/vdom"
)

// componentAttr marks an element rendered by a component of the given name.
const componentAttr = "data-component"

// propNames maps HTML attribute names to host property names.
var propNames = map[string]string{
	"class":      "className",
	"for":        "htmlFor",
	"tabindex":   "tabIndex",
	"onclick":    "onClick",
	"onkeydown":  "onKeyDown",
	"onkeyup":    "onKeyUp",
	"onkeypress": "onKeyPress",
}

// replay parses the document and builds it with the host, children before
// their parents.
func replay(h *vdom.Host, r io.Reader) (*vdom.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return build(h, c)
		}
	}
	return nil, fmt.Errorf("parse html: no root element")
}

func build(h *vdom.Host, n *html.Node) (*vdom.Node, error) {
	props := element.NewProps()
	component := ""
	for _, a := range n.Attr {
		if a.Key == componentAttr {
			component = a.Val
		}
		name := a.Key
		if mapped, ok := propNames[name]; ok {
			name = mapped
		}
		props.Set(name, a.Val)
	}

	if component == "" {
		children, err := buildChildren(h, n)
		if err != nil {
			return nil, err
		}
		return h.CreateElement(n.Data, props, children...)
	}

	c := vdom.Define(component, func(h *vdom.Host, _ *element.Props, _ []any) (*vdom.Node, error) {
		children, err := buildChildren(h, n)
		if err != nil {
			return nil, err
		}
		return h.CreateElement(n.Data, props, children...)
	})
	return h.CreateElement(c, nil)
}

func buildChildren(h *vdom.Host, n *html.Node) ([]any, error) {
	var res []any
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			child, err := build(h, c)
			if err != nil {
				return nil, err
			}
			res = append(res, child)
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				res = append(res, c.Data)
			}
		}
	}
	return res, nil
}

func writeDocument(path string, root *vdom.Node) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	if _, err := io.WriteString(f, "<!DOCTYPE html>\n"); err != nil {
		f.Close()
		return fmt.Errorf("write output: %w", err)
	}
	if err := root.Render(context.Background(), f); err != nil {
		f.Close()
		return fmt.Errorf("write output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}
