package a11yrules

import (
	"strings"

	"github.com/sirkon/a11ycheck/element"
)

type labelState int

const (
	labelMissing labelState = iota
	labelPresent
	labelUnknown
)

// accessibleTexter is implemented by nodes able to compute the text assistive
// technologies would announce, alt texts of nested images included.
type accessibleTexter interface {
	AccessibleText() string
}

func noLabelTest(r *Registry) RenderTest {
	return func(tagName string, props *element.Props, children []any, report Report) error {
		if !needsLabel(tagName, props) || hasLabelProp(props) {
			return nil
		}

		switch childrenLabel(children) {
		case labelPresent:
			return nil
		case labelMissing:
			return report()
		}

		// Some children are opaque, their text is only known once mounted.
		b := r.Binding()
		if b == nil {
			return nil
		}
		owner, ok := b.CurrentOwner()
		if !ok {
			return nil
		}
		lc, ok := owner.(element.Lifecycle)
		if !ok {
			return nil
		}

		id := props.String("id")
		check := func() error {
			node, ok := b.ElementByID(id)
			if !ok || nodeText(node) != "" {
				return nil
			}
			return report()
		}
		lc.OnMounted(check)
		lc.OnUpdated(check)
		return nil
	}
}

func needsLabel(tagName string, props *element.Props) bool {
	if isTrue(props, "aria-hidden") || isPresentation(props) {
		return false
	}
	switch tagName {
	case "button":
		return true
	case "a":
		return props.Has("href")
	case "input", "select", "textarea", "option":
		// Form controls are labelled from outside with <label>.
		return false
	}
	return props.Has("onClick")
}

func hasLabelProp(props *element.Props) bool {
	for _, name := range []string{"aria-label", "aria-labelledby", "title"} {
		if strings.TrimSpace(props.String(name)) != "" {
			return true
		}
	}
	return false
}

func childrenLabel(children []any) labelState {
	state := labelMissing
	for _, c := range children {
		switch x := c.(type) {
		case nil, bool:
		case string:
			if strings.TrimSpace(x) != "" {
				return labelPresent
			}
		case element.Node:
			if nodeText(x) != "" {
				return labelPresent
			}
		case int, int64, float64:
			return labelPresent
		default:
			state = labelUnknown
		}
	}
	return state
}

func nodeText(n element.Node) string {
	if at, ok := n.(accessibleTexter); ok {
		return strings.TrimSpace(at.AccessibleText())
	}
	return strings.TrimSpace(n.TextContent())
}
