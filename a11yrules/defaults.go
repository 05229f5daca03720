package a11yrules

import (
	"strconv"
	"strings"

	"github.com/sirkon/a11ycheck/element"
)

// Builtin rule keys.
const (
	NoAlt               = "NO_ALT"
	RedundantAlt        = "REDUNDANT_ALT"
	HashHrefNeedsButton = "HASH_HREF_NEEDS_BUTTON"
	NoRole              = "NO_ROLE"
	NoTabIndex          = "NO_TABINDEX"
	ButtonRoleSpace     = "BUTTON_ROLE_SPACE"
	ButtonRoleEnter     = "BUTTON_ROLE_ENTER"
	FocusableAriaHidden = "FOCUSABLE_ARIA_HIDDEN"
	NoLabel             = "NO_LABEL"
)

// Default returns a registry with the builtin rules.
func Default() *Registry {
	r := NewRegistry()

	r.AddTagRule("img", NoAlt, TagRule{
		Msg: "You forgot an `alt` attribute on an image. Use an empty `alt` for decorative images.",
		Test: func(_ string, props *element.Props, _ []any) bool {
			if _, ok := props.Get("alt"); ok {
				return true
			}
			return isPresentation(props)
		},
	})
	r.AddTagRule("img", RedundantAlt, TagRule{
		Msg: "Screen readers already announce `img` elements as images, don't use the words " +
			"\"image\", \"photo\" or \"picture\" in the `alt` text.",
		Test: func(_ string, props *element.Props, _ []any) bool {
			alt := strings.ToLower(props.String("alt"))
			for _, word := range redundantAltWords {
				if strings.Contains(alt, word) {
					return false
				}
			}
			return true
		},
	})
	r.AddTagRule("a", HashHrefNeedsButton, TagRule{
		Msg: "You have an anchor with `href=\"#\"` and a click handler. That is a button, use a `button` element.",
		Test: func(_ string, props *element.Props, _ []any) bool {
			return !(props.String("href") == "#" && props.Has("onClick"))
		},
	})

	r.AddPropRule("onClick", NoRole, PropRule{
		Msg: "You have a click handler on a non-interactive element but no `role`. Add a role, like `button`.",
		Test: func(tagName string, props *element.Props, _ []any) bool {
			return isInteractive(tagName, props) || props.String("role") != ""
		},
	})
	r.AddPropRule("onClick", NoTabIndex, PropRule{
		Msg: "You have a click handler on a non-interactive element but no `tabIndex`, keyboard users cannot reach it.",
		Test: func(tagName string, props *element.Props, _ []any) bool {
			return isInteractive(tagName, props) || props.Has("tabIndex")
		},
	})
	r.AddPropRule("onClick", ButtonRoleSpace, PropRule{
		Msg: "You have `role=\"button\"` but no `onKeyDown` or `onKeyUp`, the space key will not activate it.",
		Test: func(tagName string, props *element.Props, _ []any) bool {
			if !isFakeButton(tagName, props) {
				return true
			}
			return props.Has("onKeyDown") || props.Has("onKeyUp")
		},
	})
	r.AddPropRule("onClick", ButtonRoleEnter, PropRule{
		Msg: "You have `role=\"button\"` but no `onKeyDown` or `onKeyPress`, the enter key will not activate it.",
		Test: func(tagName string, props *element.Props, _ []any) bool {
			if !isFakeButton(tagName, props) {
				return true
			}
			return props.Has("onKeyDown") || props.Has("onKeyPress")
		},
	})
	r.AddPropRule("aria-hidden", FocusableAriaHidden, PropRule{
		Msg: "You have `aria-hidden` on a focusable element. Screen readers will skip it while keyboard users still land on it.",
		Test: func(tagName string, props *element.Props, _ []any) bool {
			if !isTrue(props, "aria-hidden") {
				return true
			}
			return !isFocusable(tagName, props)
		},
	})

	r.AddRenderRule(NoLabel, RenderRule{
		Msg:  "You have an unlabeled interactive element. Add `aria-label`, `aria-labelledby` or some text content.",
		Test: noLabelTest(r),
	})

	r.SetMobileExclusions(NoTabIndex, ButtonRoleSpace, ButtonRoleEnter)

	return r
}

var redundantAltWords = []string{"image", "photo", "picture"}

var interactiveTags = map[string]struct{}{
	"button":   {},
	"input":    {},
	"select":   {},
	"textarea": {},
	"option":   {},
	"summary":  {},
}

func isInteractive(tagName string, props *element.Props) bool {
	if tagName == "a" {
		return props.Has("href")
	}
	_, ok := interactiveTags[tagName]
	return ok
}

func isFakeButton(tagName string, props *element.Props) bool {
	return props.String("role") == "button" && !isInteractive(tagName, props)
}

func isPresentation(props *element.Props) bool {
	switch props.String("role") {
	case "presentation", "none":
		return true
	default:
		return false
	}
}

func isFocusable(tagName string, props *element.Props) bool {
	if v, ok := tabIndex(props); ok {
		return v >= 0
	}
	return isInteractive(tagName, props)
}

func tabIndex(props *element.Props) (int, bool) {
	v, ok := props.Get("tabIndex")
	if !ok || v == nil {
		return 0, false
	}
	switch x := v.(type) {
	case int:
		return x, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func isTrue(props *element.Props, name string) bool {
	v, _ := props.Get(name)
	switch x := v.(type) {
	case bool:
		return x
	case string:
		return strings.EqualFold(x, "true")
	default:
		return false
	}
}
