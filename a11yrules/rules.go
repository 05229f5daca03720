package a11yrules

import "github.com/sirkon/a11ycheck/element"

// Test reports whether an element passes a check.
type Test func(tagName string, props *element.Props, children []any) bool

// TagRule is a check for elements of a specific tag.
type TagRule struct {
	Test Test
	Msg  string
}

// PropRule is a check triggered by the presence of a property.
type PropRule struct {
	Test Test
	Msg  string
}

// Report delivers a failure of a render rule. A non-nil error means the
// failure is fatal and must be returned by whoever called Report.
type Report func() error

// RenderTest runs a render rule. It may call report any number of times,
// synchronously or from a lifecycle hook registered with the host.
type RenderTest func(tagName string, props *element.Props, children []any, report Report) error

// RenderRule is a check applied to every element.
type RenderRule struct {
	Test RenderTest
	Msg  string
}

// Keyed is a rule with its key.
type Keyed[R any] struct {
	Key  string
	Rule R
}
