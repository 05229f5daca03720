// Package dispatch runs registry rules against a constructed element.
package dispatch

import (
	"github.com/sirkon/a11ycheck/a11yrules"
	"github.com/sirkon/a11ycheck/element"
)

// FailureFunc is called for every rule violation. A non-nil error stops the
// dispatch immediately and is returned to the caller.
type FailureFunc func(tagName string, props *element.Props, msg string) error

// Dispatcher runs tag, property and render rules in this order.
type Dispatcher struct {
	rules *a11yrules.Registry
}

// New creates a dispatcher over the registry.
func New(rules *a11yrules.Registry) *Dispatcher {
	return &Dispatcher{rules: rules}
}

// RunAll runs every category of rules. Rules rejected by shouldRun are
// skipped. The first error returned by onFailure or by a render rule aborts
// the rest of the dispatch: no later rule of any category is evaluated.
func (d *Dispatcher) RunAll(desc element.Descriptor, shouldRun func(key string) bool, onFailure FailureFunc) error {
	passes := []func(element.Descriptor, func(string) bool, FailureFunc) error{
		d.runTagRules,
		d.runPropRules,
		d.runRenderRules,
	}
	for _, pass := range passes {
		if err := pass(desc, shouldRun, onFailure); err != nil {
			return err
		}
	}

	return nil
}

func (d *Dispatcher) runTagRules(desc element.Descriptor, shouldRun func(string) bool, onFailure FailureFunc) error {
	for _, kr := range d.rules.TagRules(desc.TagName) {
		if !shouldRun(kr.Key) || kr.Rule.Test(desc.TagName, desc.Props, desc.Children) {
			continue
		}
		if err := onFailure(desc.TagName, desc.Props, kr.Rule.Msg); err != nil {
			return err
		}
	}

	return nil
}

func (d *Dispatcher) runPropRules(desc element.Descriptor, shouldRun func(string) bool, onFailure FailureFunc) error {
	for name, value := range desc.Props.All() {
		if value == nil {
			continue
		}

		for _, kr := range d.rules.PropRules(name) {
			if !shouldRun(kr.Key) || kr.Rule.Test(desc.TagName, desc.Props, desc.Children) {
				continue
			}
			if err := onFailure(desc.TagName, desc.Props, kr.Rule.Msg); err != nil {
				return err
			}
		}
	}

	return nil
}

func (d *Dispatcher) runRenderRules(desc element.Descriptor, shouldRun func(string) bool, onFailure FailureFunc) error {
	for _, kr := range d.rules.RenderRules() {
		if !shouldRun(kr.Key) {
			continue
		}

		msg := kr.Rule.Msg
		report := func() error {
			return onFailure(desc.TagName, desc.Props, msg)
		}
		if err := kr.Rule.Test(desc.TagName, desc.Props, desc.Children, report); err != nil {
			return err
		}
	}

	return nil
}
