package a11yrules

import (
	"errors"
	"sync"

	"github.com/sirkon/a11ycheck/element"
)

// ErrBound is returned by Bind when the registry is bound to another host.
var ErrBound = errors.New("rule registry is bound to another host")

// Binding is the host view available to render rules.
type Binding interface {
	element.Document

	// CurrentOwner returns the component instance currently rendering.
	CurrentOwner() (element.Owner, bool)
}

// Registry keeps rules of every category as ordered sequences.
type Registry struct {
	tags   map[string][]Keyed[TagRule]
	props  map[string][]Keyed[PropRule]
	render []Keyed[RenderRule]
	mobile []string

	mu      sync.RWMutex
	binding Binding
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tags:  map[string][]Keyed[TagRule]{},
		props: map[string][]Keyed[PropRule]{},
	}
}

// AddTagRule registers a rule for the tag. Registering an existing key for the
// same tag replaces the rule and keeps its position.
func (r *Registry) AddTagRule(tag, key string, rule TagRule) *Registry {
	r.tags[tag] = upsert(r.tags[tag], key, rule)
	return r
}

// AddPropRule registers a rule for the property name.
func (r *Registry) AddPropRule(prop, key string, rule PropRule) *Registry {
	r.props[prop] = upsert(r.props[prop], key, rule)
	return r
}

// AddRenderRule registers a rule applied to every element.
func (r *Registry) AddRenderRule(key string, rule RenderRule) *Registry {
	r.render = upsert(r.render, key, rule)
	return r
}

// SetMobileExclusions sets rule keys excluded under the mobile device profile.
func (r *Registry) SetMobileExclusions(keys ...string) *Registry {
	r.mobile = append([]string(nil), keys...)
	return r
}

// TagRules returns rules for the tag in registration order.
func (r *Registry) TagRules(tag string) []Keyed[TagRule] {
	return r.tags[tag]
}

// PropRules returns rules for the property name in registration order.
func (r *Registry) PropRules(prop string) []Keyed[PropRule] {
	return r.props[prop]
}

// RenderRules returns render rules in registration order.
func (r *Registry) RenderRules() []Keyed[RenderRule] {
	return r.render
}

// MobileExclusions returns rule keys excluded under the mobile profile.
func (r *Registry) MobileExclusions() []string {
	return r.mobile
}

// Bind associates the registry with a host. A registry serves one host:
// binding it to another one fails with ErrBound, binding the same host again
// is a no-op.
func (r *Registry) Bind(b Binding) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.binding != nil && r.binding != b {
		return ErrBound
	}
	r.binding = b
	return nil
}

// Binding returns the bound host or nil.
func (r *Registry) Binding() Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.binding
}

func upsert[R any](list []Keyed[R], key string, rule R) []Keyed[R] {
	for i := range list {
		if list[i].Key == key {
			list[i].Rule = rule
			return list
		}
	}
	return append(list, Keyed[R]{Key: key, Rule: rule})
}
