package element

import "iter"

// Props is an ordered property mapping. Iteration follows the order in which
// keys were first set, setting an existing key keeps its position.
type Props struct {
	keys   []string
	values map[string]any
}

// NewProps creates an empty property set.
func NewProps() *Props {
	return &Props{values: map[string]any{}}
}

// Set assigns a value and returns the receiver for chaining.
func (p *Props) Set(name string, value any) *Props {
	if p.values == nil {
		p.values = map[string]any{}
	}
	if _, ok := p.values[name]; !ok {
		p.keys = append(p.keys, name)
	}
	p.values[name] = value
	return p
}

// Get returns a value set under the name. A nil value set explicitly is
// reported as present.
func (p *Props) Get(name string) (any, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p.values[name]
	return v, ok
}

// Has reports whether the name is set to a non-nil value.
func (p *Props) Has(name string) bool {
	v, ok := p.Get(name)
	return ok && v != nil
}

// String returns a string value for the name or an empty string when it is
// absent or not a string.
func (p *Props) String(name string) string {
	v, _ := p.Get(name)
	s, _ := v.(string)
	return s
}

// Len returns the number of keys.
func (p *Props) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns a copy of the keys in insertion order.
func (p *Props) Keys() []string {
	if p == nil {
		return nil
	}
	res := make([]string, len(p.keys))
	copy(res, p.keys)
	return res
}

// All iterates over key-value pairs in insertion order.
func (p *Props) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if p == nil {
			return
		}
		for _, k := range p.keys {
			if !yield(k, p.values[k]) {
				return
			}
		}
	}
}
