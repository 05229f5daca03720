package element

// Origin tells where a constructed element comes from. It is either a
// ComponentInstance or a PlainElement.
type Origin interface {
	// Name is used to identify the element in failure reports.
	Name() string

	isOrigin()
}

// ComponentInstance is an element rendered by a component with a known owner.
type ComponentInstance struct {
	Owner Owner
}

// Name returns the owner display name.
func (c ComponentInstance) Name() string { return c.Owner.DisplayName() }

func (ComponentInstance) isOrigin() {}

// PlainElement is an element without a known owner.
type PlainElement struct {
	Tag string
	ID  string
}

// Name returns "tag#id".
func (p PlainElement) Name() string { return p.Tag + "#" + p.ID }

func (PlainElement) isOrigin() {}

// ResolveOrigin classifies a produced element. An owner with an empty display
// name is not good enough to name anything, the element falls back to a
// PlainElement then.
func ResolveOrigin(el any, tag, id string) Origin {
	if o, ok := el.(Owned); ok {
		if owner, ok := o.Owner(); ok && owner != nil && owner.DisplayName() != "" {
			return ComponentInstance{Owner: owner}
		}
	}
	return PlainElement{Tag: tag, ID: id}
}
