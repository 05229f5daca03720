package element

// Descriptor is a snapshot of one construction call handed to rules.
type Descriptor struct {
	TagName  string
	Props    *Props
	Children []any
	ID       string
}

// CreateFunc is a host construction entry point. typ is either a tag name
// string or a host specific component reference.
type CreateFunc func(typ any, props *Props, children ...any) (any, error)

// Middleware wraps a construction entry point.
type Middleware func(next CreateFunc) CreateFunc

// Owner is a component instance rendering elements.
type Owner interface {
	DisplayName() string
}

// Hook is run by a host at a lifecycle milestone.
type Hook func() error

// Lifecycle is implemented by component instances supporting deferred work.
// Each registered hook runs once, at the next milestone of its kind. Hooks
// pending when the instance is unmounted are dropped.
type Lifecycle interface {
	OnMounted(hook Hook)
	OnUpdated(hook Hook)

	// Mounted reports whether the instance has reached its mount milestone
	// and is not unmounted yet.
	Mounted() bool
}

// Owned is implemented by produced elements aware of their owner.
type Owned interface {
	Owner() (Owner, bool)
}

// Node is a mounted element.
type Node interface {
	ElementID() string
	TextContent() string
}

// Document resolves mounted nodes.
type Document interface {
	ElementByID(id string) (Node, bool)
}
