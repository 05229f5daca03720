package vdom

import "github.com/sirkon/a11ycheck/element"

// RenderFunc renders a component. It builds its elements with the host.
type RenderFunc func(h *Host, props *element.Props, children []any) (*Node, error)

// Component is a named reusable piece of UI.
type Component struct {
	Name   string
	Render RenderFunc
}

// Define creates a component.
func Define(name string, render RenderFunc) *Component {
	return &Component{Name: name, Render: render}
}

var (
	_ element.Owner     = (*Instance)(nil)
	_ element.Lifecycle = (*Instance)(nil)
)

// Instance is a rendered component.
type Instance struct {
	component *Component
	props     *element.Props

	mounted   bool
	unmounted bool
	onMounted []element.Hook
	onUpdated []element.Hook
}

// DisplayName returns the component name.
func (i *Instance) DisplayName() string {
	return i.component.Name
}

// Props returns the properties the instance was rendered with.
func (i *Instance) Props() *element.Props {
	return i.props
}

// Mounted reports whether the instance is currently mounted.
func (i *Instance) Mounted() bool {
	return i.mounted && !i.unmounted
}

// OnMounted registers a hook for the next mount milestone.
func (i *Instance) OnMounted(hook element.Hook) {
	if i.unmounted {
		return
	}
	i.onMounted = append(i.onMounted, hook)
}

// OnUpdated registers a hook for the next update milestone.
func (i *Instance) OnUpdated(hook element.Hook) {
	if i.unmounted {
		return
	}
	i.onUpdated = append(i.onUpdated, hook)
}

func (i *Instance) fireMounted() error {
	i.mounted = true
	hooks := i.onMounted
	i.onMounted = nil
	return runHooks(hooks)
}

func (i *Instance) fireUpdated() error {
	hooks := i.onUpdated
	i.onUpdated = nil
	return runHooks(hooks)
}

func (i *Instance) unmount() {
	i.unmounted = true
	i.onMounted = nil
	i.onUpdated = nil
}

func runHooks(hooks []element.Hook) error {
	for _, hook := range hooks {
		if err := hook(); err != nil {
			return err
		}
	}
	return nil
}
