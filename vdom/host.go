package vdom

import (
	"fmt"
	"strings"

	"github.com/sirkon/rbtree"

	"github.com/sirkon/a11ycheck/element"
)

// Host builds and mounts element trees.
type Host struct {
	create  element.CreateFunc
	current *Instance
	index   *rbtree.Tree[*indexEntry]
}

// New creates a host with the plain construction entry point.
func New() *Host {
	h := &Host{index: rbtree.New[*indexEntry]()}
	h.create = h.construct
	return h
}

// Constructor returns the current construction entry point.
func (h *Host) Constructor() element.CreateFunc {
	if h == nil {
		return nil
	}
	return h.create
}

// Use wraps the construction entry point with mw. Middleware installed last
// runs first.
func (h *Host) Use(mw element.Middleware) {
	h.create = mw(h.create)
}

// CreateElement builds an element. typ is a tag name or a *Component. A
// component rendering nothing yields a nil node.
func (h *Host) CreateElement(typ any, props *element.Props, children ...any) (*Node, error) {
	el, err := h.create(typ, props, children...)
	if err != nil {
		return nil, err
	}
	if el == nil {
		return nil, nil
	}

	n, ok := el.(*Node)
	if !ok {
		return nil, fmt.Errorf("construction entry point returned %T instead of *vdom.Node", el)
	}
	return n, nil
}

// CurrentOwner returns the component instance being rendered.
func (h *Host) CurrentOwner() (element.Owner, bool) {
	if h.current == nil {
		return nil, false
	}
	return h.current, true
}

// ElementByID looks a mounted node up.
func (h *Host) ElementByID(id string) (element.Node, bool) {
	// A missing id gets an empty entry, which reads as unmounted.
	e := h.index.InsertReturn(&indexEntry{id: id})
	if e.node == nil {
		return nil, false
	}
	return e.node, true
}

// Mount indexes the tree and runs mount hooks of its instances, children
// first. The first hook error stops the mount and is returned.
func (h *Host) Mount(root *Node) error {
	for _, inst := range h.attach(root) {
		if inst.mounted {
			continue
		}
		if err := inst.fireMounted(); err != nil {
			return fmt.Errorf("mount %s: %w", inst.DisplayName(), err)
		}
	}
	return nil
}

// Update reindexes a mounted tree and runs update hooks of its mounted
// instances. Instances new to the tree are mounted instead.
func (h *Host) Update(root *Node) error {
	for _, inst := range h.attach(root) {
		if !inst.mounted {
			if err := inst.fireMounted(); err != nil {
				return fmt.Errorf("mount %s: %w", inst.DisplayName(), err)
			}
			continue
		}
		if err := inst.fireUpdated(); err != nil {
			return fmt.Errorf("update %s: %w", inst.DisplayName(), err)
		}
	}
	return nil
}

// Unmount removes the tree from the index. Pending hooks of its instances are
// dropped without running.
func (h *Host) Unmount(root *Node) {
	walk(root, func(n *Node) {
		id := n.ElementID()
		if id == "" {
			return
		}
		if e := h.index.InsertReturn(&indexEntry{id: id}); e.node == n {
			e.node = nil
		}
	})
	for _, inst := range instances(root) {
		inst.unmount()
	}
}

func (h *Host) construct(typ any, props *element.Props, children ...any) (any, error) {
	if props == nil {
		props = element.NewProps()
	}

	switch t := typ.(type) {
	case string:
		return &Node{
			Tag:      t,
			Props:    props,
			Children: normalize(children),
			owner:    h.current,
		}, nil
	case *Component:
		return h.render(t, props, children)
	default:
		return nil, fmt.Errorf("unsupported element type %T", typ)
	}
}

func (h *Host) render(c *Component, props *element.Props, children []any) (any, error) {
	inst := &Instance{component: c, props: props}

	prev := h.current
	h.current = inst
	root, err := c.Render(h, props, children)
	h.current = prev
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", c.Name, err)
	}
	if root == nil {
		return nil, nil
	}

	root.rendered = inst
	return root, nil
}

// attach indexes nodes of the tree and returns its instances.
func (h *Host) attach(root *Node) []*Instance {
	walk(root, func(n *Node) {
		id := n.ElementID()
		if id == "" {
			return
		}
		e := h.index.InsertReturn(&indexEntry{id: id, node: n})
		e.node = n
	})
	return instances(root)
}

func normalize(children []any) []any {
	res := make([]any, 0, len(children))
	for _, c := range children {
		switch x := c.(type) {
		case *Node:
			if x != nil {
				res = append(res, x)
			}
		case []any:
			res = append(res, normalize(x)...)
		case nil:
		default:
			res = append(res, x)
		}
	}
	return res
}

// walk visits nodes in pre-order.
func walk(n *Node, visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, c := range n.Children {
		if child, ok := c.(*Node); ok {
			walk(child, visit)
		}
	}
}

// instances lists distinct instances of a tree, inner ones first.
func instances(root *Node) []*Instance {
	var (
		res  []*Instance
		seen = map[*Instance]struct{}{}
	)
	add := func(inst *Instance) {
		if inst == nil {
			return
		}
		if _, ok := seen[inst]; ok {
			return
		}
		seen[inst] = struct{}{}
		res = append(res, inst)
	}

	var post func(n *Node)
	post = func(n *Node) {
		for _, c := range n.Children {
			if child, ok := c.(*Node); ok {
				post(child)
			}
		}
		add(n.owner)
		add(n.rendered)
	}
	if root != nil {
		post(root)
	}
	return res
}

// indexEntry is a mounted node keyed by id. A nil node marks an unmounted id.
type indexEntry struct {
	id   string
	node *Node
}

func (e *indexEntry) Cmp(other *indexEntry) int {
	return strings.Compare(e.id, other.id)
}
