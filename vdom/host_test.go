package vdom

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/sirkon/a11ycheck/element"
)

func mustCreate(t *testing.T, h *Host, typ any, props *element.Props, children ...any) *Node {
	t.Helper()

	n, err := h.CreateElement(typ, props, children...)
	if err != nil {
		t.Fatalf("create %v: %v", typ, err)
	}
	return n
}

func TestCreateElementPlain(t *testing.T) {
	h := New()
	n := mustCreate(t, h, "p", nil, "hello", nil, []any{" ", "world"})

	if n.Tag != "p" {
		t.Fatalf("expected tag p, got %s", n.Tag)
	}
	if n.Props == nil {
		t.Fatal("expected props to be normalized")
	}
	if got := n.TextContent(); got != "hello world" {
		t.Fatalf("expected flattened children text, got %q", got)
	}
	if _, ok := n.Owner(); ok {
		t.Fatal("top level element must have no owner")
	}
}

func TestCreateElementUnsupportedType(t *testing.T) {
	h := New()
	if _, err := h.CreateElement(42, nil); err == nil {
		t.Fatal("expected error for unsupported element type")
	}
}

func TestComponentOwnership(t *testing.T) {
	h := New()
	var inner *Node
	card := Define("Card", func(h *Host, props *element.Props, children []any) (*Node, error) {
		owner, ok := h.CurrentOwner()
		if !ok || owner.DisplayName() != "Card" {
			t.Errorf("expected Card to be the current owner, got %v", owner)
		}
		var err error
		inner, err = h.CreateElement("span", element.NewProps().Set("id", "title"), props.String("title"))
		if err != nil {
			return nil, err
		}
		return h.CreateElement("div", element.NewProps().Set("id", "card"), inner)
	})

	root := mustCreate(t, h, card, element.NewProps().Set("title", "Hi"))

	owner, ok := inner.Owner()
	if !ok || owner.DisplayName() != "Card" {
		t.Fatalf("expected span to be owned by Card, got %v", owner)
	}
	if _, ok := h.CurrentOwner(); ok {
		t.Fatal("current owner must be restored after render")
	}
	if root.Tag != "div" {
		t.Fatalf("expected component root div, got %s", root.Tag)
	}
}

func TestComponentRenderError(t *testing.T) {
	h := New()
	errBoom := errors.New("boom")
	broken := Define("Broken", func(*Host, *element.Props, []any) (*Node, error) {
		return nil, errBoom
	})

	_, err := h.CreateElement(broken, nil)
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected render error, got %v", err)
	}
	if !strings.Contains(err.Error(), "render Broken") {
		t.Fatalf("expected component name in error, got %v", err)
	}
}

func TestComponentRenderingNothing(t *testing.T) {
	h := New()
	empty := Define("Empty", func(*Host, *element.Props, []any) (*Node, error) {
		return nil, nil
	})

	n, err := h.CreateElement(empty, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != nil {
		t.Fatalf("expected nil node, got %v", n)
	}
}

func TestMiddlewareOrder(t *testing.T) {
	h := New()
	var calls []string
	mw := func(name string) element.Middleware {
		return func(next element.CreateFunc) element.CreateFunc {
			return func(typ any, props *element.Props, children ...any) (any, error) {
				calls = append(calls, name)
				return next(typ, props, children...)
			}
		}
	}
	h.Use(mw("first"))
	h.Use(mw("second"))

	mustCreate(t, h, "div", nil)

	if !reflect.DeepEqual([]string{"second", "first"}, calls) {
		t.Fatalf("unexpected middleware order %v", calls)
	}
}

func TestLifecycle(t *testing.T) {
	h := New()
	var (
		events []string
		inst   *Instance
	)
	item := Define("Item", func(h *Host, props *element.Props, _ []any) (*Node, error) {
		owner, _ := h.CurrentOwner()
		inst = owner.(*Instance)
		name := props.String("name")
		inst.OnMounted(func() error {
			events = append(events, "mounted "+name)
			return nil
		})
		inst.OnUpdated(func() error {
			events = append(events, "updated "+name)
			return nil
		})
		return h.CreateElement("li", element.NewProps().Set("id", name), name)
	})
	list := Define("List", func(h *Host, _ *element.Props, _ []any) (*Node, error) {
		a, err := h.CreateElement(item, element.NewProps().Set("name", "a"))
		if err != nil {
			return nil, err
		}
		owner, _ := h.CurrentOwner()
		owner.(*Instance).OnMounted(func() error {
			events = append(events, "mounted list")
			return nil
		})
		return h.CreateElement("ul", element.NewProps().Set("id", "list"), a)
	})

	root := mustCreate(t, h, list, nil)

	if _, ok := h.ElementByID("a"); ok {
		t.Fatal("nodes must not be resolvable before mount")
	}

	if err := h.Mount(root); err != nil {
		t.Fatalf("mount: %v", err)
	}
	if err := h.Mount(root); err != nil {
		t.Fatalf("second mount: %v", err)
	}
	if err := h.Update(root); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := h.Update(root); err != nil {
		t.Fatalf("second update: %v", err)
	}

	want := []string{"mounted a", "mounted list", "updated a"}
	if !reflect.DeepEqual(want, events) {
		t.Fatalf("unexpected lifecycle events:\nwant %v\ngot  %v", want, events)
	}

	node, ok := h.ElementByID("a")
	if !ok || node.TextContent() != "a" {
		t.Fatalf("expected mounted node a, got %v", node)
	}
	if !inst.Mounted() {
		t.Fatal("expected instance to be mounted")
	}
}

func TestUnmountDropsHooks(t *testing.T) {
	h := New()
	ran := false
	widget := Define("Widget", func(h *Host, _ *element.Props, _ []any) (*Node, error) {
		owner, _ := h.CurrentOwner()
		owner.(*Instance).OnUpdated(func() error {
			ran = true
			return nil
		})
		return h.CreateElement("div", element.NewProps().Set("id", "w"))
	})

	root := mustCreate(t, h, widget, nil)
	if err := h.Mount(root); err != nil {
		t.Fatalf("mount: %v", err)
	}
	h.Unmount(root)

	if _, ok := h.ElementByID("w"); ok {
		t.Fatal("unmounted node must not be resolvable")
	}
	if err := h.Update(root); err != nil {
		t.Fatalf("update: %v", err)
	}
	if ran {
		t.Fatal("hooks of unmounted instances must not run")
	}
}

func TestMountHookError(t *testing.T) {
	h := New()
	errHook := errors.New("hook failed")
	widget := Define("Widget", func(h *Host, _ *element.Props, _ []any) (*Node, error) {
		owner, _ := h.CurrentOwner()
		owner.(*Instance).OnMounted(func() error { return errHook })
		return h.CreateElement("div", nil)
	})

	root := mustCreate(t, h, widget, nil)
	err := h.Mount(root)
	if !errors.Is(err, errHook) {
		t.Fatalf("expected hook error, got %v", err)
	}
}

func TestRenderHTML(t *testing.T) {
	h := New()
	img := mustCreate(t, h, "img", element.NewProps().Set("src", "a.png").Set("alt", `"quoted"`))
	btn := mustCreate(t, h, "button",
		element.NewProps().
			Set("className", "primary").
			Set("disabled", true).
			Set("hidden", false).
			Set("tabIndex", 0).
			Set("onClick", func() {}),
		"Save & close",
	)
	root := mustCreate(t, h, "div", element.NewProps().Set("id", "root"), img, btn)

	var b strings.Builder
	if err := root.Render(context.Background(), &b); err != nil {
		t.Fatalf("render: %v", err)
	}

	want := `<div id="root"><img src="a.png" alt="&#34;quoted&#34;">` +
		`<button class="primary" disabled tabindex="0">Save &amp; close</button></div>`
	if b.String() != want {
		t.Fatalf("unexpected html:\nwant %s\ngot  %s", want, b.String())
	}
}

func TestAccessibleText(t *testing.T) {
	h := New()
	icon := mustCreate(t, h, "img", element.NewProps().Set("alt", "Close"))
	btn := mustCreate(t, h, "button", nil, icon)

	if got := btn.TextContent(); got != "" {
		t.Fatalf("expected no text content, got %q", got)
	}
	if got := btn.AccessibleText(); got != "Close" {
		t.Fatalf("expected alt text to be accessible, got %q", got)
	}

	labelled := mustCreate(t, h, "span", element.NewProps().Set("aria-label", "Menu"), "≡")
	if got := labelled.AccessibleText(); got != "Menu" {
		t.Fatalf("expected aria-label to win, got %q", got)
	}
}

func TestElementByIDBeforeMount(t *testing.T) {
	h := New()
	root := mustCreate(t, h, "div", element.NewProps().Set("id", "late"))

	if _, ok := h.ElementByID("late"); ok {
		t.Fatal("node must not be resolvable before mount")
	}
	if _, ok := h.ElementByID("unknown"); ok {
		t.Fatal("unknown id must not be resolvable")
	}

	if err := h.Mount(root); err != nil {
		t.Fatalf("mount: %v", err)
	}
	node, ok := h.ElementByID("late")
	if !ok || node != root {
		t.Fatalf("expected mounted node after a failed lookup, got %v", node)
	}
}
