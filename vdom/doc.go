// Package vdom is a small server side element tree usable as a host for
// a11ycheck.
//
// Elements are built through Host.CreateElement, whose entry point can be
// wrapped with middleware. Components are rendered eagerly: elements created
// while a component renders are owned by its instance. Mount, Update and
// Unmount drive the instance lifecycle and keep an index of mounted nodes by
// id. Nodes render to HTML as templ components.
//
// A Host is not safe for concurrent use.
package vdom
