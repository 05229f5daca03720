// Package a11yrules defines accessibility rules and the ordered registry the
// assertion engine dispatches.
//
// There are three rule categories:
//
//	tag     rules keyed by tag name, run when an element of that tag is built
//	prop    rules keyed by property name, run for every non-nil property
//	render  rules run for every element, able to report after the element
//	        reaches the host (post-mount or post-update)
//
// Within a category rules run in registration order. The order matters: in
// fatal mode the first failing rule is the only one ever reported for a
// construction call.
//
// Rule keys are the names used to exclude rules through configuration, e.g.
// "NO_ALT" or "NO_TABINDEX".
//
// A registry is populated once and then treated as read only. The only late
// mutation is Bind, which associates the registry with a host so render rules
// can look at mounted nodes. A registry is bound to at most one host.
package a11yrules
