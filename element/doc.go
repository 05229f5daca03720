// Package element holds the vocabulary shared by the assertion engine, rule
// registries and host frameworks: ordered element properties, the element
// descriptor, the construction entry point type and the small capability
// interfaces a host may implement.
//
// A host is only required to expose a construction entry point. Everything
// else is optional and discovered with type assertions:
//
//   - Owned: a produced element knows the component instance that rendered it.
//   - Owner: a component instance has a display name.
//   - Lifecycle: a component instance accepts hooks for its next mount and
//     update milestones.
//   - Document: the host can resolve a mounted node by its id.
//
// Missing capabilities degrade gracefully: names fall back to "tag#id" and
// source node correlation is omitted.
package element
