// Package a11ycheck runs accessibility assertions while a UI tree is built.
//
// Install wraps the construction entry point of a host framework. Every
// construction call then gets an element id, builds the element with the
// original entry point and, for plain tag elements, runs the rules of an
// a11yrules.Registry against the tag name, properties and children.
//
// Failures are either fatal or advisory:
//
//   - With ThrowOnFailure the wrapped entry point returns a *ValidationFailure
//     for the first failing rule and evaluates nothing else for that call.
//   - Otherwise every failure is passed to a WarnFunc. With
//     IncludeSourceReference and an owning component supporting lifecycle
//     hooks the diagnostic waits for the next mount or update milestone and
//     carries the mounted node.
//
// Configuration may be swapped with Engine.SetConfig at any time, each
// construction call reads the current value.
package a11ycheck
