// Package order implements the deterministic call-order resolver for plugin
// hook dispatch.
//
// Given the set of records registered for a capability and the call context
// being dispatched, Resolve produces the total order in which the dispatcher
// must invoke the implementations:
//
//  1. Records whose sort key provider states an integer rank for the
//     context, ascending by rank.
//  2. Records with no preference (no provider, or nil for this context).
//
// Within either group ties break on bundled status (bundled before
// third-party) and then on identifier, lexicographically. Because
// identifiers are unique, the comparison chain always distinguishes two
// distinct records and the output is a total order: resolving the same
// input twice yields byte-identical sequences.
//
// Resolve is pure. It never invokes plugin methods, never mutates its input,
// and holds no state between calls; concurrent resolutions on disjoint
// inputs need no locking. Invalid input (duplicate identifiers, a provider
// returning a non-integer non-nil value) aborts the whole resolution rather
// than producing a best-effort order, since invocation order is a
// correctness property for the dispatcher.
package order
