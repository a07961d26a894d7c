// Package dispatch invokes plugin hooks in resolved call order.
//
// For each hook call the dispatcher reads the capability's records from the
// registry, asks the call-order resolver for the invocation sequence, and
// invokes the hook on every implementation sequentially. Each dispatch gets
// a unique id that appears in logs and trace spans, so one misbehaving
// plugin can be tied back to the exact chain it ran in.
//
// Failure policy follows the host contract: a resolution error (duplicate
// identifiers, an invalid sort key) aborts the whole dispatch before any
// plugin runs; no best-effort chain is attempted when the order cannot be
// established. An error from an individual hook is
// logged and counted, and the chain continues with the next plugin; a
// broken third-party plugin must not take the printer host down with it.
package dispatch
