// Package sdk provides the plugin Software Development Kit for the PrintHive
// 3D-printer host.
//
// The PrintHive SDK enables developers to build plugins that extend the host
// through mixins: named capability contracts such as StartupPlugin or
// EventHandlerPlugin. The host discovers plugin implementations, registers
// them in a capability registry, and dispatches hook calls to every plugin
// implementing a capability in a deterministic order.
//
// # Core Concepts
//
// The SDK is organized around several key concepts:
//
//   - Mixins: capability contracts a plugin may implement, granting it
//     participation in a specific extension point
//   - Records: per-plugin metadata (identifier, bundled status, optional
//     sort key provider) consumed by the call-order resolver
//   - Call contexts: opaque strings of the form "<Capability>.<Method>"
//     naming the call site being dispatched
//   - Registry: the in-memory mapping from capability to the set of
//     registered plugin records
//   - Dispatcher: the component that resolves a call order and invokes the
//     named hook on each implementation sequentially
//
// # Package Layout
//
//   - mixin: capability tags, plugin records, sort key providers
//   - order: the deterministic call-order resolver
//   - registry: the capability registry populated by the plugin loader
//   - dispatch: sequential hook dispatch with logging and tracing
//   - plugin: builder for hook-based plugin implementations
//   - manifest: plugin.yaml loading and validation
//   - types: shared value types (health status, hook timeout bounds)
//   - health: dependency checks for plugin requirements
//
// # Call Ordering
//
// For each dispatched call context the resolver produces a total order:
// plugins that state an integer rank for the context come first in ascending
// rank, then plugins with no preference; ties break on bundled status
// (bundled before third-party) and finally on identifier. The order is fully
// deterministic for a fixed input set and context.
//
// # Error Handling
//
// The SDK uses sentinel errors and structured error types for robust error
// handling:
//
//	if err != nil {
//		if errors.Is(err, sdk.ErrDuplicateIdentifier) {
//			// Handle a loader bug: two plugins share an identifier
//		}
//		// Handle other errors
//	}
//
// # Thread Safety
//
// The registry is safe for concurrent use. The resolver is a pure function
// and may be called concurrently on disjoint inputs without locking; callers
// reusing a record slice across goroutines must ensure it is not mutated for
// the duration of a call.
package sdk
