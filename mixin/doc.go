// Package mixin defines the capability model shared by the PrintHive plugin
// subsystem.
//
// A mixin is a named contract a plugin may implement, granting it
// participation in a specific extension point of the host. The plugin loader
// collects one Record per implementation and files it in the capability
// registry; the call-order resolver and the dispatcher consume those records
// without ever touching the underlying implementations.
//
// # Capabilities
//
// Capabilities are string tags. The host ships a fixed set (StartupPlugin,
// ShutdownPlugin, EventHandlerPlugin, ...) but the type is open: a plugin
// host embedding this SDK may define its own extension points.
//
// # Call Contexts
//
// Every hook dispatch is identified by a call context, an opaque string of
// the form "<Capability>.<Method>", e.g. "StartupPlugin.OnStartup". Build
// them with CallContext. Sort key providers receive the call context and may
// return a different rank per context; everything downstream treats the
// string as opaque and performs no parsing.
//
// # Sort Keys
//
// A plugin that wants to influence its position in the call order attaches a
// SortKeyFunc to its Record, either directly or by implementing the
// SortKeyProvider interface. The function returns nil for "no preference" or
// an integer rank; any other value is rejected by the resolver.
package mixin
