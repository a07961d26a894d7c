package plugin

import (
	"context"

	"github.com/printhive/sdk/mixin"
	"github.com/printhive/sdk/types"
)

// HookCaller is the invocation surface the dispatcher uses. Implementations
// receive the call context ("<Capability>.<Method>") and the dispatch
// arguments, and return the hook result or an error.
type HookCaller interface {
	// Invoke runs the hook registered for the given call context.
	// Returns an error if no hook is registered for the context or if the
	// hook itself fails.
	Invoke(ctx context.Context, callContext string, args map[string]any) (any, error)
}

// Plugin is the interface for PrintHive plugins.
// A plugin extends the host by handling hooks for the mixin capabilities it
// declares. Plugins support initialization, shutdown, and health checks.
type Plugin interface {
	HookCaller

	// Name returns the unique identifier for the plugin.
	Name() string

	// Version returns the semantic version of the plugin.
	Version() string

	// Description returns a human-readable description of the plugin's purpose.
	Description() string

	// Capabilities returns the mixin capabilities this plugin implements,
	// derived from its registered hooks.
	Capabilities() []mixin.Capability

	// Initialize prepares the plugin for use with the given configuration.
	// This is called once before any hook invocation.
	Initialize(ctx context.Context, config map[string]any) error

	// Shutdown gracefully shuts down the plugin and releases any resources.
	// This is called once when the plugin is no longer needed.
	Shutdown(ctx context.Context) error

	// Health returns the current health status of the plugin.
	// This can be used for monitoring and diagnostics.
	Health(ctx context.Context) types.HealthStatus
}

// Record wraps a built plugin in the metadata record the registry and the
// call-order resolver consume. The plugin's sort key provider, if any, is
// carried into the record.
func Record(p Plugin, bundled bool) mixin.Record {
	return mixin.RecordOf(p.Name(), p.Version(), bundled, p)
}
