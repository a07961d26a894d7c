// Package registry provides the in-memory capability registry for the
// PrintHive plugin subsystem.
//
// The plugin loader files one record per implementation under every
// capability the plugin declares. Dispatchers read the registry to obtain
// the record set for a capability, hand it to the call-order resolver, and
// invoke the implementations in the resolved order. The registry is the
// single source of truth for which plugins participate in which extension
// points.
//
// The registry holds metadata only. It never instantiates, initializes, or
// invokes plugins; lifecycle belongs to the loader and the dispatcher.
package registry

import (
	"sort"
	"sync"

	"github.com/printhive/sdk"
	"github.com/printhive/sdk/mixin"
)

// Registry maps capabilities to the set of plugin records implementing
// them. All methods are safe for concurrent use.
//
// Example usage:
//
//	reg := registry.New()
//	reg.Register(mixin.RecordOf("octolapse", "1.2.0", false, impl),
//		mixin.StartupPlugin, mixin.EventHandlerPlugin)
//
//	records := reg.Records(mixin.StartupPlugin)
//	ordered, err := order.Resolve(records, mixin.CallContext(mixin.StartupPlugin, "OnAfterStartup"))
type Registry struct {
	mu sync.RWMutex

	// byCapability holds identifier-keyed records per capability.
	byCapability map[mixin.Capability]map[string]mixin.Record

	// byIdentifier tracks which capabilities each plugin is filed under,
	// so Deregister doesn't have to scan every capability bucket.
	byIdentifier map[string][]mixin.Capability
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		byCapability: make(map[mixin.Capability]map[string]mixin.Record),
		byIdentifier: make(map[string][]mixin.Capability),
	}
}

// Register files a record under each of the given capabilities.
//
// A plugin registers exactly once; registering an identifier that is
// already present (under any capability) fails with
// sdk.ErrDuplicateIdentifier, since a duplicate means the loader collected
// the same plugin twice. At least one capability is required.
func (r *Registry) Register(rec mixin.Record, caps ...mixin.Capability) error {
	if rec.Identifier == "" {
		return sdk.NewValidationError("Registry.Register", sdk.ErrInvalidConfig).
			WithContext(map[string]any{"reason": "empty identifier"})
	}
	if len(caps) == 0 {
		return sdk.NewValidationError("Registry.Register", sdk.ErrInvalidConfig).
			WithContext(map[string]any{
				"reason": "no capabilities",
				"plugin": rec.Identifier,
			})
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byIdentifier[rec.Identifier]; exists {
		return sdk.NewValidationError("Registry.Register", sdk.ErrDuplicateIdentifier).
			WithContext(map[string]any{"plugin": rec.Identifier})
	}

	for _, capability := range caps {
		bucket := r.byCapability[capability]
		if bucket == nil {
			bucket = make(map[string]mixin.Record)
			r.byCapability[capability] = bucket
		}
		bucket[rec.Identifier] = rec
	}
	r.byIdentifier[rec.Identifier] = append([]mixin.Capability(nil), caps...)

	return nil
}

// Deregister removes a plugin from every capability it was filed under.
// Deregistering an unknown identifier is a no-op.
func (r *Registry) Deregister(identifier string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	caps, exists := r.byIdentifier[identifier]
	if !exists {
		return
	}

	for _, capability := range caps {
		bucket := r.byCapability[capability]
		delete(bucket, identifier)
		if len(bucket) == 0 {
			delete(r.byCapability, capability)
		}
	}
	delete(r.byIdentifier, identifier)
}

// Records returns a snapshot of the records filed under a capability. The
// returned slice is a fresh copy in unspecified order; callers pass it to
// the resolver for ordering. An unknown capability yields an empty slice.
func (r *Registry) Records(capability mixin.Capability) []mixin.Record {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bucket := r.byCapability[capability]
	records := make([]mixin.Record, 0, len(bucket))
	for _, rec := range bucket {
		records = append(records, rec)
	}
	return records
}

// Record looks up a plugin by identifier, regardless of capability.
// Fails with sdk.ErrPluginNotFound for unknown identifiers.
func (r *Registry) Record(identifier string) (mixin.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	caps, exists := r.byIdentifier[identifier]
	if !exists || len(caps) == 0 {
		return mixin.Record{}, sdk.NewNotFoundError("Registry.Record", sdk.ErrPluginNotFound).
			WithContext(map[string]any{"plugin": identifier})
	}

	return r.byCapability[caps[0]][identifier], nil
}

// CapabilitiesOf returns the capabilities a plugin is registered under, in
// registration order. Fails with sdk.ErrPluginNotFound for unknown
// identifiers.
func (r *Registry) CapabilitiesOf(identifier string) ([]mixin.Capability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	caps, exists := r.byIdentifier[identifier]
	if !exists {
		return nil, sdk.NewNotFoundError("Registry.CapabilitiesOf", sdk.ErrPluginNotFound).
			WithContext(map[string]any{"plugin": identifier})
	}
	return append([]mixin.Capability(nil), caps...), nil
}

// Capabilities returns every capability with at least one registered
// plugin, sorted for stable iteration.
func (r *Registry) Capabilities() []mixin.Capability {
	r.mu.RLock()
	defer r.mu.RUnlock()

	caps := make([]mixin.Capability, 0, len(r.byCapability))
	for capability := range r.byCapability {
		caps = append(caps, capability)
	}
	sort.Slice(caps, func(i, j int) bool { return caps[i] < caps[j] })
	return caps
}

// Len returns the number of registered plugins.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byIdentifier)
}
