package plugin

import "github.com/printhive/sdk/mixin"

// HookDescriptor describes one hook a plugin handles.
type HookDescriptor struct {
	// Capability is the mixin the hook belongs to.
	Capability mixin.Capability

	// Method is the hook method name within the capability (e.g. "OnAfterStartup").
	Method string

	// Description provides a human-readable explanation of what the hook does.
	Description string
}

// CallContext returns the canonical call-site name for this hook.
func (h HookDescriptor) CallContext() string {
	return mixin.CallContext(h.Capability, h.Method)
}

// Descriptor describes a plugin's metadata: its identity, purpose, and the
// hooks it handles. Descriptors are what plugin listings and diagnostic
// surfaces show; they carry no reference to the implementation.
type Descriptor struct {
	// Name is the unique identifier for the plugin.
	Name string

	// Version is the semantic version of the plugin.
	Version string

	// Description provides a human-readable explanation of the plugin's purpose.
	Description string

	// Capabilities lists the mixins the plugin implements.
	Capabilities []mixin.Capability

	// Hooks lists all hooks the plugin handles.
	Hooks []HookDescriptor
}

// ToDescriptor converts a Plugin to its Descriptor.
// For plugins built with this package the hook list is complete; for
// foreign implementations only identity and capabilities are filled in.
func ToDescriptor(p Plugin) Descriptor {
	d := Descriptor{
		Name:         p.Name(),
		Version:      p.Version(),
		Description:  p.Description(),
		Capabilities: p.Capabilities(),
	}
	if hp, ok := p.(*hostPlugin); ok {
		for _, entry := range hp.hooks {
			d.Hooks = append(d.Hooks, entry.descriptor)
		}
	}
	return d
}
