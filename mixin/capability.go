package mixin

// Capability identifies a mixin contract a plugin may implement.
// Each capability corresponds to one extension point of the host.
type Capability string

// Capabilities shipped with the PrintHive host.
const (
	// StartupPlugin participates in host startup. Hooks: OnAfterStartup.
	StartupPlugin Capability = "StartupPlugin"

	// ShutdownPlugin participates in graceful host shutdown. Hooks: OnShutdown.
	ShutdownPlugin Capability = "ShutdownPlugin"

	// EventHandlerPlugin receives host events such as print start/stop and
	// connection changes. Hooks: OnEvent.
	EventHandlerPlugin Capability = "EventHandlerPlugin"

	// ProgressPlugin receives periodic print and slicing progress updates.
	// Hooks: OnPrintProgress, OnSlicingProgress.
	ProgressPlugin Capability = "ProgressPlugin"

	// SettingsPlugin contributes configuration to the host settings tree.
	// Hooks: OnSettingsSave, OnSettingsMigrate.
	SettingsPlugin Capability = "SettingsPlugin"

	// SlicerPlugin provides a slicing backend. Hooks: OnSliceRequested.
	SlicerPlugin Capability = "SlicerPlugin"
)

// String returns the capability tag.
func (c Capability) String() string {
	return string(c)
}

// CallContext composes the canonical call-site name for a capability hook,
// "<Capability>.<Method>" (e.g. "StartupPlugin.OnAfterStartup"). The result
// is the naming contract between the dispatcher and sort key providers; both
// treat it as an opaque string.
func CallContext(cap Capability, method string) string {
	return string(cap) + "." + method
}
