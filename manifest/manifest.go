// Package manifest provides loading and parsing of plugin.yaml files.
// A manifest declares a plugin's identity, the mixin capabilities it
// implements, its external requirements, and optional static call-order
// ranks consumed by the call-order resolver.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/printhive/sdk"
	"github.com/printhive/sdk/health"
	"github.com/printhive/sdk/mixin"
	"github.com/printhive/sdk/types"
)

// Manifest represents a plugin.yaml file.
// This is the primary metadata source for plugins distributed outside the
// host binary; bundled plugins usually declare the same data in code.
type Manifest struct {
	// Identity
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`

	// Bundled marks plugins that ship with the host itself. Third-party
	// manifests leave it unset; the host's own loader sets it for the
	// plugins it embeds.
	Bundled bool `yaml:"bundled,omitempty"`

	// Capabilities lists the mixin contracts the plugin implements,
	// e.g. ["StartupPlugin", "EventHandlerPlugin"].
	Capabilities []string `yaml:"capabilities"`

	// Order maps call contexts to static ranks, letting a plugin state
	// its call-order preference declaratively:
	//
	//	order:
	//	  StartupPlugin.OnAfterStartup: -10
	//	  ShutdownPlugin.OnShutdown: 100
	Order map[string]int `yaml:"order,omitempty"`

	// Requirements declares external dependencies checked at load time.
	Requirements *Requirements `yaml:"requirements,omitempty"`

	// Timeouts bounds the plugin's hook invocations.
	Timeouts *TimeoutsConfig `yaml:"timeouts,omitempty"`

	// Additional metadata
	Author     string `yaml:"author,omitempty"`
	License    string `yaml:"license,omitempty"`
	Repository string `yaml:"repository,omitempty"`
}

// Requirements declares external dependencies required by the plugin.
type Requirements struct {
	// Binaries the plugin shells out to (e.g. a slicer).
	Binaries []string `yaml:"binaries,omitempty"`

	// Files the plugin expects to exist (e.g. printer profiles).
	Files []string `yaml:"files,omitempty"`
}

// TimeoutsConfig holds hook timeout bounds as duration strings.
type TimeoutsConfig struct {
	// Default per-hook timeout. Format: Go duration string (e.g. "30s").
	Default string `yaml:"default,omitempty"`

	// Min allowed per-hook timeout.
	Min string `yaml:"min,omitempty"`

	// Max allowed per-hook timeout.
	Max string `yaml:"max,omitempty"`
}

// Validate checks the manifest for required fields and consistent values.
func (m *Manifest) Validate() error {
	if m.Name == "" {
		return sdk.NewConfigurationError("Manifest.Validate", sdk.ErrInvalidConfig).
			WithContext(map[string]any{"reason": "name is required"})
	}
	if m.Version == "" {
		return sdk.NewConfigurationError("Manifest.Validate", sdk.ErrInvalidConfig).
			WithContext(map[string]any{
				"reason": "version is required",
				"plugin": m.Name,
			})
	}
	for i, c := range m.Capabilities {
		if c == "" {
			return sdk.NewConfigurationError("Manifest.Validate", sdk.ErrInvalidConfig).
				WithContext(map[string]any{
					"reason": fmt.Sprintf("capability %d is empty", i),
					"plugin": m.Name,
				})
		}
	}
	if _, err := m.HookTimeouts(); err != nil {
		return err
	}
	return nil
}

// CapabilityTags returns the declared capabilities as mixin tags.
func (m *Manifest) CapabilityTags() []mixin.Capability {
	tags := make([]mixin.Capability, len(m.Capabilities))
	for i, c := range m.Capabilities {
		tags[i] = mixin.Capability(c)
	}
	return tags
}

// SortKey converts the manifest's order table into a sort key provider.
// Returns nil when the manifest declares no order, meaning the plugin has
// no call-order preference.
func (m *Manifest) SortKey() mixin.SortKeyFunc {
	return mixin.StaticSortKey(m.Order)
}

// HookTimeouts parses the timeout strings into bounds for the dispatcher.
// A missing timeouts section yields zero bounds (SDK defaults apply).
func (m *Manifest) HookTimeouts() (types.HookTimeouts, error) {
	var t types.HookTimeouts
	if m.Timeouts == nil {
		return t, nil
	}

	parse := func(field, value string) (time.Duration, error) {
		if value == "" {
			return 0, nil
		}
		d, err := time.ParseDuration(value)
		if err != nil {
			return 0, sdk.NewConfigurationError("Manifest.HookTimeouts", sdk.ErrInvalidConfig).
				WithContext(map[string]any{
					"plugin": m.Name,
					"field":  field,
					"value":  value,
				})
		}
		return d, nil
	}

	var err error
	if t.Default, err = parse("default", m.Timeouts.Default); err != nil {
		return types.HookTimeouts{}, err
	}
	if t.Min, err = parse("min", m.Timeouts.Min); err != nil {
		return types.HookTimeouts{}, err
	}
	if t.Max, err = parse("max", m.Timeouts.Max); err != nil {
		return types.HookTimeouts{}, err
	}

	if err := t.Validate(); err != nil {
		return types.HookTimeouts{}, sdk.NewConfigurationError("Manifest.HookTimeouts", err)
	}
	return t, nil
}

// CheckRequirements verifies the plugin's declared external dependencies.
// Missing requirements degrade rather than fail the plugin; the host shows
// the combined status on the plugin management page.
func (m *Manifest) CheckRequirements() types.HealthStatus {
	if m.Requirements == nil {
		return types.NewHealthyStatus("no requirements declared")
	}

	var checks []types.HealthStatus
	for _, bin := range m.Requirements.Binaries {
		checks = append(checks, health.BinaryCheck(bin))
	}
	for _, file := range m.Requirements.Files {
		checks = append(checks, health.FileCheck(file))
	}
	return health.Combine(checks...)
}

// Load reads and parses a plugin.yaml file from the given path.
// If the path is a directory, it looks for plugin.yaml or plugin.yml in
// that directory.
func Load(path string) (*Manifest, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	var manifestPath string
	if info.IsDir() {
		yamlPath := filepath.Join(path, "plugin.yaml")
		if _, err := os.Stat(yamlPath); err == nil {
			manifestPath = yamlPath
		} else {
			ymlPath := filepath.Join(path, "plugin.yml")
			if _, err := os.Stat(ymlPath); err == nil {
				manifestPath = ymlPath
			} else {
				return nil, fmt.Errorf("no plugin.yaml or plugin.yml found in %s", path)
			}
		}
	} else {
		manifestPath = path
	}

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	return &m, nil
}

// LoadFromDir searches for plugin.yaml starting from the given directory
// and walking up to parent directories until found or root is reached.
func LoadFromDir(dir string) (*Manifest, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		m, err := Load(absDir)
		if err == nil {
			return m, nil
		}

		parent := filepath.Dir(absDir)
		if parent == absDir {
			return nil, fmt.Errorf("no plugin.yaml found in %s or parent directories", dir)
		}
		absDir = parent
	}
}
