package manifest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printhive/sdk"
	"github.com/printhive/sdk/mixin"
)

const sampleManifest = `name: octolapse
version: 1.2.0
description: Stabilized timelapse capture
author: Jane Printer
license: AGPL-3.0
capabilities:
  - EventHandlerPlugin
  - ProgressPlugin
order:
  EventHandlerPlugin.OnEvent: 5
  ProgressPlugin.OnPrintProgress: -1
timeouts:
  default: 10s
  max: 1m
requirements:
  binaries:
    - ffmpeg
`

func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "plugin.yaml", sampleManifest)

	m, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "octolapse", m.Name)
	assert.Equal(t, "1.2.0", m.Version)
	assert.Equal(t, "Jane Printer", m.Author)
	assert.False(t, m.Bundled)
	assert.Equal(t, []string{"EventHandlerPlugin", "ProgressPlugin"}, m.Capabilities)
	assert.Equal(t, 5, m.Order["EventHandlerPlugin.OnEvent"])
	require.NotNil(t, m.Requirements)
	assert.Equal(t, []string{"ffmpeg"}, m.Requirements.Binaries)
}

func TestLoad_Directory(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "plugin.yaml", sampleManifest)

	m, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "octolapse", m.Name)
}

func TestLoad_DirectoryYmlFallback(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "plugin.yml", sampleManifest)

	m, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "octolapse", m.Name)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	_, err = Load(t.TempDir())
	assert.Error(t, err, "empty directory has no manifest")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "plugin.yaml", "name: [unclosed")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadFromDir_WalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "plugin.yaml", sampleManifest)

	nested := filepath.Join(root, "src", "internal")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	m, err := LoadFromDir(nested)
	require.NoError(t, err)
	assert.Equal(t, "octolapse", m.Name)
}

func TestLoadFromDir_NotFound(t *testing.T) {
	_, err := LoadFromDir(t.TempDir())
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Manifest)
		wantErr  bool
		sentinel error
	}{
		{
			name:   "valid",
			mutate: func(m *Manifest) {},
		},
		{
			name:     "missing name",
			mutate:   func(m *Manifest) { m.Name = "" },
			wantErr:  true,
			sentinel: sdk.ErrInvalidConfig,
		},
		{
			name:     "missing version",
			mutate:   func(m *Manifest) { m.Version = "" },
			wantErr:  true,
			sentinel: sdk.ErrInvalidConfig,
		},
		{
			name:     "empty capability",
			mutate:   func(m *Manifest) { m.Capabilities = []string{"StartupPlugin", ""} },
			wantErr:  true,
			sentinel: sdk.ErrInvalidConfig,
		},
		{
			name:     "bad timeout string",
			mutate:   func(m *Manifest) { m.Timeouts = &TimeoutsConfig{Default: "soon"} },
			wantErr:  true,
			sentinel: sdk.ErrInvalidConfig,
		},
		{
			name:    "inconsistent timeout bounds",
			mutate:  func(m *Manifest) { m.Timeouts = &TimeoutsConfig{Min: "1m", Max: "1s"} },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Manifest{
				Name:         "octolapse",
				Version:      "1.2.0",
				Capabilities: []string{"EventHandlerPlugin"},
			}
			tt.mutate(m)

			err := m.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.sentinel != nil {
				assert.ErrorIs(t, err, tt.sentinel)
			}
		})
	}
}

func TestCapabilityTags(t *testing.T) {
	m := &Manifest{Capabilities: []string{"StartupPlugin", "WebcamPlugin"}}
	tags := m.CapabilityTags()
	assert.Equal(t, []mixin.Capability{mixin.StartupPlugin, mixin.Capability("WebcamPlugin")}, tags)
}

func TestSortKey(t *testing.T) {
	m := &Manifest{
		Order: map[string]int{"StartupPlugin.OnAfterStartup": -10},
	}

	fn := m.SortKey()
	require.NotNil(t, fn)
	assert.Equal(t, -10, fn("StartupPlugin.OnAfterStartup"))
	assert.Nil(t, fn("ShutdownPlugin.OnShutdown"))

	assert.Nil(t, (&Manifest{}).SortKey(), "no order table means no preference")
}

func TestHookTimeouts(t *testing.T) {
	m := &Manifest{
		Name: "octolapse",
		Timeouts: &TimeoutsConfig{
			Default: "10s",
			Min:     "1s",
			Max:     "1m",
		},
	}

	bounds, err := m.HookTimeouts()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, bounds.Default)
	assert.Equal(t, time.Second, bounds.Min)
	assert.Equal(t, time.Minute, bounds.Max)

	empty, err := (&Manifest{}).HookTimeouts()
	require.NoError(t, err)
	assert.Zero(t, empty.Default)
}

func TestCheckRequirements(t *testing.T) {
	t.Run("none declared", func(t *testing.T) {
		status := (&Manifest{}).CheckRequirements()
		assert.True(t, status.IsHealthy())
	})

	t.Run("existing file", func(t *testing.T) {
		path := writeManifest(t, t.TempDir(), "profile.yaml", "layer_height: 0.2")
		m := &Manifest{Requirements: &Requirements{Files: []string{path}}}
		assert.True(t, m.CheckRequirements().IsHealthy())
	})

	t.Run("missing file", func(t *testing.T) {
		m := &Manifest{Requirements: &Requirements{
			Files: []string{filepath.Join(t.TempDir(), "missing-profile.yaml")},
		}}
		assert.True(t, m.CheckRequirements().IsUnhealthy())
	})
}
