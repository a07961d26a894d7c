package plugin

import (
	"context"
	"fmt"
	"sync"

	"github.com/printhive/sdk/mixin"
	"github.com/printhive/sdk/types"
)

// HookHandler is a function that handles a plugin hook invocation.
// It receives the context and the dispatch arguments, and returns the hook
// result (often nil for lifecycle hooks) or an error.
type HookHandler func(ctx context.Context, args map[string]any) (any, error)

// InitFunc is called to initialize the plugin with configuration.
type InitFunc func(ctx context.Context, config map[string]any) error

// ShutdownFunc is called to gracefully shutdown the plugin.
type ShutdownFunc func(ctx context.Context) error

// hookEntry represents a registered hook with its descriptor and handler.
type hookEntry struct {
	descriptor HookDescriptor
	handler    HookHandler
}

// Config holds the configuration for building a plugin.
// Use NewConfig to create a new configuration, then use the setter methods
// to configure the plugin before calling New to build it.
type Config struct {
	name         string
	version      string
	description  string
	hooks        []hookEntry
	sortKey      mixin.SortKeyFunc
	initFunc     InitFunc
	shutdownFunc ShutdownFunc
}

// NewConfig creates a new plugin configuration with default values.
func NewConfig() *Config {
	return &Config{
		hooks: make([]hookEntry, 0),
		initFunc: func(ctx context.Context, config map[string]any) error {
			return nil
		},
		shutdownFunc: func(ctx context.Context) error {
			return nil
		},
	}
}

// SetName sets the plugin name.
func (c *Config) SetName(name string) {
	c.name = name
}

// SetVersion sets the plugin version.
func (c *Config) SetVersion(version string) {
	c.version = version
}

// SetDescription sets the plugin description.
func (c *Config) SetDescription(desc string) {
	c.description = desc
}

// AddHook registers a handler for a capability hook.
// The hook will be invoked when the host dispatches the corresponding call
// context.
func (c *Config) AddHook(capability mixin.Capability, method string, handler HookHandler) {
	c.hooks = append(c.hooks, hookEntry{
		descriptor: HookDescriptor{
			Capability: capability,
			Method:     method,
		},
		handler: handler,
	})
}

// AddHookWithDesc registers a handler for a capability hook including a
// description for plugin listings.
func (c *Config) AddHookWithDesc(capability mixin.Capability, method, description string, handler HookHandler) {
	c.hooks = append(c.hooks, hookEntry{
		descriptor: HookDescriptor{
			Capability:  capability,
			Method:      method,
			Description: description,
		},
		handler: handler,
	})
}

// SetSortKey sets the plugin's call-order preference. The function receives
// call contexts and returns nil or an integer rank; see mixin.SortKeyFunc.
func (c *Config) SetSortKey(fn mixin.SortKeyFunc) {
	c.sortKey = fn
}

// SetInitFunc sets the initialization function.
func (c *Config) SetInitFunc(fn InitFunc) {
	c.initFunc = fn
}

// SetShutdownFunc sets the shutdown function.
func (c *Config) SetShutdownFunc(fn ShutdownFunc) {
	c.shutdownFunc = fn
}

// New creates a new Plugin from the configuration.
// Returns an error if the configuration is invalid.
func New(cfg *Config) (Plugin, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if cfg.name == "" {
		return nil, fmt.Errorf("plugin name is required")
	}

	if cfg.version == "" {
		return nil, fmt.Errorf("plugin version is required")
	}

	// Build hook map keyed by call context for fast dispatch, and derive
	// the capability list in first-seen order.
	hookMap := make(map[string]hookEntry, len(cfg.hooks))
	var capabilities []mixin.Capability
	seenCaps := make(map[mixin.Capability]bool)

	for _, entry := range cfg.hooks {
		if entry.descriptor.Capability == "" {
			return nil, fmt.Errorf("hook capability cannot be empty")
		}
		if entry.descriptor.Method == "" {
			return nil, fmt.Errorf("hook method cannot be empty")
		}
		if entry.handler == nil {
			return nil, fmt.Errorf("hook handler cannot be nil: %s", entry.descriptor.CallContext())
		}

		key := entry.descriptor.CallContext()
		if _, exists := hookMap[key]; exists {
			return nil, fmt.Errorf("duplicate hook: %s", key)
		}
		hookMap[key] = entry

		if !seenCaps[entry.descriptor.Capability] {
			seenCaps[entry.descriptor.Capability] = true
			capabilities = append(capabilities, entry.descriptor.Capability)
		}
	}

	return &hostPlugin{
		name:         cfg.name,
		version:      cfg.version,
		description:  cfg.description,
		hooks:        cfg.hooks,
		hookMap:      hookMap,
		capabilities: capabilities,
		sortKey:      cfg.sortKey,
		initFunc:     cfg.initFunc,
		shutdownFunc: cfg.shutdownFunc,
		initialized:  false,
	}, nil
}

// hostPlugin is the private implementation of the Plugin interface.
type hostPlugin struct {
	name         string
	version      string
	description  string
	hooks        []hookEntry
	hookMap      map[string]hookEntry
	capabilities []mixin.Capability
	sortKey      mixin.SortKeyFunc
	initFunc     InitFunc
	shutdownFunc ShutdownFunc
	initialized  bool
	mu           sync.RWMutex
}

// Name returns the plugin's unique identifier.
func (p *hostPlugin) Name() string {
	return p.name
}

// Version returns the plugin's semantic version.
func (p *hostPlugin) Version() string {
	return p.version
}

// Description returns the plugin's description.
func (p *hostPlugin) Description() string {
	return p.description
}

// Capabilities returns the mixins this plugin implements.
func (p *hostPlugin) Capabilities() []mixin.Capability {
	caps := make([]mixin.Capability, len(p.capabilities))
	copy(caps, p.capabilities)
	return caps
}

// SortKey implements mixin.SortKeyProvider when a sort key was configured.
// Without one, every context yields no preference.
func (p *hostPlugin) SortKey(callContext string) any {
	if p.sortKey == nil {
		return nil
	}
	return p.sortKey(callContext)
}

// Invoke runs the hook registered for the given call context.
func (p *hostPlugin) Invoke(ctx context.Context, callContext string, args map[string]any) (any, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.initialized {
		return nil, fmt.Errorf("plugin not initialized")
	}

	entry, exists := p.hookMap[callContext]
	if !exists {
		return nil, fmt.Errorf("hook not found: %s", callContext)
	}

	result, err := entry.handler(ctx, args)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Initialize prepares the plugin for use.
func (p *hostPlugin) Initialize(ctx context.Context, config map[string]any) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return fmt.Errorf("plugin already initialized")
	}

	if err := p.initFunc(ctx, config); err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	p.initialized = true
	return nil
}

// Shutdown gracefully shuts down the plugin.
func (p *hostPlugin) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return fmt.Errorf("plugin not initialized")
	}

	if err := p.shutdownFunc(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	p.initialized = false
	return nil
}

// Health returns the current health status of the plugin.
func (p *hostPlugin) Health(ctx context.Context) types.HealthStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.initialized {
		return types.NewUnhealthyStatus("plugin not initialized", nil)
	}

	return types.NewHealthyStatus("plugin operational")
}
