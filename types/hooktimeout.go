package types

import (
	"fmt"
	"time"
)

// Hook invocations must stay short; a plugin that stalls a lifecycle hook
// stalls the whole dispatch chain.
const defaultHookTimeout = 30 * time.Second

// HookTimeouts defines timeout bounds for plugin hook invocation.
// The dispatcher applies the resolved timeout to each hook call separately,
// not to the dispatch chain as a whole.
type HookTimeouts struct {
	// Default is the timeout to use if the caller doesn't specify one.
	// A zero value means use the SDK default (30 seconds).
	Default time.Duration

	// Max is the maximum allowed per-hook timeout.
	// A zero value means no upper bound is enforced.
	Max time.Duration

	// Min is the minimum allowed per-hook timeout.
	// A zero value means no lower bound is enforced.
	Min time.Duration
}

// Validate checks that the timeout bounds are internally consistent:
// min <= max when both are set, and the default falls within the bounds.
func (c HookTimeouts) Validate() error {
	if c.Min > 0 && c.Max > 0 && c.Min > c.Max {
		return fmt.Errorf("min hook timeout %v exceeds max %v", c.Min, c.Max)
	}

	if c.Default > 0 {
		if c.Min > 0 && c.Default < c.Min {
			return fmt.Errorf("default hook timeout %v below min %v", c.Default, c.Min)
		}
		if c.Max > 0 && c.Default > c.Max {
			return fmt.Errorf("default hook timeout %v exceeds max %v", c.Default, c.Max)
		}
	}

	return nil
}

// ValidateTimeout checks if a requested per-hook timeout is within bounds.
func (c HookTimeouts) ValidateTimeout(requested time.Duration) error {
	if c.Min > 0 && requested < c.Min {
		return fmt.Errorf("hook timeout %v below minimum %v", requested, c.Min)
	}
	if c.Max > 0 && requested > c.Max {
		return fmt.Errorf("hook timeout %v exceeds maximum %v", requested, c.Max)
	}
	return nil
}

// ResolveTimeout returns the effective per-hook timeout: the requested value
// if positive, else the configured default, else the SDK default. It does
// not validate; call ValidateTimeout first if the requested value needs to
// be checked against bounds.
func (c HookTimeouts) ResolveTimeout(requested time.Duration) time.Duration {
	if requested > 0 {
		return requested
	}
	if c.Default > 0 {
		return c.Default
	}
	return defaultHookTimeout
}
