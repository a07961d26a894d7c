package sdk

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors for common SDK error conditions.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrPluginNotFound indicates the requested plugin was not found in the registry.
	ErrPluginNotFound = errors.New("plugin not found")

	// ErrCapabilityNotFound indicates no plugin is registered for the requested capability.
	ErrCapabilityNotFound = errors.New("capability not found")

	// ErrDuplicateIdentifier indicates two plugin records share an identifier.
	// Identifiers must be unique within one registration scope or one
	// call-order resolution; a duplicate points at a bug in the loader.
	ErrDuplicateIdentifier = errors.New("duplicate plugin identifier")

	// ErrInvalidRank indicates a sort key provider returned a value that is
	// neither an integer rank nor nil.
	ErrInvalidRank = errors.New("invalid sort key rank")

	// ErrInvalidConfig indicates the provided configuration or manifest is
	// invalid or incomplete.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrHookFailed indicates a plugin hook invocation failed.
	// The underlying error should be wrapped for additional context.
	ErrHookFailed = errors.New("hook invocation failed")
)

// Error kinds categorize errors by their type.
const (
	// KindNotFound represents errors where a plugin or capability was not found.
	KindNotFound = "not_found"

	// KindValidation represents errors related to input validation.
	KindValidation = "validation"

	// KindResolution represents errors raised while computing a call order.
	KindResolution = "resolution"

	// KindConfiguration represents errors related to configuration or manifests.
	KindConfiguration = "configuration"

	// KindExecution represents errors that occur during hook execution.
	KindExecution = "execution"

	// KindInternal represents internal SDK errors.
	KindInternal = "internal"
)

// HostError is a structured error type that wraps underlying errors with
// additional context about the operation that failed and the category of error.
//
// HostError implements the error interface and supports error unwrapping,
// making it compatible with errors.Is() and errors.As().
//
// Example usage:
//
//	err := &HostError{
//		Op:   "Dispatcher.Call",
//		Kind: KindResolution,
//		Err:  ErrDuplicateIdentifier,
//	}
type HostError struct {
	// Op is the operation that failed (e.g., "Registry.Register", "order.Resolve").
	Op string

	// Kind categorizes the error (e.g., KindNotFound, KindResolution).
	Kind string

	// Err is the underlying error that caused this error.
	Err error

	// Context provides additional context about the error (optional).
	// This can include plugin identifiers, call contexts, or other
	// debugging information.
	Context map[string]any
}

// Error implements the error interface, returning a formatted error message
// that includes the operation, kind, and underlying error.
func (e *HostError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("sdk: %s: %s", e.Op, e.Kind)
	}

	if len(e.Context) > 0 {
		return fmt.Sprintf("sdk: %s (%s): %v [context: %+v]", e.Op, e.Kind, e.Err, e.Context)
	}

	return fmt.Sprintf("sdk: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error, allowing errors.Is() and errors.As()
// to work correctly with wrapped errors.
func (e *HostError) Unwrap() error {
	return e.Err
}

// Is implements error matching for HostError, allowing comparison based on
// the underlying error or the HostError itself.
func (e *HostError) Is(target error) bool {
	if target == nil {
		return false
	}

	// Check if target is a HostError with matching Kind
	if t, ok := target.(*HostError); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}

	// Delegate to underlying error
	return errors.Is(e.Err, target)
}

// WithContext returns a new HostError with the provided context added.
// This is useful for adding debugging information to errors.
//
// Example:
//
//	err = err.WithContext(map[string]any{
//		"plugin":       "octolapse",
//		"call_context": "StartupPlugin.OnStartup",
//	})
func (e *HostError) WithContext(ctx map[string]any) *HostError {
	newErr := *e
	if newErr.Context == nil {
		newErr.Context = make(map[string]any)
	}
	for k, v := range ctx {
		newErr.Context[k] = v
	}
	return &newErr
}

// NewNotFoundError creates a new HostError with KindNotFound.
func NewNotFoundError(op string, err error) *HostError {
	return &HostError{
		Op:   op,
		Kind: KindNotFound,
		Err:  err,
	}
}

// NewValidationError creates a new HostError with KindValidation.
func NewValidationError(op string, err error) *HostError {
	return &HostError{
		Op:   op,
		Kind: KindValidation,
		Err:  err,
	}
}

// NewResolutionError creates a new HostError with KindResolution.
func NewResolutionError(op string, err error) *HostError {
	return &HostError{
		Op:   op,
		Kind: KindResolution,
		Err:  err,
	}
}

// NewConfigurationError creates a new HostError with KindConfiguration.
func NewConfigurationError(op string, err error) *HostError {
	return &HostError{
		Op:   op,
		Kind: KindConfiguration,
		Err:  err,
	}
}

// NewExecutionError creates a new HostError with KindExecution.
func NewExecutionError(op string, err error) *HostError {
	return &HostError{
		Op:   op,
		Kind: KindExecution,
		Err:  err,
	}
}

// NewInternalError creates a new HostError with KindInternal.
func NewInternalError(op string, err error) *HostError {
	return &HostError{
		Op:   op,
		Kind: KindInternal,
		Err:  err,
	}
}

// CloseWithLog attempts to close the provided resource and logs any error
// at warning level. This is intended for use in defer statements to ensure
// cleanup errors are not silently ignored.
//
// The name parameter should describe the resource being closed (e.g.,
// "manifest file", "serial port"). If logger is nil, slog.Default() is used.
//
// Example usage:
//
//	defer sdk.CloseWithLog(file, logger, "manifest file")
func CloseWithLog(closer io.Closer, logger *slog.Logger, name string) {
	if closer == nil {
		return
	}

	if logger == nil {
		logger = slog.Default()
	}

	if err := closer.Close(); err != nil {
		logger.Warn("failed to close resource",
			"resource", name,
			"error", err)
	}
}
