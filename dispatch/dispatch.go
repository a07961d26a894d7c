package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/printhive/sdk"
	"github.com/printhive/sdk/mixin"
	"github.com/printhive/sdk/order"
	"github.com/printhive/sdk/plugin"
	"github.com/printhive/sdk/registry"
	"github.com/printhive/sdk/types"
)

const instrumentationName = "github.com/printhive/sdk/dispatch"

// Result is the outcome of invoking one plugin in a dispatch chain.
type Result struct {
	// Identifier is the plugin that was invoked.
	Identifier string

	// Value is the hook's return value, nil for most lifecycle hooks.
	Value any

	// Err is the hook's error, nil on success. A non-nil Err does not stop
	// the chain; later plugins still run.
	Err error

	// Elapsed is how long the hook invocation took.
	Elapsed time.Duration
}

// Dispatcher resolves call orders and invokes plugin hooks sequentially.
// Construct with New; the zero value is not usable.
type Dispatcher struct {
	registry *registry.Registry
	logger   *slog.Logger
	tracer   trace.Tracer
	timeouts types.HookTimeouts

	invocations metric.Int64Counter
	failures    metric.Int64Counter
}

// Option configures a Dispatcher.
type Option func(*options)

type options struct {
	logger         *slog.Logger
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	timeouts       types.HookTimeouts
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider.
// Defaults to the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tracerProvider = tp
	}
}

// WithMeterProvider sets the OpenTelemetry meter provider.
// Defaults to the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) {
		o.meterProvider = mp
	}
}

// WithHookTimeouts sets the per-hook timeout bounds applied to every
// invocation in a chain.
func WithHookTimeouts(t types.HookTimeouts) Option {
	return func(o *options) {
		o.timeouts = t
	}
}

// New creates a Dispatcher backed by the given registry.
func New(reg *registry.Registry, opts ...Option) (*Dispatcher, error) {
	if reg == nil {
		return nil, sdk.NewValidationError("dispatch.New", sdk.ErrInvalidConfig).
			WithContext(map[string]any{"reason": "nil registry"})
	}

	o := &options{
		logger:         slog.Default(),
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(o)
	}

	if err := o.timeouts.Validate(); err != nil {
		return nil, sdk.NewConfigurationError("dispatch.New", err)
	}

	meter := o.meterProvider.Meter(instrumentationName)

	invocations, err := meter.Int64Counter("printhive.dispatch.invocations",
		metric.WithDescription("Plugin hook invocations, by capability and outcome."))
	if err != nil {
		return nil, sdk.NewInternalError("dispatch.New", err)
	}

	failures, err := meter.Int64Counter("printhive.dispatch.failures",
		metric.WithDescription("Plugin hook invocations that returned an error."))
	if err != nil {
		return nil, sdk.NewInternalError("dispatch.New", err)
	}

	return &Dispatcher{
		registry:    reg,
		logger:      o.logger,
		tracer:      o.tracerProvider.Tracer(instrumentationName),
		timeouts:    o.timeouts,
		invocations: invocations,
		failures:    failures,
	}, nil
}

// Call dispatches one hook to every plugin registered for the capability,
// in resolved call order.
//
// If the call order cannot be resolved, nothing is invoked and the
// resolution error is returned wrapped in a HostError; the caller decides
// whether to retry or surface it. Individual hook failures are reported in
// the returned results and do not stop the chain.
func (d *Dispatcher) Call(ctx context.Context, capability mixin.Capability, method string, args map[string]any) ([]Result, error) {
	callContext := mixin.CallContext(capability, method)
	dispatchID := uuid.NewString()

	ctx, span := d.tracer.Start(ctx, "dispatch.Call",
		trace.WithAttributes(
			attribute.String("printhive.capability", string(capability)),
			attribute.String("printhive.call_context", callContext),
			attribute.String("printhive.dispatch_id", dispatchID),
		))
	defer span.End()

	records := d.registry.Records(capability)

	ordered, err := order.Resolve(records, callContext)
	if err != nil {
		d.logger.Error("call order resolution aborted, skipping dispatch",
			"call_context", callContext,
			"dispatch_id", dispatchID,
			"plugins", len(records),
			"error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "call order resolution aborted")
		return nil, sdk.NewResolutionError("Dispatcher.Call", err).
			WithContext(map[string]any{
				"call_context": callContext,
				"dispatch_id":  dispatchID,
			})
	}

	span.SetAttributes(attribute.Int("printhive.chain_length", len(ordered)))

	d.logger.Debug("dispatching hook chain",
		"call_context", callContext,
		"dispatch_id", dispatchID,
		"plugins", len(ordered))

	results := make([]Result, 0, len(ordered))
	for _, rec := range ordered {
		results = append(results, d.invokeOne(ctx, rec, callContext, dispatchID, args))
	}

	return results, nil
}

// invokeOne runs a single plugin's hook with the configured timeout.
func (d *Dispatcher) invokeOne(ctx context.Context, rec mixin.Record, callContext, dispatchID string, args map[string]any) Result {
	attrs := metric.WithAttributes(
		attribute.String("call_context", callContext),
		attribute.Bool("bundled", rec.Bundled),
	)
	d.invocations.Add(ctx, 1, attrs)

	caller, ok := rec.Implementation.(plugin.HookCaller)
	if !ok {
		err := sdk.NewExecutionError("Dispatcher.Call", sdk.ErrHookFailed).
			WithContext(map[string]any{
				"plugin": rec.Identifier,
				"reason": "implementation is not a HookCaller",
			})
		d.failures.Add(ctx, 1, attrs)
		d.logger.Warn("plugin cannot receive hooks, skipping",
			"plugin", rec.Identifier,
			"call_context", callContext,
			"dispatch_id", dispatchID)
		return Result{Identifier: rec.Identifier, Err: err}
	}

	hookCtx, cancel := context.WithTimeout(ctx, d.timeouts.ResolveTimeout(0))
	defer cancel()

	start := time.Now()
	value, err := caller.Invoke(hookCtx, callContext, args)
	elapsed := time.Since(start)

	if err != nil {
		d.failures.Add(ctx, 1, attrs)
		d.logger.Warn("plugin hook failed, continuing chain",
			"plugin", rec.Identifier,
			"call_context", callContext,
			"dispatch_id", dispatchID,
			"elapsed", elapsed,
			"error", err)
		hookErr := sdk.NewExecutionError("Dispatcher.Call", fmt.Errorf("%w: %w", sdk.ErrHookFailed, err)).
			WithContext(map[string]any{"plugin": rec.Identifier})
		return Result{Identifier: rec.Identifier, Err: hookErr, Elapsed: elapsed}
	}

	return Result{Identifier: rec.Identifier, Value: value, Elapsed: elapsed}
}

// Failed filters a result set down to the entries whose hook returned an
// error. Convenient for callers that only need to report failures.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}
