// Package orchestrator wraps every remote operation in a uniform lifecycle:
//
//	dispatch pending → run the procedure → dispatch fulfilled(delta)
//	                                      ↘ classify → dispatch rejected
//
// Exactly one settled action is dispatched per invocation and no error or
// panic raised by the procedure escapes Run: callers observe an
// action.Outcome only.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/jsamuelsen11/todosync/internal/app/action"
	"github.com/jsamuelsen11/todosync/internal/app/classify"
	"github.com/jsamuelsen11/todosync/internal/app/store"
	"github.com/jsamuelsen11/todosync/internal/platform/httpclient"
	"github.com/jsamuelsen11/todosync/internal/platform/logging"
	"github.com/jsamuelsen11/todosync/internal/platform/telemetry"
)

// ErrPanic wraps a value recovered from a panicking procedure.
var ErrPanic = errors.New("operation panicked")

// Proc is the body of an operation. It receives the state as it was right
// after the pending action was applied and returns the domain delta that the
// fulfilled action carries.
type Proc[In, Out any] func(ctx context.Context, in In, state store.State) (Out, error)

// Orchestrator runs operations against one store.
type Orchestrator struct {
	store   *store.Store
	tracer  trace.Tracer
	metrics *telemetry.Metrics
	now     func() time.Time
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithTracerProvider sets the provider spans are created from. Defaults to
// a no-op provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Orchestrator) {
		o.tracer = tp.Tracer(telemetry.ScopeName + "/orchestrator")
	}
}

// WithMetrics enables the operation duration and count instruments.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(o *Orchestrator) {
		o.metrics = m
	}
}

// New creates an Orchestrator dispatching to st.
func New(st *store.Store, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		store:  st,
		tracer: noop.NewTracerProvider().Tracer(""),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Store returns the store the orchestrator dispatches to.
func (o *Orchestrator) Store() *store.Store {
	return o.store
}

type runConfig struct {
	showUserMessage bool
}

// RunOption adjusts a single invocation.
type RunOption func(*runConfig)

// Quiet classifies application rejections without a user-facing message.
// Use it for operations whose rejections are expected and rendered by the
// caller.
func Quiet() RunOption {
	return func(c *runConfig) {
		c.showUserMessage = false
	}
}

// Run executes proc as operation op with input in.
func Run[In, Out any](ctx context.Context, o *Orchestrator, op action.Op, in In, proc Proc[In, Out], opts ...RunOption) action.Outcome[Out] {
	cfg := runConfig{showUserMessage: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	id := uuid.New()
	ctx, span := o.tracer.Start(ctx, op.Name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			telemetry.AttrOperation.String(op.Name),
			attribute.String("todosync.action_id", id.String()),
		),
	)
	defer span.End()

	ctx = httpclient.WithOperationID(ctx, id.String())
	logger := logging.FromContext(ctx).With(
		slog.String("operation", op.Name),
		slog.String("action_id", id.String()),
	)
	start := o.now()

	o.store.Dispatch(ctx, action.Pending(id, op, in))

	out, err := invoke(ctx, proc, in, o.store.Snapshot())
	if err != nil {
		res := classify.Classify(err, cfg.showUserMessage)
		r := res.Rejection
		o.store.Dispatch(ctx, action.Rejected(id, op, in, r))

		span.RecordError(err)
		span.SetStatus(codes.Error, r.Kind.String())
		o.record(ctx, op, start, "rejected", r.Kind.String())
		logger.WarnContext(ctx, "operation rejected",
			slog.String("kind", r.Kind.String()),
			slog.String("message", r.Text()),
			slog.Any("error", err),
		)

		return action.Outcome[Out]{Rejection: &r}
	}

	o.store.Dispatch(ctx, action.Fulfilled(id, op, in, out))

	span.SetStatus(codes.Ok, "")
	o.record(ctx, op, start, "fulfilled", "")
	logger.DebugContext(ctx, "operation fulfilled")

	return action.Outcome[Out]{Value: out}
}

// invoke calls proc, converting a panic into an error.
func invoke[In, Out any](ctx context.Context, proc Proc[In, Out], in In, state store.State) (out Out, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			var zero Out
			out = zero
			err = fmt.Errorf("%w: %v", ErrPanic, rec)
		}
	}()
	return proc(ctx, in, state)
}

func (o *Orchestrator) record(ctx context.Context, op action.Op, start time.Time, result, kind string) {
	if o.metrics == nil {
		return
	}
	attrs := []attribute.KeyValue{
		telemetry.AttrOperation.String(op.Name),
		telemetry.AttrResult.String(result),
	}
	if kind != "" {
		attrs = append(attrs, telemetry.AttrRejectionKind.String(kind))
	}
	set := metric.WithAttributes(attrs...)
	o.metrics.OperationTotal.Add(ctx, 1, set)
	o.metrics.OperationDuration.Record(ctx, o.now().Sub(start).Seconds(), set)
}
