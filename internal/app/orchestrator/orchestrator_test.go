package orchestrator_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/todosync/internal/app/action"
	"github.com/jsamuelsen11/todosync/internal/app/orchestrator"
	"github.com/jsamuelsen11/todosync/internal/app/store"
	"github.com/jsamuelsen11/todosync/internal/domain"
	"github.com/jsamuelsen11/todosync/internal/platform/logging"
	"github.com/jsamuelsen11/todosync/internal/platform/telemetry"
)

// recorder captures every action the store applies.
type recorder struct {
	actions []action.Action
}

func newOrchestrator(t *testing.T, opts ...orchestrator.Option) (*orchestrator.Orchestrator, *recorder) {
	t.Helper()

	st := store.New()
	rec := &recorder{}
	t.Cleanup(st.Subscribe(func(a action.Action, _ store.State) {
		rec.actions = append(rec.actions, a)
	}))
	return orchestrator.New(st, opts...), rec
}

func (r *recorder) phases() []action.Phase {
	out := make([]action.Phase, len(r.actions))
	for i, a := range r.actions {
		out[i] = a.Phase
	}
	return out
}

func TestRun_Fulfilled(t *testing.T) {
	t.Parallel()

	o, rec := newOrchestrator(t)
	arg := action.ListArg{ListID: "A"}

	var sawLoading bool
	outcome := orchestrator.Run(context.Background(), o, action.RemoveList, arg,
		func(_ context.Context, in action.ListArg, state store.State) (action.ListRemoved, error) {
			sawLoading = state.App.Status == domain.StatusLoading
			return action.ListRemoved{ListID: in.ListID}, nil
		})

	require.True(t, outcome.Fulfilled())
	assert.Equal(t, action.ListRemoved{ListID: "A"}, outcome.Value)
	assert.True(t, sawLoading)

	require.Equal(t, []action.Phase{action.PhasePending, action.PhaseFulfilled}, rec.phases())
	assert.Equal(t, rec.actions[0].ID, rec.actions[1].ID)
	assert.Equal(t, arg, rec.actions[1].Arg)
	assert.Equal(t, domain.StatusSucceeded, o.Store().Snapshot().App.Status)
}

func TestRun_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		op        action.Op
		err       error
		opts      []orchestrator.RunOption
		wantKind  action.Kind
		wantMsg   *string
		wantError *string
	}{
		{
			name:      "network failure",
			op:        action.FetchLists,
			err:       errors.New("dial tcp: connection refused"),
			wantKind:  action.NetworkFailure,
			wantMsg:   strPtr("dial tcp: connection refused"),
			wantError: strPtr("dial tcp: connection refused"),
		},
		{
			name:      "application rejection",
			op:        action.UpdateTask,
			err:       &domain.ApplicationError{ResultCode: 1, Messages: []string{"bad deadline"}},
			wantKind:  action.ApplicationRejection,
			wantMsg:   strPtr("bad deadline"),
			wantError: strPtr("bad deadline"),
		},
		{
			name:      "application rejection on inline handled op",
			op:        action.AddTask,
			err:       &domain.ApplicationError{ResultCode: 1, Messages: []string{"title too long"}},
			wantKind:  action.ApplicationRejection,
			wantMsg:   strPtr("title too long"),
			wantError: nil,
		},
		{
			name:      "quiet application rejection",
			op:        action.RenameList,
			err:       &domain.ApplicationError{ResultCode: 1, Messages: []string{"duplicate"}},
			opts:      []orchestrator.RunOption{orchestrator.Quiet()},
			wantKind:  action.ApplicationRejection,
			wantMsg:   nil,
			wantError: nil,
		},
		{
			name:      "task not found",
			op:        action.UpdateTask,
			err:       domain.ErrTaskNotFound,
			wantKind:  action.NotFoundLocal,
			wantMsg:   strPtr("Task not found"),
			wantError: strPtr("Task not found"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			o, rec := newOrchestrator(t)
			outcome := orchestrator.Run(context.Background(), o, tt.op, struct{}{},
				func(context.Context, struct{}, store.State) (int, error) {
					return 42, tt.err
				}, tt.opts...)

			require.False(t, outcome.Fulfilled())
			assert.Zero(t, outcome.Value)
			assert.Equal(t, tt.wantKind, outcome.Rejection.Kind)
			assert.Equal(t, tt.wantMsg, outcome.Rejection.Message)
			require.ErrorIs(t, outcome.Rejection.Err, tt.err)

			require.Equal(t, []action.Phase{action.PhasePending, action.PhaseRejected}, rec.phases())
			app := o.Store().Snapshot().App
			assert.Equal(t, domain.StatusFailed, app.Status)
			assert.Equal(t, tt.wantError, app.Error)
		})
	}
}

func TestRun_RecoversPanic(t *testing.T) {
	t.Parallel()

	o, rec := newOrchestrator(t)

	outcome := orchestrator.Run(context.Background(), o, action.FetchTasks, "A",
		func(context.Context, string, store.State) (action.TasksFetched, error) {
			panic("nil map")
		})

	require.False(t, outcome.Fulfilled())
	assert.Equal(t, action.NetworkFailure, outcome.Rejection.Kind)
	require.ErrorIs(t, outcome.Rejection.Err, orchestrator.ErrPanic)
	assert.Equal(t, "operation panicked: nil map", outcome.Rejection.Text())
	assert.Equal(t, []action.Phase{action.PhasePending, action.PhaseRejected}, rec.phases())
}

func TestRun_RecordsSpan(t *testing.T) {
	t.Parallel()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	o, _ := newOrchestrator(t, orchestrator.WithTracerProvider(tp))

	orchestrator.Run(context.Background(), o, action.FetchLists, struct{}{},
		func(context.Context, struct{}, store.State) (action.ListsFetched, error) {
			return action.ListsFetched{}, errors.New("timeout")
		})

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "todolists/fetchTodolists", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}

func TestRun_RecordsMetrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	metrics, err := telemetry.NewMetrics(mp, "test-service")
	require.NoError(t, err)

	o, _ := newOrchestrator(t, orchestrator.WithMetrics(metrics))
	ok := func(context.Context, struct{}, store.State) (action.ListsFetched, error) {
		return action.ListsFetched{}, nil
	}
	orchestrator.Run(context.Background(), o, action.FetchLists, struct{}{}, ok)
	orchestrator.Run(context.Background(), o, action.FetchLists, struct{}{}, ok)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "todosync.operation.total" {
				continue
			}
			sum, isSum := m.Data.(metricdata.Sum[int64])
			require.True(t, isSum)
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	assert.Equal(t, int64(2), total)
}

func TestRun_LogsRejectionOnce(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := logging.WithLogger(context.Background(), logger)

	o, _ := newOrchestrator(t)
	outcome := orchestrator.Run(ctx, o, action.FetchLists, struct{}{},
		func(context.Context, struct{}, store.State) (action.ListsFetched, error) {
			return action.ListsFetched{}, errors.New("connection refused")
		})
	require.False(t, outcome.Fulfilled())

	var rejected []map[string]any
	dec := json.NewDecoder(&buf)
	for dec.More() {
		var entry map[string]any
		require.NoError(t, dec.Decode(&entry))
		if entry["msg"] == "operation rejected" {
			rejected = append(rejected, entry)
		}
	}

	require.Len(t, rejected, 1)
	assert.Equal(t, "WARN", rejected[0]["level"])
	assert.Equal(t, "todolists/fetchTodolists", rejected[0]["operation"])
	assert.Equal(t, "network_failure", rejected[0]["kind"])
	assert.NotEmpty(t, rejected[0]["action_id"])
}

func strPtr(s string) *string { return &s }
