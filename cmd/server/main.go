// Package main is the entry point of the todosync bridge. It wires all
// dependencies using samber/do v2, optionally bootstraps the session and
// runs a full sync, starts the HTTP server, and handles graceful shutdown on
// SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/todosync/internal/adapters/http"
	"github.com/jsamuelsen11/todosync/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todosync/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/todosync/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/todosync/internal/app"
	"github.com/jsamuelsen11/todosync/internal/app/orchestrator"
	"github.com/jsamuelsen11/todosync/internal/app/store"
	"github.com/jsamuelsen11/todosync/internal/platform/config"
	"github.com/jsamuelsen11/todosync/internal/platform/health"
	"github.com/jsamuelsen11/todosync/internal/platform/httpclient"
	"github.com/jsamuelsen11/todosync/internal/platform/logging"
	"github.com/jsamuelsen11/todosync/internal/platform/telemetry"
	"github.com/jsamuelsen11/todosync/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	bootstrapTimeout      = 30 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger, otel)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*acl.Client](injector))
	registry.Register(do.MustInvoke[*store.Store](injector))

	if cfg.Sync.OnStartup {
		bootstrap(logging.WithLogger(ctx, logger), do.MustInvoke[ports.TodoService](injector), logger)
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

// bootstrap checks the session and, when the user is signed in, mirrors the
// server's lists and tasks. Each rejected operation is logged by the
// orchestrator; the bridge keeps running with whatever state was reached.
func bootstrap(ctx context.Context, svc ports.TodoService, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(ctx, bootstrapTimeout)
	defer cancel()

	session := svc.InitializeApp(ctx)
	if !session.Fulfilled() {
		logger.WarnContext(ctx, "session bootstrap rejected; skipping initial sync",
			slog.String("kind", session.Rejection.Kind.String()),
		)
		return
	}

	res := svc.Sync(ctx)
	logger.InfoContext(ctx, "initial sync finished",
		slog.Int("lists", len(res.Lists.Value.Lists)),
		slog.Int("rejected", res.Rejected()),
	)
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger, otel *otelProviders) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, "todo-api", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.Client, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewClient(client, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (*store.Store, error) {
		return store.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*orchestrator.Orchestrator, error) {
		st := do.MustInvoke[*store.Store](i)
		opts := []orchestrator.Option{orchestrator.WithMetrics(do.MustInvoke[*telemetry.Metrics](i))}
		if otel.tracer != nil {
			opts = append(opts, orchestrator.WithTracerProvider(otel.tracer))
		}
		return orchestrator.New(st, opts...), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoService, error) {
		orch := do.MustInvoke[*orchestrator.Orchestrator](i)
		client := do.MustInvoke[*acl.Client](i)
		return app.NewTodoService(orch, client, client, app.SyncOptions{
			MaxWorkers: cfg.Sync.MaxWorkers,
			LoadTasks:  cfg.Sync.LoadTasks,
		}, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		svc := do.MustInvoke[ports.TodoService](i)
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return adapthttp.Handlers{
			State:  handlers.NewStateHandler(svc),
			App:    handlers.NewAppHandler(svc),
			List:   handlers.NewListHandler(svc),
			Task:   handlers.NewTaskHandler(svc),
			Health: handlers.NewHealthHandler(registry),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(h,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
