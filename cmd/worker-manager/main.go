// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"cloudops-workers/internal/audit"
	"cloudops-workers/internal/catalog"
	"cloudops-workers/internal/common/aws"
	"cloudops-workers/internal/common/camunda"
	"cloudops-workers/internal/common/config"
	"cloudops-workers/internal/common/database"
	commonhttp "cloudops-workers/internal/common/http"
	"cloudops-workers/internal/common/logger"
	"cloudops-workers/internal/common/metrics"
	"cloudops-workers/internal/common/observability"
	"cloudops-workers/internal/engine"
	"cloudops-workers/internal/workers/operation"
	"cloudops-workers/internal/workers/redisqueue"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

// readinessCheck reports whether the host's orchestrator is reachable.
type readinessCheck func(ctx context.Context) error

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := logger.New("info", "console")
		boot.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...",
		zap.String("version", cfg.App.Version),
		zap.String("hostMode", cfg.Host.Mode),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	obs, err := observability.New(ctx, observability.Config{
		ServiceName:    cfg.App.Name,
		ServiceVersion: cfg.App.Version,
		Tracing: observability.TracingConfig{
			Exporter:    cfg.Observability.Tracing.Exporter,
			Endpoint:    cfg.Observability.Tracing.Endpoint,
			Insecure:    cfg.Observability.Tracing.Insecure,
			SampleRatio: cfg.Observability.Tracing.SampleRatio,
		},
	})
	if err != nil {
		zapLog.Fatal("observability init failed", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			zapLog.Warn("observability shutdown failed", zap.Error(err))
		}
	}()

	// --- Audit sink ---
	recorder, closeAudit, err := newAuditRecorder(ctx, cfg, zapLog)
	if err != nil {
		zapLog.Fatal("audit sink failed", zap.Error(err))
	}
	defer closeAudit()

	// --- Engine ---
	cat := catalog.Default().Filter(func(d *catalog.Descriptor) bool {
		return config.IsOperationEnabled(cfg, d.Name, d.Service)
	})
	if cat.Len() == 0 {
		zapLog.Fatal("no operations enabled")
	}

	userAgent := cfg.AWS.UserAgent
	if userAgent == "" {
		userAgent = cfg.App.Name + "/" + cfg.App.Version
	}
	httpClient := commonhttp.NewClient(config.GetDuration(cfg.AWS.HTTPTimeout))

	eng := engine.New(cat, aws.NewFactory(httpClient).WithUserAgent(userAgent), log,
		engine.WithObserver(engine.Observers{
			metrics.Observer{},
			obs,
			audit.NewObserver(recorder, log),
		}),
	)

	// --- Host ---
	var ready readinessCheck
	var shutdownHost func()
	switch cfg.Host.Mode {
	case config.HostModeRedis:
		ready, shutdownHost = startRedisHost(ctx, cfg, eng, log, zapLog)
	default:
		ready, shutdownHost = startZeebeHost(cfg, cat, eng, log, zapLog)
	}

	// --- Health & Metrics Server ---
	server := newHealthServer(cfg.Observability.MetricsAddress, ready)
	go func() {
		zapLog.Info("Health/Metrics server listening", zap.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	<-ctx.Done()
	zapLog.Info("Shutdown signal received, stopping workers...")

	shutdownHost()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Warn("Health/Metrics server shutdown failed", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped")
}

func startZeebeHost(cfg *config.Config, cat *catalog.Registry, eng *engine.Engine, log logger.Logger, zapLog *zap.Logger) (readinessCheck, func()) {
	var client *camunda.Client
	err := retryWithBackoff(func() error {
		var err error
		client, err = camunda.NewClient(cfg.Camunda)
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	var workers []*camunda.CamundaWorker
	for _, d := range cat.List() {
		opCfg := operation.LoadConfig(cfg, d.Name)
		handler := operation.NewHandler(opCfg, d.Name, eng, log, client.Retry())
		w := camunda.NewWorker(client.GetClient(), d.Name, opCfg.MaxJobsActive, opCfg.Timeout, handler, zapLog)
		w.Start()
		workers = append(workers, w)
	}
	zapLog.Info("Operation workers registered", zap.Int("count", len(workers)))

	return client.HealthCheck, func() {
		for _, w := range workers {
			w.Stop()
		}
		if err := client.Close(); err != nil {
			zapLog.Error("Error closing Zeebe client", zap.Error(err))
		}
	}
}

func startRedisHost(ctx context.Context, cfg *config.Config, eng *engine.Engine, log logger.Logger, zapLog *zap.Logger) (readinessCheck, func()) {
	var rc *database.RedisClient
	err := retryWithBackoff(func() error {
		var err error
		rc, err = database.NewRedis(cfg.Redis)
		if err != nil {
			return err
		}
		return rc.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	zapLog.Info("Redis connected successfully")

	consumer := redisqueue.NewConsumer(redisqueue.LoadConfig(cfg.Redis), rc, eng, log)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = consumer.Run(ctx)
	}()

	return rc.Ping, func() {
		<-done
		if err := rc.Close(); err != nil {
			zapLog.Error("Error closing Redis client", zap.Error(err))
		}
	}
}

func newAuditRecorder(ctx context.Context, cfg *config.Config, zapLog *zap.Logger) (audit.Recorder, func(), error) {
	switch cfg.Audit.Backend {
	case config.AuditBackendPostgres:
		var pg *database.PostgresClient
		err := retryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			return pg.Ping(ctx)
		}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
		if err != nil {
			return nil, nil, err
		}
		rec, err := audit.NewPostgresRecorder(pg, cfg.Audit.Table)
		if err != nil {
			pg.Close()
			return nil, nil, err
		}
		if err := rec.EnsureSchema(ctx); err != nil {
			pg.Close()
			return nil, nil, err
		}
		zapLog.Info("PostgreSQL audit sink ready", zap.String("table", cfg.Audit.Table))
		return rec, func() { pg.Close() }, nil

	case config.AuditBackendElasticsearch:
		var es *database.ElasticsearchClient
		err := retryWithBackoff(func() error {
			var err error
			es, err = database.NewElasticsearch(cfg.Database.Elasticsearch, nil)
			if err != nil {
				return err
			}
			return es.Ping()
		}, 15, 2*time.Second, zapLog, "Elasticsearch connection")
		if err != nil {
			return nil, nil, err
		}
		zapLog.Info("Elasticsearch audit sink ready", zap.String("index", cfg.Audit.Index))
		return audit.NewElasticsearchRecorder(es, cfg.Audit.Index), func() {}, nil

	default:
		return audit.Nop{}, func() {}, nil
	}
}

func newHealthServer(addr string, ready readinessCheck) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusOK, "healthy", "")
	})
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()
		if err := ready(ctx); err != nil {
			writeStatus(w, http.StatusServiceUnavailable, "not ready", err.Error())
			return
		}
		writeStatus(w, http.StatusOK, "ready", "")
	})
	mux.Handle("/metrics", promhttp.Handler())

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func writeStatus(w http.ResponseWriter, code int, status, reason string) {
	body := map[string]string{"status": status}
	if reason != "" {
		body["reason"] = reason
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
