package geomag

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/j143/geomag-algorithms/internal/adapters/archive"
	"github.com/j143/geomag-algorithms/internal/adapters/metadata"
	"github.com/j143/geomag-algorithms/internal/adapters/observability"
	"github.com/j143/geomag-algorithms/internal/edge"
)

// RuntimeOption customizes the collaborators used by Runtime.
type RuntimeOption func(*runtimeOverrides)

type runtimeOverrides struct {
	waveServer WaveServer
	dialer     RawInputDialer
	attacher   MetadataAttacher
	archive    Archive
	obs        Observability
}

// WithWaveServer injects the read transport. Reads fail without one.
func WithWaveServer(ws WaveServer) RuntimeOption {
	return func(o *runtimeOverrides) {
		o.waveServer = ws
	}
}

// WithRawInputDialer injects the write transport. Writes fail without one.
func WithRawInputDialer(d RawInputDialer) RuntimeOption {
	return func(o *runtimeOverrides) {
		o.dialer = d
	}
}

// WithMetadataAttacher overrides the table-driven default attacher.
func WithMetadataAttacher(m MetadataAttacher) RuntimeOption {
	return func(o *runtimeOverrides) {
		o.attacher = m
	}
}

// WithArchive overrides the Timescale archive, or supplies one when no
// connection string is configured.
func WithArchive(a Archive) RuntimeOption {
	return func(o *runtimeOverrides) {
		o.archive = a
	}
}

// WithObservability plugs in a custom observability backend.
func WithObservability(obs Observability) RuntimeOption {
	return func(o *runtimeOverrides) {
		o.obs = obs
	}
}

// Runtime ties the Edge adapter to its collaborators and exposes simple
// lifecycle hooks for embedding the service inside any Go program.
type Runtime struct {
	cfg        *Config
	obs        Observability
	adapter    *edge.Adapter
	archive    Archive
	db         *sql.DB
	metricsSrv *http.Server
}

// NewRuntime bootstraps the default collaborators (table-driven metadata,
// Prometheus observability, Timescale archive when configured). Transports
// are injected through options; without them reads and writes fail with
// ErrNoWaveServer and ErrNoRawInput respectively.
func NewRuntime(cfg *Config, opts ...RuntimeOption) (*Runtime, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var overrides runtimeOverrides
	for _, opt := range opts {
		if opt != nil {
			opt(&overrides)
		}
	}

	obs := overrides.obs
	if obs == nil {
		obs = observability.NewPromObs(nil)
	}

	attacher := overrides.attacher
	if attacher == nil {
		attacher = metadata.NewDefaults()
	}

	var (
		db   *sql.DB
		arch Archive
		err  error
	)
	if overrides.archive != nil {
		arch = overrides.archive
	} else if cfg.Timescale.ConnString != "" {
		db, err = sql.Open("postgres", cfg.Timescale.ConnString)
		if err != nil {
			return nil, err
		}
		arch = archive.NewTimescaleArchive(db, cfg.Timescale.Table)
	}

	adapter := edge.New(cfg.Edge, overrides.waveServer, overrides.dialer, attacher, obs)

	return &Runtime{
		cfg:     cfg,
		obs:     obs,
		adapter: adapter,
		archive: arch,
		db:      db,
	}, nil
}

// Get fetches the requested channels over [start, end], pads gaps and
// attaches metadata. When an archive is configured the result is stored
// as well; archive failures are logged, not returned.
func (r *Runtime) Get(req Request, start, end time.Time) (Stream, error) {
	st, err := r.adapter.Get(req, start, end)
	if err != nil {
		return nil, err
	}

	first, last := st.Span()
	r.obs.LogInfo("timeseries_read",
		Field{Key: "traces", Value: len(st)},
		Field{Key: "span_start", Value: first},
		Field{Key: "span_end", Value: last})

	if r.archive != nil {
		if aerr := r.archive.WriteStream(st); aerr != nil {
			r.obs.LogError("archive_write_failed", aerr,
				Field{Key: "archive", Value: r.archive.Name()})
			r.obs.IncCounter("geomag_archive_failures_total", 1)
		}
	}
	return st, nil
}

// Put writes the stream's requested channels to the Edge node.
func (r *Runtime) Put(st Stream, req Request) error {
	return r.adapter.Put(st, req)
}

// Start launches the metrics listener. It returns immediately; call Run
// to block on a context instead.
func (r *Runtime) Start() error {
	if r == nil {
		return fmt.Errorf("runtime is nil")
	}
	r.startMetrics()
	return nil
}

// Run starts the runtime and blocks until the provided context is
// cancelled, then attempts a graceful shutdown.
func (r *Runtime) Run(ctx context.Context) error {
	if err := r.Start(); err != nil {
		return err
	}
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return r.Shutdown(shutdownCtx)
}

// Shutdown stops the metrics server and closes the archive connection.
func (r *Runtime) Shutdown(ctx context.Context) error {
	var errs []error

	if r.metricsSrv != nil {
		if err := r.metricsSrv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs = append(errs, err)
		}
	}

	if r.db != nil {
		if err := r.db.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (r *Runtime) startMetrics() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.metricsSrv = &http.Server{
		Addr:    r.cfg.Metrics.Addr,
		Handler: mux,
	}

	go func() {
		if err := r.metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.obs.LogError("metrics_server_exited", err)
		}
	}()
}
