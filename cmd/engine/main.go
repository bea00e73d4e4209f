package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"jobtracker-engine/internal/catalog"
	"jobtracker-engine/internal/config"
	"jobtracker-engine/internal/digest"
	"jobtracker-engine/internal/domain"
	"jobtracker-engine/internal/events"
	"jobtracker-engine/internal/httpapi"
	"jobtracker-engine/internal/logger"
	"jobtracker-engine/internal/store"
)

func main() {
	log, err := logger.New(os.Getenv("JOBTRACKER_LOG_JSON") == "true", os.Getenv("JOBTRACKER_DEBUG") == "true")
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(log); err != nil {
		log.Fatal("engine exited", zap.Error(err))
	}
}

func run(log *zap.Logger) error {
	// Engine data dir: use env if provided (the UI shell can pass one),
	// else local folder.
	dataDir := os.Getenv("JOBTRACKER_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	// One engine per data dir; two writers on the same state file would
	// fight over sqlite.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return err
	}
	if !locked {
		return fmt.Errorf("another engine instance already owns %s", dataDir)
	}
	defer func() { _ = lock.Unlock() }()

	userCfgPath, err := config.EnsureUserConfig(dataDir, filepath.Join("config", "config.yml"))
	if err != nil {
		return fmt.Errorf("config bootstrap: %w", err)
	}

	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		return config.Load(userCfgPath)
	}
	cfg, err := loadCfg()
	if err != nil {
		return fmt.Errorf("config load (%s): %w", userCfgPath, err)
	}
	cfg, vr := config.NormalizeAndValidate(cfg)
	if !vr.OK() {
		return fmt.Errorf("config invalid: %v", vr.Errors)
	}
	cfgVal.Store(cfg)

	db, err := store.Open(filepath.Join(dataDir, "jobtracker.db"))
	if err != nil {
		return err
	}
	defer db.Close()
	if err := store.Migrate(db.Pool); err != nil {
		return err
	}

	jobs, err := loadCatalog(log, dataDir, cfg)
	if err != nil {
		return err
	}
	log.Info("catalog loaded", zap.Int("jobs", len(jobs)))

	hub := events.NewHub()
	gen := &digest.Generator{
		Store:    store.Digests{DB: db},
		Clock:    digest.SystemClock{},
		MaxJobs:  cfg.Digest.MaxJobs,
		MinScore: cfg.Digest.DefaultMinScore,
	}

	mux := httpapi.NewMux(httpapi.Deps{
		Log:         log,
		Catalog:     jobs,
		Prefs:       store.Prefs{DB: db},
		Saved:       store.Saved{DB: db},
		Digests:     gen,
		Hub:         hub,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
	})

	handler := httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.AccessLog(log),
		httpapi.Recover(log),
		httpapi.Cors,
	)

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	log.Info("engine listening", zap.String("addr", "http://"+addr), zap.String("data_dir", dataDir))

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// loadCatalog resolves the catalog file (explicit config path, else the
// bootstrapped data-dir copy) and falls back to the built-in seed list
// when nothing is on disk yet.
func loadCatalog(log *zap.Logger, dataDir string, cfg config.Config) ([]domain.Job, error) {
	path := cfg.Catalog.Path
	if path == "" {
		p, err := catalog.Ensure(dataDir, filepath.Join("config", "catalog.json"))
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				log.Warn("no catalog file, using built-in seed jobs")
				return catalog.Seed(), nil
			}
			return nil, err
		}
		path = p
	}

	jobs, err := catalog.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Warn("catalog file missing, using built-in seed jobs", zap.String("path", path))
			return catalog.Seed(), nil
		}
		return nil, err
	}
	return jobs, nil
}
