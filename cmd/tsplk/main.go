// Command tsplk runs the Lin-Kernighan multi-start driver against a
// TSPLIB instance (or a randomly generated Euclidean one) and prints
// a summary of the best tour found.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/tsplk/candidate"
	"github.com/katalvlaran/tsplk/driver"
	"github.com/katalvlaran/tsplk/internal/applog"
	"github.com/katalvlaran/tsplk/internal/config"
	"github.com/katalvlaran/tsplk/internal/metrics"
	"github.com/katalvlaran/tsplk/internal/report"
	"github.com/katalvlaran/tsplk/internal/reportsrv"
	"github.com/katalvlaran/tsplk/lk"
	"github.com/katalvlaran/tsplk/tsplib"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	problemPath := flag.String("problem", cfg.ProblemPath, "path to a TSPLIB-subset .tsp file (random instance used if empty)")
	randomN := flag.Int("random-n", 50, "city count for a random instance when -problem is empty")
	candidateKind := flag.String("candidates", string(cfg.CandidateKind), "all|nearest|alpha|optimized-alpha")
	candidateK := flag.Int("k", cfg.CandidateK, "candidate-list size (ignored for all-neighbors)")
	trials := flag.Int("trials", cfg.Trials, "number of multi-start trials")
	optimum := flag.Int("optimum", cfg.OptimumLength, "known optimum length for early exit (0 disables)")
	acceptableError := flag.Float64("acceptable-error", cfg.AcceptableError, "relative tolerance for early exit")
	seed := flag.Int64("seed", cfg.Seed, "RNG seed (0 selects a fixed default stream)")
	metricsAddr := flag.String("metrics-addr", cfg.MetricsAddr, "address to serve /healthz and /metrics on (empty disables)")
	verbose := flag.Bool("verbose", cfg.Verbose, "log per-trial diagnostics")
	flag.Parse()

	logLevel := cfg.LogLevel
	if *verbose {
		logLevel = "debug"
	}
	logger, err := applog.New(logLevel, cfg.LogJSON)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	problem, err := loadProblem(*problemPath, *randomN, *seed)
	if err != nil {
		logger.Fatalw("failed to load problem", "error", err)
	}

	kind, err := parseCandidateKind(*candidateKind)
	if err != nil {
		logger.Fatalw("invalid -candidates value", "error", err)
	}
	cands, err := candidate.Create(problem, kind, *candidateK)
	if err != nil {
		logger.Fatalw("failed to build candidate edges", "error", err)
	}

	engine := lk.NewSearchEngine(problem, cands)
	d := driver.New(problem, cands, engine, *seed, logger)

	recorder := &trialRecorder{}
	d.SetObserver(recorder)

	var srv *reportsrv.Server
	if *metricsAddr != "" {
		collectors := metrics.NewCollectors(prometheus.DefaultRegisterer)
		recorder.next = collectors
		srv = reportsrv.New(*metricsAddr)
		go func() {
			if err := srv.ListenAndServe(); err != nil {
				logger.Errorw("metrics server stopped", "error", err)
			}
		}()
	}

	best, err := d.FindBestTour(*trials, *optimum, *acceptableError)
	if err != nil {
		logger.Fatalw("solve failed", "error", err)
	}

	stats := report.Summarize(recorder.lengths, d.BestLength())
	diag := report.Collect()
	fmt.Printf("best tour length: %d\n", problem.Length(best.Order()))
	fmt.Printf("%s\n", stats)
	fmt.Printf("%s\n", diag)

	if srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		shutdownOnSignal(ctx, srv, logger)
	}
}

// trialRecorder accumulates each trial's improved length for the
// end-of-run report and optionally forwards the same observation to a
// second Observer (the Prometheus collectors, when metrics are on).
type trialRecorder struct {
	lengths []int
	next    driver.Observer
}

func (r *trialRecorder) Observe(startLength, improvedLength, bestLength int) {
	r.lengths = append(r.lengths, improvedLength)
	if r.next != nil {
		r.next.Observe(startLength, improvedLength, bestLength)
	}
}

func loadProblem(path string, randomN int, seed int64) (*tsplib.Problem, error) {
	if path != "" {
		return tsplib.Load(path)
	}
	return tsplib.RandomEuclidean("random", randomN, 1000, 1000, seed)
}

func parseCandidateKind(s string) (candidate.Type, error) {
	switch config.CandidateKind(s) {
	case config.CandidateAll:
		return candidate.AllNeighbors, nil
	case config.CandidateNearest:
		return candidate.NearestNeighbors, nil
	case config.CandidateAlpha:
		return candidate.AlphaNearestNeighbors, nil
	case config.CandidateOptimizedAlpha:
		return candidate.OptimizedAlphaNearestNeighbors, nil
	default:
		return 0, fmt.Errorf("unknown candidate kind %q", s)
	}
}

func shutdownOnSignal(ctx context.Context, srv *reportsrv.Server, logger *zap.SugaredLogger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case <-ctx.Done():
	}
	logger.Infow("shutting down metrics server")
	_ = srv.Shutdown(ctx)
}
