// Command gatsp approximates a shortest round trip with a genetic algorithm
// and prints the best tour found.
//
// Usage:
//
//	gatsp [--config run.yaml] [--verbose] [--metrics]
//
// Without --config the built-in six-city demo runs. --verbose switches to a
// development logger with per-generation debug output; --metrics dumps the
// run's Prometheus series in text format to stderr when the run ends.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/gatsp/config"
	"github.com/katalvlaran/gatsp/genetic"
	"github.com/katalvlaran/gatsp/metrics"
	"github.com/katalvlaran/gatsp/tsp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "gatsp:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("gatsp", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		cfgPath = fs.StringP("config", "c", "", "YAML run description (default: built-in six-city demo)")
		verbose = fs.BoolP("verbose", "v", false, "development logging with per-generation output")
		dump    = fs.Bool("metrics", false, "print Prometheus metrics to stderr after the run")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	log := newLogger(*verbose, stderr)
	defer func() { _ = log.Sync() }()

	var (
		cfg = config.Default()
		err error
	)
	if *cfgPath != "" {
		if cfg, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}
	cities, err := cfg.CityList()
	if err != nil {
		return err
	}
	inst, err := tsp.NewInstance(cities)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		return err
	}
	evo, err := genetic.New(inst, cfg.Options(),
		genetic.WithLogger(log.Named("evolution")),
		genetic.WithObserver(rec),
	)
	if err != nil {
		return err
	}

	res, err := evo.Run(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, res.Summary())

	if *dump {
		return writeMetrics(stderr, reg)
	}

	return nil
}

// newLogger builds a JSON logger at Info level, or a console logger at Debug
// level for verbose runs. Both write to w.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	var (
		sink  = zapcore.Lock(zapcore.AddSync(w))
		enc   = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		level = zapcore.InfoLevel
		opts  = []zap.Option{zap.ErrorOutput(sink)}
	)
	if verbose {
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		level = zapcore.DebugLevel
		opts = append(opts, zap.Development(), zap.AddCaller())
	}

	return zap.New(zapcore.NewCore(enc, sink, level), opts...)
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	for _, mf := range mfs {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
	}

	return nil
}
