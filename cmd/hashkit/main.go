// Command hashkit computes CityHash, Ketama and Murmur digests of blobs
// and strings, places keys on a Ketama ring, and finds duplicate inputs.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hupe1980/hashkit"
	"github.com/hupe1980/hashkit/metrics"
)

// errFailed reports that at least one input could not be processed. The
// details have already been written to stderr.
var errFailed = errors.New("one or more inputs failed")

type cli struct {
	LogLevel      string `default:"warn" enum:"debug,info,warn,error" env:"HASHKIT_LOG_LEVEL" help:"Minimum log level (${enum})."`
	LogFormat     string `default:"text" enum:"text,json" env:"HASHKIT_LOG_FORMAT" help:"Log output format (${enum})."`
	MetricsListen string `name:"metrics-listen" placeholder:"ADDR" env:"HASHKIT_METRICS_LISTEN" help:"Serve Prometheus metrics on this address while the command runs."`

	Sum        sumCmd        `cmd:"" help:"Print digests of blobs or strings."`
	Locate     locateCmd     `cmd:"" help:"Place keys on a Ketama consistent-hash ring."`
	Dupes      dupesCmd      `cmd:"" help:"Report inputs whose content was already seen."`
	Algorithms algorithmsCmd `cmd:"" help:"List the supported digest algorithms."`
}

// runContext is bound into every command's Run method.
type runContext struct {
	ctx     context.Context
	stdout  io.Writer
	stderr  io.Writer
	logger  *hashkit.Logger
	metrics hashkit.MetricsCollector
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, "hashkit:", err)
		}
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var params cli
	parser, err := kong.New(&params,
		kong.Name("hashkit"),
		kong.Description("Fast non-cryptographic hashing: CityHash, Ketama and Murmur."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger, err := params.newLogger(stderr)
	if err != nil {
		return err
	}

	var mc hashkit.MetricsCollector = hashkit.NoopMetricsCollector{}
	if params.MetricsListen != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		mc = metrics.NewPrometheusCollector(reg, "hashkit")

		shutdown, err := serveMetrics(params.MetricsListen, reg, logger)
		if err != nil {
			return err
		}
		defer shutdown()
	}

	return kctx.Run(&runContext{
		ctx:     ctx,
		stdout:  stdout,
		stderr:  stderr,
		logger:  logger,
		metrics: mc,
	})
}

func (c *cli) newLogger(w io.Writer) (*hashkit.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}

	if c.LogFormat == "json" {
		return hashkit.NewLogger(slog.NewJSONHandler(w, opts)), nil
	}
	return hashkit.NewLogger(slog.NewTextHandler(w, opts)), nil
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *hashkit.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", "error", err)
		}
	}()
	logger.Info("serving metrics", "addr", ln.Addr().String())

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
