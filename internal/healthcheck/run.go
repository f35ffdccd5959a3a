package healthcheck

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vcenter-healthcheck/internal/collector"
	"vcenter-healthcheck/internal/config"
	"vcenter-healthcheck/internal/report"
	"vcenter-healthcheck/internal/vsphere"
)

const closeTimeout = 10 * time.Second

// Runner executes the single-pass pipeline: connect, enumerate, filter,
// collect, rank, render.
type Runner struct {
	cfg    config.Config
	logger *slog.Logger
	stdout io.Writer
	now    func() time.Time
}

func New(cfg config.Config, logger *slog.Logger, stdout io.Writer) *Runner {
	return &Runner{cfg: cfg, logger: logger, stdout: stdout, now: time.Now}
}

// Run drives the pipeline once. The session is released on every exit path:
// an interrupt cancels the context and the deferred close still logs out,
// on its own short deadline.
func (r *Runner) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	sess := vsphere.NewSessionManager(r.cfg.Host, r.cfg.Username, r.cfg.Password, r.cfg.Insecure, r.logger)
	if err := sess.Connect(ctx); err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		if err := sess.Close(closeCtx); err != nil {
			r.logger.Warn("session close failed", "error", err)
		}
	}()

	reader := vsphere.NewInventoryReader(sess, r.logger)
	vmc := collector.NewVMCollector(reader, r.cfg.ReservedPrefix, r.logger)
	records, err := vmc.Collect(ctx)
	if err != nil {
		return fmt.Errorf("collect inventory: %w", err)
	}
	fmt.Fprintf(r.stdout, "%d powered-on virtual machines matched (excluding %s*)\n", len(records), r.cfg.ReservedPrefix)

	tables, err := report.Rank(ctx, records, r.cfg.TopN)
	if err != nil {
		return fmt.Errorf("rank records: %w", err)
	}

	rep := report.Report{
		Host:        sess.Endpoint(),
		GeneratedAt: r.now(),
		MatchedVMs:  len(records),
		Tables:      tables,
	}
	if err := report.WriteFile(r.cfg.ReportPath, rep); err != nil {
		return err
	}
	r.logger.Info("report written", "path", r.cfg.ReportPath, "machines", len(records))
	return nil
}

// BuildLogger builds the process logger from config. Logs go to stderr so
// the matched-machine count on stdout stays clean.
func BuildLogger(cfg config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	hOpts := &slog.HandlerOptions{Level: level}
	if cfg.LogJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, hOpts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, hOpts))
}
