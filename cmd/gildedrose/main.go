// Package main runs the inventory simulation and prints the stock per day.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vyrodovalexey/gildedrose/internal/config"
	"github.com/vyrodovalexey/gildedrose/internal/inventory"
	"github.com/vyrodovalexey/gildedrose/internal/simulation"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout io.Writer) int {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// Use a basic logger for startup errors
		basicLogger, _ := zap.NewProduction()
		basicLogger.Error("failed to load configuration", zap.Error(err))
		return 1
	}

	if len(args) > 0 {
		if err := cfg.OverrideDays(args[0]); err != nil {
			basicLogger, _ := zap.NewProduction()
			basicLogger.Error("invalid days argument", zap.Error(err))
			return 1
		}
	}

	// Initialize logger
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		basicLogger, _ := zap.NewProduction()
		basicLogger.Error("failed to initialize logger", zap.Error(err))
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("configuration loaded",
		zap.String("log_level", cfg.LogLevel),
		zap.Int("days", cfg.Days),
		zap.Bool("metrics_enabled", cfg.MetricsEnabled),
	)

	var (
		registry *prometheus.Registry
		recorder *simulation.Recorder
	)
	if cfg.MetricsEnabled {
		registry = prometheus.NewRegistry()
		recorder = simulation.NewRecorder(registry)
	}

	shop := inventory.NewShop(simulation.DefaultItems())
	runner := simulation.NewRunner(shop, logger, recorder)

	if err := runner.Run(ctx, cfg.Days, stdout); err != nil {
		logger.Error("simulation failed", zap.Error(err))
		return 1
	}

	if registry != nil {
		if err := logMetrics(logger, registry); err != nil {
			logger.Error("failed to gather metrics", zap.Error(err))
			return 1
		}
	}

	return 0
}

// initLogger initializes a zap logger with the specified log level.
// Logs go to stderr so stdout carries only the report.
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	zapConfig := zap.Config{
		Level:       zap.NewAtomicLevelAt(zapLevel),
		Development: false,
		Encoding:    "json",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "timestamp",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.SecondsDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return zapConfig.Build()
}

// logMetrics writes one log entry per gathered sample.
func logMetrics(logger *zap.Logger, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			fields := []zap.Field{zap.String("metric", mf.GetName())}
			for _, lp := range m.GetLabel() {
				fields = append(fields, zap.String(lp.GetName(), lp.GetValue()))
			}
			switch {
			case m.GetCounter() != nil:
				fields = append(fields, zap.Float64("value", m.GetCounter().GetValue()))
			case m.GetGauge() != nil:
				fields = append(fields, zap.Float64("value", m.GetGauge().GetValue()))
			}
			logger.Info("metric", fields...)
		}
	}

	return nil
}
