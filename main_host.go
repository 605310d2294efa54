package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"segview/app"
	"segview/core/scene"
	"segview/hal"
	"segview/internal/buildinfo"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	var cfg hal.HeadlessConfig
	var scenePath, logLevel string
	var spheres, noHUD bool
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&cfg.Snapshot, "snapshot", "", "Write the last headless frame to this PNG file.")
	flag.IntVar(&cfg.SnapshotScale, "snapshot-scale", 1, "Integer upscale factor for -snapshot.")
	flag.StringVar(&scenePath, "scene", "", "YAML file overriding the initial camera/segment/point.")
	flag.BoolVar(&spheres, "spheres", false, "Draw wireframe spheres around the point markers.")
	flag.BoolVar(&noHUD, "no-hud", false, "Hide the parameter panel.")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error.")
	flag.Parse()

	log, err := newLogger(logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer log.Sync()

	st, err := scene.LoadFile(scenePath)
	if err != nil {
		log.Error("load scene", zap.String("path", scenePath), zap.Error(err))
		os.Exit(1)
	}

	appCfg := app.DefaultConfig()
	appCfg.Title = "segview " + buildinfo.Short()
	appCfg.Scene = st
	appCfg.Render.SphereMarkers = spheres
	appCfg.HUD = !noHUD

	host := hal.HostConfig{Title: appCfg.Title, Width: 1280, Height: 720, Logger: log}
	newApp := func(h hal.HAL) func() error { return app.NewWithConfig(h, appCfg) }

	log.Info("start", zap.String("version", buildinfo.String()), zap.Bool("headless", cfg.Enabled))

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, host, cfg, newApp); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			log.Error("headless run", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(host, newApp); err != nil {
		log.Error("window run", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid -log-level %q: %w", level, err)
	}
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	return config.Build()
}
