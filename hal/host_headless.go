package hal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64

	// Snapshot, when set, is the PNG path the framebuffer is written to after the
	// run ends: tick limit, ErrExit or ctx cancellation. A step error skips it.
	Snapshot      string
	SnapshotScale int
}

// RunHeadless runs the app without opening a window. The keyboard reports nothing.
//
// When ctx ends the run, the snapshot is still written and ctx.Err() is returned.
func RunHeadless(ctx context.Context, host HostConfig, cfg HeadlessConfig, newApp func(HAL) func() error) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := newHost(host)
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	h.logger.Info("headless run", zap.Int("hz", cfg.Hz), zap.Uint64("ticks", cfg.Ticks))

	var tick uint64
	var stopErr error
loop:
	for {
		select {
		case <-ctx.Done():
			stopErr = ctx.Err()
			break loop
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrExit) {
						break loop
					}
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				break loop
			}
		}
	}

	h.logger.Info("headless done", zap.Uint64("ticks", tick), zap.Uint64("presented", h.fb.presents), zap.NamedError("stop", stopErr))
	if cfg.Snapshot != "" {
		if err := SaveSnapshot(h.fb, cfg.Snapshot, cfg.SnapshotScale); err != nil {
			return err
		}
		h.logger.Info("snapshot written", zap.String("path", cfg.Snapshot), zap.Int("scale", cfg.SnapshotScale))
	}
	return stopErr
}
