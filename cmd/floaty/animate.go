package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

func runAnimate(fps int, outDir string, hold float64) error {
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", fps)
	}
	if hold < 0 {
		return fmt.Errorf("hold must not be negative, got %v", hold)
	}

	s, err := newScene()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	step := time.Second / time.Duration(fps)
	phase := max(s.m.SettleTime(), s.ctrl.LabelDuration) + time.Duration(hold*float64(time.Second))

	n := 0
	write := func() error {
		path := filepath.Join(outDir, fmt.Sprintf("frame_%04d.png", n))
		if err := s.frame().SavePNG(path); err != nil {
			return err
		}
		n++
		return nil
	}
	run := func(d time.Duration) error {
		for elapsed := time.Duration(0); elapsed < d; elapsed += step {
			if err := write(); err != nil {
				return err
			}
			s.sched.Advance(step)
		}
		return nil
	}

	if err := write(); err != nil {
		return err
	}
	for _, float := range []bool{true, false} {
		s.m.SetShouldFloat(float)
		if err := run(phase); err != nil {
			return err
		}
	}
	if err := write(); err != nil {
		return err
	}

	slog.Info("animation rendered", "frames", n, "fps", fps, "dir", outDir)
	return nil
}
