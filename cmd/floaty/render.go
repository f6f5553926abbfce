package main

import (
	"fmt"
	"log/slog"
)

func runRender(state, out string) error {
	var float bool
	switch state {
	case "resting":
	case "floating":
		float = true
	default:
		return fmt.Errorf("unknown state %q (use resting or floating)", state)
	}

	s, err := newScene()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	s.m.SetShouldFloat(float)
	s.sched.Advance(max(s.m.SettleTime(), s.ctrl.LabelDuration))

	if err := s.frame().SavePNG(out); err != nil {
		return err
	}
	slog.Info("border rendered", "state", s.m.State(), "out", out)
	return nil
}
