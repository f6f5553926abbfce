package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/floaty"
	"github.com/gogpu/floaty/config"
	"github.com/gogpu/floaty/measure"
	"github.com/gogpu/floaty/raster"
)

// canvasMargin leaves room for the stroke and the floating label, which
// both straddle the container edge.
const canvasMargin = 12

// scene is a loaded control ready to drive a Machine.
type scene struct {
	ctrl   *config.Control
	sched  *floaty.ManualScheduler
	m      *floaty.Machine
	label  raster.Label
	bg     floaty.RGBA
	sfnt   *measure.SfntMeasurer
	layout floaty.Layout
}

func loadControl() (*config.Control, error) {
	ctrl := config.Default()
	if flagConfig != "" {
		var err error
		if ctrl, err = config.Load(flagConfig); err != nil {
			return nil, err
		}
	}
	var files []string
	if flagEnvFile != "" {
		files = append(files, flagEnvFile)
	}
	if err := ctrl.LoadEnv(files...); err != nil {
		return nil, err
	}
	return ctrl, nil
}

func newScene() (*scene, error) {
	ctrl, err := loadControl()
	if err != nil {
		return nil, err
	}

	data := measure.DefaultFont()
	if ctrl.FontFile != "" {
		if data, err = os.ReadFile(ctrl.FontFile); err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
	}
	shaper, err := measure.NewGoTextMeasurer(data, ctrl.FontSize)
	if err != nil {
		return nil, err
	}
	widths, err := measure.NewCachedMeasurer(shaper, 0)
	if err != nil {
		return nil, err
	}
	sfnt, err := measure.NewSfntMeasurer(data, ctrl.FontSize)
	if err != nil {
		return nil, err
	}

	_, bg, labelColor := ctrl.Colors()
	sched := floaty.NewManualScheduler()
	s := &scene{
		ctrl:  ctrl,
		sched: sched,
		m:     floaty.NewMachine(sched, nil, ctrl.Options()...),
		label: raster.Label{Text: ctrl.Label, Face: sfnt.Face(), Color: labelColor},
		bg:    bg,
		sfnt:  sfnt,
	}
	s.layout = restingLayout(ctrl, widths.Width(ctrl.Label))
	s.m.SetLayout(s.layout)

	slog.Debug("scene loaded",
		"label", ctrl.Label,
		"size", ctrl.ContainerSize(),
		"text_width", s.layout.TextWidth,
		"alignment", ctrl.ResolvedAlignment().String())
	return s, nil
}

// restingLayout places the resting label inside the field on the side the
// gap opens on, vertically centered.
func restingLayout(ctrl *config.Control, textWidth float64) floaty.Layout {
	size := ctrl.ContainerSize()
	inset := ctrl.CornerRadius + ctrl.SidePadding + textWidth/2
	x := size.Width / 2
	switch a := ctrl.ResolvedAlignment(); a.Kind {
	case floaty.AlignKindLeading:
		x = inset + a.Offset
	case floaty.AlignKindTrailing:
		x = size.Width - inset - a.Offset
	}
	return floaty.Layout{
		ContainerSize:      size,
		TextWidth:          textWidth,
		RestingLabelCenter: floaty.Pt(x, size.Height/2),
	}
}

// frame paints the machine's current layers.
func (s *scene) frame() *raster.Canvas {
	c := raster.NewCanvas(s.ctrl.ContainerSize(), canvasMargin)
	c.Clear(s.bg)
	c.DrawLayers(s.m.Layers(), s.sched.Now(), &s.label)
	return c
}

func (s *scene) Close() error {
	return s.sfnt.Close()
}
