// Package floaty computes the geometry and animation choreography of a
// floating-label form control.
//
// # Overview
//
// A floating-label control draws a rounded-rectangle border around an input.
// While the input is empty and unfocused the label rests inside the field.
// Once it has content or focus the label floats onto the top edge, scaled
// down, and the border opens a gap around it.
//
// floaty is toolkit independent. It never draws: it computes paths and
// timings, and a host (a GUI toolkit, a game engine, the raster package in this
// module) turns them into pixels.
//
// # Quick Start
//
//	import "github.com/gogpu/floaty"
//
//	cfg := floaty.GeometryConfig{
//	    ContainerSize: floaty.Sz(200, 48),
//	    CornerRadius:  16,
//	    TextSpan:      60,
//	    Alignment:     floaty.AlignCenter(),
//	    SidePadding:   4,
//	    DrawGap:       true,
//	}
//	border := floaty.BuildBorder(cfg)              // gapped outline
//	edges := floaty.BuildGapAnimation(cfg, true)   // gap-opening strokes
//
// # Animation
//
// Machine sequences a transition: it hands the host two edge strokes to
// reveal (painted in the background color to open the gap, in the border
// color to close it), a label transition to run concurrently, and, once the
// reveal has settled, the new static border. Time comes from a Scheduler;
// ManualScheduler suits frame loops and tests, TimerScheduler uses wall
// clock timers.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at the container's top-left
//   - X increases right
//   - Y increases down
//
// # Logging
//
// floaty is silent by default; see SetLogger.
package floaty
