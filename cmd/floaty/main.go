// Command floaty renders floating-label borders to PNG.
//
// Usage:
//
//	floaty render --config control.yaml --state floating --out border.png
//	floaty animate --config control.yaml --fps 60 --out-dir frames/
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/floaty"
)

var (
	version = "0.1.0"

	flagConfig  string
	flagEnvFile string
	flagVerbose bool

	renderState string
	renderOut   string

	animateFPS    int
	animateOutDir string
	animateHold   float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "floaty",
	Short: "Render floating-label borders",
	Long: `floaty draws the outlined border of a floating-label text field.

The control is described by a YAML file (see --config). Values can be
overridden with FLOATY_* environment variables or a .env file.

Examples:
  floaty render --state resting --out resting.png
  floaty render --config email.yaml --state floating --out floating.png
  floaty animate --config email.yaml --fps 60 --out-dir frames/`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if flagVerbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
		floaty.SetLogger(logger)
	},
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the settled border in one state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(renderState, renderOut)
	},
}

var animateCmd = &cobra.Command{
	Use:   "animate",
	Short: "Render a resting → floating → resting transition as PNG frames",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnimate(animateFPS, animateOutDir, animateHold)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Control description (YAML); defaults are used when empty")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", "", "Load FLOATY_* overrides from this file instead of .env")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	renderCmd.Flags().StringVarP(&renderState, "state", "s", "floating", "Label state (resting/floating)")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "border.png", "Output PNG file")

	animateCmd.Flags().IntVar(&animateFPS, "fps", 60, "Frames per second")
	animateCmd.Flags().StringVarP(&animateOutDir, "out-dir", "o", "frames", "Output directory")
	animateCmd.Flags().Float64Var(&animateHold, "hold", 0.25, "Seconds to hold between transitions")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(animateCmd)
}
