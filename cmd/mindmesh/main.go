package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arclight-dev/mindmesh/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		fps       int
		agents    int
		seed      int64
		colorMode string
		audioOn   bool
		logFile   string
	)

	cmd := &cobra.Command{
		Use:   "mindmesh",
		Short: "Terminal visualization of multi-agent cognitive activity",
		Long: `mindmesh renders a live field of cognitive agents in the terminal:
glyphs colored by phase, flow lines between collaborating agents, and
particle-style emitter effects fired by cognition events.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// Flags the user actually set override the environment
			if cmd.Flags().Changed("fps") {
				cfg.FPS = fps
			}
			if cmd.Flags().Changed("agents") {
				cfg.Agents = agents
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if cmd.Flags().Changed("color") {
				cfg.ColorMode = colorMode
			}
			if cmd.Flags().Changed("audio") {
				cfg.Audio = audioOn
			}
			if cmd.Flags().Changed("log-file") {
				cfg.LogFile = logFile
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return run(cfg)
		},
	}

	cmd.Flags().IntVar(&fps, "fps", 30, "render tick rate")
	cmd.Flags().IntVar(&agents, "agents", 8, "number of simulated agents")
	cmd.Flags().Int64Var(&seed, "seed", 0, "demo feed seed (0 = wall clock)")
	cmd.Flags().StringVar(&colorMode, "color", "auto", "color mode: auto, truecolor, 256")
	cmd.Flags().BoolVar(&audioOn, "audio", false, "enable synthesized event cues")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write structured logs to this file")

	return cmd
}
