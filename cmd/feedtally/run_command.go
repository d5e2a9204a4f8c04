package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"feedtally/internal/batch"
	"feedtally/internal/config"
	"feedtally/internal/report"
)

type runOptions struct {
	table bool
	color string
}

func (o *runOptions) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.table, "table", false, "Print a summary table after the run")
	cmd.Flags().StringVar(&o.color, "color", "", "Colour output: auto, always, or never")
}

func newRunCommand(ctx *commandContext) *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run [dir]",
		Short: "Parse every document in a directory and total the items",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, ctx, args, opts)
		},
	}
	opts.bind(cmd)
	return cmd
}

func runBatch(cmd *cobra.Command, ctx *commandContext, args []string, opts runOptions) error {
	loaded, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	cfg := *loaded

	if len(args) == 1 {
		dir, err := config.ExpandPath(strings.TrimSpace(args[0]))
		if err != nil {
			return fmt.Errorf("resolve input directory: %w", err)
		}
		cfg.Paths.InputDir = dir
	}
	if opts.table {
		cfg.Report.Table = true
	}
	if opts.color != "" {
		mode := strings.ToLower(strings.TrimSpace(opts.color))
		switch mode {
		case config.ColorAuto, config.ColorAlways, config.ColorNever:
			cfg.Report.Color = mode
		default:
			return fmt.Errorf("--color: unsupported value %q", opts.color)
		}
	}

	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	reporter := report.New(out, report.ColorEnabled(out, cfg.Report.Color))
	coordinator, err := batch.NewCoordinator(&cfg, logger, reporter)
	if err != nil {
		return err
	}
	_, err = coordinator.Run(cmd.Context())
	return err
}
