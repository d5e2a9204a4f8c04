package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"feedtally/internal/feedcheck"
	"feedtally/internal/report"
)

func newVerifyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file>...",
		Short: "Compare streaming item counts with gofeed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(args))
			mismatches := 0
			for _, path := range args {
				cmp, err := feedcheck.CompareFile(path, cfg.Parser)
				if err != nil {
					return err
				}
				if !cmp.Match() {
					mismatches++
				}
				rows = append(rows, verifyRow(cmp))
			}

			headers := []string{"Document", "Title", "Stream", "Live", "gofeed", "Type", "Result"}
			aligns := []report.Alignment{
				report.AlignLeft, report.AlignLeft, report.AlignRight, report.AlignRight,
				report.AlignRight, report.AlignLeft, report.AlignLeft,
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.RenderTable(headers, rows, aligns...))

			if mismatches > 0 {
				return fmt.Errorf("verify: %d of %d documents disagree", mismatches, len(args))
			}
			return nil
		},
	}
}

func verifyRow(cmp feedcheck.Comparison) []string {
	stream := strconv.Itoa(cmp.Stream.Items)
	if cmp.StreamErr != nil {
		stream = "error"
	}
	gofeed := strconv.Itoa(cmp.GofeedItems)
	if cmp.GofeedErr != nil {
		gofeed = "error"
	}

	result := "match"
	switch {
	case cmp.StreamErr != nil:
		result = cmp.StreamErr.Error()
	case cmp.GofeedErr != nil:
		result = "gofeed: " + cmp.GofeedErr.Error()
	case !cmp.Match():
		result = "count mismatch"
	}

	return []string{
		filepath.Base(cmp.Document),
		cmp.Stream.Title,
		stream,
		strconv.Itoa(cmp.Stream.LiveItems),
		gofeed,
		cmp.GofeedType,
		result,
	}
}
