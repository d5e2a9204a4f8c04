package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"feedtally/internal/feedcheck"
	"feedtally/internal/xmlevent"
)

func newAttrsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "attrs <file>",
		Short: "List the attributes of every element in a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open document: %w", err)
			}
			defer file.Close()

			elems, err := feedcheck.Attributes(file,
				xmlevent.WithCharsetFallback(cfg.Parser.CharsetFallback),
				xmlevent.WithHTMLEntities(cfg.Parser.HTMLEntities),
			)
			out := cmd.OutOrStdout()
			for _, elem := range elems {
				fmt.Fprintln(out, elem.String())
			}
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return nil
		},
	}
}
