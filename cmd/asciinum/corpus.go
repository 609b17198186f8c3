package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opal-lang/asciinum/core/radix"
	"github.com/opal-lang/asciinum/internal/logging"
)

func (c *cli) newCorpusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "corpus [RADIXOPT]",
		Short: "Print the digit alphabet and radix for a RADIXOPT",
		Args:  maxOneArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.resolveConfig(cmd, args)
			if err != nil {
				return err
			}
			conv, err := c.converter(cfg, logging.New(c.stderr, cfg.Debug, c.useColor))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "selector: %s\n", radix.MustParseSettings(cfg.Radix).Selector())
			_, _ = fmt.Fprintf(out, "radix:    %d\n", conv.Radix())
			_, _ = fmt.Fprintf(out, "corpus:   %s\n", conv.Corpus())
			return nil
		},
	}
}

func (c *cli) newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List named RADIXOPT presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%-16s %-8s %s\n", "NAME", "SELECTOR", "RADIX")
			for _, p := range radix.Presets() {
				_, _ = fmt.Fprintf(out, "%-16s %-8s %d\n", p.Name, p.Selector, p.Settings().Corpus().Radix())
			}
			return nil
		},
	}
}
