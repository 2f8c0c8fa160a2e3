package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/comply/internal/config"
	"github.com/example/comply/internal/report"
)

func newCoverageCommand(opts *config.Options, logLevel *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coverage",
		Short: "Analyze mapping coverage and data completeness",
		Long: `Reports how much of the requirement/solution matrix has been assessed
per jurisdiction, how much of it carries evidence, and where the gaps are.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCoverage(cmd.Context(), opts, *logLevel)
		},
	}
	opts.BindFormatFlag(cmd.Flags())
	opts.BindJurisdictionsFlag(cmd.Flags())
	return cmd
}

func runCoverage(ctx context.Context, opts *config.Options, logLevel string) error {
	fw, err := loadFramework(ctx, opts, logLevel)
	if err != nil {
		return err
	}

	stats := report.Coverage(fw, opts.Jurisdictions)
	if opts.Format != config.FormatTable {
		return writeEncoded(opts.Format, stats)
	}
	report.WriteReport(os.Stdout, stats)
	return nil
}
