package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/comply/internal/config"
	"github.com/example/comply/internal/report"
)

func newValidateCommand(opts *config.Options, logLevel *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the dataset for dangling cross-references",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), opts, *logLevel)
		},
	}
	return cmd
}

func runValidate(ctx context.Context, opts *config.Options, logLevel string) error {
	fw, err := loadFramework(ctx, opts, logLevel)
	if err != nil {
		return err
	}

	errs := report.CheckReferences(fw)
	if len(errs) == 0 {
		color.New(color.FgGreen).Println("Validation passed")
		return nil
	}

	fmt.Println("Validation errors found:")
	for _, e := range errs {
		color.New(color.FgRed).Printf("  - %s\n", e)
	}
	return fmt.Errorf("%d reference error(s)", len(errs))
}
