package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/comply/internal/config"
)

func newLoadCommand(opts *config.Options, logLevel *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load a dataset and print its statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(cmd.Context(), opts, *logLevel)
		},
	}
	return cmd
}

func runLoad(ctx context.Context, opts *config.Options, logLevel string) error {
	fw, err := loadFramework(ctx, opts, logLevel)
	if err != nil {
		return err
	}

	fmt.Printf("Compliance Framework: %s (v%s)\n", fw.Metadata.Name, fw.Metadata.Version)
	if fw.Metadata.Description != "" {
		fmt.Printf("Description: %s\n", fw.Metadata.Description)
	}
	fmt.Println()
	fmt.Println("Statistics:")
	fmt.Printf("  Jurisdictions:    %d\n", len(fw.Jurisdictions))
	fmt.Printf("  Regulations:      %d\n", len(fw.Regulations))
	fmt.Printf("  Requirements:     %d\n", len(fw.Requirements))
	fmt.Printf("  Solutions:        %d\n", len(fw.Solutions))
	fmt.Printf("  Zone Assignments: %d\n", len(fw.ZoneAssignments))
	fmt.Printf("  Mappings:         %d\n", len(fw.Mappings))
	fmt.Printf("  Enforcement:      %d\n", len(fw.EnforcementAssessments))
	return nil
}
