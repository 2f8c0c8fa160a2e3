package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/comply/internal/config"
	"github.com/example/comply/internal/model"
)

func newQueryCommand(opts *config.Options, logLevel *string) *cobra.Command {
	var solutionID, requirementID, jurisdictionID string

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query mappings for a solution or requirement",
		Long: `Prints every mapping attached to the given solution or requirement,
optionally narrowed to one jurisdiction. Mappings without an explicit
jurisdiction list apply everywhere and always pass the jurisdiction filter.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd.Context(), opts, *logLevel, solutionID, requirementID, jurisdictionID)
		},
	}

	cmd.Flags().StringVarP(&solutionID, "solution", "s", "", "Solution ID to query")
	cmd.Flags().StringVarP(&requirementID, "requirement", "r", "", "Requirement ID to query")
	cmd.Flags().StringVarP(&jurisdictionID, "jurisdiction", "j", "", "Filter by jurisdiction ID")
	opts.BindFormatFlag(cmd.Flags())
	return cmd
}

func runQuery(ctx context.Context, opts *config.Options, logLevel, solutionID, requirementID, jurisdictionID string) error {
	if solutionID == "" && requirementID == "" {
		return errors.New("either --solution or --requirement is required")
	}

	fw, err := loadFramework(ctx, opts, logLevel)
	if err != nil {
		return err
	}

	var mappings []model.RequirementMapping
	if solutionID != "" {
		mappings = fw.MappingsForSolution(solutionID)
	} else {
		mappings = fw.MappingsForRequirement(requirementID)
	}

	if jurisdictionID != "" {
		filtered := mappings[:0:0]
		for _, m := range mappings {
			if m.AppliesToJurisdiction(jurisdictionID) {
				filtered = append(filtered, m)
			}
		}
		mappings = filtered
	}

	if opts.Format != config.FormatTable {
		return writeEncoded(opts.Format, mappings)
	}

	fmt.Printf("Found %d mappings\n\n", len(mappings))
	for _, m := range mappings {
		fmt.Printf("ID: %s\n", m.ID)
		fmt.Printf("  Requirement: %s\n", m.RequirementID)
		fmt.Printf("  Solution:    %s\n", m.SolutionID)
		fmt.Printf("  Compliance:  %s\n", m.ComplianceLevel)
		if m.Zone != "" {
			fmt.Printf("  Zone:        %s\n", m.Zone)
		}
		if len(m.JurisdictionIDs) > 0 {
			fmt.Printf("  Jurisdictions: %s\n", strings.Join(m.JurisdictionIDs, ", "))
		}
		if m.Notes != "" {
			fmt.Printf("  Notes:       %s\n", m.Notes)
		}
		fmt.Println()
	}
	return nil
}
