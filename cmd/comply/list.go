package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/comply/internal/config"
	"github.com/example/comply/internal/model"
)

var listCollections = []string{
	"jurisdictions", "regulations", "requirements", "solutions",
	"mappings", "zones", "enforcement",
}

func newListCommand(opts *config.Options, logLevel *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "list COLLECTION",
		Short:     "List dataset entities of one collection",
		Long:      "Lists entities of the given collection: " + strings.Join(listCollections, ", ") + ".",
		Args:      cobra.ExactArgs(1),
		ValidArgs: listCollections,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.Context(), opts, *logLevel, args[0])
		},
	}
	opts.BindFormatFlag(cmd.Flags())
	return cmd
}

func runList(ctx context.Context, opts *config.Options, logLevel, collection string) error {
	fw, err := loadFramework(ctx, opts, logLevel)
	if err != nil {
		return err
	}

	if opts.Format != config.FormatTable {
		v, err := listCollection(fw, collection)
		if err != nil {
			return err
		}
		return writeEncoded(opts.Format, v)
	}

	switch collection {
	case "jurisdictions":
		rows := make([][]string, 0, len(fw.Jurisdictions))
		for _, j := range fw.Jurisdictions {
			rows = append(rows, []string{j.ID, j.Name, string(j.Type), j.ParentID})
		}
		printTable([]string{"id", "name", "type", "parent"}, rows)
	case "regulations":
		rows := make([][]string, 0, len(fw.Regulations))
		for _, r := range fw.Regulations {
			rows = append(rows, []string{r.ID, r.ShortName, string(r.Status), r.JurisdictionID})
		}
		printTable([]string{"id", "short name", "status", "jurisdiction"}, rows)
	case "requirements":
		rows := make([][]string, 0, len(fw.Requirements))
		for _, r := range fw.Requirements {
			rows = append(rows, []string{r.ID, r.RegulationID, string(r.Severity), r.Category})
		}
		printTable([]string{"id", "regulation", "severity", "category"}, rows,
			columnBadge(2, severityBadge))
	case "solutions":
		rows := make([][]string, 0, len(fw.Solutions))
		for _, s := range fw.Solutions {
			rows = append(rows, []string{s.ID, s.Provider, string(s.Type), s.Name})
		}
		printTable([]string{"id", "provider", "type", "name"}, rows)
	case "mappings":
		rows := make([][]string, 0, len(fw.Mappings))
		for _, m := range fw.Mappings {
			rows = append(rows, []string{m.RequirementID, m.SolutionID, string(m.ComplianceLevel), string(m.Zone)})
		}
		printTable([]string{"requirement", "solution", "compliance", "zone"}, rows,
			columnBadge(2, complianceBadge), columnBadge(3, zoneBadge))
	case "zones":
		rows := make([][]string, 0, len(fw.ZoneAssignments))
		for _, za := range fw.ZoneAssignments {
			rows = append(rows, []string{za.SolutionID, za.JurisdictionID, string(za.Zone), za.DataCategory})
		}
		printTable([]string{"solution", "jurisdiction", "zone", "data category"}, rows,
			columnBadge(2, zoneBadge))
	case "enforcement":
		rows := make([][]string, 0, len(fw.EnforcementAssessments))
		for _, ea := range fw.EnforcementAssessments {
			rows = append(rows, []string{ea.JurisdictionID, ea.RegulationID, string(ea.Likelihood), ea.AssessmentDate})
		}
		printTable([]string{"jurisdiction", "regulation", "likelihood", "date"}, rows,
			columnBadge(2, likelihoodBadge))
	default:
		return fmt.Errorf("unknown collection %q (expected one of %s)", collection, strings.Join(listCollections, ", "))
	}
	return nil
}

// columnBadge applies badge to one column of a table.
func columnBadge(col int, badge func(string) *color.Color) cellColorer {
	return func(j int, val string) *color.Color {
		if j != col {
			return nil
		}
		return badge(val)
	}
}

func complianceBadge(val string) *color.Color {
	switch model.ComplianceLevel(val) {
	case model.ComplianceFull:
		return color.New(color.FgGreen)
	case model.CompliancePartial, model.ComplianceConditional:
		return color.New(color.FgYellow)
	case model.ComplianceNone:
		return color.New(color.FgRed)
	case model.ComplianceBanned:
		return color.New(color.FgRed, color.Bold)
	}
	return nil
}

func zoneBadge(val string) *color.Color {
	switch model.Zone(val) {
	case model.ZoneGreen:
		return color.New(color.FgGreen)
	case model.ZoneYellow:
		return color.New(color.FgYellow)
	case model.ZoneRed:
		return color.New(color.FgRed)
	}
	return nil
}

func severityBadge(val string) *color.Color {
	switch model.Severity(val) {
	case model.SeverityCritical:
		return color.New(color.FgRed, color.Bold)
	case model.SeverityHigh:
		return color.New(color.FgRed)
	case model.SeverityMedium:
		return color.New(color.FgYellow)
	case model.SeverityLow:
		return color.New(color.FgGreen)
	}
	return nil
}

func likelihoodBadge(val string) *color.Color {
	switch model.Likelihood(val) {
	case model.LikelihoodHigh:
		return color.New(color.FgRed)
	case model.LikelihoodMedium:
		return color.New(color.FgYellow)
	case model.LikelihoodLow:
		return color.New(color.FgGreen)
	}
	return nil
}

func listCollection(fw *model.Framework, collection string) (any, error) {
	switch collection {
	case "jurisdictions":
		return fw.Jurisdictions, nil
	case "regulations":
		return fw.Regulations, nil
	case "requirements":
		return fw.Requirements, nil
	case "solutions":
		return fw.Solutions, nil
	case "mappings":
		return fw.Mappings, nil
	case "zones":
		return fw.ZoneAssignments, nil
	case "enforcement":
		return fw.EnforcementAssessments, nil
	}
	return nil, fmt.Errorf("unknown collection %q (expected one of %s)", collection, strings.Join(listCollections, ", "))
}
