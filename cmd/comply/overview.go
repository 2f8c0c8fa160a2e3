package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/example/comply/internal/config"
	"github.com/example/comply/internal/dataset"
	"github.com/example/comply/internal/model"
)

func newOverviewCommand(opts *config.Options, logLevel *string) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Render the executive overview in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOverview(cmd.Context(), opts, *logLevel, plain)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print raw markdown without terminal styling")
	return cmd
}

func runOverview(ctx context.Context, opts *config.Options, logLevel string, plain bool) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	loader, log, err := newLoader(opts, logLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	ov, err := loader.LoadOverview(ctx)
	if err != nil {
		return err
	}
	if ov == nil {
		fmt.Printf("No executive overview found in %s (expected %s).\n", opts.Data, dataset.FileOverview)
		return nil
	}

	md := overviewMarkdown(ov)
	if plain {
		fmt.Print(md)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("build markdown renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("render overview: %w", err)
	}
	fmt.Print(out)
	return nil
}

// overviewMarkdown flattens the overview document into markdown.
func overviewMarkdown(ov *model.ExecutiveOverview) string {
	var sb strings.Builder

	title := ov.Metadata.Title
	if title == "" {
		title = "Executive Overview"
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)
	if ov.Metadata.LastUpdated != "" {
		fmt.Fprintf(&sb, "_Version %s, updated %s_\n\n", ov.Metadata.Version, ov.Metadata.LastUpdated)
	}
	if ov.Metadata.Scope != "" {
		fmt.Fprintf(&sb, "%s\n\n", ov.Metadata.Scope)
	}

	if len(ov.KeyTakeaways) > 0 {
		sb.WriteString("## Key Takeaways\n\n")
		for _, t := range ov.KeyTakeaways {
			fmt.Fprintf(&sb, "- %s\n", t)
		}
		sb.WriteString("\n")
	}

	for _, seg := range ov.Segments {
		fmt.Fprintf(&sb, "## %s\n\n", seg.Name)
		if seg.RiskLevel != "" {
			fmt.Fprintf(&sb, "**Risk:** %s", seg.RiskLevel)
			if len(seg.Jurisdictions) > 0 {
				fmt.Fprintf(&sb, " | **Jurisdictions:** %s", strings.Join(seg.Jurisdictions, ", "))
			}
			sb.WriteString("\n\n")
		}
		if seg.Summary != "" {
			fmt.Fprintf(&sb, "%s\n\n", seg.Summary)
		}
		if len(seg.KeyRequirements) > 0 {
			sb.WriteString("| Requirement | Priority | Status |\n|---|---|---|\n")
			for _, kr := range seg.KeyRequirements {
				fmt.Fprintf(&sb, "| %s | %s | %s |\n", kr.Name, kr.Priority, kr.Status)
			}
			sb.WriteString("\n")
		}
	}

	if rc := ov.RegulatoryContext; rc != nil {
		sb.WriteString("## Regulatory Context\n\n")
		if rc.Overview != "" {
			fmt.Fprintf(&sb, "%s\n\n", rc.Overview)
		}
		for _, d := range rc.KeyDrivers {
			fmt.Fprintf(&sb, "- **%s**: %s\n", d.Name, d.Description)
		}
		if len(rc.KeyDrivers) > 0 {
			sb.WriteString("\n")
		}
	}

	if out := ov.Outlook; out != nil {
		sb.WriteString("## Outlook\n\n")
		if out.Summary != "" {
			fmt.Fprintf(&sb, "%s\n\n", out.Summary)
		}
		periods := []struct {
			name   string
			period *model.OutlookPeriod
		}{
			{"Short term", out.ShortTerm},
			{"Medium term", out.MediumTerm},
			{"Long term", out.LongTerm},
		}
		for _, p := range periods {
			if p.period == nil {
				continue
			}
			label := p.name
			if p.period.Timeframe != "" {
				label = fmt.Sprintf("%s (%s)", p.name, p.period.Timeframe)
			}
			fmt.Fprintf(&sb, "### %s\n\n", label)
			for _, dev := range p.period.Developments {
				fmt.Fprintf(&sb, "- %s\n", dev)
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
