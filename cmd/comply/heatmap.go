package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/comply/internal/config"
	"github.com/example/comply/internal/heatmap"
	"github.com/example/comply/internal/model"
	"github.com/example/comply/internal/state"
)

func newHeatmapCommand(opts *config.Options, logLevel *string) *cobra.Command {
	var jurisdictions, zones []string

	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Render the requirement/solution compliance matrix",
		Long: `Renders the compliance heatmap in the terminal: requirements as rows,
solutions as columns, one compliance icon per assessed pair. Cells with no
assessment show '?'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeatmap(cmd.Context(), opts, *logLevel, jurisdictions, zones)
		},
	}

	cmd.Flags().StringSliceVar(&jurisdictions, "jurisdictions", nil, "Only show mappings scoped to these jurisdictions")
	cmd.Flags().StringSliceVar(&zones, "zones", nil, "Only show mappings in these zones (green, yellow, red; default all)")
	return cmd
}

func runHeatmap(ctx context.Context, opts *config.Options, logLevel string, jurisdictions, zones []string) error {
	fw, err := loadFramework(ctx, opts, logLevel)
	if err != nil {
		return err
	}

	if len(zones) == 0 {
		zones = []string{string(model.ZoneGreen), string(model.ZoneYellow), string(model.ZoneRed)}
	}
	visible := state.VisibleMappings(fw.Mappings,
		state.NewSelection(jurisdictions), state.NewSelection(zones))

	m := heatmap.Build(visible, fw.Requirements, fw.Solutions, fw.Regulations, nil)
	if len(m.Rows) == 0 {
		fmt.Println("No mappings matched the supplied filters.")
		return nil
	}

	printMatrix(m)
	return nil
}

func printMatrix(m heatmap.Matrix) {
	labelWidth := len("CONTROL")
	for _, row := range m.Rows {
		if len(row.ControlDisplay) > labelWidth {
			labelWidth = len(row.ControlDisplay)
		}
	}

	colWidths := make([]int, len(m.Columns))
	fmt.Printf("%-*s", labelWidth, "CONTROL")
	for i, col := range m.Columns {
		colWidths[i] = len(col.ShortName)
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
		fmt.Printf("  %-*s", colWidths[i], col.ShortName)
	}
	fmt.Println()
	fmt.Println(strings.Repeat("-", tableWidth(labelWidth, colWidths)))

	for _, row := range m.Rows {
		fmt.Printf("%-*s", labelWidth, row.ControlDisplay)
		for i, cell := range row.Cells {
			icon := cell.Icon
			if icon == "" {
				icon = "?"
			}
			// Icons are single runes; pad manually since %-*s counts bytes.
			pad := strings.Repeat(" ", colWidths[i]-1)
			fmt.Printf("  %s%s", cellColor(cell).Sprint(icon), pad)
		}
		fmt.Printf("  %s\n", row.Name)
	}

	fmt.Println()
	fmt.Printf("Legend: %s compliant  %s partial  %s conditional  %s non-compliant  %s banned  ? unknown\n",
		color.New(color.FgGreen).Sprint("✓"),
		color.New(color.FgYellow).Sprint("◐"),
		color.New(color.FgCyan).Sprint("?"),
		color.New(color.FgRed).Sprint("✗"),
		color.New(color.FgRed, color.Bold).Sprint("⊘"))
}

func tableWidth(labelWidth int, colWidths []int) int {
	total := labelWidth
	for _, w := range colWidths {
		total += 2 + w
	}
	return total
}

func cellColor(cell heatmap.Cell) *color.Color {
	if !cell.Known {
		return color.New(color.Faint)
	}
	switch cell.Level {
	case model.ComplianceFull:
		return color.New(color.FgGreen)
	case model.CompliancePartial:
		return color.New(color.FgYellow)
	case model.ComplianceConditional:
		return color.New(color.FgCyan)
	case model.ComplianceNone:
		return color.New(color.FgRed)
	case model.ComplianceBanned:
		return color.New(color.FgRed, color.Bold)
	}
	return color.New(color.Faint)
}
