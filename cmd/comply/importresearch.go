package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/comply/internal/config"
	"github.com/example/comply/internal/dataset"
	"github.com/example/comply/internal/model"
	"github.com/example/comply/internal/research"
)

func newImportResearchCommand(opts *config.Options, logLevel *string) *cobra.Command {
	var (
		input    string
		output   string
		analyze  bool
		validate bool
		merge    bool
	)

	cmd := &cobra.Command{
		Use:   "import-research",
		Short: "Convert researched findings into requirement mappings",
		Long: `Reads a research submission file and converts its findings into the
mappings format. With --analyze it prints a summary of the submission,
with --validate it checks the findings against the dataset, and with
--merge it folds them into the dataset's existing mappings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImportResearch(cmd.Context(), opts, *logLevel, input, output, analyze, validate, merge)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Research submission JSON file (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Mappings JSON file to write (default: stdout)")
	cmd.Flags().BoolVar(&analyze, "analyze", false, "Print an analysis report instead of mappings")
	cmd.Flags().BoolVar(&validate, "validate", false, "Validate findings against the dataset")
	cmd.Flags().BoolVar(&merge, "merge", false, "Merge findings into the dataset's existing mappings")
	opts.BindFormatFlag(cmd.Flags())
	cobra.CheckErr(cmd.MarkFlagRequired("input"))
	return cmd
}

func runImportResearch(ctx context.Context, opts *config.Options, logLevel, input, output string, analyze, validate, merge bool) error {
	in, err := research.LoadInput(input)
	if err != nil {
		return err
	}

	if analyze {
		analysis := in.Analyze()
		if opts.Format != config.FormatTable {
			return writeEncoded(opts.Format, analysis)
		}
		analysis.WriteReport(os.Stdout)
		return nil
	}

	if validate {
		fw, err := loadFramework(ctx, opts, logLevel)
		if err != nil {
			return err
		}
		result := in.Validate(fw)
		if opts.Format != config.FormatTable {
			if err := writeEncoded(opts.Format, result); err != nil {
				return err
			}
		} else {
			printValidationResult(result)
		}
		if !result.Valid {
			return fmt.Errorf("%d finding(s) failed validation", len(result.Errors))
		}
		return nil
	}

	if merge {
		fw, err := loadFramework(ctx, opts, logLevel)
		if err != nil {
			return err
		}
		result := in.Merge(fw.Mappings)

		fmt.Fprintln(os.Stderr, "Merge Summary:")
		fmt.Fprintf(os.Stderr, "  New mappings:       %d\n", len(result.New))
		fmt.Fprintf(os.Stderr, "  Updated mappings:   %d\n", len(result.Updated))
		fmt.Fprintf(os.Stderr, "  Unchanged mappings: %d\n", len(result.Unchanged))

		all := make([]model.RequirementMapping, 0, len(result.New)+len(result.Updated)+len(result.Unchanged))
		all = append(all, result.Unchanged...)
		all = append(all, result.Updated...)
		all = append(all, result.New...)
		return emitMappings(opts, output, all)
	}

	mappings := in.ToMappings()
	if output == "" && opts.Format == config.FormatTable {
		fmt.Println("Research Import Summary")
		fmt.Println("=======================")
		fmt.Printf("Research Date: %s\n", in.Metadata.ResearchDate)
		fmt.Printf("Researcher:    %s\n", in.Metadata.Researcher)
		fmt.Printf("Findings:      %d\n", len(in.Findings))
		fmt.Println()
		fmt.Println("Use --format json to print the mappings, or --output to write them to a file.")
		return nil
	}
	return emitMappings(opts, output, mappings)
}

func emitMappings(opts *config.Options, output string, mappings []model.RequirementMapping) error {
	if output != "" {
		if err := dataset.WriteJSON(output, mappings); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %d mappings to %s\n", len(mappings), output)
		return nil
	}
	if opts.Format == config.FormatTable {
		return errors.New("mappings need --output or a structured --format")
	}
	return writeEncoded(opts.Format, mappings)
}

func printValidationResult(result *research.ValidationResult) {
	if result.Valid {
		fmt.Println("Validation PASSED")
	} else {
		fmt.Println("Validation FAILED")
	}
	fmt.Printf("Checked: %d findings\n\n", result.TotalChecked)

	if len(result.Errors) > 0 {
		fmt.Printf("Errors (%d):\n", len(result.Errors))
		for _, e := range result.Errors {
			fmt.Printf("  [%d] %s: %s", e.Index, e.Field, e.Message)
			if e.Value != "" {
				fmt.Printf(" (value: %s)", e.Value)
			}
			fmt.Println()
		}
		fmt.Println()
	}

	if len(result.Warnings) > 0 {
		fmt.Printf("Warnings (%d):\n", len(result.Warnings))
		counts := make(map[string]int)
		var order []string
		for _, w := range result.Warnings {
			key := fmt.Sprintf("%s: %s", w.Field, w.Message)
			if counts[key] == 0 {
				order = append(order, key)
			}
			counts[key]++
		}
		for _, msg := range order {
			fmt.Printf("  %s (x%d)\n", msg, counts[msg])
		}
	}
}
