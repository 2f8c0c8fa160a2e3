// output.go holds the shared dataset-loading and output helpers the
// subcommands lean on.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/example/comply/internal/config"
	"github.com/example/comply/internal/dataset"
	"github.com/example/comply/internal/logging"
	"github.com/example/comply/internal/model"
)

// newLoader builds a logger and a dataset loader for the configured source.
func newLoader(opts *config.Options, logLevel string) (*dataset.Loader, *zap.Logger, error) {
	log, err := logging.New(logLevel)
	if err != nil {
		return nil, nil, err
	}
	return dataset.NewLoader(dataset.Open(opts.Data), log), log, nil
}

// loadFramework loads the framework from the configured source.
func loadFramework(ctx context.Context, opts *config.Options, logLevel string) (*model.Framework, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	loader, log, err := newLoader(opts, logLevel)
	if err != nil {
		return nil, err
	}
	defer log.Sync()
	return loader.Load(ctx)
}

// writeEncoded renders v as JSON or YAML on stdout.
func writeEncoded(format string, v any) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// cellColorer picks a color for a cell, or nil for plain text. Cells are
// padded before coloring so escape codes never skew the alignment.
type cellColorer func(col int, val string) *color.Color

// printTable writes an aligned fixed-width table for the given headers and
// rows.
func printTable(headers []string, rows [][]string, colorers ...cellColorer) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for j, col := range row {
			if j < len(widths) && len(col) > widths[j] {
				widths[j] = len(col)
			}
		}
	}
	for i, h := range headers {
		fmt.Printf("%-*s  ", widths[i], strings.ToUpper(h))
	}
	fmt.Println()
	for i := range headers {
		fmt.Printf("%s  ", strings.Repeat("-", widths[i]))
	}
	fmt.Println()
	for _, row := range rows {
		for j := range headers {
			val := ""
			if j < len(row) {
				val = row[j]
			}
			cell := fmt.Sprintf("%-*s", widths[j], val)
			for _, colorer := range colorers {
				if c := colorer(j, val); c != nil {
					cell = c.Sprint(cell)
					break
				}
			}
			fmt.Printf("%s  ", cell)
		}
		fmt.Println()
	}
}
