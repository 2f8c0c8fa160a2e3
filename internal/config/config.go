// Package config defines the flag plumbing shared by comply commands,
// translating Cobra/Viper flag values into a strongly typed struct the
// dataset loader and renderers consume.
package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Output formats accepted by the reporting commands.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Options holds the CLI configuration shared across commands.
type Options struct {
	// Data is the dataset location: a directory of JSON files or an
	// http(s) base URL.
	Data string
	// Format selects the output rendering for reporting commands.
	Format string
	// Jurisdictions overrides the jurisdiction order used by coverage
	// reports; empty means the dataset's own order.
	Jurisdictions []string
}

// NewOptions returns options with defaults applied.
func NewOptions() *Options {
	return &Options{
		Data:   ".",
		Format: FormatTable,
	}
}

// BindDataFlag registers the dataset location flag.
func (o *Options) BindDataFlag(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Data, "data", "d", o.Data, "Dataset location: directory of JSON files or http(s) base URL")
}

// BindFormatFlag registers the output format flag.
func (o *Options) BindFormatFlag(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Format, "format", "f", o.Format, "Output format (table, json, yaml)")
}

// BindJurisdictionsFlag registers the coverage jurisdiction order flag.
func (o *Options) BindJurisdictionsFlag(fs *pflag.FlagSet) {
	fs.StringSliceVar(&o.Jurisdictions, "jurisdictions", nil, "Jurisdictions to report on, in order (default: all in dataset)")
}

// Validate rejects unsupported option values.
func (o *Options) Validate() error {
	switch o.Format {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown output format %q (expected table, json, or yaml)", o.Format)
	}
	if o.Data == "" {
		return fmt.Errorf("dataset location cannot be empty")
	}
	return nil
}
