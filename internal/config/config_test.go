package config

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestDefaults(t *testing.T) {
	opts := NewOptions()
	if opts.Data != "." || opts.Format != FormatTable {
		t.Fatalf("unexpected defaults: %+v", opts)
	}
	if err := opts.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestValidateFormat(t *testing.T) {
	cases := []struct {
		format string
		ok     bool
	}{
		{FormatTable, true},
		{FormatJSON, true},
		{FormatYAML, true},
		{"xml", false},
		{"", false},
	}
	for _, tc := range cases {
		opts := NewOptions()
		opts.Format = tc.format
		err := opts.Validate()
		if tc.ok && err != nil {
			t.Fatalf("format %q: unexpected error %v", tc.format, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("format %q: expected error", tc.format)
		}
	}
}

func TestValidateEmptyData(t *testing.T) {
	opts := NewOptions()
	opts.Data = ""
	if err := opts.Validate(); err == nil {
		t.Fatal("empty data location should fail validation")
	}
}

func TestBindFlags(t *testing.T) {
	opts := NewOptions()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	opts.BindDataFlag(fs)
	opts.BindFormatFlag(fs)
	opts.BindJurisdictionsFlag(fs)

	if err := fs.Parse([]string{"--data", "/tmp/fw", "--format", "json", "--jurisdictions", "EU,DE"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opts.Data != "/tmp/fw" || opts.Format != FormatJSON {
		t.Fatalf("flags not bound: %+v", opts)
	}
	if len(opts.Jurisdictions) != 2 || opts.Jurisdictions[0] != "EU" {
		t.Fatalf("jurisdictions not bound: %v", opts.Jurisdictions)
	}
}
