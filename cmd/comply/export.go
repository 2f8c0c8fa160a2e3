package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/comply/internal/config"
	"github.com/example/comply/internal/sqlitexport"
)

func newExportCommand(opts *config.Options, logLevel *string) *cobra.Command {
	output := "framework.db"

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the dataset into a SQLite database",
		Long: `Writes the whole dataset into a SQLite file, one table per collection,
so it can be queried with plain SQL. Re-exporting replaces the previous
snapshot.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), opts, *logLevel, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", output, "SQLite file to write")
	return cmd
}

func runExport(ctx context.Context, opts *config.Options, logLevel, output string) error {
	fw, err := loadFramework(ctx, opts, logLevel)
	if err != nil {
		return err
	}

	exp, err := sqlitexport.New(output)
	if err != nil {
		return err
	}
	defer exp.Close()

	if err := exp.Export(ctx, fw); err != nil {
		return err
	}
	fmt.Printf("Exported %s (v%s) to %s\n", fw.Metadata.Name, fw.Metadata.Version, output)
	return nil
}
