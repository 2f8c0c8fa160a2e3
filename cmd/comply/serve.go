package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/comply/internal/config"
	"github.com/example/comply/internal/model"
	"github.com/example/comply/internal/server"
	"github.com/example/comply/internal/state"
)

func newServeCommand(opts *config.Options, logLevel *string) *cobra.Command {
	listen := ":8080"

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive compliance viewer",
		Long: `Serves the dataset as an interactive web viewer with filterable tables,
a requirement/solution heatmap, and zone classification views. The dataset
can be reloaded from the source without restarting.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts, *logLevel, listen)
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", listen, "Address to serve the viewer on")
	return cmd
}

func runServe(ctx context.Context, opts *config.Options, logLevel, listen string) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	loader, log, err := newLoader(opts, logLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	st := state.New()
	fw, ov, err := loader.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("initial dataset load: %w", err)
	}
	st.SetDataset(fw, ov)

	reload := func(ctx context.Context) (*model.Framework, *model.ExecutiveOverview, error) {
		return loader.LoadAll(ctx)
	}
	srv, err := server.New(listen, st, reload, log)
	if err != nil {
		return err
	}
	log.Info("viewer listening", zap.String("addr", listen), zap.String("data", opts.Data))
	return srv.Run(ctx)
}
