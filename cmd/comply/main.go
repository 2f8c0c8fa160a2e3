// main.go bootstraps comply: it builds the root Cobra command and executes
// with a signal-aware context.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/example/comply/internal/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := newRootCommand()
	err := rootCmd.ExecuteContext(ctx)
	handleError(err)
	if err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := config.NewOptions()
	logLevel := "info"

	cmd := &cobra.Command{
		Use:           "comply",
		Short:         "Compliance framework dataset toolkit and viewer",
		Long:          "comply loads compliance framework datasets, answers mapping and coverage queries, and serves an interactive heatmap viewer.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	opts.BindDataFlag(cmd.PersistentFlags())
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "Log level for comply output (debug, info, warn, error)")

	serveCmd := newServeCommand(opts, &logLevel)
	loadCmd := newLoadCommand(opts, &logLevel)
	listCmd := newListCommand(opts, &logLevel)
	queryCmd := newQueryCommand(opts, &logLevel)
	validateCmd := newValidateCommand(opts, &logLevel)
	coverageCmd := newCoverageCommand(opts, &logLevel)
	heatmapCmd := newHeatmapCommand(opts, &logLevel)
	overviewCmd := newOverviewCommand(opts, &logLevel)
	exportCmd := newExportCommand(opts, &logLevel)
	importCmd := newImportResearchCommand(opts, &logLevel)
	cmd.AddCommand(
		serveCmd,
		loadCmd,
		listCmd,
		queryCmd,
		validateCmd,
		coverageCmd,
		heatmapCmd,
		overviewCmd,
		exportCmd,
		importCmd,
		newVersionCommand(),
	)

	cmd.Example = `  # Serve the interactive viewer over a local dataset
  comply serve --data ./examples/minimal --listen :8080

  # List regulations as a table
  comply list regulations --data ./examples/minimal

  # Check mapping coverage across jurisdictions
  comply coverage --data ./examples/minimal --jurisdictions EU,FR,DE

  # Convert researched findings into mappings
  comply import-research --input research.json --output mappings-new.json`

	bindViper(cmd, serveCmd, loadCmd, listCmd, queryCmd, validateCmd,
		coverageCmd, heatmapCmd, overviewCmd, exportCmd, importCmd)
	return cmd
}

func bindViper(commands ...*cobra.Command) {
	if len(commands) == 0 {
		return
	}
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix("COMPLY")
	v.AutomaticEnv()
	configFile := os.Getenv("COMPLY_CONFIG")
	configureConfigFile(v, configFile)

	cobra.OnInitialize(func() {
		for _, cmd := range commands {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				cobra.CheckErr(err)
			}
			if err := v.BindPFlags(cmd.PersistentFlags()); err != nil {
				cobra.CheckErr(err)
			}
		}
		if err := readConfigFile(v, configFile != ""); err != nil {
			cobra.CheckErr(err)
		}
		for _, cmd := range commands {
			flagSets := []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags()}
			for _, fs := range flagSets {
				fs.VisitAll(func(f *pflag.Flag) {
					if f.Changed {
						return
					}
					if !v.IsSet(f.Name) {
						return
					}
					val := fmt.Sprintf("%v", v.Get(f.Name))
					if val != "" {
						_ = f.Value.Set(val)
					}
				})
			}
		}
	})
}

func configureConfigFile(v *viper.Viper, explicitPath string) {
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
		return
	}
	v.SetConfigName("config")
	for _, dir := range configSearchDirs() {
		v.AddConfigPath(dir)
	}
}

func readConfigFile(v *viper.Viper, strict bool) error {
	if err := v.ReadInConfig(); err != nil {
		var cfgErr viper.ConfigFileNotFoundError
		if errors.As(err, &cfgErr) && !strict {
			return nil
		}
		return err
	}
	return nil
}

func configSearchDirs() []string {
	added := make(map[string]struct{})
	var dirs []string
	add := func(path string) {
		if path == "" {
			return
		}
		if _, ok := added[path]; ok {
			return
		}
		added[path] = struct{}{}
		dirs = append(dirs, path)
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		add(filepath.Join(xdg, "comply"))
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		add(filepath.Join(home, ".config", "comply"))
		add(filepath.Join(home, ".comply"))
	}
	return dirs
}

func handleError(err error) {
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return
	}
	message := err.Error()
	if errors.Is(err, context.DeadlineExceeded) {
		message = fmt.Sprintf("%s\nHint: the dataset source did not respond in time; verify the --data URL is reachable.", err)
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
}
