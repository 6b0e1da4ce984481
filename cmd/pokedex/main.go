package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pokedex/internal/config"
	"pokedex/internal/logging"
)

var (
	configPath string
	cfg        *config.ProjectConfig
	logger     = zap.NewNop()
)

func main() {
	root := &cobra.Command{
		Use:   "pokedex",
		Short: "Browse the first generation of Pokemon from the terminal",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded

			// Full-screen commands must not write logs to the terminal.
			build := logging.New
			if cmd.Annotations["interactive"] == "true" {
				build = logging.NewInteractive
			}
			built, err := build(cfg.Log)
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			logger = built
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		SilenceUsage: true,
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Path to the project config")

	root.AddCommand(browseCmd())
	root.AddCommand(listCmd())
	root.AddCommand(showCmd())
	root.AddCommand(typesCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(exportCmd())
	root.AddCommand(sqlCmd())
	root.AddCommand(initCmd())
	root.AddCommand(versionCmd())
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
