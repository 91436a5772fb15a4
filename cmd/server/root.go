package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vedran77/foo/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "server",
		Short:         "foo social backend API",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg

			a.logger, err = newLogger(cfg.Log.Level)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.AddCommand(newServeCmd(a), newMigrateCmd(a))
	return root
}

func newLogger(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	config.Level = zap.NewAtomicLevelAt(lvl)
	return config.Build()
}
