package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vaibhaw-/synthgen/internal/synthgen/config"
	"github.com/vaibhaw-/synthgen/internal/synthgen/logger"
)

var (
	cfgFile  string
	logLevel string
	Version  = "v0.1"
	rootCmd  = &cobra.Command{
		Use:          "synthgen",
		Short:        "synthgen - synthetic healthcare and HR datasets",
		Long:         "synthgen: generate synthetic healthcare visit and HR employee records as CSV, and export them to PostgreSQL or MySQL.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.GetViper()
			v.SetEnvPrefix("SYNTHGEN")
			v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
			v.AutomaticEnv()

			// load config
			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
			} else {
				// default: ./config.yaml
				v.SetConfigFile("config.yaml")
			}
			if err := readConfig(v); err != nil {
				return err
			}
			if err := config.Load(v); err != nil {
				return err
			}

			// init logger
			cfg := config.Get()
			if logLevel != "" {
				cfg.Logging.Level = logLevel
			}
			if err := logger.InitLogger(logger.LogConfig{
				Level:       cfg.Logging.Level,
				File:        cfg.Logging.File,
				Development: cfg.Logging.Development,
			}); err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			return nil
		},
	}
)

// readConfig reads the config file. An explicit --config must exist and
// parse; a missing ./config.yaml falls back to defaults and flags.
func readConfig(v *viper.Viper) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if cfgFile == "" && (errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound)) {
		return nil
	}
	return fmt.Errorf("read config %s: %w", v.ConfigFileUsed(), err)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug|info|warn|error (overrides config)")
	rootCmd.AddCommand(versionCmd)
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
