package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/goKeyTouch/config"
)

type rootOptions struct {
	configFile  string
	mappingFile string
	logLevel    string

	cfg config.Config
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "goKeyTouch",
		Short:         "Turn key presses into touches",
		Long:          "goKeyTouch maps keyboard keys to screen positions and taps the touchscreen when they are pressed.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			opts.cfg = cfg
			setupConsoleLogging(cmd.ErrOrStderr(), cfg.LogLevel)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "keytouch.toml", "Configuration file")
	rootCmd.PersistentFlags().StringVarP(&opts.mappingFile, "mappings", "m", "", "Mapping file, overrides mapping_file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level, overrides log_level")

	rootCmd.AddCommand(NewRunCmd(opts))
	rootCmd.AddCommand(NewListCmd(opts))
	rootCmd.AddCommand(NewClearCmd(opts))
	rootCmd.AddCommand(NewDevicesCmd())

	return rootCmd
}

// load reads the configuration and applies the command line overrides.
func (o *rootOptions) load() (config.Config, error) {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return config.Config{}, err
	}
	if o.mappingFile != "" {
		cfg.MappingFile = o.mappingFile
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func parseLevel(level string) zerolog.Level {
	l, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return l
}

func setupConsoleLogging(w io.Writer, level string) {
	zerolog.SetGlobalLevel(parseLevel(level))
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339})
}

// setupLogging logs to the console and appends to path.
func setupLogging(w io.Writer, path, level string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	zerolog.SetGlobalLevel(parseLevel(level))
	log.Logger = zerolog.New(zerolog.MultiLevelWriter(
		zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339},
		logFile,
	)).With().Timestamp().Logger()

	return logFile, nil
}

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("goKeyTouch failed")
		os.Exit(1)
	}
}
