// Package main contains the ecosmart CLI commands.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Veraticus/ecosmart/internal/common"
	"github.com/Veraticus/ecosmart/internal/config"
	"github.com/Veraticus/ecosmart/internal/tui/themes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	appConfig config.Config
	version   = "dev"
	rootCmd   = &cobra.Command{
		Use:   "ecosmart",
		Short: "♻  Smart waste management dashboard",
		Long: `ecosmart: a terminal dashboard for classifying waste images and
browsing waste analytics.

Run "ecosmart dashboard" for the interactive UI or "ecosmart classify" to
classify image files from scripts.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
	}
)

func init() {
	config.SetDefaults(viper.GetViper())

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/ecosmart/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")

	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(dashboardCmd())
	rootCmd.AddCommand(classifyCmd())
	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, common.UserMessage(err))
		slog.Debug("command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		viper.AddConfigPath(fmt.Sprintf("%s/.config/ecosmart", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("ECOSMART")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	appConfig = cfg

	// Headless commands log to stderr; the dashboard redirects to a file
	// once it owns the terminal.
	if err := setupLogging(cfg.Logging, os.Stderr); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

// loadConfig reads the config file, if any, and validates the result. Errors
// carry a message fit for the terminal.
func loadConfig(v *viper.Viper) (config.Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config.Config{}, common.NewUserError(
				"Could not read config file "+v.ConfigFileUsed(),
				fmt.Errorf("failed to read config: %w", err))
		}
	}

	cfg, err := config.Load(v, themes.Names())
	if err != nil {
		detail := strings.TrimPrefix(err.Error(), common.ErrInvalidConfig.Error()+": ")
		return config.Config{}, common.NewUserError("Config error: "+detail, err)
	}
	return cfg, nil
}

func setupLogging(cfg config.LoggingConfig, w *os.File) error {
	level, err := common.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	return common.SetupLogger(level, cfg.Format, w)
}
