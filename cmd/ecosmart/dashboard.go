package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/ecosmart/internal/classifier"
	"github.com/Veraticus/ecosmart/internal/config"
	"github.com/Veraticus/ecosmart/internal/tui"
	"github.com/Veraticus/ecosmart/internal/tui/themes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long: `Open the interactive waste management dashboard.

Images can be staged with the file picker (o), by pasting or dragging a file
path into the terminal, or by saving them into the inbox directory.

Examples:
  ecosmart dashboard
  ecosmart dashboard --hardware
  ecosmart dashboard --inbox ~/Pictures/waste --theme catppuccin-mocha`,
		RunE: runDashboard,
	}

	cmd.Flags().Bool("hardware", false, "Start with the camera connected")
	cmd.Flags().String("inbox", "", "Directory to watch for dropped images")
	cmd.Flags().String("theme", "default", "Color theme ("+strings.Join(themes.Names(), ", ")+")")
	cmd.Flags().Bool("record", false, "Record every frame to a temp directory for debugging")

	_ = viper.BindPFlag("hardware.connected", cmd.Flags().Lookup("hardware"))
	_ = viper.BindPFlag("inbox.dir", cmd.Flags().Lookup("inbox"))
	_ = viper.BindPFlag("ui.theme", cmd.Flags().Lookup("theme"))

	return cmd
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	cfg := appConfig

	logPath := cfg.Logging.File
	if logPath == "" {
		logPath = config.DefaultLogFile()
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0750); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) // #nosec G304 -- user-configured log path
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() {
		if closeErr := logFile.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", closeErr)
		}
	}()
	if err := setupLogging(cfg.Logging, logFile); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	settings, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to render settings: %w", err)
	}

	record, _ := cmd.Flags().GetBool("record")
	logger := slog.Default()

	cls := classifier.NewGuarded(
		classifier.NewMock(classifier.WithDelays(cfg.Classifier.ManualDelay, cfg.Classifier.CaptureDelay)),
		cfg.Classifier.Timeout,
		logger.With("component", "classifier"),
	)

	logger.Info("starting dashboard",
		"theme", cfg.UI.Theme,
		"inbox", cfg.Inbox.Dir,
		"hardware", cfg.Hardware.Connected,
		"record", record)

	opts := []tui.Option{
		tui.WithClassifier(cls),
		tui.WithTheme(themes.GetTheme(cfg.UI.Theme)),
		tui.WithSize(cfg.UI.Width, cfg.UI.Height),
		tui.WithLogger(logger),
		tui.WithHardware(cfg.Hardware.Connected),
		tui.WithRefreshDelays(cfg.History.RefreshDelay, cfg.Analytics.RefreshDelay),
		tui.WithSettings(string(settings)),
		tui.WithRecorder(record),
	}
	if cfg.Inbox.Dir != "" {
		opts = append(opts, tui.WithInbox(cfg.Inbox.Dir, cfg.Inbox.Debounce))
	}

	if err := tui.Run(cmd.Context(), opts...); err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}

	logger.Info("dashboard exited")
	return nil
}
