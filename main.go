package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-local/internal"
	"github.com/rocketscienceinc/tictactoe-local/internal/config"
)

var (
	configFile string
	mode       string
	seed       uint64
)

var rootCmd = &cobra.Command{
	Use:   "tictactoe",
	Short: "Tic-tac-toe in the terminal",
	Long:  `Tic-tac-toe for two players or against the computer, played with the mouse or the keyboard.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		conf := initConfig()
		if cmd.Flags().Changed("mode") {
			conf.Game.Mode = mode
		}
		if cmd.Flags().Changed("seed") {
			conf.Game.Seed = seed
		}

		logger, closeLog := initLogger(conf)
		defer closeLog()

		if err := app.RunApp(logger, conf); err != nil {
			return fmt.Errorf("app run failed: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "config", "", "path to the config file (default ./config.yml)")
	rootCmd.Flags().StringVar(&mode, "mode", "", "game mode: human or computer")
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "seed of the computer player, 0 for a random one")
}

// main - is the entry point of the application. It parses flags, initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initialize config.
func initConfig() *config.Config {
	if configFile != "" {
		return config.MustLoad(configFile)
	}

	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// initialize logger. The terminal belongs to the UI, so logs go to a file.
func initLogger(conf *config.Config) (*slog.Logger, func()) {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var (
		output  io.Writer = io.Discard
		closeFn           = func() {}
	)

	if conf.LogOutput != "" {
		file, err := os.OpenFile(conf.LogOutput, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			panic(fmt.Errorf("failed to open log file: %w", err))
		}

		output = file
		closeFn = func() { _ = file.Close() }
	}

	if conf.LogFormat == "text" {
		handler := charmlog.NewWithOptions(output, charmlog.Options{
			Level:           charmlog.Level(level),
			ReportTimestamp: true,
			TimeFormat:      time.DateTime,
			Prefix:          "tictactoe",
		})

		return slog.New(handler), closeFn
	}

	return slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level})), closeFn
}
