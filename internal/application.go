package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-local/internal/config"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/random"
	"github.com/rocketscienceinc/tictactoe-local/internal/repository"
	"github.com/rocketscienceinc/tictactoe-local/internal/service"
	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-local/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-local/transport/terminal"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	mode, err := entity.ParseMode(conf.Game.Mode)
	if err != nil {
		return fmt.Errorf("invalid game mode in config: %w", err)
	}

	seed, err := random.SeedOrNew(conf.Game.Seed)
	if err != nil {
		return fmt.Errorf("could not seed computer player: %w", err)
	}

	bot := service.NewBotService(seed)
	engine := tictactoe.NewEngine(bot)
	scoreRepo := repository.NewScoreRepository()
	gameUseCase := usecase.NewGameUseCase(logger, engine, scoreRepo)

	if _, err = gameUseCase.Dispatch(ctx, usecase.ModeSelected{Mode: mode}); err != nil {
		return fmt.Errorf("could not select game mode: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("could not create terminal screen: %w", err)
	}

	if err = screen.Init(); err != nil {
		return fmt.Errorf("could not initialize terminal screen: %w", err)
	}
	defer screen.Fini()

	log.Info("Starting terminal UI", "mode", mode, "seed", seed)

	ui := terminal.New(logger, screen, gameUseCase)
	if err = ui.Run(ctx); err != nil {
		return fmt.Errorf("terminal UI error: %w", err)
	}

	score := scoreRepo.Get()
	log.Info("Application stopped", "x_wins", score.XWins, "o_wins", score.OWins, "draws", score.Draws)

	return nil
}
