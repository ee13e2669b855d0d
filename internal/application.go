package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/caro-engine/internal/caro"
	"github.com/rocketscienceinc/caro-engine/internal/config"
	"github.com/rocketscienceinc/caro-engine/internal/entity"
	"github.com/rocketscienceinc/caro-engine/internal/service"
)

var ErrNoMatches = errors.New("number of matches must be positive")

// Summary tallies the outcomes of the played matches.
type Summary struct {
	Played int
	WinsX  int
	WinsO  int
	Draws  int
}

func (that *Summary) add(outcome entity.Outcome) {
	that.Played++
	switch outcome {
	case entity.WinnerX:
		that.WinsX++
	case entity.WinnerO:
		that.WinsO++
	case entity.Draw:
		that.Draws++
	case entity.InProgress:
	}
}

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

	summary, err := PlayMatches(ctx, logger, conf)
	if err != nil {
		return fmt.Errorf("could not play matches: %w", err)
	}

	log.Info("All matches played",
		"played", summary.Played,
		"x_wins", summary.WinsX,
		"o_wins", summary.WinsO,
		"draws", summary.Draws,
	)

	return nil
}

// PlayMatches - plays conf.Matches games on one engine, resetting it between games.
// The automated opponent holds its configured slot, the other slot is played by a random bot.
func PlayMatches(ctx context.Context, logger *slog.Logger, conf *config.Config) (Summary, error) {
	log := logger.With("component", "match")

	if conf.Matches < 1 {
		return Summary{}, fmt.Errorf("%w: got %d", ErrNoMatches, conf.Matches)
	}

	engineConf, err := conf.EngineConfig()
	if err != nil {
		return Summary{}, fmt.Errorf("invalid engine config: %w", err)
	}

	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed)) //nolint: gosec // it's ok

	engine, err := caro.NewEngine(engineConf, service.NewBotService(rng))
	if err != nil {
		return Summary{}, fmt.Errorf("could not create engine: %w", err)
	}

	player := service.NewBotService(rng)

	var summary Summary
	for i := 0; i < conf.Matches; i++ {
		matchLog := log.With("match_id", uuid.NewString(), "match", i+1)

		outcome, err := playMatch(ctx, matchLog, engine, player)
		if err != nil {
			return summary, err
		}

		summary.add(outcome)
		matchLog.Info("Match finished",
			"outcome", outcome.String(),
			"moves", len(engine.History()),
			"opponent", engine.OpponentSymbol().String(),
		)
		matchLog.Debug("Final board", "board", engine.String())

		engine.Reset()
	}

	return summary, nil
}

func playMatch(ctx context.Context, log *slog.Logger, engine *caro.Engine, player service.BotService) (entity.Outcome, error) {
	for {
		if outcome := engine.Winner(); outcome.IsFinished() {
			return outcome, nil
		}

		if err := ctx.Err(); err != nil {
			return entity.InProgress, fmt.Errorf("match interrupted: %w", err)
		}

		symbol := engine.CurrentSymbol()

		moved, err := engine.PlayRandomMove()
		if err != nil {
			return entity.InProgress, fmt.Errorf("opponent turn failed: %w", err)
		}

		if !moved {
			move, err := player.ChooseMove(engine.PossibleMoves())
			if err != nil {
				return entity.InProgress, fmt.Errorf("player turn failed: %w", err)
			}

			if err = engine.MakeMove(move.Row, move.Col); err != nil {
				return entity.InProgress, fmt.Errorf("player turn failed: %w", err)
			}
		}

		history := engine.History()
		last := history[len(history)-1]
		log.Debug("Move played", "symbol", symbol.String(), "row", last.Row, "col", last.Col, "automated", moved)
	}
}
