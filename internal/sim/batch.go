// internal/sim/batch.go
package sim

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/jason-s-yu/uno/internal/game"
	"github.com/jason-s-yu/uno/internal/rating"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// BatchOptions configures RunBatch.
type BatchOptions struct {
	Games    int
	Players  int
	Workers  int   // <= 0 uses runtime.NumCPU()
	Seed     int64 // 0 seeds from the clock; game i uses Seed+i
	MaxSteps int
	Rules    *game.Ruleset
	Logger   *logrus.Logger
}

// Summary aggregates the results of a batch.
type Summary struct {
	BatchID     uuid.UUID             `json:"batch_id"`
	Games       int                   `json:"games"`
	Finished    int                   `json:"finished"`
	Stalled     int                   `json:"stalled"`
	TotalSteps  int                   `json:"total_steps"`
	Rejected    int                   `json:"rejected"`
	SeatWins    map[int]int           `json:"seat_wins"`
	SeatRatings map[int]rating.Rating `json:"seat_ratings"` // finished games only
	Events      map[string]int        `json:"events"`
	Results     []Result              `json:"-"`
	Duration    time.Duration         `json:"duration"`
}

// AverageSteps is the mean number of accepted moves per game.
func (s *Summary) AverageSteps() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalSteps) / float64(s.Games)
}

// RunBatch plays opts.Games independent games across a bounded pool of
// goroutines. The first invariant violation cancels the remaining games and
// is returned.
func RunBatch(ctx context.Context, opts BatchOptions) (*Summary, error) {
	if opts.Games < 1 || opts.Players < 1 || opts.MaxSteps < 1 {
		return nil, fmt.Errorf("%w: games, players and max steps must be positive", game.ErrInvalidArgument)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	batchID := uuid.New()
	log := logger.WithFields(logrus.Fields{"batch_id": batchID.String(), "workers": workers})
	log.WithFields(logrus.Fields{"games": opts.Games, "players": opts.Players, "seed": seed}).Info("Starting simulation batch")

	start := time.Now()
	results := make([]Result, opts.Games)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := 0; i < opts.Games; i++ {
		eg.Go(func() error {
			res, err := RunGame(egCtx, GameOptions{
				Players:  opts.Players,
				MaxSteps: opts.MaxSteps,
				Seed:     seed + int64(i),
				Rules:    opts.Rules,
				Logger:   logger,
			})
			results[i] = res
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i, seed+int64(i), err)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.WithError(err).Error("Simulation batch failed")
		return nil, err
	}

	summary := &Summary{
		BatchID:  batchID,
		Games:    opts.Games,
		SeatWins: make(map[int]int),
		Events:   make(map[string]int),
		Results:  results,
		Duration: time.Since(start),
	}
	seats := rating.NewTable()
	for _, res := range results {
		summary.TotalSteps += res.Steps
		summary.Rejected += res.Rejected
		if res.Finished() {
			summary.Finished++
			summary.SeatWins[res.WinnerSeat]++
			seats.RecordGame(res.HandSizes)
		}
		if res.Stalled {
			summary.Stalled++
		}
		for evType, n := range res.Events {
			summary.Events[string(evType)] += n
		}
	}
	summary.SeatRatings = seats.Ratings()

	log.WithFields(logrus.Fields{
		"finished":  summary.Finished,
		"stalled":   summary.Stalled,
		"avg_steps": summary.AverageSteps(),
		"duration":  summary.Duration,
	}).Info("Simulation batch complete")
	return summary, nil
}
