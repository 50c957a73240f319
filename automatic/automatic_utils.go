package automatic

// Data collection for automatic games. Plays many bot games concurrently.

import (
	"context"
	"encoding/csv"
	"errors"
	"expvar"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var (
	GamesCounter *expvar.Int
	IsPlaying    *expvar.Int
)

func init() {
	GamesCounter = expvar.NewInt("hangmanGamesCounter")
	IsPlaying = expvar.NewInt("hangmanIsPlaying")
}

// Run plays numGames games on threads goroutines, writing a CSV line per game
// to logfile (if not nil), and returns a summary of everything played. When
// ctx is cancelled the games played so far are still summarized.
func (r *GameRunner) Run(ctx context.Context, numGames, threads int, logfile io.Writer) (*Summary, error) {
	if IsPlaying.Value() > 0 {
		return nil, errors.New("games are already being played, please wait till complete")
	}
	if threads < 1 {
		threads = 1
	}
	log.Debug().Msgf("Starting %v games, %v threads", numGames, threads)
	GamesCounter.Set(0)

	jobs := make(chan int, 100)
	records := make(chan GameRecord, 100)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < numGames; i++ {
			select {
			case jobs <- i:
			case <-gctx.Done():
				log.Info().Msg("Got stop signal, exiting soon...")
				return gctx.Err()
			}
		}
		return nil
	})

	for t := 0; t < threads; t++ {
		rng := r.threadRand(t)
		g.Go(func() error {
			IsPlaying.Add(1)
			defer IsPlaying.Add(-1)
			for range jobs {
				rec, err := r.PlayGame(rng)
				if err != nil {
					return err
				}
				GamesCounter.Add(1)
				select {
				case records <- rec:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
		close(records)
	}()

	var w *csv.Writer
	var writeErr error
	if logfile != nil {
		w = csv.NewWriter(logfile)
		writeErr = w.Write(csvHeader)
	}
	summary := NewSummary()
	for rec := range records {
		summary.Add(rec)
		if w != nil && writeErr == nil {
			writeErr = w.Write(rec.csvRow())
		}
	}
	if w != nil && writeErr == nil {
		w.Flush()
		writeErr = w.Error()
	}
	log.Info().Int("games", summary.Games).Msg("All games finished.")

	if err := <-done; err != nil {
		return summary, err
	}
	return summary, writeErr
}

// StartAutoplay plays games to outputFilename.
func (r *GameRunner) StartAutoplay(ctx context.Context, numGames, threads int,
	outputFilename string) (*Summary, error) {

	logfile, err := os.Create(outputFilename)
	if err != nil {
		return nil, err
	}
	defer logfile.Close()
	return r.Run(ctx, numGames, threads, logfile)
}
