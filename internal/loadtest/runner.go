package loadtest

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/okian/accent/pkg/logger"
)

const (
	outcomeCorrect       = "correct"
	outcomeWrong         = "wrong"
	outcomeSkipped       = "skipped"
	skipGuess            = "skip"
	percentageMultiplier = 100
)

type counters struct {
	submitted, judged, replayed atomic.Int64
	correct, wrong, skipped     atomic.Int64
	failed                      atomic.Int64
}

// Run plays cfg.Sessions sessions against the server and verifies that the
// server's total_rounds grew by exactly the number of judged answers.
// Other clients playing at the same time make the check fail.
func Run(ctx context.Context, cfg *Config) (*Stats, error) {
	log := logger.Get().Named("loadtest")
	stats := &Stats{StartTime: time.Now(), Sessions: cfg.Sessions}
	c := newClient(cfg.BaseURL, cfg.Timeout)

	log.Info(ctx, "starting quiz load run",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("sessions", cfg.Sessions),
		logger.Int("rounds", cfg.Rounds),
		logger.Int("workers", cfg.Workers),
		logger.Int("replayEvery", cfg.ReplayEvery))

	if err := c.get(ctx, "/healthz", nil); err != nil {
		return nil, fmt.Errorf("service health check failed: %w", err)
	}
	guesses, err := fetchGuesses(ctx, c)
	if err != nil {
		return nil, err
	}
	if stats.Before, err = totalRounds(ctx, c); err != nil {
		return nil, err
	}

	var ctr counters
	g, gctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}
	for i := 0; i < cfg.Sessions; i++ {
		rnd := rand.New(rand.NewPCG(cfg.Seed, uint64(i)))
		g.Go(func() error {
			if err := play(gctx, c, cfg, guesses, rnd, &ctr, log); err != nil {
				ctr.failed.Add(1)
				return err
			}
			return nil
		})
	}
	runErr := g.Wait()

	stats.Submitted = int(ctr.submitted.Load())
	stats.Judged = int(ctr.judged.Load())
	stats.Replayed = int(ctr.replayed.Load())
	stats.Correct = int(ctr.correct.Load())
	stats.Wrong = int(ctr.wrong.Load())
	stats.Skipped = int(ctr.skipped.Load())
	stats.Failed = int(ctr.failed.Load())
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	if runErr != nil {
		return stats, runErr
	}
	if stats.After, err = totalRounds(ctx, c); err != nil {
		return stats, err
	}
	if err := verify(stats); err != nil {
		return stats, err
	}
	logFinalStats(ctx, log, stats)
	return stats, nil
}

func fetchGuesses(ctx context.Context, c *client) ([]string, error) {
	var feats featuresResponse
	if err := c.get(ctx, "/features", &feats); err != nil {
		return nil, fmt.Errorf("list features: %w", err)
	}
	if len(feats.Features) == 0 {
		return nil, ErrNoFeatures
	}
	guesses := make([]string, 0, len(feats.Features)+1)
	for _, f := range feats.Features {
		guesses = append(guesses, f.ID)
	}
	return append(guesses, skipGuess), nil
}

func totalRounds(ctx context.Context, c *client) (int, error) {
	var s statsResponse
	if err := c.get(ctx, "/stats", &s); err != nil {
		return 0, fmt.Errorf("read stats: %w", err)
	}
	return s.Stats.TotalRounds, nil
}

// play runs one session: a fresh session id, a first word and cfg.Rounds
// random guesses, some of them sent twice.
func play(ctx context.Context, c *client, cfg *Config, guesses []string, rnd *rand.Rand, ctr *counters, log logger.Logger) error {
	var sess sessionResponse
	if err := c.post(ctx, "/quiz/sessions", nil, &sess); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	var round roundResponse
	if err := c.post(ctx, "/quiz/next", map[string]string{"session_id": sess.SessionID}, &round); err != nil {
		return fmt.Errorf("first word: %w", err)
	}

	for n := 1; n <= cfg.Rounds; n++ {
		req := answerRequest{
			SessionID: sess.SessionID,
			Feature:   guesses[rnd.IntN(len(guesses))],
			Round:     round.Round,
			RequestID: uuid.NewString(),
		}
		var res answerResponse
		ctr.submitted.Add(1)
		if err := c.post(ctx, "/quiz/answer", req, &res); err != nil {
			return fmt.Errorf("answer round %d: %w", round.Round, err)
		}
		ctr.judged.Add(1)
		switch res.Outcome {
		case outcomeCorrect:
			ctr.correct.Add(1)
		case outcomeWrong:
			ctr.wrong.Add(1)
		case outcomeSkipped:
			ctr.skipped.Add(1)
		}
		if cfg.Verbose {
			log.Debug(ctx, "answer judged",
				logger.String("session", sess.SessionID),
				logger.String("word", round.Word.Text),
				logger.String("guess", req.Feature),
				logger.String("outcome", res.Outcome))
		}

		if cfg.ReplayEvery > 0 && n%cfg.ReplayEvery == 0 {
			var again answerResponse
			ctr.submitted.Add(1)
			if err := c.post(ctx, "/quiz/answer", req, &again); err != nil {
				return fmt.Errorf("replay round %d: %w", round.Round, err)
			}
			if !again.Replayed || again.Outcome != res.Outcome {
				return fmt.Errorf("%w: request %s", ErrReplayMismatch, req.RequestID)
			}
			ctr.replayed.Add(1)
		}

		switch {
		case res.Next != nil:
			round = *res.Next
		case res.Outcome != outcomeWrong:
			// Judged but not advanced; ask for a word explicitly.
			if err := c.post(ctx, "/quiz/next", map[string]string{"session_id": sess.SessionID}, &round); err != nil {
				return fmt.Errorf("next word: %w", err)
			}
		}
	}
	return nil
}

// logFinalStats logs the run statistics.
func logFinalStats(ctx context.Context, log logger.Logger, stats *Stats) {
	var accuracy, answersPerSecond float64
	if stats.Judged > 0 {
		accuracy = float64(stats.Correct) / float64(stats.Judged) * percentageMultiplier
	}
	if stats.Duration > 0 {
		answersPerSecond = float64(stats.Submitted) / stats.Duration.Seconds()
	}

	log.Info(ctx, "final statistics",
		logger.Int("sessions", stats.Sessions),
		logger.Int("submitted", stats.Submitted),
		logger.Int("judged", stats.Judged),
		logger.Int("replayed", stats.Replayed),
		logger.Int("correct", stats.Correct),
		logger.Int("wrong", stats.Wrong),
		logger.Int("skipped", stats.Skipped),
		logger.Int("roundsBefore", stats.Before),
		logger.Int("roundsAfter", stats.After),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("accuracy", accuracy),
		logger.Float64("answersPerSecond", answersPerSecond))
}
