package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/okian/accent/internal/loadtest"
	"github.com/okian/accent/pkg/logger"
)

// Default configuration constants.
const (
	defaultWorkers     = 2 // multiplier for runtime.NumCPU()
	defaultTestTimeout = 10 * time.Minute
)

func main() {
	var (
		baseURL     = flag.String("url", "http://localhost:9080", "Base URL of the service")
		sessions    = flag.Int("sessions", loadtest.DefaultSessions, "Number of quiz sessions to play")
		rounds      = flag.Int("rounds", loadtest.DefaultRounds, "Answers submitted per session")
		workers     = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Sessions played at once")
		replayEvery = flag.Int("replay-every", loadtest.DefaultReplayEvery, "Resend every Nth answer with the same request id (0 disables)")
		timeout     = flag.Duration("timeout", loadtest.DefaultTimeout, "HTTP request timeout")
		seed        = flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for guess selection")
		logFormat   = flag.String("log-format", "text", "Log format (text, json)")
		verbose     = flag.Bool("verbose", false, "Log every answer")
	)
	flag.Parse()

	if err := logger.Init(logger.WithFormat(*logFormat)); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTestTimeout)
	defer cancel()

	_, err := loadtest.Run(ctx, &loadtest.Config{
		BaseURL:     *baseURL,
		Sessions:    *sessions,
		Rounds:      *rounds,
		Workers:     *workers,
		ReplayEvery: *replayEvery,
		Timeout:     *timeout,
		Seed:        *seed,
		Verbose:     *verbose,
	})
	if err != nil {
		os.Stderr.WriteString("load run failed: " + err.Error() + "\n")
		cancel()
		os.Exit(1)
	}
}
