package loadtest

import "fmt"

// verify checks that replays did not score twice and that every judged
// answer reached the server's statistics exactly once.
func verify(stats *Stats) error {
	if got := stats.Correct + stats.Wrong + stats.Skipped; got != stats.Judged {
		return fmt.Errorf("%w: %d outcomes for %d judged answers", ErrStatsMismatch, got, stats.Judged)
	}
	if delta := stats.After - stats.Before; delta != stats.Judged {
		return fmt.Errorf("%w: total_rounds grew by %d, expected %d", ErrStatsMismatch, delta, stats.Judged)
	}
	return nil
}
