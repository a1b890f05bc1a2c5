// Package loadtest drives concurrent quiz sessions against a running server
// and checks that the aggregate statistics add up.
package loadtest

import "time"

// Default configuration values.
const (
	DefaultSessions    = 50
	DefaultRounds      = 20
	DefaultReplayEvery = 5
	DefaultTimeout     = 10 * time.Second
)

// Config holds configuration for a load run.
type Config struct {
	BaseURL     string        // Base URL of the service
	Sessions    int           // Number of concurrent quiz sessions to play
	Rounds      int           // Answers submitted per session
	Workers     int           // Sessions played at once
	ReplayEvery int           // Resend every Nth answer with the same request id; 0 disables
	Timeout     time.Duration // HTTP request timeout
	Seed        uint64        // Seed for guess selection
	Verbose     bool          // Log every answer
}

// Stats holds run statistics.
type Stats struct {
	Sessions  int
	Submitted int // answer requests sent, replays included
	Judged    int // answers scored by the server
	Replayed  int // answers served from the request-id cache
	Correct   int
	Wrong     int
	Skipped   int
	Failed    int
	Before    int // server total_rounds before the run
	After     int // server total_rounds after the run
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

type sessionResponse struct {
	SessionID string `json:"session_id"`
}

type roundResponse struct {
	SessionID string `json:"session_id"`
	Round     uint64 `json:"round"`
	Word      struct {
		Text      string `json:"text"`
		FeatureID string `json:"feature_id"`
	} `json:"word"`
}

type answerRequest struct {
	SessionID string `json:"session_id"`
	Feature   string `json:"feature"`
	Round     uint64 `json:"round,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

type answerResponse struct {
	Correct  bool           `json:"correct"`
	Outcome  string         `json:"outcome"`
	Replayed bool           `json:"replayed"`
	Next     *roundResponse `json:"next,omitempty"`
}

type featuresResponse struct {
	Features []struct {
		ID string `json:"id"`
	} `json:"features"`
}

type statsResponse struct {
	Stats struct {
		TotalRounds int `json:"total_rounds"`
	} `json:"stats"`
}
