package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	service "github.com/okian/accent/internal/app"
	"github.com/okian/accent/internal/config"
	"github.com/okian/accent/internal/domain/progress"
	"github.com/okian/accent/internal/domain/quiz"
	"github.com/okian/accent/pkg/logger"
)

// Quiz is the part of the service the terminal loop drives.
type Quiz interface {
	NewSession() string
	NextWord(ctx context.Context, sessionID string) (quiz.Round, error)
	SubmitAnswer(ctx context.Context, a service.Answer) (service.AnswerOutcome, error)
	EndSession(ctx context.Context, sessionID string) bool
	FeatureIDs() []string
	Stats() progress.Stats
}

const helpText = "Commands: ipa/noipa, syllables/nosyllables, original/nooriginal, stats, skip, quit"

// Player reads guesses from in and writes the quiz to out.
type Player struct {
	svc     Quiz
	in      *bufio.Scanner
	out     io.Writer
	st      styles
	display config.QuizConfig
	log     logger.Logger

	session  string
	features map[string]struct{}
	tally    *Tally
}

// Option configures a Player.
type Option func(*Player)

// WithDisplay sets which word details are shown at start.
func WithDisplay(d config.QuizConfig) Option {
	return func(p *Player) { p.display = d }
}

// WithLogger sets the player's logger.
func WithLogger(l logger.Logger) Option {
	return func(p *Player) {
		if l != nil {
			p.log = l
		}
	}
}

// NewPlayer creates a player over svc.
func NewPlayer(svc Quiz, in io.Reader, out io.Writer, opts ...Option) *Player {
	p := &Player{
		svc:     svc,
		in:      bufio.NewScanner(in),
		out:     out,
		st:      newStyles(out),
		display: config.QuizConfig{ShowIPA: true, ShowSyllables: true, ShowOriginal: true},
		tally:   NewTally(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.log == nil {
		p.log = logger.Get().Named("cli")
	}
	p.features = make(map[string]struct{})
	for _, id := range svc.FeatureIDs() {
		p.features[id] = struct{}{}
	}
	return p
}

// Run plays rounds until the user quits or input ends, then prints the
// session summary and returns it.
func (p *Player) Run(ctx context.Context) (*Tally, error) {
	p.session = p.svc.NewSession()
	defer p.svc.EndSession(ctx, p.session)
	p.log.Debug(ctx, "quiz session started", logger.String("session", p.session))

	round, err := p.svc.NextWord(ctx, p.session)
	if err != nil {
		return p.tally, fmt.Errorf("first word: %w", err)
	}

	for {
		p.announce(round)
		next, quit, err := p.playRound(ctx, round)
		if err != nil {
			p.printSummary()
			return p.tally, err
		}
		if quit || next == nil {
			break
		}
		round = *next
	}
	p.printSummary()
	return p.tally, nil
}

func (p *Player) announce(r quiz.Round) {
	fmt.Fprintf(p.out, "\n%s %s\n", p.st.title.Render("Random word:"), p.st.word.Render(r.Word.Text))
	if r.Word.ClipID != "" {
		fmt.Fprintf(p.out, "%s\n", p.st.subtle.Render("Clip ID: "+r.Word.ClipID))
	}
}

func (p *Player) showDetails(r quiz.Round) {
	w := r.Word
	if p.display.ShowSyllables && len(w.Syllables) > 0 {
		fmt.Fprintf(p.out, "Syllables: %s\n", strings.Join(w.Syllables, " | "))
	}
	if ipa := w.DisplayIPA(); p.display.ShowIPA && ipa != "" {
		fmt.Fprintf(p.out, "IPA: %s\n", ipa)
	}
	if p.display.ShowOriginal && w.Gloss != "" {
		fmt.Fprintf(p.out, "Original pronunciation: %s\n", w.Gloss)
	}
}

// playRound prompts until the word is answered correctly, skipped or the
// user quits. next is the following round when the session advanced.
func (p *Player) playRound(ctx context.Context, r quiz.Round) (next *quiz.Round, quit bool, err error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, true, nil
		}
		p.showDetails(r)
		fmt.Fprint(p.out, p.st.prompt.Render("Guess the feature, 'help' for commands: "))

		if !p.in.Scan() {
			fmt.Fprintln(p.out)
			return nil, true, p.in.Err()
		}
		input := strings.ToLower(strings.TrimSpace(p.in.Text()))

		if p.command(input) {
			continue
		}
		switch input {
		case "quit", "q", "exit":
			return nil, true, nil
		case progress.SkipGuess:
		default:
			if _, ok := p.features[input]; !ok {
				fmt.Fprintln(p.out, p.st.warning.Render("Invalid feature. Try again."))
				continue
			}
		}

		out, err := p.svc.SubmitAnswer(ctx, service.Answer{
			SessionID: p.session,
			Round:     r.Number,
			Guess:     input,
		})
		res := out.Result
		if err != nil && !res.Judged() {
			return nil, false, fmt.Errorf("submit guess: %w", err)
		}
		p.printFeedback(res)
		if res.Kind == quiz.Wrong {
			continue
		}

		p.tally.Record(res)
		fmt.Fprintf(p.out, "Attempts: %d\n", res.RoundAttempts)
		if err != nil {
			return nil, false, err
		}
		return res.Next, false, nil
	}
}

// command applies a display or stats command and reports whether input was
// one.
func (p *Player) command(input string) bool {
	toggle := func(flag *bool, on bool, what string) {
		*flag = on
		state := "hidden"
		if on {
			state = "enabled"
		}
		fmt.Fprintln(p.out, p.st.subtle.Render(what+" display "+state+"."))
	}
	switch input {
	case "help", "?":
		fmt.Fprintln(p.out, helpText)
		fmt.Fprintln(p.out, "Features: "+strings.Join(p.svc.FeatureIDs(), ", "))
	case "ipa", "showipa":
		toggle(&p.display.ShowIPA, true, "IPA")
	case "noipa", "hideipa":
		toggle(&p.display.ShowIPA, false, "IPA")
	case "syllables", "showsyllables":
		toggle(&p.display.ShowSyllables, true, "Syllables")
	case "nosyllables", "hidesyllables":
		toggle(&p.display.ShowSyllables, false, "Syllables")
	case "original", "showoriginal":
		toggle(&p.display.ShowOriginal, true, "Original pronunciation")
	case "nooriginal", "hideoriginal":
		toggle(&p.display.ShowOriginal, false, "Original pronunciation")
	case "stats":
		p.printOverall()
	default:
		return false
	}
	return true
}

func (p *Player) printFeedback(res quiz.Result) {
	style := p.st.failure
	switch res.Kind {
	case quiz.Correct:
		style = p.st.success
	case quiz.Skipped:
		style = p.st.warning
	}
	fmt.Fprintln(p.out, style.Render(res.Feedback()))
}

// printOverall prints the aggregate statistics of every session.
func (p *Player) printOverall() {
	s := p.svc.Stats()
	fmt.Fprintln(p.out, p.st.title.Render("Overall stats"))
	fmt.Fprintf(p.out, "Total rounds: %d\n", s.TotalRounds)
	fmt.Fprintf(p.out, "Correct: %d\n", s.TotalCorrect)
	fmt.Fprintf(p.out, "Skipped: %d\n", s.TotalSkipped)
	fmt.Fprintf(p.out, "Accuracy: %.1f%%\n", s.Accuracy())
	if missed := s.TopMissed(topMissed); len(missed) > 0 {
		fmt.Fprintln(p.out, "Most missed words:")
		for _, c := range missed {
			fmt.Fprintf(p.out, "- %s: %d\n", c.Key, c.Count)
		}
	}
}

func (p *Player) printSummary() {
	p.tally.Write(p.out, p.st.title.Render("Session stats"))
}
