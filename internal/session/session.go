// Package session holds one round of play: the puzzle being shown, the
// timed reveal of its steps and the check of the player's answer.
package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"svw.info/braincruncher/internal/domain"
)

// CountdownStep is how long each countdown label stays up.
const CountdownStep = time.Second

// CountdownLabels precede the first step.
var CountdownLabels = []string{"Get Ready!", "3", "2", "1"}

// EventKind says how a presenter should treat an event.
type EventKind int

const (
	EventCountdown EventKind = iota
	EventStart
	EventStep
	EventPrompt
)

// Event is one timed item of the reveal. Step is the 1-based operation index
// for EventStep, 0 otherwise. A zero Duration means the event waits for input.
type Event struct {
	Kind     EventKind
	Text     string
	Step     int
	Duration time.Duration
}

// GameSession is the explicit state of a round.
type GameSession struct {
	Difficulty domain.Difficulty
	Profile    domain.Profile
	Puzzle     *domain.Puzzle

	// SkipCountdown drops the "Get Ready!" sequence from the timeline.
	SkipCountdown bool
}

// New starts a session for p. The puzzle's own profile wins over d's preset.
func New(d domain.Difficulty, p *domain.Puzzle) (*GameSession, error) {
	if p == nil {
		return nil, errors.New("session: nil puzzle")
	}
	profile := p.Profile
	if profile.StepDurationMs <= 0 {
		if preset, ok := domain.ProfileFor(d); ok {
			profile.StepDurationMs = preset.StepDurationMs
		}
	}
	return &GameSession{Difficulty: d, Profile: profile, Puzzle: p}, nil
}

// Timeline lists the events shown for the puzzle, in order.
func (s *GameSession) Timeline() []Event {
	step := s.Profile.StepDuration()
	events := make([]Event, 0, len(CountdownLabels)+len(s.Puzzle.Operations)+2)
	if !s.SkipCountdown {
		for _, label := range CountdownLabels {
			events = append(events, Event{Kind: EventCountdown, Text: label, Duration: CountdownStep})
		}
	}
	events = append(events, Event{Kind: EventStart, Text: fmt.Sprintf("Start with %d", s.Puzzle.Start), Duration: step})
	for i, op := range s.Puzzle.Operations {
		events = append(events, Event{Kind: EventStep, Text: domain.Describe(op), Step: i + 1, Duration: step})
	}
	return append(events, Event{Kind: EventPrompt, Text: "What's your final answer?"})
}

// Total is the time the reveal takes before the prompt.
func (s *GameSession) Total() time.Duration {
	var d time.Duration
	for _, ev := range s.Timeline() {
		d += ev.Duration
	}
	return d
}

// Verdict classifies a typed answer.
type Verdict int

const (
	Invalid Verdict = iota
	Correct
	Wrong
)

// Outcome is the result screen's content.
type Outcome struct {
	Verdict Verdict
	Answer  int
	Message string
}

// Check compares the typed answer with the puzzle result.
func (s *GameSession) Check(input string) Outcome {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return Outcome{Verdict: Invalid, Message: "Please enter a valid number."}
	}
	if n == s.Puzzle.Result {
		return Outcome{Verdict: Correct, Answer: n, Message: "Correct!"}
	}
	return Outcome{Verdict: Wrong, Answer: n, Message: fmt.Sprintf("Wrong. Correct answer was %d", s.Puzzle.Result)}
}
