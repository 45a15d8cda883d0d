package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/braincruncher/internal/domain"
	"svw.info/braincruncher/internal/session"
)

func samplePuzzle() (*domain.Puzzle, *domain.Solution) {
	pz := &domain.Puzzle{
		Difficulty: domain.Easy,
		Profile:    domain.Profile{ValueLimit: 50, DivisorLimit: 10},
		Seed:       1234567,
		Start:      12,
		Operations: []domain.Operation{{Kind: domain.Add, Operand: 5}, {Kind: domain.Subtract, Operand: 15}},
		Result:     2,
	}
	return pz, &domain.Solution{Trace: []int{12, 17, 2}, Result: 2}
}

func TestBar(t *testing.T) {
	assert.Equal(t, "[..........]", Bar(0, 4, 10))
	assert.Equal(t, "[#####.....]", Bar(2, 4, 10))
	assert.Equal(t, "[##########]", Bar(9, 4, 10))
	assert.Equal(t, "[....]", Bar(1, 0, 4))
}

func TestShowAndProgress(t *testing.T) {
	var out bytes.Buffer
	p := New(&out, strings.NewReader(""))

	p.Show(session.Event{Kind: session.EventCountdown, Text: "3"})
	p.Progress(session.Event{Kind: session.EventCountdown, Text: "3"}, 1, 2)
	step := session.Event{Kind: session.EventStep, Text: "Multiply by 4", Step: 1}
	p.Show(step)
	p.Progress(step, 2, 2)
	p.Show(session.Event{Kind: session.EventPrompt, Text: "What's your final answer?"})

	s := out.String()
	assert.Contains(t, s, "\n  3")
	assert.Contains(t, s, "\rMultiply by 4")
	assert.Contains(t, s, "["+strings.Repeat("#", barWidth)+"]")
	assert.True(t, strings.HasSuffix(s, "What's your final answer? "))
	assert.Equal(t, 1, strings.Count(s, "["), "countdown must not draw a bar")
}

func TestReadAnswer(t *testing.T) {
	p := New(&bytes.Buffer{}, strings.NewReader("42\r\nlast"))
	got, err := p.ReadAnswer()
	require.NoError(t, err)
	assert.Equal(t, "42", got)

	got, err = p.ReadAnswer()
	require.NoError(t, err)
	assert.Equal(t, "last", got)

	_, err = p.ReadAnswer()
	assert.Error(t, err)
}

func TestOutcomeShowsTraceOnlyWhenWrong(t *testing.T) {
	pz, sol := samplePuzzle()

	var out bytes.Buffer
	New(&out, nil).Outcome(session.Outcome{Verdict: session.Correct, Message: "Correct!"}, pz, sol)
	assert.Equal(t, "\nCorrect!\n", out.String())

	out.Reset()
	New(&out, nil).Outcome(session.Outcome{Verdict: session.Wrong, Message: "Wrong. Correct answer was 2"}, pz, sol)
	assert.Contains(t, out.String(), "Add 5")
	assert.Contains(t, out.String(), "= 17")
	assert.Contains(t, out.String(), "Subtract 15")
}

func TestPuzzleAndProfiles(t *testing.T) {
	pz, sol := samplePuzzle()
	var out bytes.Buffer
	p := New(&out, nil)

	p.Puzzle(pz, sol)
	assert.Contains(t, out.String(), "difficulty: easy")
	assert.Contains(t, out.String(), "seed:       1234567\n")
	assert.Contains(t, out.String(), "result:     2")

	out.Reset()
	p.Profiles()
	for _, want := range []string{"easy", "medium", "hard", "499", "1.5s"} {
		assert.Contains(t, out.String(), want)
	}

	out.Reset()
	p.List(nil)
	assert.Equal(t, "no saved puzzles\n", out.String())

	out.Reset()
	p.List([]domain.PuzzleMeta{{ID: "abc", Difficulty: domain.Hard, Steps: 12}})
	assert.Contains(t, out.String(), "abc")
	assert.Contains(t, out.String(), "hard")
}
