package terminal

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"svw.info/braincruncher/internal/domain"
	"svw.info/braincruncher/internal/session"
)

const barWidth = 40

// Presenter draws a round on a line-oriented terminal.
type Presenter struct {
	out     io.Writer
	in      *bufio.Reader
	printer *message.Printer
}

func New(out io.Writer, in io.Reader) *Presenter {
	return &Presenter{
		out:     out,
		in:      bufio.NewReader(in),
		printer: message.NewPrinter(language.English),
	}
}

// Show starts a new line for the event.
func (p *Presenter) Show(ev session.Event) {
	switch ev.Kind {
	case session.EventCountdown:
		p.printer.Fprintf(p.out, "\n  %s", ev.Text)
	case session.EventPrompt:
		p.printer.Fprintf(p.out, "\n\n%s ", ev.Text)
	default:
		p.printer.Fprintf(p.out, "\n%s", ev.Text)
	}
}

// Progress redraws the bar for timed steps; countdowns stay bare.
func (p *Presenter) Progress(ev session.Event, done, total int) {
	if ev.Kind != session.EventStart && ev.Kind != session.EventStep {
		return
	}
	p.printer.Fprintf(p.out, "\r%-24s %s", ev.Text, Bar(done, total, barWidth))
}

// Bar renders done/total as a fixed-width [###...] bar.
func Bar(done, total, width int) string {
	if total <= 0 {
		return "[" + strings.Repeat(".", width) + "]"
	}
	done = max(0, min(done, total))
	filled := done * width / total
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

// ReadAnswer returns the next input line without its newline.
func (p *Presenter) ReadAnswer() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Outcome prints the verdict, and the worked steps when the answer was wrong.
func (p *Presenter) Outcome(o session.Outcome, pz *domain.Puzzle, sol *domain.Solution) {
	p.printer.Fprintf(p.out, "\n%s\n", o.Message)
	if o.Verdict == session.Wrong && sol != nil {
		p.Trace(pz, sol)
	}
}

// Trace prints each step with the running value after it.
func (p *Presenter) Trace(pz *domain.Puzzle, sol *domain.Solution) {
	p.printer.Fprintf(p.out, "  %-18s = %d\n", "Start", pz.Start)
	for i, op := range pz.Operations {
		if i+1 >= len(sol.Trace) {
			break
		}
		p.printer.Fprintf(p.out, "  %-18s = %d\n", domain.Describe(op), sol.Trace[i+1])
	}
}

// Puzzle prints a puzzle header followed by its trace.
func (p *Presenter) Puzzle(pz *domain.Puzzle, sol *domain.Solution) {
	if pz.ID != "" {
		p.printer.Fprintf(p.out, "id:         %s\n", pz.ID)
	}
	p.printer.Fprintf(p.out, "difficulty: %s\n", pz.Difficulty)
	p.printer.Fprintf(p.out, "limits:     value ≤ %d, divisor ≤ %d\n", pz.Profile.ValueLimit, pz.Profile.DivisorLimit)
	if pz.Seed != 0 {
		// raw digits so the seed can be pasted back into --seed
		p.printer.Fprintf(p.out, "seed:       %s\n", strconv.FormatInt(pz.Seed, 10))
	}
	if pz.Fallback {
		p.printer.Fprintf(p.out, "fallback:   true\n")
	}
	p.printer.Fprintf(p.out, "steps:      %d\n", len(pz.Operations))
	p.Trace(pz, sol)
	p.printer.Fprintf(p.out, "result:     %d\n", pz.Result)
}

// List prints saved puzzle metadata one per line.
func (p *Presenter) List(metas []domain.PuzzleMeta) {
	if len(metas) == 0 {
		p.printer.Fprintf(p.out, "no saved puzzles\n")
		return
	}
	for _, m := range metas {
		name := m.Name
		if name == "" {
			name = "-"
		}
		p.printer.Fprintf(p.out, "%-36s  %-7s  %2d steps  %s\n", m.ID, m.Difficulty, m.Steps, name)
	}
}

// Profiles prints the named presets.
func (p *Presenter) Profiles() {
	p.printer.Fprintf(p.out, "%-7s  %10s  %12s  %8s\n", "level", "valueLimit", "divisorLimit", "step")
	for _, d := range domain.Levels() {
		prof, _ := domain.ProfileFor(d)
		p.printer.Fprintf(p.out, "%-7s  %10d  %12d  %8v\n", d, prof.ValueLimit, prof.DivisorLimit, prof.StepDuration())
	}
}
