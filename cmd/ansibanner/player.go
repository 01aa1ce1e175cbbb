package main

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg struct{}

func tick(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg { return tickMsg{} })
}

// player shows precomputed frames at a fixed rate until a key is pressed
// or, when not looping, the last frame has been shown.
type player struct {
	frames []string
	delay  time.Duration
	loop   bool
	index  int
}

func (p player) Init() tea.Cmd {
	return tick(p.delay)
}

func (p player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c", " ", "enter":
			return p, tea.Quit
		}
	case tickMsg:
		if p.index == len(p.frames)-1 && !p.loop {
			return p, tea.Quit
		}
		p.index = (p.index + 1) % len(p.frames)
		return p, tick(p.delay)
	}
	return p, nil
}

func (p player) View() string {
	return p.frames[p.index] + "\n"
}

// play runs the frames in an interactive program on out.
func play(ctx context.Context, frames []string, delay time.Duration, loop bool, in io.Reader, out io.Writer) error {
	if len(frames) == 0 {
		return nil
	}
	prog := tea.NewProgram(
		player{frames: frames, delay: delay, loop: loop},
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	_, err := prog.Run()
	return err
}

// writeFrames prints every frame in order, for output that is not a
// terminal.
func writeFrames(out io.Writer, frames []string) error {
	for _, f := range frames {
		if _, err := io.WriteString(out, f+"\n"); err != nil {
			return err
		}
	}
	return nil
}
