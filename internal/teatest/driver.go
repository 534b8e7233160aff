// Package teatest drives bubbletea models synchronously in tests.
//
// A Driver calls Update directly and runs each returned Cmd inline, feeding
// its message back into the model until no Cmds remain. Cmds that block
// (timers, tickers) are abandoned after a short timeout.
package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDepth bounds Cmd chains so a self-scheduling model cannot hang a test.
const MaxDepth = 100

// cmdTimeout separates message factories and DB loads, which return almost
// immediately, from timer-driven Cmds.
const cmdTimeout = 50 * time.Millisecond

// Driver owns a model and the messages flowing through it.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once the model returns tea.Quit.
	Quitting bool

	// Messages records every message delivered to Update, in order.
	Messages []tea.Msg
}

type Option func(*Driver)

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(width, height int) Option {
	return func(d *Driver) {
		d.deliver(tea.WindowSizeMsg{Width: width, Height: height})
	}
}

func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Start runs the model's Init Cmd to completion.
func (d *Driver) Start() {
	d.T.Helper()
	d.run(d.Model.Init(), 0)
}

// Send delivers msg and runs every resulting Cmd.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	d.run(d.deliver(msg), 0)
}

// Press sends a single rune key.
func (d *Driver) Press(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// PressType sends a non-rune key such as tea.KeyDown.
func (d *Driver) PressType(k tea.KeyType) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: k})
}

func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) deliver(msg tea.Msg) tea.Cmd {
	d.Messages = append(d.Messages, msg)
	next, cmd := d.Model.Update(msg)
	d.Model = next
	return cmd
}

func (d *Driver) run(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDepth {
		d.T.Logf("teatest: stopped after %d chained commands", MaxDepth)
		return
	}

	msg, ok := call(cmd)
	if !ok || msg == nil {
		return
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			d.run(sub, depth+1)
		}
	case tea.QuitMsg:
		d.Quitting = true
	default:
		d.run(d.deliver(msg), depth+1)
	}
}

// call runs cmd, giving up after cmdTimeout.
func call(cmd tea.Cmd) (tea.Msg, bool) {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg, true
	case <-time.After(cmdTimeout):
		return nil, false
	}
}
