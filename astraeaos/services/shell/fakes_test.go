package shell

import (
	"context"
	"io"
	"strings"
	"testing"

	"astraea/hal"
)

type fakeConsole struct {
	out     strings.Builder
	colors  []hal.Color
	clears  int
	visible bool
}

func (c *fakeConsole) WriteString(s string)   { c.out.WriteString(s) }
func (c *fakeConsole) PutRune(r rune)         { c.out.WriteRune(r) }
func (c *fakeConsole) SetColor(col hal.Color) { c.colors = append(c.colors, col) }
func (c *fakeConsole) ToggleCursor()          { c.visible = !c.visible }
func (c *fakeConsole) CursorVisible() bool    { return c.visible }
func (c *fakeConsole) Clear()                 { c.clears++ }

type scriptInput struct {
	events []hal.KeyEvent
}

func (in *scriptInput) ReadEvent(ctx context.Context) (hal.KeyEvent, error) {
	if err := ctx.Err(); err != nil {
		return hal.KeyEvent{}, err
	}
	if len(in.events) == 0 {
		return hal.KeyEvent{}, io.EOF
	}
	ev := in.events[0]
	in.events = in.events[1:]
	return ev, nil
}

type fixedRNG int

func (r fixedRNG) Int() int { return int(r) }

type fakeMachine struct {
	disabled bool
	resets   int
}

func (m *fakeMachine) DisableInterrupts() { m.disabled = true }
func (m *fakeMachine) Reset()             { m.resets++ }

// typed turns text into key events; '\n' is Enter.
func typed(s string) []hal.KeyEvent {
	var evs []hal.KeyEvent
	for _, r := range s {
		if r == '\n' {
			evs = append(evs, hal.KeyEvent{Code: hal.KeyEnter})
			continue
		}
		evs = append(evs, hal.KeyEvent{Rune: r})
	}
	return evs
}

func key(code hal.KeyCode) hal.KeyEvent { return hal.KeyEvent{Code: code} }

func newTestService(t *testing.T, events ...hal.KeyEvent) (*Service, *fakeConsole, *fakeMachine) {
	t.Helper()
	con := &fakeConsole{visible: true}
	mach := &fakeMachine{}
	s, err := New(&scriptInput{events: events}, con, fixedRNG(1804289383), mach, DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, con, mach
}

// runScript runs the shell over events and returns everything printed.
func runScript(t *testing.T, events ...hal.KeyEvent) (string, *Service) {
	t.Helper()
	s, con, _ := newTestService(t, events...)
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() = %v; want nil", err)
	}
	return con.out.String(), s
}

const testPrompt = "\nuser@AstraeaOS $ "
