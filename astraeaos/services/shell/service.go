package shell

import (
	"context"
	"errors"
	"io"

	"astraea/hal"
)

// ErrReboot is returned by Run after the reboot command reset the machine.
var ErrReboot = errors.New("shell: reboot")

// Input yields key events, parking the caller until one is available.
type Input interface {
	ReadEvent(ctx context.Context) (hal.KeyEvent, error)
}

// Machine is the privileged part of the platform the shell may touch.
type Machine interface {
	DisableInterrupts()
	Reset()
}

// Colors are the packed 0xRRGGBB values used by the shell.
type Colors struct {
	Prompt hal.Color
	Accent hal.Color
	Text   hal.Color
	Error  hal.Color
}

// Options configures the shell's banner and prompt.
type Options struct {
	Product    string
	Version    string
	PromptUser string
	PromptHost string
	Colors     Colors
	Logger     hal.Logger
}

// DefaultOptions returns the stock AstraeaOS look.
func DefaultOptions() Options {
	return Options{
		Product:    "AstraeaOS",
		Version:    "v0.1.1",
		PromptUser: "user",
		PromptHost: "AstraeaOS",
		Colors: Colors{
			Prompt: 0xFF00FF,
			Accent: 0xCC00CC,
			Text:   0xCC00CC,
			Error:  0xCC00CC,
		},
	}
}

// Service is the interactive shell. It owns the editing line, the history
// and the command registry; all of it runs in the caller's goroutine.
type Service struct {
	in   Input
	con  hal.Console
	rng  hal.RNG
	mach Machine
	log  hal.Logger
	opts Options

	reg  *registry
	hist history
	nav  navigator
	line []rune
}

// New builds a shell over the given devices.
func New(in Input, con hal.Console, rng hal.RNG, mach Machine, opts Options) (*Service, error) {
	if in == nil || con == nil {
		return nil, errors.New("shell: input and console are required")
	}
	if rng == nil || mach == nil {
		return nil, errors.New("shell: rng and machine are required")
	}
	s := &Service{
		in:   in,
		con:  con,
		rng:  rng,
		mach: mach,
		log:  opts.Logger,
		opts: opts,
		line: make([]rune, 0, MaxLineLen),
	}
	s.nav.reset()
	if err := s.initRegistry(); err != nil {
		return nil, err
	}
	return s, nil
}

// Run reads and dispatches lines until input ends, ctx is done or the
// machine reboots. End of input returns nil; a reboot returns ErrReboot.
func (s *Service) Run(ctx context.Context) error {
	for {
		line, err := s.readLine(ctx)
		if errors.Is(err, io.EOF) {
			s.logf("shell: input closed")
			return nil
		}
		if err != nil {
			return err
		}

		if err := s.processLine(ctx, line); err != nil {
			if errors.Is(err, ErrReboot) {
				return err
			}
			s.logf("shell: %v", err)
			s.setColor(s.opts.Colors.Error)
			s.writeString(err.Error() + "\n")
		}
	}
}
