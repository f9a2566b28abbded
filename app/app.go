package app

import (
	"context"
	"errors"
	"fmt"

	"astraea/astraeaos/kernel"
	"astraea/astraeaos/services/shell"
	"astraea/hal"
	"astraea/internal/config"
)

type system struct {
	h   hal.HAL
	cfg config.Config
	log hal.Logger

	pic   *kernel.Controller
	kbd   *kernel.Keyboard
	timer *kernel.Timer
	sh    *shell.Service
}

// machine exposes cli and reset to the shell.
type machine struct {
	pic *kernel.Controller
	h   hal.HAL
}

func (m machine) DisableInterrupts() { m.pic.Disable() }
func (m machine) Reset()             { m.h.Reset() }

// Run boots the OS on h and blocks until the shell exits. End of input
// returns nil; the reboot command returns shell.ErrReboot.
func Run(ctx context.Context, h hal.HAL, cfg config.Config) (err error) {
	s, err := newSystem(h, cfg)
	if err != nil {
		return err
	}
	installPanicHandler(h)
	defer func() {
		if r := recover(); r != nil {
			s.pic.Disable()
			kernel.TriggerPanic(r)
			err = fmt.Errorf("app: panic: %v", r)
		}
	}()
	return s.run(ctx)
}

func newSystem(h hal.HAL, cfg config.Config) (*system, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	con := h.Console()
	if con == nil || h.Keyboard() == nil {
		return nil, errors.New("app: console and keyboard are required")
	}

	pic := kernel.NewController()
	s := &system{
		h:     h,
		cfg:   cfg,
		log:   h.Logger(),
		pic:   pic,
		kbd:   kernel.NewKeyboard(pic),
		timer: kernel.NewTimer(pic, con),
	}

	opts := shell.Options{
		Product:    cfg.Product,
		Version:    cfg.Version,
		PromptUser: cfg.PromptUser,
		PromptHost: cfg.PromptHost,
		Colors: shell.Colors{
			Prompt: hal.Color(cfg.Colors.Prompt),
			Accent: hal.Color(cfg.Colors.Accent),
			Text:   hal.Color(cfg.Colors.Text),
			Error:  hal.Color(cfg.Colors.Error),
		},
		Logger: s.log,
	}
	sh, err := shell.New(s.kbd, con, h.RNG(), machine{pic: pic, h: h}, opts)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	s.sh = sh
	return s, nil
}

func (s *system) run(ctx context.Context) error {
	defer s.kbd.Stop()
	defer s.pic.Disable()

	s.boot()
	err := s.sh.Run(ctx)

	if n := s.kbd.Overruns(); n > 0 {
		s.logf("kbd: %d events dropped on overrun", n)
	}
	switch {
	case err == nil:
		s.logf("astraea: shell exited")
	case errors.Is(err, shell.ErrReboot):
		s.logf("astraea: rebooted")
	default:
		s.logf("astraea: shell: %v", err)
	}
	return err
}

func (s *system) boot() {
	con := s.h.Console()
	con.Clear()
	con.SetColor(hal.Color(s.cfg.Colors.Accent))
	con.WriteString(fmt.Sprintf("%s %s\n", s.cfg.Product, s.cfg.Version))
	s.logf("astraea: booting %s %s", s.cfg.Product, s.cfg.Version)

	if t := s.h.Timer(); t != nil {
		s.timer.Init(t, s.cfg.TimerHz, s.log)
	}

	s.pic.Enable()
	s.kbd.Attach(s.h.Keyboard())
	s.logf("astraea: interrupts enabled")
}

func (s *system) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}
