package shell

import (
	"context"
	"math"
	"strconv"

	"astraea/hal"
)

func registerSysCommands(r *registry) error {
	for _, cmd := range []command{
		{Name: "reboot", Desc: "Reboot the system", Run: cmdReboot},
		{Name: "rng", Desc: "Print a randomly generated number", Run: cmdRNG},
		{Name: "info", Desc: "Prints information about the OS and system", Run: cmdInfo},
	} {
		if err := r.register(cmd); err != nil {
			return err
		}
	}
	return nil
}

func cmdReboot(_ context.Context, s *Service, _ string) error {
	s.writeString("Rebooting system...\n")
	s.logf("shell: reboot requested")
	s.mach.DisableInterrupts()
	s.mach.Reset()
	return ErrReboot
}

func cmdRNG(_ context.Context, s *Service, _ string) error {
	// Non-negative like C rand().
	s.writeString(strconv.Itoa(s.rng.Int() & math.MaxInt))
	return nil
}

var logo = [...]string{
	"         .8.           ",
	"        .888.          ",
	"       :88888.         ",
	"      . `88888.       ",
	"     .8. `88888.      ",
	"    .8`8. `88888.     ",
	"   .8' `8. `88888.    ",
	"  .8'   `8. `88888.   ",
	" .888888888. `88888.  ",
	".8'       `8. `88888.",
}

func cmdInfo(_ context.Context, s *Service, _ string) error {
	for i, row := range logo {
		shade := logoShade(i * 2)
		s.setColor(shade)
		s.writeString("\n" + row)

		var label string
		switch i {
		case 0:
			label = s.opts.Product
		case 2:
			label = "Version " + s.opts.Version
		}
		if label != "" {
			s.setColor(s.opts.Colors.Accent)
			s.writeString(label)
			s.setColor(shade)
		}
	}
	s.writeString("\n")
	return nil
}

// logoShade fades from magenta toward violet as step grows.
func logoShade(step int) hal.Color {
	r := 0xFF - 8*step
	if r < 0x40 {
		r = 0x40
	}
	return hal.Color(uint32(r)<<16 | 0xFF)
}
