package shell

import (
	"context"
	"errors"
)

func registerCoreCommands(r *registry) error {
	for _, cmd := range []command{
		{Name: "help", Desc: "List all available commands", Run: cmdHelp},
		{Name: "echo", Desc: "Print text to the terminal", Run: cmdEcho},
		{Name: "clear", Desc: "Clear the terminal", Run: cmdClear},
	} {
		if err := r.register(cmd); err != nil {
			return err
		}
	}
	return nil
}

func cmdHelp(_ context.Context, s *Service, _ string) error {
	if s.reg == nil {
		return errors.New("help: no registry")
	}
	s.writeString("Available commands:\n")
	for _, cmd := range s.reg.commands() {
		s.writeString(" - " + cmd.Name + ": " + cmd.Desc + "\n")
	}
	return nil
}

func cmdEcho(_ context.Context, s *Service, arg string) error {
	// No argument still produces one (empty) line.
	s.writeString(arg + "\n")
	return nil
}

func cmdClear(_ context.Context, s *Service, _ string) error {
	s.con.Clear()
	return nil
}
