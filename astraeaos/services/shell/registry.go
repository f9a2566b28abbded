package shell

import (
	"context"
	"fmt"
	"strings"
)

type cmdFunc func(ctx context.Context, s *Service, arg string) error

type command struct {
	Name string
	Desc string
	Run  cmdFunc
}

// registry keeps commands in registration order; help lists them that way.
type registry struct {
	cmds []command
}

func newRegistry() *registry {
	return &registry{}
}

func (r *registry) register(cmd command) error {
	if cmd.Name == "" || strings.ContainsAny(cmd.Name, " \t") {
		return fmt.Errorf("shell registry: invalid command name %q", cmd.Name)
	}
	if cmd.Run == nil {
		return fmt.Errorf("shell registry: %q has no handler", cmd.Name)
	}
	if _, ok := r.lookup(cmd.Name); ok {
		return fmt.Errorf("shell registry: duplicate command %q", cmd.Name)
	}
	r.cmds = append(r.cmds, cmd)
	return nil
}

// lookup is exact and case-sensitive; the first registered match wins.
func (r *registry) lookup(name string) (command, bool) {
	for _, cmd := range r.cmds {
		if cmd.Name == name {
			return cmd, true
		}
	}
	return command{}, false
}

func (r *registry) commands() []command {
	return r.cmds
}
