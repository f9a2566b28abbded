package shell

import (
	"fmt"

	"astraea/hal"
)

func (s *Service) writeString(str string) {
	s.con.WriteString(str)
}

func (s *Service) setColor(c hal.Color) {
	s.con.SetColor(c)
}

// prompt prints "\n<user>@<host> $ " and leaves the prompt color set for
// typed input.
func (s *Service) prompt() {
	c := s.opts.Colors
	s.setColor(c.Prompt)
	s.writeString("\n" + s.opts.PromptUser)
	s.setColor(c.Accent)
	s.writeString("@")
	s.setColor(c.Prompt)
	s.writeString(s.opts.PromptHost)
	s.setColor(c.Accent)
	s.writeString(" $ ")
	s.setColor(c.Prompt)
}

func (s *Service) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}
