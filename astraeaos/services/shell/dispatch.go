package shell

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"
)

// splitCommand returns the first whitespace-delimited token and everything
// after the single whitespace rune that ends it. Spacing inside the argument
// is preserved.
func splitCommand(line string) (name, arg string) {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	_, w := utf8.DecodeRuneInString(line[i:])
	return line[:i], line[i+w:]
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// processLine stores and dispatches a completed line.
func (s *Service) processLine(ctx context.Context, line string) error {
	if isBlank(line) {
		s.writeString("\n")
		return nil
	}
	s.hist.add(line)

	s.setColor(s.opts.Colors.Accent)
	s.writeString("\n")
	return s.dispatch(ctx, line)
}

func (s *Service) dispatch(ctx context.Context, line string) error {
	name, arg := splitCommand(line)
	cmd, ok := s.reg.lookup(name)
	if !ok {
		s.logf("shell: unknown command %q", name)
		s.setColor(s.opts.Colors.Error)
		s.writeString("Unknown command: " + name + "\n")
		return nil
	}
	s.setColor(s.opts.Colors.Text)
	return cmd.Run(ctx, s, arg)
}
