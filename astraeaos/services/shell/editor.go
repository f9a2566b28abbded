package shell

import (
	"context"
	"strings"

	"astraea/hal"
)

// MaxLineLen is the capacity of the editing line; one slot stays reserved,
// so at most MaxLineLen-1 runes are accepted.
const MaxLineLen = 255

const eraseSeq = "\b \b"

// readLine runs one editing session and returns the completed line.
func (s *Service) readLine(ctx context.Context) (string, error) {
	s.line = s.line[:0]
	s.nav.reset()
	s.prompt()

	for {
		ev, err := s.in.ReadEvent(ctx)
		if err != nil {
			return "", err
		}
		if s.handleKey(ev) {
			return string(s.line), nil
		}
	}
}

// handleKey applies one event to the session and reports whether the line
// is complete.
func (s *Service) handleKey(ev hal.KeyEvent) bool {
	switch ev.Code {
	case hal.KeyEnter:
		return true
	case hal.KeyBackspace:
		s.backspace()
	case hal.KeyUp:
		if line, ok := s.nav.up(&s.hist); ok {
			s.replaceLine(line)
		}
	case hal.KeyDown:
		if line, ok := s.nav.down(&s.hist); ok {
			s.replaceLine(line)
		}
	default:
		if ev.Printable() {
			s.insertRune(ev.Rune)
		}
	}
	return false
}

func (s *Service) backspace() {
	if len(s.line) == 0 {
		return
	}
	s.line = s.line[:len(s.line)-1]
	s.writeString(eraseSeq)
}

func (s *Service) insertRune(r rune) {
	if len(s.line) >= MaxLineLen-1 {
		return
	}
	s.line = append(s.line, r)
	s.con.PutRune(r)
}

// replaceLine erases everything currently shown, then redraws the prompt
// and the recalled content.
func (s *Service) replaceLine(line string) {
	if n := len(s.line); n > 0 {
		s.writeString(strings.Repeat(eraseSeq, n))
	}
	s.line = append(s.line[:0], []rune(line)...)
	s.prompt()
	if line != "" {
		s.writeString(line)
	}
}
