package shell

const (
	// HistorySize is the number of lines kept for recall.
	HistorySize = 10
	// MaxEntryLen bounds a stored history entry, in runes.
	MaxEntryLen = 255
)

// history is a bounded FIFO of past lines, oldest first.
type history struct {
	entries []string
}

// add stores line unless it repeats the newest entry. Callers never pass
// blank lines.
func (h *history) add(line string) {
	if r := []rune(line); len(r) > MaxEntryLen {
		line = string(r[:MaxEntryLen])
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return
	}
	if len(h.entries) < HistorySize {
		h.entries = append(h.entries, line)
		return
	}
	copy(h.entries, h.entries[1:])
	h.entries[HistorySize-1] = line
}

func (h *history) count() int { return len(h.entries) }

// recent returns the entry index steps back from the newest (0 = newest).
func (h *history) recent(index int) string {
	return h.entries[len(h.entries)-1-index]
}
