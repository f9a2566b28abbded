package shell

// navigator walks the history during one editing session. index -1 is the
// live line; larger values are older entries.
type navigator struct {
	index int
}

func (n *navigator) reset() { n.index = -1 }

// up moves toward older entries. ok is false when there is nothing to recall.
func (n *navigator) up(h *history) (line string, ok bool) {
	count := h.count()
	if count == 0 {
		return "", false
	}
	if n.index == -1 {
		n.index = 0
	} else if n.index < count-1 {
		n.index++
	}
	return h.recent(n.index), true
}

// down moves toward the live line, which is always empty on return.
func (n *navigator) down(h *history) (line string, ok bool) {
	switch {
	case n.index == -1:
		return "", false
	case n.index == 0:
		n.index = -1
		return "", true
	default:
		n.index--
		return h.recent(n.index), true
	}
}
