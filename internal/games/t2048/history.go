package t2048

// state is one undo entry: the session as it was before a move.
type state struct {
	board   Board
	score   int
	maxTile Tile
}

// history is a last-in-first-out stack of undo entries.
// Entries are never modified once pushed.
type history struct {
	states []state
}

func (h *history) push(s state) {
	h.states = append(h.states, s)
}

func (h *history) pop() (state, bool) {
	n := len(h.states)
	if n == 0 {
		return state{}, false
	}
	s := h.states[n-1]
	h.states = h.states[:n-1]
	return s, true
}

func (h *history) peek() (state, bool) {
	n := len(h.states)
	if n == 0 {
		return state{}, false
	}
	return h.states[n-1], true
}

func (h *history) len() int {
	return len(h.states)
}

func (h *history) clear() {
	h.states = h.states[:0]
}
