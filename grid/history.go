package grid

// MaxHistoryDepth bounds how many snapshots a document retains. Memory per
// document never exceeds 2 * MaxHistoryDepth * size^2 cells (undo + redo).
const MaxHistoryDepth = 20

// history is a bounded stack of full cell snapshots, most recent last.
// When full, the oldest snapshot is evicted before a new one is pushed.
type history struct {
	snaps [][]Cell
}

// push stores a deep copy of cells so later edits to the live grid cannot
// reach back into the snapshot.
func (h *history) push(cells []Cell) {
	if len(h.snaps) >= MaxHistoryDepth {
		copy(h.snaps, h.snaps[1:])
		h.snaps = h.snaps[:len(h.snaps)-1]
	}
	h.snaps = append(h.snaps, append([]Cell(nil), cells...))
}

// pop removes and returns the most recent snapshot. ok is false when there
// is nothing stacked.
func (h *history) pop() (snap []Cell, ok bool) {
	if len(h.snaps) == 0 {
		return nil, false
	}
	snap = h.snaps[len(h.snaps)-1]
	h.snaps = h.snaps[:len(h.snaps)-1]
	return snap, true
}

func (h *history) clear() {
	h.snaps = nil
}

func (h *history) depth() int {
	return len(h.snaps)
}
