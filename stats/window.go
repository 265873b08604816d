package stats

// durationWindow 帧耗时滑动窗口,固定容量,增量维护总和
//
// Invariant: sum equals the exact sum of all slots after every Push;
// it is adjusted by the delta of the overwritten slot, never recomputed.
type durationWindow struct {
	slots  []float64
	sum    float64
	cursor int
}

func newDurationWindow(capacity int, seed float64) *durationWindow {
	w := &durationWindow{
		slots: make([]float64, capacity),
	}
	for i := range w.slots {
		w.slots[i] = seed
		w.sum += seed
	}
	return w
}

// Push overwrites the oldest slot with dt and advances the cursor.
func (w *durationWindow) Push(dt float64) {
	w.sum += dt - w.slots[w.cursor]
	w.slots[w.cursor] = dt
	w.cursor = (w.cursor + 1) % len(w.slots)
}

// Sum ...
func (w *durationWindow) Sum() float64 {
	return w.sum
}

// Len ...
func (w *durationWindow) Len() int {
	return len(w.slots)
}
