package document

// History keeps immutable snapshots for undo/redo. Because edits never mutate
// a Document, storing the values is enough; no diffing is involved. History
// itself is not safe for concurrent use.
type History struct {
	past    []Document
	present Document
	future  []Document
	limit   int
}

// NewHistory starts a history at doc. A limit <= 0 keeps every snapshot.
func NewHistory(doc Document, limit int) *History {
	return &History{present: doc, limit: limit}
}

// Current returns the present snapshot.
func (h *History) Current() Document {
	return h.present
}

// Push records doc as the new present and clears the redo stack.
func (h *History) Push(doc Document) {
	h.past = append(h.past, h.present)
	if h.limit > 0 && len(h.past) > h.limit {
		h.past = h.past[len(h.past)-h.limit:]
	}
	h.present = doc
	h.future = nil
}

// Apply runs an edit against the present snapshot and records the result
// when the edit succeeds.
func (h *History) Apply(edit func(Document) (Document, error)) (Document, error) {
	next, err := edit(h.present)
	if err != nil {
		return h.present, err
	}
	h.Push(next)
	return next, nil
}

// Undo steps back one snapshot. The boolean is false when there is nothing to
// undo.
func (h *History) Undo() (Document, bool) {
	if len(h.past) == 0 {
		return h.present, false
	}
	last := len(h.past) - 1
	h.future = append(h.future, h.present)
	h.present = h.past[last]
	h.past = h.past[:last]
	return h.present, true
}

// Redo re-applies the most recently undone snapshot.
func (h *History) Redo() (Document, bool) {
	if len(h.future) == 0 {
		return h.present, false
	}
	last := len(h.future) - 1
	h.past = append(h.past, h.present)
	h.present = h.future[last]
	h.future = h.future[:last]
	return h.present, true
}

// CanUndo reports whether Undo would change the present snapshot.
func (h *History) CanUndo() bool { return len(h.past) > 0 }

// CanRedo reports whether Redo would change the present snapshot.
func (h *History) CanRedo() bool { return len(h.future) > 0 }
