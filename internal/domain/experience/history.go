package experience

import "sort"

// History holds the finalized sessions of one server, oldest first
type History []*Session

// Find returns the finalized session with exactly the given name
func (h History) Find(name string) *Session {
	for _, s := range h {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Has reports whether a session name is already taken
func (h History) Has(name string) bool {
	return h.Find(name) != nil
}

// Names lists session names in finalization order
func (h History) Names() []string {
	names := make([]string, len(h))
	for i, s := range h {
		names[i] = s.Name
	}
	return names
}

// SortByFinalized orders sessions by finalization time, oldest first.
// Sessions with the same timestamp fall back to name order.
func (h History) SortByFinalized() {
	sort.SliceStable(h, func(i, j int) bool {
		a, b := h[i].FinalizedAt, h[j].FinalizedAt
		switch {
		case a == nil && b == nil:
			return h[i].Name < h[j].Name
		case a == nil:
			return true
		case b == nil:
			return false
		case a.Equal(*b):
			return h[i].Name < h[j].Name
		}
		return a.Before(*b)
	})
}
