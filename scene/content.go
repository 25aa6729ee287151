package scene

// ContentRegistry is the external collaborator tracking which content entry is
// marked active. The camera state machine calls ClearActiveMarkers exactly once
// per completed zoom-out; selection calls SetActiveByKey with the clicked
// frame's key. A -1 result is a non-fatal miss, never an error
type ContentRegistry interface {
	SetActiveByKey(key string) int
	ClearActiveMarkers()
}

// MemoryContent is a self-contained ContentRegistry used by the frontends and
// tests; the document-backed source of the original system stays out of scope
type MemoryContent struct {
	keys   []string
	active int
}

// NewMemoryContent creates a registry over an ordered key list
func NewMemoryContent(keys ...string) *MemoryContent {
	return &MemoryContent{
		keys:   keys,
		active: -1,
	}
}

// SetActiveByKey marks the entry for key active and returns its index, or -1
// when the key is unknown (the previous marker is kept in that case)
func (m *MemoryContent) SetActiveByKey(key string) int {
	for i, k := range m.keys {
		if k == key {
			m.active = i
			return i
		}
	}
	return -1
}

// ClearActiveMarkers resets the active entry
func (m *MemoryContent) ClearActiveMarkers() {
	m.active = -1
}

// ActiveIndex returns the currently active entry index, or -1
func (m *MemoryContent) ActiveIndex() int {
	return m.active
}
