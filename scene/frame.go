package scene

import (
	"fmt"

	"github.com/lixenwraith/vista/vmath"
)

// Frame is a selectable scene panel: a stable id, a content key, and a world
// transform reduced to position plus facing normal. The visual handle (texture,
// shader material) lives with the renderer and is opaque to the core
type Frame struct {
	ID       string // Stable selection id
	Key      string // Content registry lookup key
	Position vmath.Vec3
	Normal   vmath.Vec3 // Unit vector on the viewer-facing side
}

// Seed derives a deterministic per-frame seed from the stable id (FNV-1a)
// Portal particle configuration keyed on this stays reproducible regardless
// of creation order
func (f *Frame) Seed() uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	h := uint64(offset64)
	for i := 0; i < len(f.ID); i++ {
		h ^= uint64(f.ID[i])
		h *= prime64
	}
	return h
}

// Arena owns the frame set, indexed by stable id with deterministic iteration
// order. Mutation happens at scene construction; lookups are read-only after
type Arena struct {
	frames map[string]*Frame
	order  []string
}

// NewArena creates an empty frame arena
func NewArena() *Arena {
	return &Arena{
		frames: make(map[string]*Frame),
	}
}

// Add inserts a frame; normals are normalized on entry
func (a *Arena) Add(f Frame) error {
	if f.ID == "" {
		return fmt.Errorf("frame id must not be empty")
	}
	if _, exists := a.frames[f.ID]; exists {
		return fmt.Errorf("duplicate frame id %q", f.ID)
	}

	f.Normal = vmath.V3Normalize(f.Normal)
	a.frames[f.ID] = &f
	a.order = append(a.order, f.ID)
	return nil
}

// Get returns the frame for id, or false when unknown
func (a *Arena) Get(id string) (*Frame, bool) {
	f, ok := a.frames[id]
	return f, ok
}

// All returns frames in insertion order
func (a *Arena) All() []*Frame {
	out := make([]*Frame, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, a.frames[id])
	}
	return out
}

// Len returns the number of frames
func (a *Arena) Len() int {
	return len(a.order)
}
