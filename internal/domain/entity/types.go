// Package entity pairs a visual representation with a physics body.
package entity

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/leveleditor/internal/domain/view"
)

// EntityID is a unique identifier for an entity within one scene
type EntityID uint32

// Kind identifies the entity variant
type Kind int

const (
	KindBox Kind = iota
	KindEdge
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindBox:
		return "Box"
	case KindEdge:
		return "Edge"
	default:
		return "Unknown"
	}
}

// RenderContext carries the per-frame drawing parameters shared by all entities
type RenderContext struct {
	Projection view.Projection
	LineWidth  float32
}

// Entity is something that owns a body in the physics world and can draw it.
//
// Initialization happens in the variant constructors (NewBox, NewEdge), which
// create the body in the world they are given.
type Entity interface {
	// ID returns the identifier assigned when the entity was added to a List.
	ID() EntityID

	// Kind returns the entity variant.
	Kind() Kind

	// Render draws the entity from the body's live transform.
	Render(screen *ebiten.Image, ctx RenderContext)

	// Active reports whether the entity should stay in its List.
	Active() bool

	// Release destroys the backing body. Calling it twice is a no-op.
	Release()

	setID(id EntityID)
}
