package world

import (
	"github.com/df-mc/dunes/server/block/cube"
	"github.com/df-mc/dunes/server/event"
)

// Handler handles events that are called by a world. Implementations of
// Handler may apply custom behaviour to worlds by registering it through
// Config.Handler.
type Handler interface {
	// HandleStructurePlace handles a generated structure, such as a desert
	// well, being placed in the world. pos is the origin of the structure and
	// cause records the chain of objects that led to the placement, root
	// first. ctx.Cancel() prevents the structure from being placed.
	HandleStructurePlace(ctx *event.Context[*World], pos cube.Pos, name string, cause event.Cause)
	// HandleClose handles the world being closed. HandleClose is called before
	// remaining columns are saved, so handlers may still edit the world.
	HandleClose(w *World)
}

// NopHandler implements the Handler interface but does not execute any code
// when an event is called. Handler implementations may embed it to avoid
// having to implement every method.
type NopHandler struct{}

// Compile time check to make sure NopHandler implements Handler.
var _ Handler = NopHandler{}

func (NopHandler) HandleStructurePlace(*event.Context[*World], cube.Pos, string, event.Cause) {}
func (NopHandler) HandleClose(*World)                                                        {}
