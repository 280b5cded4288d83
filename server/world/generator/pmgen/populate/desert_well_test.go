package populate

import (
	"testing"

	"github.com/df-mc/dunes/server/block"
	"github.com/df-mc/dunes/server/block/cube"
	"github.com/df-mc/dunes/server/event"
	"github.com/df-mc/dunes/server/world"
	"github.com/df-mc/dunes/server/world/chunk"
	"github.com/df-mc/dunes/server/world/generator/pmgen/rand"
)

// flatSandChunk returns a chunk with a flat sand surface at y=40 over
// sandstone.
func flatSandChunk() *chunk.Chunk {
	c := chunk.New(world.BlockRuntimeID(block.Air{}))
	sandRID, sandstoneRID := world.BlockRuntimeID(sand), world.BlockRuntimeID(sandstone)
	for x := uint8(0); x < chunk.Width; x++ {
		for z := uint8(0); z < chunk.Width; z++ {
			for y := int16(0); y < 40; y++ {
				c.SetBlock(x, y, z, sandstoneRID)
			}
			c.SetBlock(x, 40, z, sandRID)
		}
	}
	return c
}

type recordingHandler struct {
	world.NopHandler
	cancel bool

	name  string
	pos   cube.Pos
	cause event.Cause
	calls int
}

func (h *recordingHandler) HandleStructurePlace(ctx *event.Context[*world.World], pos cube.Pos, name string, cause event.Cause) {
	h.calls++
	h.name, h.pos, h.cause = name, pos, cause
	if h.cancel {
		ctx.Cancel()
	}
}

func countRID(c *chunk.Chunk, rid uint32) int {
	n := 0
	for x := uint8(0); x < chunk.Width; x++ {
		for z := uint8(0); z < chunk.Width; z++ {
			for y := int16(0); y < chunk.Height; y++ {
				if c.Block(x, y, z) == rid {
					n++
				}
			}
		}
	}
	return n
}

func TestDesertWellConfigDefaults(t *testing.T) {
	if d := (DesertWellConfig{}).New(); d.chance != 1000 {
		t.Fatalf("expected default chance of 1000, got %v", d.chance)
	}
	if d := (DesertWellConfig{Chance: -5}).New(); d.chance != 1000 {
		t.Fatalf("expected invalid chance to fall back to 1000, got %v", d.chance)
	}
	if d := (DesertWellConfig{Chance: 50}).New(); d.chance != 50 {
		t.Fatalf("expected chance of 50 to be kept, got %v", d.chance)
	}
}

func TestDesertWellPlaces(t *testing.T) {
	h := &recordingHandler{}
	w := world.Config{Handler: h}.New()
	defer w.Close()

	c := flatSandChunk()
	pos := world.ChunkPos{2, -1}
	d := DesertWellConfig{Chance: 1}.New()
	d.Populate(w, pos, c, rand.NewRandom(1))

	if h.calls != 1 {
		t.Fatalf("expected exactly one structure place event, got %v", h.calls)
	}
	if h.name != StructureDesertWell {
		t.Fatalf("expected structure name %q, got %q", StructureDesertWell, h.name)
	}
	if got := world.ChunkPosFromBlockPos(h.pos); got != pos {
		t.Fatalf("expected well origin inside chunk %v, got origin %v", pos, h.pos)
	}

	// The water cross is 5 blocks, the rim and roof hold 37 slabs and the
	// foundation, corners, pillars and roof corners add up to 70 sandstone
	// blocks beyond the terrain.
	if got := countRID(c, world.BlockRuntimeID(water)); got != 5 {
		t.Fatalf("expected 5 water blocks, got %v", got)
	}
	if got := countRID(c, world.BlockRuntimeID(slab)); got != 37 {
		t.Fatalf("expected 37 slab blocks, got %v", got)
	}
}

func TestDesertWellCause(t *testing.T) {
	h := &recordingHandler{}
	w := world.Config{Handler: h}.New()
	defer w.Close()

	pos := world.ChunkPos{0, 0}
	d := DesertWellConfig{Chance: 1}.New()
	d.Populate(w, pos, flatSandChunk(), rand.NewRandom(7))

	if h.cause.Empty() {
		t.Fatalf("expected a cause chain on the structure place event")
	}
	root, _ := h.cause.Root()
	if root != pos {
		t.Fatalf("expected chunk position as root cause, got %v", root)
	}
	if _, ok := event.First[DesertWell](h.cause); !ok {
		t.Fatalf("expected the populator in the cause chain")
	}
	origin, ok := event.Last[cube.Pos](h.cause)
	if !ok || origin != h.pos {
		t.Fatalf("expected well origin %v as most immediate cause, got %v", h.pos, origin)
	}
}

func TestDesertWellCancelled(t *testing.T) {
	h := &recordingHandler{cancel: true}
	w := world.Config{Handler: h}.New()
	defer w.Close()

	c := flatSandChunk()
	d := DesertWellConfig{Chance: 1}.New()
	d.Populate(w, world.ChunkPos{0, 0}, c, rand.NewRandom(1))

	if h.calls != 1 {
		t.Fatalf("expected the event to be called, got %v calls", h.calls)
	}
	if got := countRID(c, world.BlockRuntimeID(water)); got != 0 {
		t.Fatalf("expected no water after cancellation, got %v", got)
	}
}

func TestDesertWellRequiresFlatSand(t *testing.T) {
	h := &recordingHandler{}
	w := world.Config{Handler: h}.New()
	defer w.Close()

	c := flatSandChunk()
	// Disturb the surface so no 5x5 area is flat sand.
	sandstoneRID := world.BlockRuntimeID(sandstone)
	for x := uint8(0); x < chunk.Width; x += 2 {
		for z := uint8(0); z < chunk.Width; z += 2 {
			c.SetBlock(x, 41, z, sandstoneRID)
		}
	}

	d := DesertWellConfig{Chance: 1}.New()
	d.Populate(w, world.ChunkPos{0, 0}, c, rand.NewRandom(1))

	if h.calls != 0 {
		t.Fatalf("expected no placement on uneven terrain, got %v calls", h.calls)
	}
}

func TestDesertWellChanceZeroAttemptsNothing(t *testing.T) {
	h := &recordingHandler{}
	w := world.Config{Handler: h}.New()
	defer w.Close()

	// With the default chance of 1000 a placement roll of 0 is required; a
	// seed whose first roll is non-zero must not attempt placement.
	d := DesertWellConfig{}.New()
	r := rand.NewRandom(3)
	if r.Int31n(1000) == 0 {
		t.Skip("seed rolls a well on the first attempt")
	}
	d.Populate(w, world.ChunkPos{0, 0}, flatSandChunk(), rand.NewRandom(3))
	if h.calls != 0 {
		t.Fatalf("expected no placement, got %v calls", h.calls)
	}
}
