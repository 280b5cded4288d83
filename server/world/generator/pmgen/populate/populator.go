package populate

import (
	"github.com/df-mc/dunes/server/world"
	"github.com/df-mc/dunes/server/world/chunk"
	"github.com/df-mc/dunes/server/world/generator/pmgen/rand"
)

// Populator decorates freshly generated chunks with structures and flora.
// Populators run after the terrain of the chunk passed is in place. Reads and
// writes within the chunk go through c directly; writes that cross the chunk
// border go through the world, which buffers them until the neighbouring
// column is generated.
type Populator interface {
	Populate(w *world.World, pos world.ChunkPos, c *chunk.Chunk, r *rand.Random)
}
