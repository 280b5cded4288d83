package populate

import (
	"github.com/df-mc/dunes/server/world"
	"github.com/df-mc/dunes/server/world/chunk"
	"github.com/df-mc/dunes/server/world/generator/pmgen/rand"
)

// DeadBush scatters dead bushes across desert sand.
type DeadBush struct {
	// Amount is the base number of placement attempts per chunk.
	Amount int
}

func (t DeadBush) Populate(_ *world.World, _ world.ChunkPos, c *chunk.Chunk, r *rand.Random) {
	sandRID, bushRID := world.BlockRuntimeID(sand), world.BlockRuntimeID(deadBush)

	amount := r.Int31n(2) + int32(t.Amount)
	for i := int32(0); i < amount; i++ {
		x, z := uint8(r.Int31n(16)), uint8(r.Int31n(16))
		y := c.Highest(x, z)
		if y < 0 || y+1 >= chunk.Height || c.Block(x, y, z) != sandRID {
			continue
		}
		c.SetBlock(x, y+1, z, bushRID)
	}
}
