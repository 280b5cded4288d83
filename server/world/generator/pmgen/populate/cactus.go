package populate

import (
	"github.com/df-mc/dunes/server/world"
	"github.com/df-mc/dunes/server/world/chunk"
	"github.com/df-mc/dunes/server/world/generator/pmgen/rand"
)

// Cactus scatters cacti of one to three blocks tall across desert sand.
type Cactus struct {
	// Amount is the base number of placement attempts per chunk.
	Amount int
}

func (t Cactus) Populate(_ *world.World, _ world.ChunkPos, c *chunk.Chunk, r *rand.Random) {
	sandRID, airRID := world.BlockRuntimeID(sand), c.Air()
	cactusRID := world.BlockRuntimeID(cactus)

	amount := r.Int31n(2) + int32(t.Amount)
	for i := int32(0); i < amount; i++ {
		x, z := uint8(r.Int31n(16)), uint8(r.Int31n(16))
		y := c.Highest(x, z)
		if y < 0 || y+3 >= chunk.Height || c.Block(x, y, z) != sandRID {
			continue
		}
		if !t.clearAround(c, x, y+1, z, airRID) {
			continue
		}
		height := 1 + r.Int31n(3)
		for h := int16(1); h <= int16(height); h++ {
			c.SetBlock(x, y+h, z, cactusRID)
		}
	}
}

// clearAround reports whether the four horizontal neighbours of the position
// are air. Cacti break when placed against other blocks. Positions with
// neighbours outside the chunk are rejected rather than read cross-chunk.
func (t Cactus) clearAround(c *chunk.Chunk, x uint8, y int16, z uint8, airRID uint32) bool {
	if x == 0 || x == chunk.Width-1 || z == 0 || z == chunk.Width-1 {
		return false
	}
	return c.Block(x+1, y, z) == airRID && c.Block(x-1, y, z) == airRID &&
		c.Block(x, y, z+1) == airRID && c.Block(x, y, z-1) == airRID
}
