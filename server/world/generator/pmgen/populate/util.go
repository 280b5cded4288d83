package populate

import (
	"github.com/df-mc/dunes/server/block"
	"github.com/df-mc/dunes/server/block/cube"
	"github.com/df-mc/dunes/server/world"
	"github.com/df-mc/dunes/server/world/chunk"
)

var (
	sand      = block.Sand{}
	sandstone = block.Sandstone{}
	slab      = block.SandstoneSlab{}
	water     = block.Water{}
	cactus    = block.Cactus{}
	deadBush  = block.DeadBush{}
)

func inChunk(pos cube.Pos, chunkPos world.ChunkPos) bool {
	return int32(pos[0]>>4) == chunkPos[0] && int32(pos[2]>>4) == chunkPos[1]
}

// setBlock writes b at pos, going through the chunk directly when pos falls
// inside the chunk being populated and through the world otherwise.
func setBlock(w *world.World, chunkPos world.ChunkPos, c *chunk.Chunk, pos cube.Pos, b world.Block) {
	if inChunk(pos, chunkPos) {
		c.SetBlock(uint8(pos[0]&15), int16(pos[1]), uint8(pos[2]&15), world.BlockRuntimeID(b))
		return
	}
	w.SetBlock(pos, b)
}
