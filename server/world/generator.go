package world

import "github.com/df-mc/dunes/server/world/chunk"

// Generator handles the generating of newly created chunks. Worlds have one
// Generator which is used to generate columns that their Provider does not
// have stored.
type Generator interface {
	// GenerateChunk generates terrain into the chunk passed. The chunk is not
	// yet visible through the World when GenerateChunk is called: block writes
	// done through the World during generation are buffered and applied once
	// the terrain is in place, so structures may safely cross chunk borders.
	GenerateChunk(pos ChunkPos, c *chunk.Chunk)
}

// NopGenerator is the default Generator a World uses. It generates completely
// empty chunks.
type NopGenerator struct{}

func (NopGenerator) GenerateChunk(ChunkPos, *chunk.Chunk) {}
