package pmgen

import (
	"bytes"
	"testing"

	"github.com/df-mc/dunes/server/block"
	"github.com/df-mc/dunes/server/world"
	"github.com/df-mc/dunes/server/world/chunk"
)

func TestGenerateChunkLayers(t *testing.T) {
	g := Config{Seed: 1}.New()
	c := chunk.New(world.BlockRuntimeID(block.Air{}))
	g.GenerateChunk(world.ChunkPos{0, 0}, c)

	bedrockRID := world.BlockRuntimeID(block.Bedrock{})
	sandRID := world.BlockRuntimeID(block.Sand{})
	for x := uint8(0); x < chunk.Width; x++ {
		for z := uint8(0); z < chunk.Width; z++ {
			if got := c.Block(x, 0, z); got != bedrockRID {
				t.Fatalf("expected bedrock at the bottom of column %v,%v, got %v", x, z, got)
			}
			h := c.Highest(x, z)
			if h < baseHeight || h >= baseHeight+amplitude+1 {
				t.Fatalf("expected dune surface near base height, got %v at %v,%v", h, x, z)
			}
			if got := c.Block(x, h, z); got != sandRID {
				t.Fatalf("expected sand at the surface of column %v,%v, got %v", x, z, got)
			}
		}
	}
}

func TestGenerateChunkDeterministic(t *testing.T) {
	air := world.BlockRuntimeID(block.Air{})
	a, b := chunk.New(air), chunk.New(air)

	Config{Seed: 77}.New().GenerateChunk(world.ChunkPos{3, -9}, a)
	Config{Seed: 77}.New().GenerateChunk(world.ChunkPos{3, -9}, b)
	if !bytes.Equal(a.Encode(), b.Encode()) {
		t.Fatalf("expected identical terrain for equal seeds")
	}

	c := chunk.New(air)
	Config{Seed: 78}.New().GenerateChunk(world.ChunkPos{3, -9}, c)
	if bytes.Equal(a.Encode(), c.Encode()) {
		t.Fatalf("expected different terrain for different seeds")
	}
}

func TestBindWorldEnablesPopulation(t *testing.T) {
	g := Config{Seed: 5, DeadBushAmount: 4}.New()
	w := world.Config{Generator: g}.New()
	defer w.Close()
	g.BindWorld(w)

	bushRID := world.BlockRuntimeID(block.DeadBush{})
	found := 0
	for x := int32(0); x < 3; x++ {
		for z := int32(0); z < 3; z++ {
			c, err := w.Column(world.ChunkPos{x, z})
			if err != nil {
				t.Fatalf("expected column generation to succeed, got %v", err)
			}
			for cx := uint8(0); cx < chunk.Width; cx++ {
				for cz := uint8(0); cz < chunk.Width; cz++ {
					h := c.Highest(cx, cz)
					if h >= 0 && c.Block(cx, h, cz) == bushRID {
						found++
					}
				}
			}
		}
	}
	if found == 0 {
		t.Fatalf("expected desert flora after binding the world")
	}
}
