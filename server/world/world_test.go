package world_test

import (
	"testing"

	"github.com/df-mc/dunes/server/block"
	"github.com/df-mc/dunes/server/block/cube"
	"github.com/df-mc/dunes/server/world"
	"github.com/df-mc/dunes/server/world/chunk"
	"github.com/df-mc/dunes/server/world/mcdb"
)

// generatorFunc implements world.Generator with a plain function.
type generatorFunc func(pos world.ChunkPos, c *chunk.Chunk)

func (f generatorFunc) GenerateChunk(pos world.ChunkPos, c *chunk.Chunk) {
	f(pos, c)
}

// flatSand fills every column with sand up to and including y=20.
func flatSand(_ world.ChunkPos, c *chunk.Chunk) {
	rid := world.BlockRuntimeID(block.Sand{})
	for x := uint8(0); x < chunk.Width; x++ {
		for z := uint8(0); z < chunk.Width; z++ {
			for y := int16(0); y <= 20; y++ {
				c.SetBlock(x, y, z, rid)
			}
		}
	}
}

func TestWorldGeneratesColumns(t *testing.T) {
	w := world.Config{Generator: generatorFunc(flatSand)}.New()
	defer w.Close()

	if _, err := w.Column(world.ChunkPos{0, 0}); err != nil {
		t.Fatalf("expected column generation to succeed, got %v", err)
	}
	if b := w.Block(cube.Pos{4, 20, 4}); b != (block.Sand{}) {
		t.Fatalf("expected sand at surface, got %#v", b)
	}
	if b := w.Block(cube.Pos{4, 21, 4}); b != (block.Air{}) {
		t.Fatalf("expected air above surface, got %#v", b)
	}
	if n := w.LoadedColumns(); n != 1 {
		t.Fatalf("expected 1 loaded column, got %v", n)
	}
}

func TestWorldReadsUnloadedAsAir(t *testing.T) {
	w := world.Config{Generator: generatorFunc(flatSand)}.New()
	defer w.Close()

	if b := w.Block(cube.Pos{100, 20, 100}); b != (block.Air{}) {
		t.Fatalf("expected air for unloaded column, got %#v", b)
	}
}

func TestWorldBuffersPendingWrites(t *testing.T) {
	w := world.Config{Generator: generatorFunc(flatSand)}.New()
	defer w.Close()

	// Write into a column that has not been generated yet. The write must
	// survive generation of that column.
	pos := cube.Pos{18, 25, 3}
	w.SetBlock(pos, block.Sandstone{})

	if _, err := w.Column(world.ChunkPos{1, 0}); err != nil {
		t.Fatalf("expected column generation to succeed, got %v", err)
	}
	if b := w.Block(pos); b != (block.Sandstone{}) {
		t.Fatalf("expected buffered sandstone write to be applied, got %#v", b)
	}
	// Terrain must still be in place around the buffered write.
	if b := w.Block(cube.Pos{18, 20, 3}); b != (block.Sand{}) {
		t.Fatalf("expected generated sand below buffered write, got %#v", b)
	}
}

func TestWorldSetBlockLoaded(t *testing.T) {
	w := world.Config{Generator: generatorFunc(flatSand)}.New()
	defer w.Close()

	if _, err := w.Column(world.ChunkPos{0, 0}); err != nil {
		t.Fatalf("expected column generation to succeed, got %v", err)
	}
	pos := cube.Pos{7, 21, 9}
	w.SetBlock(pos, block.Cactus{})
	if b := w.Block(pos); b != (block.Cactus{}) {
		t.Fatalf("expected cactus after SetBlock, got %#v", b)
	}
}

func TestWorldSaveAndReload(t *testing.T) {
	dir := t.TempDir()

	db, err := mcdb.Config{Name: "Test", Seed: 4}.Open(dir)
	if err != nil {
		t.Fatalf("expected open to succeed, got %v", err)
	}
	w := world.Config{Provider: db, Generator: generatorFunc(flatSand)}.New()
	if _, err := w.Column(world.ChunkPos{0, 0}); err != nil {
		t.Fatalf("expected column generation to succeed, got %v", err)
	}
	marker := cube.Pos{3, 30, 3}
	w.SetBlock(marker, block.Bedrock{})
	if err := w.Close(); err != nil {
		t.Fatalf("expected close to succeed, got %v", err)
	}

	db, err = mcdb.Config{}.Open(dir)
	if err != nil {
		t.Fatalf("expected reopen to succeed, got %v", err)
	}
	// The generator is left out: the column must come from storage.
	w = world.Config{Provider: db}.New()
	defer w.Close()
	if got := w.Seed(); got != 4 {
		t.Fatalf("expected stored seed 4, got %v", got)
	}
	if _, err := w.Column(world.ChunkPos{0, 0}); err != nil {
		t.Fatalf("expected stored column to load, got %v", err)
	}
	if b := w.Block(marker); b != (block.Bedrock{}) {
		t.Fatalf("expected stored bedrock marker, got %#v", b)
	}
	if b := w.Block(cube.Pos{8, 20, 8}); b != (block.Sand{}) {
		t.Fatalf("expected stored sand terrain, got %#v", b)
	}
}
