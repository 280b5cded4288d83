package pmgen

import (
	"math"
	"sync/atomic"

	"github.com/df-mc/dunes/server/block"
	"github.com/df-mc/dunes/server/world"
	"github.com/df-mc/dunes/server/world/chunk"
	"github.com/df-mc/dunes/server/world/generator/pmgen/populate"
	"github.com/df-mc/dunes/server/world/generator/pmgen/rand"
)

// Config configures a desert Generator. The zero value is usable; defaults
// are applied by New.
type Config struct {
	// Seed is the seed terrain and structure placement are derived from.
	Seed int64
	// WellChance is the 1-in-N chance of a desert well per chunk. Values below
	// 1 fall back to the populator default of 1000.
	WellChance int
	// CactusAmount and DeadBushAmount are the base placement attempts per
	// chunk for desert flora, defaulting to 2 and 1.
	CactusAmount, DeadBushAmount int
}

// New creates a desert Generator from the Config. New must be called after
// block registration has finished, as it resolves and caches runtime IDs.
func (conf Config) New() *Generator {
	if conf.CactusAmount <= 0 {
		conf.CactusAmount = 2
	}
	if conf.DeadBushAmount <= 0 {
		conf.DeadBushAmount = 1
	}
	g := &Generator{
		seed: conf.Seed,
		populators: []populate.Populator{
			populate.DesertWellConfig{Chance: conf.WellChance}.New(),
			populate.Cactus{Amount: conf.CactusAmount},
			populate.DeadBush{Amount: conf.DeadBushAmount},
		},
		bedrockRID:   world.BlockRuntimeID(block.Bedrock{}),
		stoneRID:     world.BlockRuntimeID(block.Stone{}),
		sandstoneRID: world.BlockRuntimeID(block.Sandstone{}),
		sandRID:      world.BlockRuntimeID(block.Sand{}),
	}
	// The wind angle decides the direction dune ridges run in. Derived from
	// the seed so that worlds keep their dune layout.
	g.windAngle = float64(uint64(conf.Seed)%360) * math.Pi / 180
	return g
}

// Generator generates desert terrain: layered dunes of sand over sandstone
// and stone, decorated by the desert populators. Population is only started
// once BindWorld is called.
type Generator struct {
	seed       int64
	windAngle  float64
	populators []populate.Populator

	world atomic.Pointer[world.World]

	// cached runtime IDs, resolved once the block registry is complete
	bedrockRID   uint32
	stoneRID     uint32
	sandstoneRID uint32
	sandRID      uint32
}

// BindWorld binds the generator to the world passed, enabling population.
// Safe to call multiple times; the most recent world is used.
func (g *Generator) BindWorld(w *world.World) {
	g.world.Store(w)
}

func (g *Generator) GenerateChunk(pos world.ChunkPos, c *chunk.Chunk) {
	r := rand.NewRandom(0xdeadbeef ^ (int64(pos[0]) << 8) ^ int64(pos[1]) ^ g.seed)

	for x := uint8(0); x < chunk.Width; x++ {
		for z := uint8(0); z < chunk.Width; z++ {
			h := g.height(int64(pos[0])*16+int64(x), int64(pos[1])*16+int64(z))
			for y := int16(0); y <= h; y++ {
				switch {
				case y == 0:
					c.SetBlock(x, y, z, g.bedrockRID)
				case y < h-4:
					c.SetBlock(x, y, z, g.stoneRID)
				case y < h:
					c.SetBlock(x, y, z, g.sandstoneRID)
				default:
					c.SetBlock(x, y, z, g.sandRID)
				}
			}
		}
	}

	if w := g.world.Load(); w != nil {
		for _, populator := range g.populators {
			populator.Populate(w, pos, c, r)
		}
	}
}

// dune terrain shape constants
const (
	baseHeight = 63
	amplitude  = 9
	cellShift  = 3 // noise lattice cell size of 8 blocks
)

// height returns the dune surface height at the world column passed. The
// shape combines smoothed value noise with a ridge running along the wind
// direction of the seed.
func (g *Generator) height(x, z int64) int16 {
	x0, z0 := x>>cellShift, z>>cellShift
	fx := float64(x&(1<<cellShift-1)) / (1 << cellShift)
	fz := float64(z&(1<<cellShift-1)) / (1 << cellShift)

	// Smoothstep before interpolating to avoid visible lattice seams.
	ux := fx * fx * (3 - 2*fx)
	uz := fz * fz * (3 - 2*fz)

	h00, h10 := g.corner(x0, z0), g.corner(x0+1, z0)
	h01, h11 := g.corner(x0, z0+1), g.corner(x0+1, z0+1)
	noise := (h00*(1-ux)+h10*ux)*(1-uz) + (h01*(1-ux)+h11*ux)*uz

	d := math.Cos(g.windAngle)*float64(x) + math.Sin(g.windAngle)*float64(z)
	ridge := (math.Sin(d/24) + 1) / 2

	h := int16(baseHeight + (noise*0.6+ridge*0.4)*amplitude)
	if h >= chunk.Height {
		h = chunk.Height - 1
	}
	return h
}

// corner returns the value noise lattice point at the cell passed, in [0,1).
func (g *Generator) corner(x, z int64) float64 {
	hash := x*2345803 ^ z*9236449 ^ g.seed
	hash *= hash + 223
	return float64(uint64(hash)>>40) / float64(int64(1)<<24)
}
