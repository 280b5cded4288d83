package populate

import (
	"github.com/df-mc/dunes/server/block/cube"
	"github.com/df-mc/dunes/server/event"
	"github.com/df-mc/dunes/server/world"
	"github.com/df-mc/dunes/server/world/chunk"
	"github.com/df-mc/dunes/server/world/generator/pmgen/rand"
)

// StructureDesertWell is the structure name desert well placements are
// announced under through Handler.HandleStructurePlace.
const StructureDesertWell = "desert_well"

// DesertWellConfig holds the tunable parameters of the DesertWell populator.
// The zero value is usable; defaults are applied by New.
type DesertWellConfig struct {
	// Chance controls how rare wells are: a chunk attempts to place a well
	// with a chance of 1 in Chance. Values below 1 fall back to the default of
	// 1000.
	Chance int
}

func (c DesertWellConfig) withDefaults() DesertWellConfig {
	if c.Chance < 1 {
		c.Chance = 1000
	}
	return c
}

// New builds a DesertWell populator from the config.
func (c DesertWellConfig) New() DesertWell {
	c = c.withDefaults()
	return DesertWell{chance: int32(c.Chance)}
}

// DesertWell places the occasional water well in desert terrain. A well only
// generates if the surface it would stand on is flat sand. Placement is
// announced through the world handler with a cause chain of
// [chunk position, populator, well origin] and may be cancelled.
type DesertWell struct {
	chance int32
}

func (d DesertWell) Populate(w *world.World, pos world.ChunkPos, c *chunk.Chunk, r *rand.Random) {
	if r.Int31n(d.chance) != 0 {
		return
	}
	// Keep the 5x5 footprint inside the chunk so the surface check below can
	// read the chunk directly.
	x, z := uint8(r.Range(2, 13)), uint8(r.Range(2, 13))
	y := c.Highest(x, z)
	if y < 2 || y+5 >= chunk.Height {
		return
	}
	sandRID := world.BlockRuntimeID(sand)
	for dx := -2; dx <= 2; dx++ {
		for dz := -2; dz <= 2; dz++ {
			cx, cz := uint8(int(x)+dx), uint8(int(z)+dz)
			if c.Highest(cx, cz) != y || c.Block(cx, y, cz) != sandRID {
				return
			}
		}
	}
	origin := cube.Pos{int(pos[0])<<4 | int(x), int(y), int(pos[1])<<4 | int(z)}

	// None of the three elements is nil, so constructing the chain cannot
	// fail.
	cause, _ := event.NewCause(pos, d, origin)
	ctx := event.C(w)
	w.Handler().HandleStructurePlace(ctx, origin, StructureDesertWell, cause)
	if ctx.Cancelled() {
		return
	}
	d.place(w, pos, c, origin)
}

// place builds the well structure with its origin at the centre of the rim,
// replacing the sand surface the well stands on.
func (d DesertWell) place(w *world.World, pos world.ChunkPos, c *chunk.Chunk, origin cube.Pos) {
	for dx := -2; dx <= 2; dx++ {
		for dz := -2; dz <= 2; dz++ {
			// Foundation below the surface.
			setBlock(w, pos, c, origin.Add(cube.Pos{dx, -2, dz}), sandstone)
			setBlock(w, pos, c, origin.Add(cube.Pos{dx, -1, dz}), sandstone)

			p := origin.Add(cube.Pos{dx, 0, dz})
			switch {
			case abs(dx) == 2 || abs(dz) == 2:
				// Outer rim of slabs at surface level.
				setBlock(w, pos, c, p, slab)
			case dx == 0 || dz == 0:
				// Water cross in the centre.
				setBlock(w, pos, c, p, water)
			default:
				// Inner corners holding the basin together.
				setBlock(w, pos, c, p, sandstone)
			}
		}
	}
	// Corner pillars carrying the roof.
	for _, corner := range [][2]int{{-2, -2}, {-2, 2}, {2, -2}, {2, 2}} {
		for h := 1; h <= 3; h++ {
			setBlock(w, pos, c, origin.Add(cube.Pos{corner[0], h, corner[1]}), sandstone)
		}
	}
	// Slab roof with solid corners.
	for dx := -2; dx <= 2; dx++ {
		for dz := -2; dz <= 2; dz++ {
			p := origin.Add(cube.Pos{dx, 4, dz})
			if abs(dx) == 2 && abs(dz) == 2 {
				setBlock(w, pos, c, p, sandstone)
				continue
			}
			setBlock(w, pos, c, p, slab)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
