package block

import "github.com/df-mc/dunes/server/world"

// init registers every block state the package holds with the world block
// registry. Registration order is stable, so runtime IDs are deterministic
// across runs.
func init() {
	world.RegisterBlock(Air{})
	world.RegisterBlock(Bedrock{})
	world.RegisterBlock(Stone{})
	world.RegisterBlock(Sand{})
	world.RegisterBlock(Sand{Red: true})
	for _, t := range []string{"default", "cut", "smooth", "heiroglyphs"} {
		world.RegisterBlock(Sandstone{Type: t})
	}
	world.RegisterBlock(SandstoneSlab{})
	world.RegisterBlock(SandstoneSlab{Top: true})
	world.RegisterBlock(Water{})
	world.RegisterBlock(Cactus{})
	world.RegisterBlock(DeadBush{})
}
