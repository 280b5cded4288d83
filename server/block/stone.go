package block

// Stone is the most common block in a world, making up most of the terrain
// below the surface.
type Stone struct{}

// EncodeBlock ...
func (Stone) EncodeBlock() (string, map[string]any) {
	return "minecraft:stone", map[string]any{"stone_type": "stone"}
}
