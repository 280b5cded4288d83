package block

// Cactus is a plant growing on sand in deserts, up to three blocks tall.
type Cactus struct{}

// EncodeBlock ...
func (Cactus) EncodeBlock() (string, map[string]any) {
	return "minecraft:cactus", map[string]any{"age": int32(0)}
}
