package block

// Bedrock is a block that is indestructible, found at the bottom of a world.
type Bedrock struct{}

// EncodeBlock ...
func (Bedrock) EncodeBlock() (string, map[string]any) {
	return "minecraft:bedrock", nil
}
