package block

// Air is the block present in otherwise empty space.
type Air struct{}

// EncodeBlock ...
func (Air) EncodeBlock() (string, map[string]any) {
	return "minecraft:air", nil
}
