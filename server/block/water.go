package block

// Water is a liquid block placed by world generation in oceans, rivers and the
// centre of desert wells.
type Water struct{}

// EncodeBlock ...
func (Water) EncodeBlock() (string, map[string]any) {
	return "minecraft:water", map[string]any{"liquid_depth": int32(0)}
}
