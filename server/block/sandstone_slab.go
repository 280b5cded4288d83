package block

// SandstoneSlab is a half-height sandstone block, used for the rim and roof of
// desert wells.
type SandstoneSlab struct {
	// Top specifies if the slab occupies the top half of its block space
	// instead of the bottom half.
	Top bool
}

// EncodeBlock ...
func (s SandstoneSlab) EncodeBlock() (string, map[string]any) {
	return "minecraft:sandstone_slab", map[string]any{"top_slot_bit": s.Top}
}
