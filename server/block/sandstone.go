package block

// Sandstone is a solid block commonly found in deserts, generated below the
// sand layer and as part of desert structures.
type Sandstone struct {
	// Type is the sandstone variant: "default", "cut", "smooth" or
	// "heiroglyphs" (chiselled).
	Type string
}

// EncodeBlock ...
func (s Sandstone) EncodeBlock() (string, map[string]any) {
	t := s.Type
	if t == "" {
		t = "default"
	}
	return "minecraft:sandstone", map[string]any{"sand_stone_type": t}
}
