package block

// Sand is a gravity affected block found in deserts and on beaches. Desert
// wells only generate on top of it.
type Sand struct {
	// Red specifies if the sand is red sand, found in badlands rather than
	// deserts.
	Red bool
}

// EncodeBlock ...
func (s Sand) EncodeBlock() (string, map[string]any) {
	if s.Red {
		return "minecraft:sand", map[string]any{"sand_type": "red"}
	}
	return "minecraft:sand", map[string]any{"sand_type": "normal"}
}
