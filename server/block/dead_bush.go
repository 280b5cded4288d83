package block

// DeadBush is a transparent plant found on sand in deserts and badlands.
type DeadBush struct{}

// EncodeBlock ...
func (DeadBush) EncodeBlock() (string, map[string]any) {
	return "minecraft:deadbush", nil
}
