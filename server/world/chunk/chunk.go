package chunk

import (
	"github.com/brentp/intintmap"
)

const (
	// Width is the horizontal size of a chunk along both the x and z axis.
	Width = 16
	// Height is the vertical size of a chunk. Blocks may be placed at
	// y = 0 up to y = Height-1.
	Height = 128
)

// Chunk is a Width x Height x Width segment of a world. Block storage is
// paletted: the chunk holds a palette of block runtime IDs and a per-block
// index into that palette. Index 0 always refers to the air runtime ID the
// chunk was created with.
type Chunk struct {
	air     uint32
	palette []uint32
	lookup  *intintmap.Map
	blocks  []uint16
}

// New initialises a new chunk filled with the air runtime ID passed.
func New(air uint32) *Chunk {
	lookup := intintmap.New(16, 0.6)
	lookup.Put(int64(air), 0)
	return &Chunk{
		air:     air,
		palette: []uint32{air},
		lookup:  lookup,
		blocks:  make([]uint16, Width*Width*Height),
	}
}

// Air returns the runtime ID the chunk considers air.
func (c *Chunk) Air() uint32 {
	return c.air
}

// Block returns the runtime ID of the block at the position passed.
// Coordinates outside the chunk bounds return the air runtime ID.
func (c *Chunk) Block(x uint8, y int16, z uint8) uint32 {
	if !valid(x, y, z) {
		return c.air
	}
	return c.palette[c.blocks[offset(x, y, z)]]
}

// SetBlock sets the runtime ID of the block at the position passed. Positions
// outside the chunk bounds are ignored.
func (c *Chunk) SetBlock(x uint8, y int16, z uint8, rid uint32) {
	if !valid(x, y, z) {
		return
	}
	c.blocks[offset(x, y, z)] = c.paletteIndex(rid)
}

// Highest returns the y coordinate of the highest non-air block in the column
// at the x and z passed. If the column holds only air, -1 is returned.
func (c *Chunk) Highest(x, z uint8) int16 {
	for y := int16(Height - 1); y >= 0; y-- {
		if c.blocks[offset(x, y, z)] != 0 {
			return y
		}
	}
	return -1
}

// paletteIndex returns the palette index of the runtime ID passed, growing the
// palette if the runtime ID was not used in the chunk before.
func (c *Chunk) paletteIndex(rid uint32) uint16 {
	if i, ok := c.lookup.Get(int64(rid)); ok {
		return uint16(i)
	}
	i := uint16(len(c.palette))
	c.palette = append(c.palette, rid)
	c.lookup.Put(int64(rid), int64(i))
	return i
}

func valid(x uint8, y int16, z uint8) bool {
	return x < Width && z < Width && y >= 0 && y < Height
}

func offset(x uint8, y int16, z uint8) int {
	return (int(x)*Width+int(z))*Height + int(y)
}
