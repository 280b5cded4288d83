package world

import (
	"fmt"

	"github.com/df-mc/dunes/server/block/cube"
)

// ChunkPos holds the position of a chunk. The type is similar to cube.Pos,
// except that it has no y value and that the x and z values are chunk
// coordinates rather than block coordinates.
type ChunkPos [2]int32

// X returns the X coordinate of the chunk position.
func (p ChunkPos) X() int32 {
	return p[0]
}

// Z returns the Z coordinate of the chunk position.
func (p ChunkPos) Z() int32 {
	return p[1]
}

// String converts the ChunkPos to a readable x,z form.
func (p ChunkPos) String() string {
	return fmt.Sprintf("(%v,%v)", p[0], p[1])
}

// ChunkPosFromBlockPos returns the position of the chunk that the block
// position passed falls in.
func ChunkPosFromBlockPos(pos cube.Pos) ChunkPos {
	return ChunkPos{int32(pos[0] >> 4), int32(pos[2] >> 4)}
}
