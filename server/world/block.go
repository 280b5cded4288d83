package world

import (
	"fmt"
	"slices"
	"sync"

	"github.com/brentp/intintmap"
	"github.com/segmentio/fasthash/fnv1"
	"golang.org/x/exp/maps"
)

// Block is implemented by all blocks that a world may hold.
type Block interface {
	// EncodeBlock encodes the block into a stable string ID and a map of
	// properties describing its state.
	EncodeBlock() (name string, properties map[string]any)
}

var (
	blockMu   sync.RWMutex
	blocks    []Block
	stateRIDs = intintmap.New(64, 0.6)
)

// RegisterBlock registers a Block with the block registry, assigning it the
// next runtime ID. Blocks must be registered before a World is created, which
// block packages do in their init functions. RegisterBlock panics if a block
// with the same name and properties was registered before.
func RegisterBlock(b Block) {
	h := int64(BlockHash(b))
	blockMu.Lock()
	defer blockMu.Unlock()
	if _, ok := stateRIDs.Get(h); ok {
		name, properties := b.EncodeBlock()
		panic(fmt.Sprintf("world: block %v %v already registered", name, properties))
	}
	stateRIDs.Put(h, int64(len(blocks)))
	blocks = append(blocks, b)
}

// BlockRuntimeID returns the runtime ID of the block state passed.
// BlockRuntimeID panics if the block was not registered, as this is always a
// programming error.
func BlockRuntimeID(b Block) uint32 {
	rid, ok := BlockRuntimeIDByState(b.EncodeBlock())
	if !ok {
		name, properties := b.EncodeBlock()
		panic(fmt.Sprintf("world: block %v %v not registered", name, properties))
	}
	return rid
}

// BlockRuntimeIDByState returns the runtime ID of the block state described by
// the name and properties passed, with the second return value indicating if
// such a state was registered.
func BlockRuntimeIDByState(name string, properties map[string]any) (uint32, bool) {
	blockMu.RLock()
	defer blockMu.RUnlock()
	rid, ok := stateRIDs.Get(int64(stateHash(name, properties)))
	if !ok {
		return 0, false
	}
	return uint32(rid), true
}

// BlockByRuntimeID returns the block registered under the runtime ID passed,
// with the second return value indicating if the runtime ID is known.
func BlockByRuntimeID(rid uint32) (Block, bool) {
	blockMu.RLock()
	defer blockMu.RUnlock()
	if int(rid) >= len(blocks) {
		return nil, false
	}
	return blocks[rid], true
}

// Blocks returns a snapshot of all blocks registered, in runtime ID order.
func Blocks() []Block {
	blockMu.RLock()
	defer blockMu.RUnlock()
	return slices.Clone(blocks)
}

// BlockHash returns a deterministic hash of the state of the block passed,
// usable to compare block states cheaply.
func BlockHash(b Block) uint64 {
	return stateHash(b.EncodeBlock())
}

// stateHash hashes a block name and its properties. Property keys are sorted
// so that the hash does not depend on map iteration order.
func stateHash(name string, properties map[string]any) uint64 {
	h := fnv1.HashString64(name)
	keys := maps.Keys(properties)
	slices.Sort(keys)
	for _, k := range keys {
		h = fnv1.AddString64(h, k)
		h = fnv1.AddString64(h, fmt.Sprintf("%v", properties[k]))
	}
	return h
}
