package world

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/df-mc/dunes/server/block/cube"
	"github.com/df-mc/dunes/server/world/chunk"
	"github.com/df-mc/goleveldb/leveldb"
)

// Config holds the settings used to create a World.
type Config struct {
	// Log is the Logger the world writes to. If nil, Log is set to
	// slog.Default().
	Log *slog.Logger
	// Provider supplies stored columns and world settings. If nil, a
	// NopProvider is used and every column is newly generated.
	Provider Provider
	// Generator generates the terrain of columns not held by the Provider. If
	// nil, a NopGenerator is used, producing empty columns.
	Generator Generator
	// Handler receives the events called by the world. If nil, a NopHandler is
	// used.
	Handler Handler
	// ReadOnly prevents the world from writing columns or settings back to its
	// Provider.
	ReadOnly bool
}

// New creates a World using the Config. Settings are read from the Provider
// once during creation.
func (conf Config) New() *World {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	if conf.Provider == nil {
		conf.Provider = NopProvider{}
	}
	if conf.Generator == nil {
		conf.Generator = NopGenerator{}
	}
	if conf.Handler == nil {
		conf.Handler = NopHandler{}
	}
	w := &World{
		conf:       conf,
		set:        conf.Provider.Settings(),
		chunks:     make(map[ChunkPos]*chunk.Chunk),
		generating: make(map[ChunkPos]chan struct{}),
		pending:    make(map[ChunkPos][]pendingBlock),
	}
	w.log = conf.Log.With("world", w.set.Name)
	return w
}

// World holds the columns of a single dimension. All methods are safe for
// concurrent use. Columns are loaded from the Provider or generated on demand
// through Column; block writes aimed at columns that are not loaded yet are
// buffered and applied once their terrain is in place, so that structures may
// cross chunk borders during generation.
type World struct {
	conf Config
	set  Settings
	log  *slog.Logger

	airOnce sync.Once
	airRID  uint32

	mu         sync.Mutex
	chunks     map[ChunkPos]*chunk.Chunk
	generating map[ChunkPos]chan struct{}
	pending    map[ChunkPos][]pendingBlock
}

type pendingBlock struct {
	pos cube.Pos
	rid uint32
}

// Name returns the display name of the world.
func (w *World) Name() string {
	return w.set.Name
}

// Seed returns the seed terrain generation of the world is based on.
func (w *World) Seed() int64 {
	return w.set.Seed
}

// Settings returns the settings the world was created with.
func (w *World) Settings() Settings {
	return w.set
}

// Handler returns the Handler of the world.
func (w *World) Handler() Handler {
	return w.conf.Handler
}

// Column returns the column at the chunk position passed, loading it from the
// Provider or generating it if it is not stored. Concurrent calls for the same
// position generate the column once.
func (w *World) Column(pos ChunkPos) (*chunk.Chunk, error) {
	for {
		w.mu.Lock()
		if c, ok := w.chunks[pos]; ok {
			w.mu.Unlock()
			return c, nil
		}
		if ch, busy := w.generating[pos]; busy {
			w.mu.Unlock()
			<-ch
			continue
		}
		ch := make(chan struct{})
		w.generating[pos] = ch
		w.mu.Unlock()

		c, err := w.loadOrGenerate(pos)

		w.mu.Lock()
		delete(w.generating, pos)
		close(ch)
		w.mu.Unlock()
		return c, err
	}
}

func (w *World) loadOrGenerate(pos ChunkPos) (*chunk.Chunk, error) {
	c, err := w.conf.Provider.LoadColumn(pos)
	switch {
	case err == nil:
		w.insertColumn(pos, c)
		return c, nil
	case errors.Is(err, leveldb.ErrNotFound):
		// Column not stored: generate it. The chunk becomes visible through
		// the world once the generator returns, at which point buffered block
		// writes from neighbouring structures are applied.
		c = chunk.New(w.air())
		w.conf.Generator.GenerateChunk(pos, c)
		w.insertColumn(pos, c)
		return c, nil
	default:
		w.log.Error("load column", "pos", pos, "error", err)
		return nil, fmt.Errorf("load column %v: %w", pos, err)
	}
}

func (w *World) insertColumn(pos ChunkPos, c *chunk.Chunk) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, p := range w.pending[pos] {
		c.SetBlock(uint8(p.pos[0]&15), int16(p.pos[1]), uint8(p.pos[2]&15), p.rid)
	}
	delete(w.pending, pos)
	w.chunks[pos] = c
}

// Block reads the block at the position passed. If the column holding the
// position is not loaded, air is returned.
func (w *World) Block(pos cube.Pos) Block {
	chunkPos := ChunkPosFromBlockPos(pos)
	rid := w.air()
	w.mu.Lock()
	if c, ok := w.chunks[chunkPos]; ok {
		rid = c.Block(uint8(pos[0]&15), int16(pos[1]), uint8(pos[2]&15))
	}
	w.mu.Unlock()
	b, ok := BlockByRuntimeID(rid)
	if !ok {
		// A runtime ID made it into a chunk without being registered. Fall
		// back to air rather than returning a nil block.
		b, _ = BlockByRuntimeID(w.air())
	}
	return b
}

// SetBlock writes a block to the position passed. Writes to columns that are
// not loaded are buffered and applied when the column is generated or loaded.
func (w *World) SetBlock(pos cube.Pos, b Block) {
	rid := BlockRuntimeID(b)
	chunkPos := ChunkPosFromBlockPos(pos)
	w.mu.Lock()
	defer w.mu.Unlock()
	if c, ok := w.chunks[chunkPos]; ok {
		c.SetBlock(uint8(pos[0]&15), int16(pos[1]), uint8(pos[2]&15), rid)
		return
	}
	w.pending[chunkPos] = append(w.pending[chunkPos], pendingBlock{pos: pos, rid: rid})
}

// LoadedColumns returns the number of columns currently held in memory.
func (w *World) LoadedColumns() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.chunks)
}

// Save writes all loaded columns and the world settings to the Provider. Save
// does nothing for read-only worlds.
func (w *World) Save() error {
	if w.conf.ReadOnly {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.conf.Provider.SaveSettings(w.set); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	for pos, c := range w.chunks {
		if err := w.conf.Provider.StoreColumn(pos, c); err != nil {
			return fmt.Errorf("save column %v: %w", pos, err)
		}
	}
	return nil
}

// Close calls the HandleClose of the world's Handler, saves all loaded columns
// and closes the Provider.
func (w *World) Close() error {
	w.log.Debug("closing world", "columns", w.LoadedColumns())
	w.conf.Handler.HandleClose(w)
	return errors.Join(w.Save(), w.conf.Provider.Close())
}

// air returns the runtime ID of air, resolving it from the block registry the
// first time it is needed. Worlds cannot operate without a registered air
// block.
func (w *World) air() uint32 {
	w.airOnce.Do(func() {
		rid, ok := BlockRuntimeIDByState("minecraft:air", nil)
		if !ok {
			panic("world: air block not registered")
		}
		w.airRID = rid
	})
	return w.airRID
}
