package mcdb

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"

	"github.com/df-mc/dunes/server/world"
	"github.com/df-mc/dunes/server/world/chunk"
	"github.com/df-mc/goleveldb/leveldb"
	"github.com/google/uuid"
	"github.com/pelletier/go-toml"
)

// Config holds the settings used when opening a DB.
type Config struct {
	// Log is the Logger the DB writes to. If nil, Log is set to
	// slog.Default().
	Log *slog.Logger
	// Name and Seed are the world settings written when a new database is
	// created. Both are ignored when opening an existing database.
	Name string
	Seed int64
}

// Open opens the world database in the directory passed, creating it with
// fresh settings and a new world UUID if no database exists there yet.
func (conf Config) Open(dir string) (*DB, error) {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	if conf.Name == "" {
		conf.Name = "Dunes"
	}
	ldb, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db := &DB{ldb: ldb, log: conf.Log.With("provider", "mcdb")}
	if err := db.loadSettings(conf); err != nil {
		_ = ldb.Close()
		return nil, err
	}
	return db, nil
}

// DB is a world.Provider backed by a LevelDB database. Columns are stored as
// compressed, checksummed payloads keyed by their chunk position; world
// settings are stored as a TOML document.
type DB struct {
	ldb *leveldb.DB
	log *slog.Logger
	set world.Settings
}

// Compile time check to make sure DB implements world.Provider.
var _ world.Provider = (*DB)(nil)

// keyLevel is the database key the world settings document is stored under.
var keyLevel = []byte("level")

type levelData struct {
	Name string `toml:"name"`
	UUID string `toml:"uuid"`
	Seed int64  `toml:"seed"`
}

func (db *DB) loadSettings(conf Config) error {
	data, err := db.ldb.Get(keyLevel, nil)
	switch {
	case err == nil:
		var ld levelData
		if err := toml.Unmarshal(data, &ld); err != nil {
			return fmt.Errorf("decode level data: %w", err)
		}
		id, err := uuid.Parse(ld.UUID)
		if err != nil {
			return fmt.Errorf("decode level data: world uuid: %w", err)
		}
		db.set = world.Settings{Name: ld.Name, UUID: id, Seed: ld.Seed}
		return nil
	case errors.Is(err, leveldb.ErrNotFound):
		db.set = world.Settings{Name: conf.Name, UUID: uuid.New(), Seed: conf.Seed}
		db.log.Info("created new world database", "uuid", db.set.UUID, "seed", db.set.Seed)
		return db.SaveSettings(db.set)
	default:
		return fmt.Errorf("load level data: %w", err)
	}
}

// Settings returns the settings of the world held by the database.
func (db *DB) Settings() world.Settings {
	return db.set
}

// SaveSettings writes the settings passed to the database.
func (db *DB) SaveSettings(s world.Settings) error {
	data, err := toml.Marshal(levelData{Name: s.Name, UUID: s.UUID.String(), Seed: s.Seed})
	if err != nil {
		return fmt.Errorf("encode level data: %w", err)
	}
	if err := db.ldb.Put(keyLevel, data, nil); err != nil {
		return fmt.Errorf("save level data: %w", err)
	}
	db.set = s
	return nil
}

// LoadColumn loads the column stored at the position passed. The returned
// error wraps leveldb.ErrNotFound if the column is not present, causing the
// world to generate it.
func (db *DB) LoadColumn(pos world.ChunkPos) (*chunk.Chunk, error) {
	data, err := db.ldb.Get(columnKey(pos), nil)
	if err != nil {
		return nil, fmt.Errorf("load column %v: %w", pos, err)
	}
	c, err := chunk.DecodeChunk(data)
	if err != nil {
		return nil, fmt.Errorf("load column %v: %w", pos, err)
	}
	return c, nil
}

// StoreColumn stores the column passed at its position.
func (db *DB) StoreColumn(pos world.ChunkPos, c *chunk.Chunk) error {
	if err := db.ldb.Put(columnKey(pos), c.Encode(), nil); err != nil {
		return fmt.Errorf("store column %v: %w", pos, err)
	}
	return nil
}

// Close closes the underlying database.
func (db *DB) Close() error {
	return db.ldb.Close()
}

// columnKey returns the database key of the column at the position passed.
func columnKey(pos world.ChunkPos) []byte {
	k := make([]byte, 9)
	k[0] = 'c'
	binary.LittleEndian.PutUint32(k[1:], uint32(pos[0]))
	binary.LittleEndian.PutUint32(k[5:], uint32(pos[1]))
	return k
}
