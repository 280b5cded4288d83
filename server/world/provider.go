package world

import (
	"github.com/df-mc/dunes/server/world/chunk"
	"github.com/df-mc/goleveldb/leveldb"
	"github.com/google/uuid"
)

// Settings holds the settings of a world, loaded from and saved through its
// Provider.
type Settings struct {
	// Name is the display name of the world.
	Name string
	// UUID uniquely identifies the world across saves.
	UUID uuid.UUID
	// Seed is the seed terrain generation is based on.
	Seed int64
}

// Provider represents a value that may provide world data to a World. A World
// without a Provider keeps everything in memory and generates every column it
// needs anew.
type Provider interface {
	// Settings returns the settings of the world as loaded from storage.
	Settings() Settings
	// SaveSettings saves the settings passed to storage.
	SaveSettings(s Settings) error
	// LoadColumn loads the column at the position passed. If no column is
	// stored at the position, an error wrapping leveldb.ErrNotFound is
	// returned, causing the World to generate the column instead.
	LoadColumn(pos ChunkPos) (*chunk.Chunk, error)
	// StoreColumn stores the column at the position passed.
	StoreColumn(pos ChunkPos, c *chunk.Chunk) error
	// Close closes the provider once the World is done with it.
	Close() error
}

// NopProvider is a Provider that stores nothing. Worlds with a NopProvider
// generate every column they need and lose them on close.
type NopProvider struct {
	// Set is returned by Settings, allowing a seed and name to be set for
	// worlds without storage.
	Set Settings
}

// Compile time check to make sure NopProvider implements Provider.
var _ Provider = NopProvider{}

func (n NopProvider) Settings() Settings {
	return n.Set
}
func (NopProvider) SaveSettings(Settings) error { return nil }
func (NopProvider) LoadColumn(ChunkPos) (*chunk.Chunk, error) {
	return nil, leveldb.ErrNotFound
}
func (NopProvider) StoreColumn(ChunkPos, *chunk.Chunk) error { return nil }
func (NopProvider) Close() error                             { return nil }
