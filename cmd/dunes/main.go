package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/df-mc/dunes/server/block/cube"
	"github.com/df-mc/dunes/server/event"
	"github.com/df-mc/dunes/server/world"
	"github.com/df-mc/dunes/server/world/generator/pmgen"
	"github.com/df-mc/dunes/server/world/generator/pmgen/populate"
	"github.com/df-mc/dunes/server/world/mcdb"
	"github.com/pelletier/go-toml"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	conf, err := readConfig()
	if err != nil {
		log.Error("read config", "error", err)
		os.Exit(1)
	}

	db, err := mcdb.Config{Log: log, Name: conf.Name, Seed: conf.Seed}.Open(conf.World)
	if err != nil {
		log.Error("open world database", "error", err)
		os.Exit(1)
	}

	gen := pmgen.Config{Seed: db.Settings().Seed, WellChance: conf.WellChance}.New()
	h := &wellLogger{log: log}
	w := world.Config{Log: log, Provider: db, Generator: gen, Handler: h}.New()
	gen.BindWorld(w)

	log.Info("generating", "world", w.Name(), "uuid", w.Settings().UUID, "seed", w.Seed(), "radius", conf.Radius)
	start := time.Now()
	for x := int32(-conf.Radius); x <= int32(conf.Radius); x++ {
		for z := int32(-conf.Radius); z <= int32(conf.Radius); z++ {
			if _, err := w.Column(world.ChunkPos{x, z}); err != nil {
				log.Error("generate column", "pos", world.ChunkPos{x, z}, "error", err)
				os.Exit(1)
			}
		}
	}
	log.Info("generation complete", "columns", w.LoadedColumns(), "wells", h.wells, "took", time.Since(start))

	if err := w.Close(); err != nil {
		log.Error("close world", "error", err)
		os.Exit(1)
	}
}

// wellLogger logs every desert well placed during generation together with
// the cause chain that led to it.
type wellLogger struct {
	world.NopHandler
	log   *slog.Logger
	wells int
}

func (h *wellLogger) HandleStructurePlace(_ *event.Context[*world.World], pos cube.Pos, name string, cause event.Cause) {
	if name != populate.StructureDesertWell {
		return
	}
	h.wells++
	root, _ := cause.Root()
	h.log.Info("well placed", "centre", pos.Vec3Centre(), "chunk", fmt.Sprint(root), "cause", cause.String())
}

// config is the structure of the dunes.toml file read on startup.
type config struct {
	Name       string `toml:"name"`
	Seed       int64  `toml:"seed"`
	World      string `toml:"world"`
	Radius     int32  `toml:"radius"`
	WellChance int    `toml:"well_chance"`
}

func defaultConfig() config {
	return config{Name: "Dunes", Seed: 0, World: "world", Radius: 8, WellChance: 1000}
}

// readConfig reads the configuration from dunes.toml, creating the file with
// default values if it does not yet exist.
func readConfig() (config, error) {
	conf := defaultConfig()
	if _, err := os.Stat("dunes.toml"); os.IsNotExist(err) {
		data, err := toml.Marshal(conf)
		if err != nil {
			return conf, fmt.Errorf("encode default config: %w", err)
		}
		if err := os.WriteFile("dunes.toml", data, 0644); err != nil {
			return conf, fmt.Errorf("create default config: %w", err)
		}
		return conf, nil
	}
	data, err := os.ReadFile("dunes.toml")
	if err != nil {
		return conf, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &conf); err != nil {
		return conf, fmt.Errorf("decode config: %w", err)
	}
	if conf.Radius < 0 {
		conf.Radius = 0
	}
	return conf, nil
}
