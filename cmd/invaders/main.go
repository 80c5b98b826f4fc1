package main

import (
	"flag"
	"log"
	"time"

	"invaders/internal/game"
)

func main() {
	cfg := game.DefaultConfig()

	flag.IntVar(&cfg.WindowWidth, "width", cfg.WindowWidth, "window width in pixels")
	flag.IntVar(&cfg.WindowHeight, "height", cfg.WindowHeight, "window height in pixels")
	flag.StringVar(&cfg.AtlasPath, "atlas", cfg.AtlasPath, "sprite atlas descriptor (empty for solid-color sprites)")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed (0 picks one from the clock)")
	flag.Parse()

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	if err := game.Run(cfg); err != nil {
		log.Fatalf("invaders: %v", err)
	}
}
