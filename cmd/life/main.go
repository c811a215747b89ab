//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifeboard/internal/app"
	"lifeboard/internal/session"
	"lifeboard/pkg/random"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	sess := session.New(cfg.Session(), random.FromSeed(cfg.Seed))
	game := app.New(sess, cfg)
	size := sess.Size()
	log.Printf("board %dx%d, density %v, %d/%d tps", size.W, size.H, cfg.Density, cfg.PlayTPS, cfg.EditTPS)

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetTPS(sess.TickRate())
	ebiten.SetWindowSize(game.Layout(0, 0))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
