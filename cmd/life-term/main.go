package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"lifeboard/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := term.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err = screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	t := term.New(screen, cfg)
	err = t.Run(ctx)
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
	sess := t.Session()
	log.Printf("stopped at generation %d, population %d", sess.Generation(), sess.Current().Population())
}
