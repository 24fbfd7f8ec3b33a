//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"net/http"

	"gridsnake/internal/app"
	"gridsnake/internal/remote"
	"gridsnake/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sess, err := cfg.NewSession()
	if err != nil {
		log.Fatalf("snake: %v", err)
	}

	var cmds chan session.Command
	var publish func(session.Frame)
	if cfg.Remote != "" {
		cmds = make(chan session.Command, 16)
		hub := remote.NewHub(sess.ID().String(), cmds, log.Default())
		publish = hub.Publish
		go func() {
			log.Printf("pad listening on %s", cfg.Remote)
			if err := http.ListenAndServe(cfg.Remote, hub.Handler()); err != nil {
				log.Printf("pad server: %v", err)
			}
		}()
	}

	game := app.New(sess, cfg.Scale, cmds, publish)
	w, h := game.WindowSize()

	ebiten.SetWindowTitle("gridsnake")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
