package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"

	"gridsnake/internal/app"
	"gridsnake/internal/remote"
	"gridsnake/internal/session"
	"gridsnake/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logFile := flag.String("log", filepath.Join(os.TempDir(), "snake-term.log"), "log file (the terminal is busy drawing)")
	flag.Parse()

	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("snake-term: %v", err)
	}
	defer f.Close()
	log.SetOutput(f)

	opts, err := cfg.Options(log.Default())
	if err != nil {
		log.Fatalf("snake-term: %v", err)
	}
	st, err := cfg.Store()
	if err != nil {
		log.Fatalf("snake-term: %v", err)
	}
	sess, err := session.New(opts, st)
	if err != nil {
		log.Fatalf("snake-term: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("snake-term: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("snake-term: %v", err)
	}
	defer screen.Fini()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cmds := make(chan session.Command, 16)
	frames := make(chan session.Frame, 1)
	emit := func(fr session.Frame) { term.SendLatest(frames, fr) }

	if cfg.Remote != "" {
		hub := remote.NewHub(sess.ID().String(), cmds, log.Default())
		emit = func(fr session.Frame) {
			term.SendLatest(frames, fr)
			hub.Publish(fr)
		}
		srv := &http.Server{Addr: cfg.Remote, Handler: hub.Handler()}
		go func() {
			log.Printf("pad listening on %s", cfg.Remote)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("pad server: %v", err)
			}
		}()
		defer srv.Close()
	}

	done := make(chan error, 1)
	go func() { done <- sess.Run(ctx, cmds, emit) }()

	host := term.NewHost(screen, cfg.ASCII, cmds)
	if err := host.Run(ctx, frames); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("terminal: %v", err)
	}
	cancel()
	if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("session: %v", err)
	}
}
