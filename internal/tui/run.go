package tui

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Zachkp/portfolio/internal/config"
)

// Run takes over the terminal until the user quits or ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	cols, rows := screen.Size()
	app, err := New(cfg, cols, rows, time.Now())
	if err != nil {
		return err
	}
	defer app.Close()
	log.Printf("Terminal host started: %dx%d, %s profile", cols, rows, app.profile)

	// PollEvent returns nil once the screen is finalised, which ends the
	// goroutine.
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(app.FrameInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			if !app.Handle(ev, time.Now()) {
				log.Println("Terminal host stopped")
				return nil
			}
		case now := <-ticker.C:
			app.Tick(now)
			app.Draw(screen)
			screen.Show()
		}
	}
}
