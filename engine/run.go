package engine

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/palette/constants"
)

// Run draws and dispatches events until the user quits (nil) or ctx ends (ctx.Err()).
// The screen must be initialised; the caller finalises it afterwards.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, constants.EventQueueSize)
	done := make(chan struct{})
	defer close(done)

	go a.poll(events, done)

	ticker := time.NewTicker(constants.TickInterval)
	defer ticker.Stop()

	a.Draw()
	for {
		select {
		case <-ctx.Done():
			a.log.Debug().Err(ctx.Err()).Msg("context done")
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.HandleEvent(ev) {
				a.log.Debug().Msg("quit")
				return nil
			}
			a.Draw()

		case <-ticker.C:
			// Redraw only to clear an expired status message
			if a.state.ExpireMessage(a.clock.Now()) {
				a.Draw()
			}
		}
	}
}

// poll forwards screen events until the screen is finalised or Run returns
func (a *App) poll(events chan<- tcell.Event, done <-chan struct{}) {
	defer func() {
		if r := recover(); r != nil {
			if a.onCrash == nil {
				panic(r)
			}
			a.onCrash(r)
		}
	}()
	defer close(events)

	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
