// Package engine owns the palette screen: application state, input dispatch,
// frame composition and the event loop.
package engine

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/palette/audio"
	"github.com/lixenwraith/palette/constants"
	"github.com/lixenwraith/palette/grid"
	"github.com/lixenwraith/palette/input"
	"github.com/lixenwraith/palette/palette"
	"github.com/lixenwraith/palette/render"
	"github.com/lixenwraith/palette/terminal"
)

// Options configures an App. Zero values select defaults.
type Options struct {
	Source     string // rgb.txt path used by reload
	Sort       palette.SortMode
	Columns    int
	CellWidth  int
	CellHeight int
	ColorMode  terminal.ColorMode
	Start      string // "#rrggbb" to select first, ignored when absent from the table

	Clipboard terminal.Clipboard // defaults to the screen's OSC 52 clipboard
	Player    audio.Player       // defaults to audio.Silent
	Clock     Clock              // defaults to SystemClock
	Keys      *input.KeyTable    // defaults to input.DefaultKeyTable
	Logger    zerolog.Logger

	// CrashHandler runs when the event poller panics; nil re-panics
	CrashHandler func(any)
}

// App ties the state to a screen
type App struct {
	screen   tcell.Screen
	state    *State
	renderer *render.Renderer
	clip     terminal.Clipboard
	player   audio.Player
	loader   *palette.Loader
	clock    Clock
	keys     *input.KeyTable
	log      zerolog.Logger
	source   string
	cellW    int
	cellH    int
	buttons  tcell.ButtonMask
	onCrash  func(any)
}

// New builds an App over an initialised screen and an already loaded table
func New(screen tcell.Screen, table *palette.Table, opts Options) *App {
	log := opts.Logger.With().Str("component", "engine").Logger()

	a := &App{
		screen:   screen,
		state:    NewState(table, opts.Sort, opts.Columns),
		renderer: render.NewRenderer(opts.ColorMode),
		clip:     opts.Clipboard,
		player:   opts.Player,
		loader:   palette.NewLoader(opts.Logger),
		clock:    opts.Clock,
		keys:     opts.Keys,
		log:      log,
		source:   opts.Source,
		cellW:    opts.CellWidth,
		cellH:    opts.CellHeight,
		onCrash:  opts.CrashHandler,
	}
	if a.clip == nil {
		a.clip = terminal.NewScreenClipboard(screen)
	}
	if a.player == nil {
		a.player = audio.Silent{}
	}
	if a.clock == nil {
		a.clock = SystemClock{}
	}
	if a.keys == nil {
		a.keys = input.DefaultKeyTable()
	}
	if a.cellW < 1 {
		a.cellW = constants.DefaultCellWidth
	}
	if a.cellH < 1 {
		a.cellH = constants.DefaultCellHeight
	}

	if opts.Start != "" {
		if c, ok := a.state.Grid.Find(opts.Start); ok {
			a.state.Cursor = c.Index
			a.follow()
		}
	}

	log.Debug().
		Int("colours", a.state.Grid.Len()).
		Str("sort", a.state.Sort.String()).
		Str("color_mode", opts.ColorMode.String()).
		Msg("engine ready")
	return a
}

// State exposes the current state; callers must not mutate it concurrently with Run
func (a *App) State() *State {
	return a.state
}

// geometry places the grid below the top margin and above the status bar
func (a *App) geometry() grid.Geometry {
	_, h := a.screen.Size()
	return grid.Geometry{
		X:          constants.GridMarginX,
		Y:          constants.GridMarginY,
		CellWidth:  a.cellW,
		CellHeight: a.cellH,
		Top:        a.state.Top,
		Height:     max(h-constants.GridMarginY-constants.StatusBarHeight, a.cellH),
	}
}

// follow scrolls so the cursor row is on screen
func (a *App) follow() {
	c, ok := a.state.CursorCell()
	if !ok {
		a.state.Top = 0
		return
	}
	a.state.Top = a.geometry().ScrollTo(c.Row)
}

func (a *App) flash(text string, isError bool) {
	a.state.SetMessage(text, isError, a.clock.Now().Add(constants.StatusMessageTimeout))
}

// copy sends text to the clipboard with audible and status feedback
func (a *App) copy(text string) {
	if err := a.clip.Copy(text); err != nil {
		a.log.Warn().Err(err).Str("text", text).Msg("copy failed")
		a.flash("Copy failed: "+err.Error(), true)
		a.player.Failed()
		return
	}
	a.log.Debug().Str("text", text).Msg("copied")
	a.flash("Copied "+text, false)
	a.player.Copied()
}

func (a *App) copyCursor() {
	if c, ok := a.state.CursorCell(); ok {
		a.copy(c.Fill())
	}
}

func (a *App) resort(mode palette.SortMode) {
	if mode == a.state.Sort {
		return
	}
	a.state.Resort(mode)
	a.follow()
	a.log.Debug().Str("sort", mode.String()).Msg("resorted")
	a.flash("Sorted by "+mode.String(), false)
}

// reload re-reads the source; on failure the current table stays
func (a *App) reload() {
	if a.source == "" {
		a.flash("Reload failed: no source file", true)
		return
	}
	table, stats, err := a.loader.LoadFile(a.source)
	if err != nil {
		a.log.Error().Err(err).Str("path", a.source).Msg("reload failed")
		a.flash("Reload failed: "+err.Error(), true)
		return
	}
	a.state.SetTable(table)
	a.follow()

	msg := fmt.Sprintf("Reloaded %d colours", table.Len())
	if n := len(stats.Skipped); n > 0 {
		msg += fmt.Sprintf(" (%d lines skipped)", n)
	}
	a.flash(msg, false)
}

func (a *App) openDetail(i int) {
	c, ok := a.state.Grid.Index(i)
	if !ok {
		return
	}
	a.state.Cursor = i
	a.state.Hover = -1
	a.state.Detail = &DetailState{Entry: c.Entry}
}

func (a *App) closeDetail() {
	a.state.Detail = nil
}

// detailBox is the popup geometry for the current screen size
func (a *App) detailBox() render.DetailBox {
	w, h := a.screen.Size()
	return render.LayoutDetail(a.state.Detail.Entry, w, h)
}
