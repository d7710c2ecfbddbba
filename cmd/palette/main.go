package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/palette/audio"
	"github.com/lixenwraith/palette/config"
	"github.com/lixenwraith/palette/engine"
	"github.com/lixenwraith/palette/palette"
	"github.com/lixenwraith/palette/terminal"
)

// options holds command-line values; only flags actually given override the config
type options struct {
	config  string
	source  string
	columns int
	sort    string
	color   string
	sound   bool
	debug   bool
	dump    bool

	set map[string]bool
}

func parseFlags(args []string) (*options, error) {
	o := &options{set: make(map[string]bool)}
	fs := flag.NewFlagSet("palette", flag.ContinueOnError)
	fs.StringVar(&o.config, "config", config.DefaultPath, "YAML configuration file")
	fs.StringVar(&o.source, "source", "", "rgb.txt path (default: platform locations)")
	fs.IntVar(&o.columns, "columns", 0, "swatches per row")
	fs.StringVar(&o.sort, "sort", "", "initial order: hsv or hex")
	fs.StringVar(&o.color, "color", "", "color mode: auto, truecolor, 256")
	fs.BoolVar(&o.sound, "sound", false, "chime after each copy")
	fs.BoolVar(&o.debug, "debug", false, "write a debug log")
	fs.BoolVar(&o.dump, "dump", false, "print the sorted table and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

func (o *options) apply(cfg *config.Config) {
	if o.set["source"] {
		cfg.Source = o.source
	}
	if o.set["columns"] {
		cfg.Columns = o.columns
	}
	if o.set["sort"] {
		cfg.Sort = o.sort
	}
	if o.set["color"] {
		cfg.ColorMode = o.color
	}
	if o.set["sound"] {
		cfg.Sound.Enabled = o.sound
	}
	if o.set["debug"] {
		cfg.Log.Debug = o.debug
	}
}

func main() {
	// Panic Recovery: restore the terminal before printing anything
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPALETTE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "palette: %v\n", err)
		os.Exit(1)
	}
}

func run(opts *options) error {
	cfg, err := config.Load(opts.config)
	if err != nil {
		return err
	}
	opts.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	logger, logFile := setupLogging(cfg.Log.Debug, cfg.Log.Path)
	if logFile != nil {
		defer logFile.Close()
	}

	source := cfg.Source
	if source == "" {
		if source, err = palette.Resolve(palette.DefaultSource(runtime.GOOS)); err != nil {
			return err
		}
	}

	// Initial load failure is fatal and reported before the screen starts
	table, _, err := palette.NewLoader(logger).LoadFile(source)
	if err != nil {
		return err
	}

	if opts.dump {
		return dump(os.Stdout, table, cfg.SortMode())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)

	player := audio.Open(cfg.Sound.Enabled, cfg.Sound.Volume, logger)
	defer player.Close()

	app := engine.New(screen, table, engine.Options{
		Source:     source,
		Sort:       cfg.SortMode(),
		Columns:    cfg.Columns,
		CellWidth:  cfg.CellWidth,
		CellHeight: cfg.CellHeight,
		ColorMode:  cfg.Colors(),
		Start:      cfg.StartHex(),
		Player:     player,
		Logger:     logger,
		// Use \r\n for raw mode compatibility to avoid zig-zag output
		CrashHandler: func(r any) {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info().Msg("exit")
	return nil
}
