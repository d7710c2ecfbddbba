package palette

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/palette/colour"
)

// maxLineBytes bounds a single line; rgb.txt lines are a few dozen bytes
const maxLineBytes = 64 * 1024

// LoadStats summarises one load
type LoadStats struct {
	Lines   int // lines read, including blank and skipped ones
	Entries int // distinct triples
	Names   int // names across all entries
	Skipped []*ParseError
}

// Loader parses colour-name files in the X11 rgb.txt layout: "R G B Name..."
type Loader struct {
	log zerolog.Logger
}

// NewLoader creates a loader that reports skipped lines to log
func NewLoader(log zerolog.Logger) *Loader {
	return &Loader{log: log.With().Str("component", "loader").Logger()}
}

// Load parses a colour file using a silent logger
func Load(r io.Reader) (*Table, LoadStats, error) {
	return NewLoader(zerolog.Nop()).Load(r)
}

// LoadFile parses the colour file at path using a silent logger
func LoadFile(path string) (*Table, LoadStats, error) {
	return NewLoader(zerolog.Nop()).LoadFile(path)
}

// Load reads every line of r. Malformed lines are skipped and recorded in the stats;
// only a read failure aborts the load.
func (l *Loader) Load(r io.Reader) (*Table, LoadStats, error) {
	var stats LoadStats
	t := newTable()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	for sc.Scan() {
		stats.Lines++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		e, err := parseLine(line)
		if err != nil {
			pe := &ParseError{Line: stats.Lines, Text: line, Err: err}
			stats.Skipped = append(stats.Skipped, pe)
			l.log.Debug().Int("line", pe.Line).Err(err).Msg("skipping malformed line")
			continue
		}
		t.merge(e)
	}
	if err := sc.Err(); err != nil {
		return nil, stats, &sourceError{Err: err}
	}

	stats.Entries = t.Len()
	stats.Names = t.NameCount()
	if n := len(stats.Skipped); n > 0 {
		l.log.Warn().Int("skipped", n).Int("lines", stats.Lines).Msg("colour file has malformed lines")
	}
	return t, stats, nil
}

// LoadFile opens and parses path. A missing or unreadable file, or one without a
// single valid line, yields an error matching ErrSourceUnavailable.
func (l *Loader) LoadFile(path string) (*Table, LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadStats{}, &sourceError{Path: path, Err: err}
	}
	defer f.Close()

	t, stats, err := l.Load(f)
	if err != nil {
		if se, ok := err.(*sourceError); ok {
			se.Path = path
		}
		return nil, stats, err
	}
	if t.Len() == 0 {
		return nil, stats, &sourceError{Path: path, Err: fmt.Errorf("no colours in %d lines", stats.Lines)}
	}

	l.log.Info().
		Str("path", path).
		Int("entries", stats.Entries).
		Int("names", stats.Names).
		Msg("colour table loaded")
	return t, stats, nil
}

// parseLine decodes "R G B Name...". Names made of several words are joined with single spaces.
func parseLine(line string) (colour.Entry, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return colour.Entry{}, ErrFieldCount
	}

	var c [3]int
	for i := range c {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return colour.Entry{}, fmt.Errorf("component %q: %w", fields[i], err)
		}
		c[i] = v
	}

	return colour.FromComponents(c[0], c[1], c[2], strings.Join(fields[3:], " "))
}
