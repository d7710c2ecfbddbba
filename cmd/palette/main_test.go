package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lixenwraith/palette/config"
	"github.com/lixenwraith/palette/palette"
)

func TestFlagsOverrideOnlyWhenSet(t *testing.T) {
	opts, err := parseFlags([]string{"-columns", "12", "-sort", "hex", "-debug"})
	if err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Source = "/from/config"
	cfg.Sound.Enabled = true
	opts.apply(cfg)

	want := config.Default()
	want.Source = "/from/config"
	want.Sound.Enabled = true
	want.Columns = 12
	want.Sort = "hex"
	want.Log.Debug = true
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if opts.config != config.DefaultPath || opts.dump {
		t.Errorf("defaults: config=%q dump=%v", opts.config, opts.dump)
	}
}

func TestFlagsReject(t *testing.T) {
	if _, err := parseFlags([]string{"-columns", "wide"}); err == nil {
		t.Error("expected error for non-numeric -columns")
	}
}

func TestDump(t *testing.T) {
	table, _, err := palette.Load(strings.NewReader("0 0 255 blue\n255 0 0 red\n255 0 0 Red\n0 255 0 green\n"))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		mode palette.SortMode
		want string
	}{
		{"HSV", palette.SortHSV, "#ff0000\tRed, red\n#00ff00\tgreen\n#0000ff\tblue\n"},
		{"Hex", palette.SortHex, "#0000ff\tblue\n#00ff00\tgreen\n#ff0000\tRed, red\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := dump(&buf, table, tt.mode); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("dump mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
