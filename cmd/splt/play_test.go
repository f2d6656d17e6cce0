package main

import (
	"testing"

	"github.com/vovakirdan/splt/internal/config"
)

func TestResolveGameID(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		preset  string
		want    string
		wantW   int
		wantErr bool
	}{
		{"default", nil, "", "splt", 3, false},
		{"explicit", []string{"splt_wide"}, "", "splt_wide", 3, false},
		{"mini", nil, "mini", "splt_mini", 3, false},
		{"classic overrides board", nil, "Classic", "splt", 8, false},
		{"unknown preset", nil, "huge", "", 3, true},
		{"both", []string{"splt"}, "mini", "", 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultSpltConfig()
			cfg.Board.Width = 3

			got, err := resolveGameID(tt.args, tt.preset, &cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("game = %q, want %q", got, tt.want)
			}
			if cfg.Board.Width != tt.wantW {
				t.Errorf("board width = %d, want %d", cfg.Board.Width, tt.wantW)
			}
		})
	}
}

func TestConnectHint(t *testing.T) {
	tests := map[string]string{
		":23234":          "ssh localhost -p 23234",
		"0.0.0.0:2222":    "ssh localhost -p 2222",
		"splt.example:22": "ssh arcade.local -p 22",
		"[::]:23234":      "ssh localhost -p 23234",
		"no-port-here":    "ssh no-port-here",
	}
	for addr, want := range tests {
		if got := connectHint(addr); got != want {
			t.Errorf("connectHint(%q) = %q, want %q", addr, got, want)
		}
	}
}
