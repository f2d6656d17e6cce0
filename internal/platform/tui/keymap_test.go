package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/splt/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGameKeyMapAction(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		key  string
		want core.Action
	}{
		{"up", core.ActionUp},
		{"w", core.ActionUp},
		{"k", core.ActionUp},
		{"j", core.ActionDown},
		{"a", core.ActionLeft},
		{"l", core.ActionRight},
		{"enter", core.ActionConfirm},
		{" ", core.ActionConfirm},
		{"esc", core.ActionBack},
		{"r", core.ActionRestart},
		{"q", core.ActionQuit},
		{"ctrl+c", core.ActionQuit},
		{"ctrl+s", core.ActionNone},
		{"x", core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := keys.Action(keyMsg(tt.key)); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestMenuKeyMap(t *testing.T) {
	keys := DefaultMenuKeyMap()

	tests := []struct {
		key     string
		binding key.Binding
	}{
		{"up", keys.Up},
		{"j", keys.Down},
		{"enter", keys.Select},
		{"tab", keys.Scores},
		{"esc", keys.Quit},
		{"q", keys.Quit},
	}
	for _, tt := range tests {
		if !key.Matches(keyMsg(tt.key), tt.binding) {
			t.Errorf("%q should match %v", tt.key, tt.binding.Help().Desc)
		}
	}
	if len(keys.ShortHelp()) != 5 {
		t.Errorf("ShortHelp has %d bindings", len(keys.ShortHelp()))
	}
}
