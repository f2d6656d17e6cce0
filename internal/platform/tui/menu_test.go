package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/splt/internal/core"
	_ "github.com/vovakirdan/splt/internal/games/splt"
	"github.com/vovakirdan/splt/internal/storage"
)

func sendKeys(m MenuModel, keys ...string) MenuModel {
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(MenuModel)
	}
	return m
}

func TestMenuListsVariantsWithBest(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	if _, err := store.SaveScore("splt_mini", 42); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	m := NewMenuModel(store, core.DefaultConfig())
	view := m.View()

	for _, title := range []string{"SPL-T", "SPL-T (Mini)", "SPL-T (Wide)"} {
		if !strings.Contains(view, title) {
			t.Errorf("menu missing %q", title)
		}
	}
	if !strings.Contains(view, "best 42") {
		t.Errorf("menu missing best score:\n%s", view)
	}
}

func TestMenuSelect(t *testing.T) {
	m := sendKeys(NewMenuModel(nil, core.DefaultConfig()), "j", "j", "j", "k", "enter")

	// Variants sort by id: splt, splt_mini, splt_wide
	if m.Selected() == nil || m.Selected().GameID != "splt_mini" {
		t.Fatalf("Selected() = %+v, want splt_mini", m.Selected())
	}
	if m.IsQuitting() || m.WantsScoreboard() {
		t.Error("selection should not quit or open scores")
	}
}

func TestMenuCursorClamped(t *testing.T) {
	m := sendKeys(NewMenuModel(nil, core.DefaultConfig()), "up", "enter")
	if m.Selected() == nil || m.Selected().GameID != "splt" {
		t.Errorf("Selected() = %+v, want splt", m.Selected())
	}
}

func TestMenuScoresAndQuit(t *testing.T) {
	if !sendKeys(NewMenuModel(nil, core.DefaultConfig()), "tab").WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	m := sendKeys(NewMenuModel(nil, core.DefaultConfig()), "esc")
	if !m.IsQuitting() || m.View() != "" {
		t.Error("esc should quit the menu")
	}
}

func TestMenuResize(t *testing.T) {
	next, _ := NewMenuModel(nil, core.DefaultConfig()).Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	cfg := next.(MenuModel).Config()
	if cfg.ScreenW != 120 || cfg.ScreenH != 50 {
		t.Errorf("Config() = %+v", cfg)
	}
}
