package registry

import (
	"testing"

	"github.com/vovakirdan/splt/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func register(t *testing.T, id string) {
	t.Helper()
	Register(id, func() Game { return stubGame{id: id} })
	t.Cleanup(func() {
		mu.Lock()
		delete(entries, id)
		mu.Unlock()
	})
}

func TestRegisterAndCreate(t *testing.T) {
	register(t, "zz_stub")

	if !Exists("zz_stub") {
		t.Fatal("registered id should exist")
	}
	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID() = %q", g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("unknown id should fail")
	}
	if Exists("missing") {
		t.Error("unknown id should not exist")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register(t, "zz_dup")

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })
}

func TestListSortedWithTitles(t *testing.T) {
	register(t, "zz_b")
	register(t, "zz_a")

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "zz_a" && info.Title != "Stub zz_a" {
			t.Errorf("title = %q", info.Title)
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Fatalf("List not sorted: %v", ids)
		}
	}
}
