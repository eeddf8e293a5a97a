package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/1byung/tepdash/engine"
)

func TestToggleOnLiveEngine(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	eng := engine.New(engine.Options{Rand: engine.NewSeeded(1)})
	m := NewModel(eng, time.Second)
	m.snap = eng.Tick()

	want := m.snap.Sensors[0].ID
	_, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a refresh command after toggling")
	}
	sel := eng.Snapshot().Selection
	if len(sel) != 1 || sel[0] != want {
		t.Errorf("selection = %v, want [%d]", sel, want)
	}
}

func TestToggleIgnoredDuringReplay(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	p, err := engine.NewPlayer(strings.NewReader(""))
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	m := NewModel(p, time.Second)
	m.snap = snapFixture()

	updated, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("toggle during replay must not issue a refresh command")
	}
	if got := updated.(Model); got.snap != m.snap {
		t.Error("displayed frame changed on toggle during replay")
	}
	if sel := p.Base().Snapshot().Selection; len(sel) != 0 {
		t.Errorf("backing engine selection = %v, want empty", sel)
	}
}

func TestPageChangePersistsAcrossModels(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	eng := engine.New(engine.Options{Rand: engine.NewSeeded(1)})
	m := NewModel(eng, time.Second)
	if m.page != PageOverview {
		t.Fatalf("start page = %v, want %v", m.page, PageOverview)
	}

	updated, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	if got := updated.(Model); got.page != PageSensors {
		t.Fatalf("page after tab = %v, want %v", got.page, PageSensors)
	}

	// A fresh model starts on the page the user last navigated to.
	if again := NewModel(eng, time.Second); again.page != PageSensors {
		t.Errorf("fresh model page = %v, want %v", again.page, PageSensors)
	}
}
