package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cresas/fiziksim2/internal/config"
	"github.com/cresas/fiziksim2/internal/sim"
)

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	mdl, cmd := m.Update(msg)
	next, ok := mdl.(Model)
	if !ok {
		t.Fatalf("Update returned %T", mdl)
	}
	return next, cmd
}

func TestSimTickAdvancesAndReschedules(t *testing.T) {
	m := NewModel(config.Default())

	m, cmd := update(t, m, key('s'))
	if cmd == nil {
		t.Fatal("start did not schedule a tick")
	}
	if m.driver.Phase() != sim.Running {
		t.Fatalf("phase = %v, want running", m.driver.Phase())
	}

	m, cmd = update(t, m, simTickMsg{gen: m.gen})
	if m.store.Len() != 1 {
		t.Errorf("history length = %d, want 1", m.store.Len())
	}
	if cmd == nil {
		t.Error("running tick must reschedule")
	}
}

func TestStaleTickChainDiesAfterRestart(t *testing.T) {
	m := NewModel(config.Default())

	// first run: start and advance one tick
	m, _ = update(t, m, key('s'))
	firstGen := m.gen
	m, _ = update(t, m, simTickMsg{gen: firstGen})

	// reset while the first run's next tick is still in flight, then
	// restart within the tick interval
	m, _ = update(t, m, key('r'))
	m, _ = update(t, m, key('s'))

	before := m.store.Len()
	m, cmd := update(t, m, simTickMsg{gen: firstGen})
	if m.store.Len() != before {
		t.Errorf("stale tick advanced the new run: %d -> %d records", before, m.store.Len())
	}
	if cmd != nil {
		t.Error("stale tick rescheduled: two live tick chains")
	}

	// the new run's own chain still ticks
	m, cmd = update(t, m, simTickMsg{gen: m.gen})
	if m.store.Len() != before+1 {
		t.Errorf("fresh tick did not advance: %d records", m.store.Len())
	}
	if cmd == nil {
		t.Error("fresh tick must reschedule")
	}
}

func TestTickAfterResetIsDropped(t *testing.T) {
	m := NewModel(config.Default())

	m, _ = update(t, m, key('s'))
	gen := m.gen
	m, _ = update(t, m, key('r'))

	m, cmd := update(t, m, simTickMsg{gen: gen})
	if m.store.Len() != 0 {
		t.Errorf("tick after reset appended %d records", m.store.Len())
	}
	if cmd != nil {
		t.Error("tick after reset rescheduled")
	}
}

func TestStaleBounceTickIsDropped(t *testing.T) {
	m := NewModel(config.Default())

	m.bounce = sim.NewBounce()
	stale := bounceTickMsg{gen: m.gen - 1}

	ballY := m.ballY
	m, cmd := update(t, m, stale)
	if m.ballY != ballY {
		t.Error("stale bounce tick moved the ball")
	}
	if cmd != nil {
		t.Error("stale bounce tick rescheduled")
	}
	if m.bounce == nil || m.bounce.Done() {
		t.Error("stale bounce tick consumed a frame")
	}

	// the live-generation chain still plays
	m, cmd = update(t, m, bounceTickMsg{gen: m.gen})
	if cmd == nil {
		t.Error("live bounce tick must reschedule")
	}
}
