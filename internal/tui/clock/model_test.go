package clock

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/mdwtime/foundation/utils/timex"
	"github.com/msto63/mdwtime/internal/slots"
)

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

func TestModel_Countdown(t *testing.T) {
	now := time.Date(2026, time.October, 16, 22, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		target timex.TimeOfDay
		want   time.Duration
	}{
		{"later today", timex.MustNew(23, 30, 0, 0), 90 * time.Minute},
		{"tomorrow", timex.MustNew(6, 0, 0, 0), 8 * time.Hour},
		{"now", timex.MustNew(22, 0, 0, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(Config{Target: tt.target, UTC: true, Now: fixedClock(now)})
			if got := m.Countdown().Duration(); got != tt.want {
				t.Errorf("Countdown() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModel_DayProgress(t *testing.T) {
	now := time.Date(2026, time.October, 16, 18, 0, 0, 0, time.UTC)
	m := New(Config{UTC: true, Now: fixedClock(now)})

	if got := m.DayProgress(); got != 0.75 {
		t.Errorf("DayProgress() = %v, want 0.75", got)
	}
}

func TestModel_Update(t *testing.T) {
	now := time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)
	m := New(Config{UTC: true, Now: fixedClock(now)})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("u")})
	if updated.(Model).utc {
		t.Error("u did not toggle UTC mode")
	}
	if cmd == nil {
		t.Error("toggle should reload slots")
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}

	later := now.Add(time.Minute)
	m.clock = fixedClock(later)
	updated, _ = m.Update(tickMsg(later))
	if got := updated.(Model).Current(); got != timex.MustNew(12, 1, 0, 0) {
		t.Errorf("Current() after tick = %v", got)
	}
}

func TestModel_ActiveSlots(t *testing.T) {
	ctx := context.Background()
	store := slots.NewMemoryStore()
	for _, def := range []slots.Definition{
		{Name: "night", Start: timex.MustNew(22, 0, 0, 0), End: timex.MustNew(6, 0, 0, 0)},
		{Name: "lunch", Start: timex.MustNew(12, 0, 0, 0), End: timex.MustNew(13, 0, 0, 0)},
	} {
		if _, err := store.Create(ctx, def); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	now := time.Date(2026, time.October, 16, 23, 0, 0, 0, time.UTC)
	m := New(Config{UTC: true, Store: store, Now: fixedClock(now)})

	msg, ok := m.loadActiveSlots().(activeSlotsMsg)
	if !ok {
		t.Fatal("loadActiveSlots() returned wrong message type")
	}
	if msg.err != nil || len(msg.slots) != 1 || msg.slots[0].Name != "night" {
		t.Fatalf("loadActiveSlots() = %+v", msg)
	}

	updated, _ := m.Update(msg)
	view := updated.(Model).View()
	if !strings.Contains(view, "night") {
		t.Errorf("View() does not list the active slot:\n%s", view)
	}
	if !strings.Contains(view, "23:00:00") {
		t.Errorf("View() does not show the current time:\n%s", view)
	}
}

func TestModel_ViewWithoutStore(t *testing.T) {
	now := time.Date(2026, time.October, 16, 1, 0, 0, 0, time.UTC)
	m := New(Config{Target: timex.MustNew(0, 30, 0, 0), UTC: true, Now: fixedClock(now)})

	view := m.View()
	if !strings.Contains(view, "-00:30:00.000") {
		t.Errorf("View() does not show the negative gap:\n%s", view)
	}
	if strings.Contains(view, "Slots") {
		t.Errorf("View() lists slots without a store:\n%s", view)
	}
}
