package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-memory/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key      string
		want     []core.Action
		wantQuit bool
	}{
		{"q", []core.Action{core.ActionQuit}, true},
		{"ctrl+c", []core.Action{core.ActionQuit}, true},
		{"w", []core.Action{core.ActionUp}, false},
		{"up", []core.Action{core.ActionUp}, false},
		{"a", []core.Action{core.ActionLeft}, false},
		{"right", []core.Action{core.ActionRight}, false},
		{" ", []core.Action{core.ActionFlip}, false},
		{"enter", []core.Action{core.ActionFlip, core.ActionConfirm}, false},
		{"y", []core.Action{core.ActionConfirm}, false},
		{"n", []core.Action{core.ActionDecline}, false},
		{"tab", []core.Action{core.ActionAchievements}, false},
		{"b", []core.Action{core.ActionAchievements}, false},
		{"esc", []core.Action{core.ActionBack}, false},
		{"p", []core.Action{core.ActionPause}, false},
		{"r", []core.Action{core.ActionRestart}, false},
		{"x", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, quit := km.MapKey(keyMsg(tt.key))
			if quit != tt.wantQuit {
				t.Errorf("quit = %v, want %v", quit, tt.wantQuit)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("MapKey(%q) mismatch (-want +got):\n%s", tt.key, diff)
			}
		})
	}
}

func TestMapKeyToFrameEnter(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(keyMsg("enter"), &frame) {
		t.Fatal("enter should not quit")
	}
	if !frame.Has(core.ActionFlip) || !frame.Has(core.ActionConfirm) {
		t.Errorf("enter should set Flip and Confirm, got %v", frame.Actions)
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()

	frame := core.NewInputFrame()
	press := tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if !km.MapMouseToFrame(press, &frame) {
		t.Fatal("left press should be a click")
	}
	if diff := cmp.Diff(core.Pointer{X: 12, Y: 7, Valid: true}, frame.Click); diff != "" {
		t.Errorf("click mismatch (-want +got):\n%s", diff)
	}

	frame = core.NewInputFrame()
	motion := tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
	if km.MapMouseToFrame(motion, &frame) || frame.Click.Valid {
		t.Error("motion should not register a click")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		want MenuAction
	}{
		{"k", MenuActionUp},
		{"down", MenuActionDown},
		{"enter", MenuActionSelect},
		{" ", MenuActionSelect},
		{"esc", MenuActionBack},
		{"tab", MenuActionScoreboard},
		{"q", MenuActionQuit},
		{"x", MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(tt.key)); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}
