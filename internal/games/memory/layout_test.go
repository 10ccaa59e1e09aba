package memory

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-memory/internal/core"
)

func TestRowSizes(t *testing.T) {
	tests := []struct {
		cards int
		want  []int
	}{
		{4, []int{2, 2}},
		{6, []int{3, 3}},
		{8, []int{3, 3, 2}},
		{10, []int{4, 4, 2}},
		{12, []int{4, 4, 4}},
		{14, []int{4, 4, 4, 2}},
		{20, []int{5, 5, 5, 5}},
		{60, []int{8, 8, 8, 8, 8, 8, 8, 4}},
	}

	for _, tt := range tests {
		got := RowSizes(tt.cards)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("RowSizes(%d) mismatch (-want +got):\n%s", tt.cards, diff)
		}
		sum := 0
		for _, n := range got {
			sum += n
		}
		if sum != tt.cards {
			t.Errorf("RowSizes(%d) places %d cards", tt.cards, sum)
		}
	}
}

func TestComputeLayoutFallsBackToCompact(t *testing.T) {
	boxed, ok := ComputeLayout(4, 80, 24)
	if !ok || boxed.Compact {
		t.Fatalf("4 cards at 80x24 should be boxed, got ok=%v compact=%v", ok, boxed.Compact)
	}

	compact, ok := ComputeLayout(60, 80, 24)
	if !ok || !compact.Compact {
		t.Fatalf("60 cards at 80x24 should be compact, got ok=%v compact=%v", ok, compact.Compact)
	}
	if len(compact.Cards) != 60 {
		t.Errorf("len(Cards) = %d, want 60", len(compact.Cards))
	}

	if _, ok := ComputeLayout(60, 20, 10); ok {
		t.Error("60 cards should not fit 20x10")
	}
}

func TestLayoutCardsDoNotOverlap(t *testing.T) {
	l, ok := ComputeLayout(10, 80, 24)
	if !ok {
		t.Fatal("10 cards should fit 80x24")
	}
	for i, a := range l.Cards {
		if a.Y < hudHeight || a.Bottom() > 24-footerHeight {
			t.Errorf("card %d at %+v overlaps the HUD or footer", i, a)
		}
		for j, b := range l.Cards[i+1:] {
			if a.Intersects(b) {
				t.Errorf("cards %d and %d overlap", i, i+1+j)
			}
		}
	}
}

func TestHitTest(t *testing.T) {
	l, _ := ComputeLayout(6, 80, 24)

	for i, r := range l.Cards {
		cx, cy := r.Center()
		if got := l.HitTest(cx, cy); got != i {
			t.Errorf("HitTest(center of %d) = %d", i, got)
		}
	}
	if got := l.HitTest(0, 0); got != -1 {
		t.Errorf("HitTest(0, 0) = %d, want -1", got)
	}
}

func TestMove(t *testing.T) {
	l, _ := ComputeLayout(10, 80, 24) // rows 4, 4, 2

	tests := []struct {
		name   string
		from   int
		action core.Action
		want   int
	}{
		{"right", 0, core.ActionRight, 1},
		{"right wraps to next row", 3, core.ActionRight, 4},
		{"right at end", 9, core.ActionRight, 9},
		{"left at start", 0, core.ActionLeft, 0},
		{"down keeps column", 1, core.ActionDown, 5},
		{"down into short row clamps", 7, core.ActionDown, 9},
		{"down at bottom", 8, core.ActionDown, 8},
		{"up", 9, core.ActionUp, 5},
		{"up at top", 2, core.ActionUp, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.Move(tt.from, tt.action); got != tt.want {
				t.Errorf("Move(%d, %s) = %d, want %d", tt.from, tt.action, got, tt.want)
			}
		})
	}
}
