package memory

import (
	"math"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// Card sizes. Boxed cards are drawn with a border; compact cards are a
// single bracketed line used when boxed cards don't fit.
const (
	boxedCardW   = 6
	boxedCardH   = 3
	compactCardW = 4
	compactCardH = 1
	cardGapX     = 1

	hudHeight    = 3 // title + stats + blank line
	footerHeight = 1 // control hints
)

// RowSizes splits n cards into rows, top to bottom.
func RowSizes(n int) []int {
	switch n {
	case 0:
		return nil
	case 4:
		return []int{2, 2}
	case 6:
		return []int{3, 3}
	case 8:
		return []int{3, 3, 2}
	case 10:
		return []int{4, 4, 2}
	}

	perRow := int(math.Ceil(math.Sqrt(float64(n))))
	rows := make([]int, 0, (n+perRow-1)/perRow)
	for left := n; left > 0; left -= perRow {
		rows = append(rows, min(perRow, left))
	}
	return rows
}

// Layout positions every card on screen.
type Layout struct {
	Cards   []core.Rect
	Bounds  core.Rect
	Rows    []int
	Compact bool
}

// ComputeLayout centers n cards below the HUD. Boxed cards are preferred;
// ok is false when not even compact cards fit.
func ComputeLayout(n, screenW, screenH int) (Layout, bool) {
	rows := RowSizes(n)
	for _, compact := range []bool{false, true} {
		if l, ok := placeRows(rows, screenW, screenH, compact); ok {
			return l, true
		}
	}
	return Layout{Rows: rows}, false
}

func placeRows(rows []int, screenW, screenH int, compact bool) (Layout, bool) {
	cardW, cardH, gapY := boxedCardW, boxedCardH, 0
	if compact {
		cardW, cardH, gapY = compactCardW, compactCardH, 1
	}

	widest := 0
	for _, r := range rows {
		widest = max(widest, r)
	}
	boardW := widest*cardW + max(widest-1, 0)*cardGapX
	boardH := len(rows)*cardH + max(len(rows)-1, 0)*gapY

	availH := screenH - hudHeight - footerHeight
	if boardW > screenW || boardH > availH {
		return Layout{}, false
	}

	originX := (screenW - boardW) / 2
	originY := hudHeight + (availH-boardH)/2

	l := Layout{
		Bounds:  core.Rect{X: originX, Y: originY, W: boardW, H: boardH},
		Rows:    rows,
		Compact: compact,
	}
	for row, count := range rows {
		rowW := count*cardW + max(count-1, 0)*cardGapX
		x := originX + (boardW-rowW)/2
		y := originY + row*(cardH+gapY)
		for col := 0; col < count; col++ {
			l.Cards = append(l.Cards, core.Rect{X: x + col*(cardW+cardGapX), Y: y, W: cardW, H: cardH})
		}
	}
	return l, true
}

// HitTest returns the card under the screen cell (x, y), or -1.
func (l Layout) HitTest(x, y int) int {
	for i, r := range l.Cards {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

// position returns the row and column of card index.
func (l Layout) position(index int) (row, col int) {
	for r, count := range l.Rows {
		if index < count {
			return r, index
		}
		index -= count
	}
	return len(l.Rows) - 1, 0
}

// indexAt returns the card index at row, clamping col into the row.
func (l Layout) indexAt(row, col int) int {
	index := 0
	for r := 0; r < row; r++ {
		index += l.Rows[r]
	}
	return index + core.Clamp(col, 0, l.Rows[row]-1)
}

// Move returns the cursor position after moving one step in a direction.
// Up and down keep the column where the target row is long enough.
func (l Layout) Move(index int, a core.Action) int {
	total := 0
	for _, c := range l.Rows {
		total += c
	}
	if total == 0 {
		return 0
	}
	index = core.Clamp(index, 0, total-1)

	row, col := l.position(index)
	switch a {
	case core.ActionLeft:
		return max(index-1, 0)
	case core.ActionRight:
		return min(index+1, total-1)
	case core.ActionUp:
		if row > 0 {
			return l.indexAt(row-1, col)
		}
	case core.ActionDown:
		if row < len(l.Rows)-1 {
			return l.indexAt(row+1, col)
		}
	}
	return index
}
