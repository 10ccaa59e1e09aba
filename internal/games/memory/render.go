package memory

import (
	"fmt"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory/engine"
)

const hiddenFace = "░░"

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.controller == nil {
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	snap := g.controller.Session().Snapshot()
	g.renderHUD(dst, snap)
	g.renderBoard(dst, snap)
	dst.DrawTextCenteredColored(g.screenH-1, g.Controls(), core.ColorGray)
	g.renderOverlays(dst, snap)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title and level counters.
func (g *Game) renderHUD(dst *core.Screen, snap engine.Snapshot) {
	dst.DrawTextCenteredColored(0, g.Title(), core.ColorBrightCyan)

	stats := fmt.Sprintf("Level %d   Pairs %d/%d   Moves %d/%d   Best %d",
		snap.Level, snap.Score, len(snap.Cards)/2, snap.Moves, snap.MaxMoves, g.bestLevel())
	color := core.ColorWhite
	if snap.MaxMoves-snap.Moves <= 2 {
		color = core.ColorOrange
	}
	dst.DrawTextCenteredColored(1, stats, color)
}

// renderBoard draws every card at its layout position.
func (g *Game) renderBoard(dst *core.Screen, snap engine.Snapshot) {
	for i, card := range snap.Cards {
		if i >= len(g.layout.Cards) {
			break
		}
		r := g.layout.Cards[i]

		face := hiddenFace
		color := core.ColorGray
		switch card.State {
		case engine.CardSelected:
			face, color = string(card.Symbol), core.ColorBrightCyan
		case engine.CardMatched:
			face, color = string(card.Symbol), core.ColorGreen
		}
		if i == g.cursor && g.controller.Prompt() == engine.PromptNone {
			color = core.ColorBrightYellow
		}

		if g.layout.Compact {
			dst.SetColored(r.X, r.Y, '[', color)
			dst.SetColored(r.Right()-1, r.Y, ']', color)
			drawFace(dst, r.X+1, r.Y, r.W-2, face, color)
			continue
		}
		dst.DrawBoxColored(r, color)
		drawFace(dst, r.X+1, r.Y+r.H/2, r.W-2, face, color)
	}
}

// drawFace centers a card face in a span of width cells.
func drawFace(dst *core.Screen, x, y, width int, face string, c core.Color) {
	pad := (width - core.TextWidth(face)) / 2
	dst.DrawTextColored(x+max(pad, 0), y, face, c)
}

// renderOverlays draws prompts and the achievements list over the board.
func (g *Game) renderOverlays(dst *core.Screen, snap engine.Snapshot) {
	centerX, centerY := g.layout.Bounds.Center()

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.showAchievements {
		g.drawOverlay(dst, centerX, centerY, g.achievementLines()...)
		return
	}

	switch g.controller.Prompt() {
	case engine.PromptAdvance:
		g.drawOverlay(dst, centerX, centerY,
			fmt.Sprintf("Level %d complete!", snap.Level),
			fmt.Sprintf("%d pairs in %d of %d moves", snap.Score, snap.Moves, snap.MaxMoves),
			"Continue to the next level?",
			"[Y]es   [N]o, replay")
	case engine.PromptMovesExhausted:
		g.drawOverlay(dst, centerX, centerY,
			"OUT OF MOVES",
			fmt.Sprintf("Level %d: %d of %d pairs found", snap.Level, snap.Score, len(snap.Cards)/2),
			"Press Enter to start again at level 1")
	case engine.PromptCampaignCleared:
		g.drawOverlay(dst, centerX, centerY,
			"ALL LEVELS CLEARED!",
			fmt.Sprintf("You matched every symbol up to level %d", snap.Level),
			"Press Enter to start again at level 1")
	}
}

// achievementLines formats the best-levels list for the overlay.
func (g *Game) achievementLines() []string {
	lines := []string{"BEST ACHIEVEMENTS", ""}
	var levels []int
	if g.achievements != nil {
		levels = g.achievements.Levels()
	}
	if len(levels) == 0 {
		lines = append(lines, "No levels cleared yet")
	}
	for i, lvl := range levels {
		lines = append(lines, fmt.Sprintf("%2d. Level %d", i+1, lvl))
	}
	return append(lines, "", "Tab or Esc to close")
}

func (g *Game) bestLevel() int {
	if g.achievements == nil {
		return 0
	}
	levels := g.achievements.Levels()
	if len(levels) == 0 {
		return 0
	}
	return levels[0]
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, core.TextWidth(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := max(centerY-boxH/2, 0)

	// Clear area behind overlay
	dst.DrawRect(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH}, ' ')
	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		x := centerX - core.TextWidth(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}
