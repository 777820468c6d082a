package game

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vovakirdan/wordfall/internal/core"
)

const bonusBarWidth = 20

// Render draws the HUD, the playfield and any overlay into dst.
// The screen is pre-cleared by the caller.
func (e *Engine) Render(dst *core.Screen) {
	e.renderHUD(dst)

	top := core.HUDRows
	floor := top + int(e.fieldH)
	for _, w := range e.arena.Live() {
		row := top + int(math.Floor(w.y))
		if row < top || row >= floor {
			continue
		}
		e.renderWord(dst, w, int(math.Floor(w.x)), row)
	}
	dst.DrawHLine(0, floor, dst.Width(), '─')

	mid := top + int(e.fieldH)/2
	switch e.state {
	case StatePaused:
		drawPanel(dst, mid, "PAUSED", "Esc to resume")
	case StateOver:
		drawPanel(dst, mid, "GAME OVER",
			fmt.Sprintf("score %d, %d words", e.score.Score(), e.destroyed),
			"Enter to play again")
	case StateIdle:
		drawPanel(dst, mid, "Enter to start")
	}
}

// drawPanel draws lines in a framed box centered on row mid. The box is
// clipped to the screen width.
func drawPanel(dst *core.Screen, mid int, lines ...string) {
	inner := 0
	for _, l := range lines {
		inner = max(inner, len([]rune(l)))
	}
	w := core.Clamp(inner+4, 2, dst.Width())
	h := len(lines) + 2
	r := core.NewRect((dst.Width()-w)/2, mid-h/2, w, h)

	dst.DrawRect(r, ' ')
	dst.DrawBox(r)
	for i, l := range lines {
		dst.DrawTextCentered(r.Y+1+i, l)
	}
}

func (e *Engine) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf("Score: %d   x%d   %s   Words: %d   Speed: %.0f",
		e.score.Score(), e.score.Multiplier(), formatElapsed(e.elapsed), e.destroyed, e.wordSpeed)
	dst.DrawTextColor(0, 0, hud, core.ColorHUD)

	kind := e.bonus.Kind()
	if kind == BonusNone {
		return
	}
	filled := int(math.Round(e.bonus.Progress() * bonusBarWidth))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", bonusBarWidth-filled)
	label := fmt.Sprintf("%-8s %s", strings.ToUpper(kind.String()), bar)
	dst.DrawTextColor(0, 1, label, bonusColor(kind))

	if e.relation.Active() {
		col := len([]rune(label)) + 2
		dst.DrawTextColor(col, 1, "> "+e.relation.Candidate()+"_", core.ColorCandidate)
	}
}

func (e *Engine) renderWord(dst *core.Screen, w *Word, x, y int) {
	base := core.ColorWord
	switch {
	case w.IsBonus():
		base = bonusColor(w.bonus)
	case e.relation.InPool(w):
		base = core.ColorCandidate
	}
	for i, r := range w.text {
		c := base
		if i < w.cursor {
			c = core.ColorTyped
		}
		dst.SetCell(x+i, y, core.Cell{Rune: r, Color: c})
	}
}

func bonusColor(k BonusKind) core.Color {
	switch k {
	case BonusFreeze:
		return core.ColorFreeze
	case BonusCase:
		return core.ColorCase
	case BonusSynonym, BonusAntonym:
		return core.ColorRelation
	default:
		return core.ColorWord
	}
}

func formatElapsed(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
