package game

import (
	"fmt"

	"github.com/nathanchatagny/Sokoban/internal/core"
	"github.com/nathanchatagny/Sokoban/internal/game/level"
	"github.com/nathanchatagny/Sokoban/internal/game/session"
)

// Render draws the HUD, the board centered in the remaining space, and
// phase overlays onto dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sess == nil {
		drawCentered(dst, dst.Height()/2, "no level loaded", core.ColorRed)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderStatus(dst)

	switch g.sess.Phase() {
	case session.PhaseLevelComplete:
		g.renderLevelComplete(dst)
	case session.PhaseGameComplete:
		g.renderGameComplete(dst)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	b := g.sess.Board()
	lvl := g.sess.Level()

	dst.DrawTextColored(1, 0, g.Title(), core.ColorBrightWhite)
	info := fmt.Sprintf("level %d/%d (%s)  score %d  moves %d  pushes %d",
		g.sess.LevelIndex()+1, g.sess.LevelCount(), lvl.ID,
		g.sess.TotalScore(), b.Moves(), b.Pushes())
	dst.DrawTextColored(1, 1, info, core.ColorGray)
	dst.DrawHLine(0, 2, dst.Width(), '─')
}

func (g *Game) renderBoard(dst *core.Screen) {
	b := g.sess.Board()

	// Center the board in the area below the HUD.
	top := 3
	offX := core.Clamp((dst.Width()-b.Width())/2, 0, dst.Width())
	offY := core.Max(top, top+(dst.Height()-top-1-b.Height())/2)

	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			sym := b.SymbolAt(x, y)
			dst.SetColored(offX+x, offY+y, g.glyphs[sym], g.colors[sym])
		}
	}

	// The player may have walked off the stored rectangle; draw it anyway.
	p := b.Player()
	if p.X < 0 || p.Y < 0 || p.X >= b.Width() || p.Y >= b.Height() {
		dst.SetColored(offX+p.X, offY+p.Y, g.glyphs[level.SymPlayer], g.colors[level.SymPlayer])
	}
}

func (g *Game) renderStatus(dst *core.Screen) {
	y := dst.Height() - 1
	if g.hasBlocked {
		dst.DrawTextColored(1, y, g.blocked.String(), core.ColorRed)
		return
	}
	dst.DrawTextColored(1, y, "arrows/wasd move, r restart, q quit", core.ColorGray)
}

func (g *Game) renderLevelComplete(dst *core.Screen) {
	cy := dst.Height() / 2
	drawOverlayBox(dst, cy)
	drawCentered(dst, cy-1, "LEVEL COMPLETE", core.ColorBrightGreen)
	drawCentered(dst, cy, fmt.Sprintf("+%d points", g.sess.LastLevelScore()), core.ColorGreen)
	drawCentered(dst, cy+1, "press enter for the next level", core.ColorGray)
}

func (g *Game) renderGameComplete(dst *core.Screen) {
	cy := dst.Height() / 2
	drawOverlayBox(dst, cy)
	drawCentered(dst, cy-1, "ALL LEVELS COMPLETE", core.ColorBrightYellow)
	drawCentered(dst, cy, fmt.Sprintf("final score %d", g.sess.TotalScore()), core.ColorBrightWhite)
	drawCentered(dst, cy+1, "r play again, q quit", core.ColorGray)
}

// drawOverlayBox blanks and frames the three-line message area centered
// vertically at cy.
func drawOverlayBox(dst *core.Screen, cy int) {
	w := core.Min(38, dst.Width())
	r := core.NewRect((dst.Width()-w)/2, cy-2, w, 5)
	dst.DrawRect(r, ' ')
	dst.DrawBox(r)
}

// drawCentered writes a colored line centered horizontally.
func drawCentered(dst *core.Screen, y int, text string, c core.Color) {
	x := (dst.Width() - len(text)) / 2
	dst.DrawTextColored(x, y, text, c)
}
