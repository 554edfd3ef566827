package crossing

import (
	"fmt"
	"math"

	"github.com/vovakirdan/gridlock/internal/core"
)

// Visual characters for rendering
const (
	RoadChar       = '░'
	HorizFlowChar  = '═' // light allows east-west traffic
	VertFlowChar   = '║' // light allows north-south traffic
	CarEastChar    = '►'
	CarWestChar    = '◄'
	CarSouthChar   = '▼'
	CarNorthChar   = '▲'
	hudRow         = 0
	lightHitRadius = 3 // click tolerance around a light, in cells
)

// viewport maps world coordinates onto the screen. The whole play area
// (spawn edge to spawn edge) is squeezed into the cells below the HUD row;
// terminal cells are taller than wide, so the two scales differ.
type viewport struct {
	scaleX, scaleY float64
	cx, cy         int
}

func (g *Game) viewport(w, h int) viewport {
	r := g.net.Limit()
	vp := viewport{
		cx: w / 2,
		cy: hudRow + 1 + (h-hudRow-1)/2,
	}
	vp.scaleX = float64(w-2) / (2 * r)
	vp.scaleY = float64(h-hudRow-2) / (2 * r)
	return vp
}

func (vp viewport) toScreen(x, z float64) (int, int) {
	sx := vp.cx + int(math.Round(x*vp.scaleX))
	sy := vp.cy + int(math.Round(z*vp.scaleY))
	return sx, sy
}

// Render draws the road network, lights, vehicles and HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	vp := g.viewport(w, h)

	g.drawRoads(dst, vp)
	g.drawLights(dst, vp)
	g.drawVehicles(dst, vp)
	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
		return
	}
	switch g.session.State() {
	case StateClear:
		g.drawCenteredMessage(dst, "INTERSECTION CLEARED!",
			fmt.Sprintf("Score: %d  |  Press R to restart", g.session.Score()))
	case StateOver:
		g.drawCenteredMessage(dst, "TIME UP",
			fmt.Sprintf("Score: %d / %d  |  Press R to restart", g.session.Score(), g.session.TargetScore()))
	}
}

// drawRoads fills the two horizontal and two vertical road bands.
func (g *Game) drawRoads(dst *core.Screen, vp viewport) {
	w, h := dst.Width(), dst.Height()

	for _, sign := range []float64{-1, 1} {
		// Horizontal road: full-width band around z = sign*spacing.
		zc := sign * g.net.Spacing
		_, y1 := vp.toScreen(0, zc-g.net.HorizontalHalfWidth)
		_, y2 := vp.toScreen(0, zc+g.net.HorizontalHalfWidth)
		for y := core.Max(y1, hudRow+1); y <= core.Min(y2, h-1); y++ {
			dst.DrawHLine(0, y, w, RoadChar, core.ColorGray)
		}

		// Vertical road: full-height band around x = sign*spacing.
		xc := sign * g.net.Spacing
		x1, _ := vp.toScreen(xc-g.net.VerticalHalfWidth, 0)
		x2, _ := vp.toScreen(xc+g.net.VerticalHalfWidth, 0)
		for x := core.Max(x1, 0); x <= core.Min(x2, w-1); x++ {
			dst.DrawVLine(x, hudRow+1, h-hudRow-1, RoadChar, core.ColorGray)
		}
	}
}

// drawLights draws each signal at its intersection center: the glyph shows
// which axis currently flows, plus a gray digit for the keyboard shortcut.
func (g *Game) drawLights(dst *core.Screen, vp viewport) {
	for _, it := range g.net.Intersections() {
		sx, sy := vp.toScreen(it.X, it.Z)
		glyph := VertFlowChar
		if g.lights.HorizontalGreen(it.ID) {
			glyph = HorizFlowChar
		}
		dst.SetCell(sx, sy, glyph, core.ColorBrightGreen)
		dst.SetCell(sx-2, sy-1, rune('1'+int(it.ID)), core.ColorGray)
	}
}

// drawVehicles draws one directional glyph per vehicle, colored by axis.
func (g *Game) drawVehicles(dst *core.Screen, vp viewport) {
	for _, v := range g.traffic.Vehicles() {
		sx, sy := vp.toScreen(v.X(), v.Z())
		glyph := CarNorthChar
		color := core.ColorBrightCyan
		switch {
		case v.Axis == AxisX && v.Dir > 0:
			glyph, color = CarEastChar, core.ColorBrightYellow
		case v.Axis == AxisX:
			glyph, color = CarWestChar, core.ColorBrightYellow
		case v.Dir > 0:
			glyph = CarSouthChar
		}
		dst.SetCell(sx, sy, glyph, color)
	}
}

// drawHUD writes the score line across the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	var left string
	if g.session.Endless() {
		left = fmt.Sprintf(" Score: %d   Endless ", g.session.Score())
	} else {
		left = fmt.Sprintf(" Score: %d / %d   Time: %2ds ",
			g.session.Score(), g.session.TargetScore(), g.session.TimeLeft())
	}
	dst.DrawTextColored(1, hudRow, left, core.ColorBrightWhite)

	hint := "[1-4/click] lights  [p]ause  [q]uit "
	dst.DrawTextColored(dst.Width()-len(hint)-1, hudRow, hint, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// Project maps a world position to the screen cell Render draws it in. The
// platform uses it to place collision effects.
func (g *Game) Project(x, z float64) (int, int) {
	vp := g.viewport(g.cfg.ScreenW, g.cfg.ScreenH)
	return vp.toScreen(x, z)
}

// LightAt resolves a screen cell to the intersection whose signal it hits,
// using the same projection Render uses. This is the hit-testing hook the
// platform calls for mouse clicks; the returned index feeds ToggleLightAction.
func (g *Game) LightAt(px, py int) (int, bool) {
	vp := g.viewport(g.cfg.ScreenW, g.cfg.ScreenH)
	for _, it := range g.net.Intersections() {
		sx, sy := vp.toScreen(it.X, it.Z)
		if core.Abs(px-sx) <= lightHitRadius && core.Abs(py-sy) <= lightHitRadius-1 {
			return int(it.ID), true
		}
	}
	return 0, false
}
