package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/flapterm/flapterm/internal/core"
	"github.com/flapterm/flapterm/internal/game"
)

// colorStyles maps core colors to lipgloss styles (ANSI 256 codes).
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorSky:           lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	core.ColorGround:        lipgloss.NewStyle().Foreground(lipgloss.Color("137")),
	core.ColorPipe:          lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	core.ColorPipeHighlight: lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
	core.ColorBirdLight:     lipgloss.NewStyle().Foreground(lipgloss.Color("227")),
	core.ColorBirdDark:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	core.ColorBeak:          lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorTrail:         lipgloss.NewStyle().Foreground(lipgloss.Color("230")),
	core.ColorEmber:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorBlack:         lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// projector scales simulation pixel space onto the cell grid.
type projector struct {
	simW, simH float64
	cellW      int
	cellH      int
}

func newProjector(cfg game.Config, screen *core.Screen) projector {
	return projector{
		simW:  cfg.ScreenW,
		simH:  cfg.ScreenH,
		cellW: screen.Width(),
		cellH: screen.Height(),
	}
}

func (p projector) x(px float64) int {
	return int(px * float64(p.cellW) / p.simW)
}

func (p projector) y(px float64) int {
	return int(px * float64(p.cellH) / p.simH)
}

func (p projector) rect(r core.RectF) core.Rect {
	x0, y0 := p.x(r.X), p.y(r.Y)
	x1, y1 := p.x(r.Right()), p.y(r.Bottom())
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// shakeCells reduces a pixel shake offset to a cell offset. Anything
// below 3 px would round to nothing at typical terminal sizes, so the
// jitter keeps only its direction.
func shakeCells(px int) int {
	switch {
	case px >= 3:
		return 1
	case px <= -3:
		return -1
	default:
		return 0
	}
}

// DrawSnapshot renders a simulation snapshot into the screen buffer.
func DrawSnapshot(dst *core.Screen, snap game.Snapshot, cfg game.Config) {
	dst.Clear()

	proj := newProjector(cfg, dst)
	dx := shakeCells(snap.ShakeX)
	dy := shakeCells(snap.ShakeY)

	// Ground band
	groundY := proj.y(cfg.GroundY()) + dy
	for y := groundY + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), '▒', core.ColorGround)
	}
	dst.DrawHLine(0, groundY, dst.Width(), '═', core.ColorGround)

	for _, d := range snap.Drawables {
		box := proj.rect(d.Box)
		box.X += dx
		box.Y += dy

		switch d.Kind {
		case game.DrawPipe:
			drawPipeHalf(dst, box)
		case game.DrawAvatar:
			drawAvatar(dst, box, snap.AvatarVel)
		case game.DrawParticle:
			cx, cy := box.X+box.W/2, box.Y+box.H/2
			dst.Set(cx, cy, '•', d.Color)
		}
	}

	// HUD
	score := fmt.Sprintf(" Score: %d ", snap.Score)
	dst.DrawTextCentered(0, score, core.ColorWhite)

	if snap.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if snap.State == game.StateGameOver {
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

// drawPipeHalf fills a pipe half and marks the edge facing the gap.
func drawPipeHalf(dst *core.Screen, box core.Rect) {
	dst.DrawRect(box, '█', core.ColorPipe)
	if box.Y == 0 {
		// Top half: cap at the bottom
		dst.DrawHLine(box.X, box.Bottom()-1, box.W, '▄', core.ColorPipeHighlight)
	} else {
		dst.DrawHLine(box.X, box.Y, box.W, '▀', core.ColorPipeHighlight)
	}
}

// drawAvatar fills the avatar box, posed by vertical velocity.
func drawAvatar(dst *core.Screen, box core.Rect, vel float64) {
	body := '●'
	beak := '▶'
	if vel < 0 {
		beak = '◥'
	}
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			if x == box.Right()-1 && y == box.Y {
				dst.Set(x, y, beak, core.ColorBeak)
			} else {
				dst.Set(x, y, body, core.ColorBirdLight)
			}
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorGray)
}

// RenderScreen converts a screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() && s.GetCell(x, y).Color == startColor {
				run.WriteRune(s.GetCell(x, y).Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
