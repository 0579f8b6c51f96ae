// Package render is the presentation adapter: it projects the fixed
// 800x600 simulation world onto whatever cell grid the terminal currently
// provides and draws one frame of read-only game state. It never mutates
// the simulation.
package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/coin-pong/constant"
	"github.com/lixenwraith/coin-pong/game"
)

var (
	styleBackground  = tcell.StyleDefault.Background(tcell.NewRGBColor(0x1A, 0x20, 0x2C))
	styleBall        = styleBackground.Foreground(tcell.ColorRed)
	styleLeftPaddle  = styleBackground.Foreground(tcell.ColorBlue)
	styleRightPaddle = styleBackground.Foreground(tcell.ColorGreen)
	styleCoin        = styleBackground.Foreground(tcell.ColorYellow)
	styleText        = styleBackground.Foreground(tcell.ColorWhite)
)

// Renderer draws simulation state onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	sprite CoinSprite
	start  time.Time
}

func New(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		start:  time.Now(),
	}
}

// Draw renders one frame: background, paddles, ball, coins, scores. The
// screen size is re-read every frame so resizes just change the
// projection.
func (r *Renderer) Draw(s *game.State) {
	cols, rows := r.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}

	r.fill(cols, rows)
	r.drawPaddle(&s.Left, styleLeftPaddle, cols, rows)
	r.drawPaddle(&s.Right, styleRightPaddle, cols, rows)
	r.drawBall(&s.Ball, cols, rows)
	r.drawCoins(s.Coins, cols, rows)
	r.drawScores(s, cols)

	r.screen.Show()
}

func (r *Renderer) fill(cols, rows int) {
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r.screen.SetContent(x, y, ' ', nil, styleBackground)
		}
	}
}

func (r *Renderer) drawPaddle(p *game.Paddle, style tcell.Style, cols, rows int) {
	rect := p.Rect()
	x0, y0 := worldToCell(rect.X, rect.Y, cols, rows)
	// Inset the far corner so an edge landing exactly on a cell boundary
	// does not bleed into the next cell.
	x1, y1 := worldToCell(rect.Right()-0.5, rect.Bottom()-0.5, cols, rows)

	for y := y0; y <= y1 && y < rows; y++ {
		for x := x0; x <= x1 && x < cols; x++ {
			r.screen.SetContent(x, y, '█', nil, style)
		}
	}
}

func (r *Renderer) drawBall(b *game.Ball, cols, rows int) {
	// Fill every cell whose world-space footprint the ball's circle
	// overlaps.
	x0, y0 := worldToCell(b.X-constant.BallRadius, b.Y-constant.BallRadius, cols, rows)
	x1, y1 := worldToCell(b.X+constant.BallRadius, b.Y+constant.BallRadius, cols, rows)

	cellW := float64(constant.WindowWidth) / float64(cols)
	cellH := float64(constant.WindowHeight) / float64(rows)

	for y := y0; y <= y1 && y < rows; y++ {
		for x := x0; x <= x1 && x < cols; x++ {
			if x < 0 || y < 0 {
				continue
			}
			cell := game.Rect{
				X: float64(x) * cellW,
				Y: float64(y) * cellH,
				W: cellW,
				H: cellH,
			}
			if game.CircleIntersectsRect(b.X, b.Y, constant.BallRadius, cell) {
				r.screen.SetContent(x, y, '█', nil, styleBall)
			}
		}
	}
}

func (r *Renderer) drawCoins(coins []game.Coin, cols, rows int) {
	glyph := r.sprite.Frame(time.Since(r.start))
	for _, c := range coins {
		x, y := worldToCell(c.X, c.Y, cols, rows)
		if x >= 0 && x < cols && y >= 0 && y < rows {
			r.screen.SetContent(x, y, glyph, nil, styleCoin)
		}
	}
}

func (r *Renderer) drawScores(s *game.State, cols int) {
	left := fmt.Sprintf("Player 1: %d", s.LeftScore)
	right := fmt.Sprintf("Player 2: %d", s.RightScore)

	r.drawText(2, 0, left)
	r.drawText(cols-len(right)-2, 0, right)
}

func (r *Renderer) drawText(x, y int, text string) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, styleText)
	}
}

// worldToCell maps a world coordinate to the cell containing it.
func worldToCell(wx, wy float64, cols, rows int) (int, int) {
	x := int(wx * float64(cols) / constant.WindowWidth)
	y := int(wy * float64(rows) / constant.WindowHeight)
	return x, y
}

// CellToWorld maps a terminal cell to world coordinates at the cell
// center. It is the inverse projection, used to translate mouse clicks
// into launch positions.
func CellToWorld(cx, cy, cols, rows int) (float64, float64) {
	wx := (float64(cx) + 0.5) * constant.WindowWidth / float64(cols)
	wy := (float64(cy) + 0.5) * constant.WindowHeight / float64(rows)
	return wx, wy
}
