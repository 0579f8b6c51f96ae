package render

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/coin-pong/constant"
	"github.com/lixenwraith/coin-pong/game"
)

// TestCoinSpriteMetrics verifies the rendered-size query scales the base
// sprite size
func TestCoinSpriteMetrics(t *testing.T) {
	var sprite CoinSprite

	if got := sprite.RenderedWidth(constant.CoinDrawScale); got != constant.CoinBaseWidth*constant.CoinDrawScale {
		t.Errorf("Expected width %v, got %v", float64(constant.CoinBaseWidth*constant.CoinDrawScale), got)
	}
	if got := sprite.RenderedHeight(1.0); got != constant.CoinBaseHeight {
		t.Errorf("Expected unscaled height %v, got %v", float64(constant.CoinBaseHeight), got)
	}
}

// TestCoinSpriteFrameCycle verifies frame selection advances every
// interval and wraps around the cycle
func TestCoinSpriteFrameCycle(t *testing.T) {
	var sprite CoinSprite
	interval := constant.CoinAnimationFrameMs * time.Millisecond

	if got := sprite.Frame(0); got != coinFrames[0] {
		t.Errorf("Expected frame 0 glyph %q, got %q", coinFrames[0], got)
	}
	if got := sprite.Frame(interval); got != coinFrames[1] {
		t.Errorf("Expected frame 1 glyph %q, got %q", coinFrames[1], got)
	}
	if got := sprite.Frame(7 * interval); got != coinFrames[7] {
		t.Errorf("Expected frame 7 glyph %q, got %q", coinFrames[7], got)
	}
	if got := sprite.Frame(8 * interval); got != coinFrames[0] {
		t.Errorf("Expected cycle to wrap to frame 0, got %q", got)
	}
}

// TestCellToWorldProjection verifies clicking a cell maps into the world
// region that projects back onto the same cell
func TestCellToWorldProjection(t *testing.T) {
	const cols, rows = 80, 24

	wx, wy := CellToWorld(0, 0, cols, rows)
	if wx != 5 || wy != 12.5 {
		t.Errorf("Expected cell (0,0) center at (5, 12.5), got (%v, %v)", wx, wy)
	}

	for _, cell := range [][2]int{{0, 0}, {40, 12}, {79, 23}} {
		wx, wy := CellToWorld(cell[0], cell[1], cols, rows)
		cx, cy := worldToCell(wx, wy, cols, rows)
		if cx != cell[0] || cy != cell[1] {
			t.Errorf("Cell (%d, %d): round trip gave (%d, %d)", cell[0], cell[1], cx, cy)
		}
	}
}

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(80, 24)
	return screen
}

// TestDrawScores verifies both score lines appear on the top row
func TestDrawScores(t *testing.T) {
	screen := newTestScreen(t)
	defer screen.Fini()

	state := game.NewState(1, nil, nil)
	state.LeftScore = 3
	state.RightScore = 12

	New(screen).Draw(state)

	assertText := func(x int, text string) {
		t.Helper()
		for i, want := range text {
			got, _, _, _ := screen.GetContent(x+i, 0)
			if got != want {
				t.Errorf("Cell (%d, 0): expected %q, got %q", x+i, want, got)
			}
		}
	}

	assertText(2, "Player 1: 3")
	right := "Player 2: 12"
	assertText(80-len(right)-2, right)
}

// TestDrawEntities verifies the ball, both paddles and a coin land on
// their projected cells
func TestDrawEntities(t *testing.T) {
	screen := newTestScreen(t)
	defer screen.Fini()

	state := game.NewState(1, nil, nil)
	state.Coins = append(state.Coins, game.Coin{X: 200, Y: 150, Timer: 600})

	New(screen).Draw(state)

	// Ball center at (400, 300) projects to cell (40, 12)
	if got, _, _, _ := screen.GetContent(40, 12); got != '█' {
		t.Errorf("Expected ball glyph at (40, 12), got %q", got)
	}

	// Left paddle spans x [0, 20), y [250, 350): cells x 0..1, y 10..13
	if got, _, _, _ := screen.GetContent(0, 10); got != '█' {
		t.Errorf("Expected left paddle glyph at (0, 10), got %q", got)
	}

	// Right paddle spans x [780, 800): cells 78..79
	if got, _, _, _ := screen.GetContent(79, 13); got != '█' {
		t.Errorf("Expected right paddle glyph at (79, 13), got %q", got)
	}

	// Paddles must not bleed past their projected extent
	if got, _, _, _ := screen.GetContent(2, 10); got != ' ' {
		t.Errorf("Expected background next to the left paddle, got %q", got)
	}

	// Coin at (200, 150) projects to cell (20, 6) and shows a cycle glyph
	got, _, _, _ := screen.GetContent(20, 6)
	found := false
	for _, frame := range coinFrames {
		if got == frame {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Expected a coin animation glyph at (20, 6), got %q", got)
	}
}
