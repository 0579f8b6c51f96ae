package render

import (
	"time"

	"github.com/lixenwraith/coin-pong/constant"
)

// coinFrames is the 8-step spin cycle of the coin sprite.
var coinFrames = [constant.CoinAnimationFrames]rune{
	'●', '◕', '◑', '◔', '○', '◔', '◑', '◕',
}

// CoinSprite is the animated coin sprite: a fixed base size drawn at a
// scale factor, cycling through its frames on a fixed interval. The size
// queries implement game.CoinMetrics; frame selection is purely
// presentational and never touches game state.
type CoinSprite struct{}

// RenderedWidth returns the coin's effective world width at the given
// scale.
func (CoinSprite) RenderedWidth(scale float64) float64 {
	return constant.CoinBaseWidth * scale
}

// RenderedHeight returns the coin's effective world height at the given
// scale.
func (CoinSprite) RenderedHeight(scale float64) float64 {
	return constant.CoinBaseHeight * scale
}

// Frame returns the glyph for the animation frame at the given elapsed
// wall-clock time.
func (CoinSprite) Frame(elapsed time.Duration) rune {
	idx := int(elapsed.Milliseconds()/constant.CoinAnimationFrameMs) % len(coinFrames)
	if idx < 0 {
		idx += len(coinFrames)
	}
	return coinFrames[idx]
}
