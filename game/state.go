package game

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/coin-pong/constant"
)

// Side identifies a player. It doubles as the last-hit marker, where
// SideNone means no paddle has struck the ball since the last serve.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Ball is the game ball. (DX, DY) is a unit direction vector, both zero
// while the ball sits at center awaiting a launch click. Speed is a scalar
// in world units per frame; BoostTimer counts down the frames a speed boost
// has left, 0 meaning inactive.
type Ball struct {
	X, Y       float64
	DX, DY     float64
	Speed      float64
	BoostTimer int
}

// Stationary reports whether the ball is awaiting launch.
func (b *Ball) Stationary() bool { return b.DX == 0 && b.DY == 0 }

// Paddle is one player's paddle. X, Y is the top-left corner; the size is
// fixed. Y always stays within [0, WindowHeight-PaddleHeight].
type Paddle struct {
	X, Y float64
	Side Side
}

// Rect returns the paddle's collision rectangle.
func (p *Paddle) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: constant.PaddleWidth, H: constant.PaddleHeight}
}

// Coin is an active pickup, positioned by its center. A coin is live
// exactly while it is a member of State.Coins; Timer counts the frames
// until it expires unclaimed.
type Coin struct {
	X, Y  float64
	Timer int
}

// State owns all gameplay state. Exactly one writer advances it, the Step
// method, once per frame; the presentation layer only reads it between
// steps. There is no ambient state anywhere in the package.
type State struct {
	Ball  Ball
	Left  Paddle
	Right Paddle
	Coins []Coin

	LeftScore  int
	RightScore int

	// LastHit is the paddle that most recently struck the ball, SideNone
	// after every serve reset.
	LastHit Side

	leftStreak  int // consecutive hits by the left paddle
	rightStreak int // consecutive hits by the right paddle

	coinSpawnTick int

	rng     *rand.Rand
	sound   Sound
	metrics CoinMetrics
}

// NewState builds the initial game state: ball stationary at center,
// paddles vertically centered against the side walls, no coins, zero
// scores. The seed drives serve directions and coin spawn positions, so a
// fixed seed replays identically. sound and metrics may be nil; a nil
// sound is silent and a nil metrics falls back to the default coin size.
func NewState(seed int64, sound Sound, metrics CoinMetrics) *State {
	return &State{
		Ball: Ball{
			X:     constant.WindowWidth / 2,
			Y:     constant.WindowHeight / 2,
			Speed: constant.BallBaseSpeed,
		},
		Left: Paddle{
			X:    0,
			Y:    (constant.WindowHeight - constant.PaddleHeight) / 2,
			Side: SideLeft,
		},
		Right: Paddle{
			X:    constant.WindowWidth - constant.PaddleWidth,
			Y:    (constant.WindowHeight - constant.PaddleHeight) / 2,
			Side: SideRight,
		},
		LastHit: SideNone,
		rng:     rand.New(rand.NewSource(seed)),
		sound:   sound,
		metrics: metrics,
	}
}

// serveDirection picks a random unit launch direction by rejection
// sampling: angles whose sine or cosine magnitude falls below the
// tolerance are resampled, so serves are never near-horizontal or
// near-vertical.
func (s *State) serveDirection() (dx, dy float64) {
	var angle float64
	for {
		angle = s.rng.Float64() * 2 * math.Pi
		if math.Abs(math.Sin(angle)) >= constant.ServeAxisTolerance &&
			math.Abs(math.Cos(angle)) >= constant.ServeAxisTolerance {
			break
		}
	}
	return math.Cos(angle), math.Sin(angle)
}

// resetBall re-centers the ball for a fresh serve after a miss: random
// direction, base speed, boost cleared, both hit streaks and the last-hit
// marker wiped.
func (s *State) resetBall() {
	s.Ball.X = constant.WindowWidth / 2
	s.Ball.Y = constant.WindowHeight / 2
	s.Ball.DX, s.Ball.DY = s.serveDirection()
	s.Ball.Speed = constant.BallBaseSpeed
	s.Ball.BoostTimer = 0
	s.leftStreak = 0
	s.rightStreak = 0
	s.LastHit = SideNone
}

// coinSize returns the scaled coin collision box size, falling back to the
// base sprite size when no metrics collaborator is wired.
func (s *State) coinSize() (w, h float64) {
	if s.metrics == nil {
		return constant.CoinBaseWidth * constant.CoinDrawScale,
			constant.CoinBaseHeight * constant.CoinDrawScale
	}
	return s.metrics.RenderedWidth(constant.CoinDrawScale),
		s.metrics.RenderedHeight(constant.CoinDrawScale)
}

// spawnCoin places a new coin at a random position, keeping a margin of
// one paddle width plus half a coin near the left and right edges and half
// a coin near the top and bottom.
func (s *State) spawnCoin() {
	w, h := s.coinSize()
	cw, ch := int(w), int(h)

	x := s.rng.Intn(constant.WindowWidth-2*constant.PaddleWidth-cw) +
		constant.PaddleWidth + cw/2
	y := s.rng.Intn(constant.WindowHeight-ch) + ch/2

	s.Coins = append(s.Coins, Coin{
		X:     float64(x),
		Y:     float64(y),
		Timer: constant.CoinLifetimeFrames,
	})
}

func (s *State) playHit() {
	if s.sound != nil {
		s.sound.PlayHit()
	}
}
