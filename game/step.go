package game

import (
	"math"

	"github.com/lixenwraith/coin-pong/constant"
)

// Frame carries one frame's worth of player input into Step: the sampled
// key-down state of the four movement keys and at most one pointer-down
// event in world coordinates.
type Frame struct {
	LeftUp, LeftDown   bool
	RightUp, RightDown bool

	Click          bool
	ClickX, ClickY float64
}

// Step advances the simulation by one frame. The stage order is load
// bearing and must not be rearranged: paddles move first, then the launch
// check, ball integration, wall and paddle collisions, miss scoring, the
// boost timer, and finally the coin lifecycle.
func (s *State) Step(in Frame) {
	s.movePaddles(in)
	s.tryLaunch(in)

	reflected := s.moveBall()
	if s.collidePaddles() {
		reflected = true
	}
	s.scoreMiss()
	s.updateBoost(reflected)
	s.updateCoins()
}

// movePaddles applies the held movement keys and clamps both paddles into
// the window.
func (s *State) movePaddles(in Frame) {
	if in.LeftUp {
		s.Left.Y -= constant.PaddleSpeed
	}
	if in.LeftDown {
		s.Left.Y += constant.PaddleSpeed
	}
	if in.RightUp {
		s.Right.Y -= constant.PaddleSpeed
	}
	if in.RightDown {
		s.Right.Y += constant.PaddleSpeed
	}

	const maxY = constant.WindowHeight - constant.PaddleHeight
	s.Left.Y = clamp(s.Left.Y, 0, maxY)
	s.Right.Y = clamp(s.Right.Y, 0, maxY)
}

// tryLaunch serves the ball when a pointer-down lands on it while it is
// stationary. The serve gets a fresh random direction at base speed.
func (s *State) tryLaunch(in Frame) {
	if !in.Click || !s.Ball.Stationary() {
		return
	}

	dx := in.ClickX - s.Ball.X
	dy := in.ClickY - s.Ball.Y
	if dx*dx+dy*dy > constant.BallRadius*constant.BallRadius {
		return
	}

	s.Ball.DX, s.Ball.DY = s.serveDirection()
	s.Ball.Speed = constant.BallBaseSpeed
	s.Ball.BoostTimer = 0
}

// moveBall integrates the ball one frame and reflects it off the top and
// bottom walls, reporting whether a wall reflection happened. The ball is
// clamped to the wall it touched so it cannot stick outside the window.
func (s *State) moveBall() bool {
	b := &s.Ball
	b.X += b.DX * b.Speed
	b.Y += b.DY * b.Speed

	if b.Y+constant.BallRadius > constant.WindowHeight {
		b.Y = constant.WindowHeight - constant.BallRadius
		b.DY = -math.Abs(b.DY)
		return true
	}
	if b.Y-constant.BallRadius < 0 {
		b.Y = constant.BallRadius
		b.DY = math.Abs(b.DY)
		return true
	}
	return false
}

// collidePaddles resolves ball-vs-paddle contact and reports whether a
// reflection happened. Each paddle is only checked while the ball moves
// toward it, and the left paddle is checked first with the right as an
// else branch; under per-frame integration the ball cannot be moving
// toward both paddles at once.
func (s *State) collidePaddles() bool {
	b := &s.Ball
	switch {
	case b.DX < 0 && CircleIntersectsRect(b.X, b.Y, constant.BallRadius, s.Left.Rect()):
		b.X = s.Left.X + constant.PaddleWidth + constant.BallRadius
		b.DX = math.Abs(b.DX)
		s.playHit()
		s.recordHit(SideLeft)
		return true

	case b.DX > 0 && CircleIntersectsRect(b.X, b.Y, constant.BallRadius, s.Right.Rect()):
		b.X = s.Right.X - constant.BallRadius
		b.DX = -math.Abs(b.DX)
		s.playHit()
		s.recordHit(SideRight)
		return true
	}
	return false
}

// recordHit applies the consecutive-hit rule: striking the ball twice in a
// row without the opponent touching it in between scores a point and
// restarts the streak. A hit after a side change starts a streak of one
// and wipes the opponent's streak.
func (s *State) recordHit(side Side) {
	streak, other := &s.leftStreak, &s.rightStreak
	score := &s.LeftScore
	if side == SideRight {
		streak, other = &s.rightStreak, &s.leftStreak
		score = &s.RightScore
	}

	if s.LastHit == side {
		*streak++
		if *streak >= 2 {
			*score++
			*streak = 0
		}
	} else {
		*streak = 1
		*other = 0
	}
	s.LastHit = side
}

// scoreMiss awards a point when the ball escapes past a side wall and
// resets it for the next serve. Left edge out scores for the right player
// and vice versa.
func (s *State) scoreMiss() {
	b := &s.Ball
	if b.X-constant.BallRadius < 0 {
		s.RightScore++
		s.resetBall()
	} else if b.X+constant.BallRadius > constant.WindowWidth {
		s.LeftScore++
		s.resetBall()
	}
}

// updateBoost restarts the speed boost on any reflection this frame and
// ticks the running timer down, reverting to base speed the frame the
// timer reaches zero. A reflection during an active boost restarts the
// timer rather than stacking the multiplier.
func (s *State) updateBoost(reflected bool) {
	b := &s.Ball
	if reflected {
		b.BoostTimer = constant.BallBoostDurationFrames
		b.Speed = constant.BallBaseSpeed * constant.BallBoostFactor
	}
	if b.BoostTimer > 0 {
		b.BoostTimer--
		if b.BoostTimer == 0 {
			b.Speed = constant.BallBaseSpeed
		}
	}
}

// updateCoins runs the spawn timer and the per-coin lifecycle: expiry
// first, then collection in fixed priority ball, left paddle, right
// paddle. The first match wins, so a coin is never collected twice in one
// frame. Survivors keep their relative order.
func (s *State) updateCoins() {
	s.coinSpawnTick++
	if s.coinSpawnTick >= constant.CoinSpawnIntervalFrames {
		s.spawnCoin()
		s.coinSpawnTick = 0
	}

	w, h := s.coinSize()
	b := &s.Ball

	live := s.Coins[:0]
	for _, c := range s.Coins {
		c.Timer--
		if c.Timer <= 0 {
			continue // expired unclaimed, no score
		}

		box := Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}

		collected := true
		switch {
		case CircleIntersectsRect(b.X, b.Y, constant.BallRadius, box):
			// The coin goes to whoever last struck the ball; an untouched
			// ball consumes the coin without scoring.
			switch s.LastHit {
			case SideLeft:
				s.LeftScore++
			case SideRight:
				s.RightScore++
			}
		case RectsIntersect(s.Left.Rect(), box):
			s.LeftScore++
		case RectsIntersect(s.Right.Rect(), box):
			s.RightScore++
		default:
			collected = false
		}

		if collected {
			s.playHit()
			continue
		}
		live = append(live, c)
	}
	s.Coins = live
}
