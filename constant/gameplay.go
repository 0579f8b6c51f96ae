package constant

// World
const (
	// WindowWidth is the fixed width of the simulation world in world units
	WindowWidth = 800

	// WindowHeight is the fixed height of the simulation world in world units
	WindowHeight = 600
)

// Ball
const (
	// BallDiameter is the ball's diameter in world units
	BallDiameter = 30

	// BallRadius is the ball's collision radius
	BallRadius = BallDiameter / 2

	// BallBaseSpeed is the ball speed in world units per frame outside a boost
	BallBaseSpeed = 4.0

	// BallBoostFactor multiplies the base speed while a boost is active
	BallBoostFactor = 1.2

	// BallBoostDurationFrames is how many frames a boost lasts after a reflection
	BallBoostDurationFrames = 30

	// ServeAxisTolerance rejects serve angles whose sine or cosine magnitude
	// falls below it, so serves are never near-horizontal or near-vertical
	ServeAxisTolerance = 0.2
)

// Paddle
const (
	// PaddleWidth is each paddle's width in world units
	PaddleWidth = 20

	// PaddleHeight is each paddle's height in world units
	PaddleHeight = 100

	// PaddleSpeed is the paddle travel per frame while its key is held
	PaddleSpeed = 6.0
)
