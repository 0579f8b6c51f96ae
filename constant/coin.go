package constant

// Coin Spawning
const (
	// CoinSpawnIntervalFrames is the number of frames between coin spawns
	CoinSpawnIntervalFrames = 300

	// CoinLifetimeFrames is how many frames a coin stays before expiring
	CoinLifetimeFrames = 600
)

// Coin Sprite
const (
	// CoinBaseWidth is the unscaled sprite frame width in world units
	CoinBaseWidth = 32

	// CoinBaseHeight is the unscaled sprite frame height in world units
	CoinBaseHeight = 32

	// CoinDrawScale is the scale factor applied to the sprite when drawn;
	// the collision box uses the same scaled size
	CoinDrawScale = 0.8

	// CoinAnimationFrames is the number of frames in the coin spin cycle
	CoinAnimationFrames = 8

	// CoinAnimationFrameMs is how long each animation frame is shown
	CoinAnimationFrameMs = 100
)
