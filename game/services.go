package game

// Sound plays short gameplay sound effects. Calls are fire-and-forget:
// overlapping plays are allowed and no sequencing is guaranteed. The
// simulation never depends on playback having happened.
type Sound interface {
	PlayHit()
}

// CoinMetrics reports the rendered size of a coin for a given draw scale.
// The simulation queries it only to size coin collision rectangles; frame
// selection and drawing stay in the presentation layer.
type CoinMetrics interface {
	RenderedWidth(scale float64) float64
	RenderedHeight(scale float64) float64
}
