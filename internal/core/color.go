package core

// Color identifies a foreground color for a screen cell or drawable.
// Mapped to concrete terminal colors by the platform layer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorSky
	ColorGround
	ColorPipe
	ColorPipeHighlight
	ColorBirdLight
	ColorBirdDark
	ColorBeak
	ColorTrail
	ColorEmber
	ColorWhite
	ColorBlack
	ColorGray
)
