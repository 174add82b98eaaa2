package parameter

// Terminal viewer projection and layout
const (
	// ViewScaleX is terminal columns per viewport unit
	ViewScaleX = 1.0 / 12.0

	// ViewScaleY is terminal rows per viewport unit (cells are ~2:1)
	ViewScaleY = 1.0 / 24.0

	// StatusBarHeight is reserved at the bottom of the screen
	StatusBarHeight = 1

	// NudgeOffset is the path offset applied per arrow key press
	NudgeOffset = 30.0

	// LabelMaxWidth truncates item labels in cells
	LabelMaxWidth = 8

	// GuideChar draws the guide curve
	GuideChar = '·'

	// ItemChar draws an item without room for its label
	ItemChar = '●'
)

// Colors (hex, parsed by go-colorful)
const (
	ColorBackground = "#101418"
	ColorGuide      = "#4a5560"
	ColorLabel      = "#f0f0f0"
	ColorStatus     = "#8899aa"
)
