package common

// Discord color constants
const (
	ColorPrimary = 0x5865F2 // Discord blurple
	ColorSuccess = 0x57F287 // Green
	ColorDanger  = 0xED4245 // Red
	ColorInfo    = 0x3498DB // Blue
	ColorPurple  = 0x9B59B6 // Purple
)
