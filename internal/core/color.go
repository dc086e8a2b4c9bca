package core

// Color is a terminal color specification understood by the rendering
// platform: either an ANSI 256-color index ("245") or a true-color hex
// value ("#edc22e"). The empty Color means the terminal default.
type Color string

// Named colors used by HUD and overlay text.
const (
	ColorDefault Color = ""
	ColorRed     Color = "9"
	ColorGreen   Color = "10"
	ColorYellow  Color = "11"
	ColorWhite   Color = "15"
	ColorGray    Color = "245"
)

// IsDefault reports whether c leaves the terminal color untouched.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}
