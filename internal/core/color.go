package core

// Color is a foreground colour for a screen cell.
// Values map onto the ANSI 256-colour palette in the terminal frontend
// and onto RGBA values in the window frontend.
type Color uint8

// Palette used by the playfield.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorOrange
	ColorBlue
	ColorPurple
	ColorWhite
	ColorGray
)

// ParseColor maps a config colour name to a Color.
// Unknown names resolve to ColorDefault.
func ParseColor(name string) Color {
	switch name {
	case "red":
		return ColorRed
	case "green":
		return ColorGreen
	case "yellow":
		return ColorYellow
	case "orange":
		return ColorOrange
	case "blue":
		return ColorBlue
	case "purple":
		return ColorPurple
	case "white":
		return ColorWhite
	case "gray", "grey":
		return ColorGray
	default:
		return ColorDefault
	}
}

// String returns the config name of the colour.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorOrange:
		return "orange"
	case ColorBlue:
		return "blue"
	case ColorPurple:
		return "purple"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	default:
		return "default"
	}
}
