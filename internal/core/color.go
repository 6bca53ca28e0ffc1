package core

// Color is a palette index for a drawn shape or screen cell.
// Platforms map each index to a concrete colour; Code gives the
// xterm-256 value used by terminals.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGreen
	ColorPink
	ColorBlack

	// NumColors is the size of the palette.
	NumColors int = iota
)

var xterm = [NumColors]string{
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorYellow:        "3",
	ColorBlue:          "4",
	ColorMagenta:       "5",
	ColorCyan:          "6",
	ColorWhite:         "7",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorGray:          "245",
	ColorDarkGreen:     "22",
	ColorPink:          "211",
	ColorBlack:         "16",
}

// Code returns the xterm-256 colour code, or "" for the terminal default
// and for indices outside the palette.
func (c Color) Code() string {
	if int(c) >= NumColors {
		return ""
	}
	return xterm[c]
}
