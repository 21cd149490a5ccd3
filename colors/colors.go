package colors

import "strconv"

// Color is an ANSI SGR foreground color code. Unset produces no markup.
type Color int

const (
	Unset   Color = 0
	Black   Color = 30
	Red     Color = Black + 1
	Green   Color = Red + 1
	Yellow  Color = Green + 1
	Blue    Color = Yellow + 1
	Magenta Color = Blue + 1
	Cyan    Color = Magenta + 1
	White   Color = Cyan + 1

	LightBlack   Color = 90
	LightRed     Color = LightBlack + 1
	LightGreen   Color = LightRed + 1
	LightYellow  Color = LightGreen + 1
	LightBlue    Color = LightYellow + 1
	LightMagenta Color = LightBlue + 1
	LightCyan    Color = LightMagenta + 1
	LightWhite   Color = LightCyan + 1
)

// SGR attribute codes.
const (
	bold  = 1
	dim   = 2
	reset = "\x1b[0m"
)

func wrap(s string, code int) string {
	return "\x1b[" + strconv.Itoa(code) + "m" + s + reset
}
