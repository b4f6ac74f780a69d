// Package ansi provides ANSI escape sequences and palette presets.
// The palette values are derived from pkt.systems/pslog/ansi (MIT License).
// Only the data needed by inspectx is included here to avoid an external dep.
package ansi

import "strings"

// Base ANSI escape codes.
const (
	Reset         = "\x1b[0m"
	Bold          = "\x1b[1m"
	Faint         = "\x1b[90m"
	Red           = "\x1b[31m"
	Green         = "\x1b[32m"
	Yellow        = "\x1b[33m"
	Blue          = "\x1b[34m"
	Magenta       = "\x1b[35m"
	Cyan          = "\x1b[36m"
	Gray          = "\x1b[37m"
	BrightRed     = "\x1b[1;31m"
	BrightGreen   = "\x1b[1;32m"
	BrightYellow  = "\x1b[1;33m"
	BrightBlue    = "\x1b[1;34m"
	BrightMagenta = "\x1b[1;35m"
	BrightCyan    = "\x1b[1;36m"
	BrightWhite   = "\x1b[1;37m"
)

// Palette assigns an escape sequence to every semantic value category the
// inspector renders. An empty field means "no styling" for that category.
type Palette struct {
	Number    string
	BigInt    string
	Boolean   string
	String    string
	Symbol    string
	Callable  string
	Null      string
	Undefined string
	Date      string
	Pattern   string
	Error     string
	Special   string
	Key       string
}

// PaletteDefault is the classic REPL scheme: warm numerics, green strings,
// bold null/circular markers.
var PaletteDefault = Palette{
	Number:    Yellow,
	BigInt:    Yellow,
	Boolean:   Yellow,
	String:    Green,
	Symbol:    Green,
	Callable:  Cyan,
	Null:      Bold,
	Undefined: Faint,
	Date:      Magenta,
	Pattern:   Red,
	Error:     BrightRed,
	Special:   Bold,
	Key:       Cyan,
}

// PaletteTokyoNight draws on Tokyo Night's neon blues, violets, and warm highlights.
var PaletteTokyoNight = Palette{
	Number:    "\x1b[38;5;176m",
	BigInt:    "\x1b[38;5;176m",
	Boolean:   "\x1b[38;5;117m",
	String:    "\x1b[38;5;110m",
	Symbol:    "\x1b[38;5;110m",
	Callable:  "\x1b[38;5;74m",
	Null:      "\x1b[38;5;244m",
	Undefined: "\x1b[38;5;239m",
	Date:      "\x1b[38;5;173m",
	Pattern:   "\x1b[38;5;210m",
	Error:     "\x1b[38;5;205m",
	Special:   "\x1b[38;5;69m",
	Key:       "\x1b[38;5;69m",
}

// PaletteSynthwave84 channels synthwave aesthetics with glowing magentas, cyans, and gold accents.
var PaletteSynthwave84 = Palette{
	Number:    "\x1b[38;5;207m",
	BigInt:    "\x1b[38;5;207m",
	Boolean:   "\x1b[38;5;219m",
	String:    "\x1b[38;5;51m",
	Symbol:    "\x1b[38;5;51m",
	Callable:  "\x1b[38;5;45m",
	Null:      "\x1b[38;5;102m",
	Undefined: "\x1b[38;5;60m",
	Date:      "\x1b[38;5;220m",
	Pattern:   "\x1b[38;5;205m",
	Error:     "\x1b[38;5;200m",
	Special:   "\x1b[38;5;198m",
	Key:       "\x1b[38;5;198m",
}

// PaletteDoomNord channels doom-nord with cool glacier blues.
var PaletteDoomNord = Palette{
	Number:    "\x1b[38;5;109m",
	BigInt:    "\x1b[38;5;109m",
	Boolean:   "\x1b[38;5;115m",
	String:    "\x1b[38;5;152m",
	Symbol:    "\x1b[38;5;152m",
	Callable:  "\x1b[38;5;110m",
	Null:      "\x1b[38;5;245m",
	Undefined: "\x1b[38;5;103m",
	Date:      "\x1b[38;5;179m",
	Pattern:   "\x1b[38;5;210m",
	Error:     "\x1b[38;5;204m",
	Special:   "\x1b[38;5;153m",
	Key:       "\x1b[38;5;153m",
}

// Strip removes CSI escape sequences so layout code can measure the text the
// terminal will actually display.
func Strip(s string) string {
	if !strings.Contains(s, "\x1b") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) {
				c := s[i]
				i++
				if c >= 0x40 && c <= 0x7e {
					break
				}
			}
			continue
		}
		sb.WriteByte(s[i])
		i++
	}
	return sb.String()
}
