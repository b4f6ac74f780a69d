package inspectx

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"pkt.systems/inspectx/internal/ansi"
)

// FormatArgs renders a printf-style template with DefaultOptions. Directives:
// %s (text), %d/%i (integer), %f (float), %o/%O (recursive inspection),
// %c (inline style description mapped to ANSI), %% (literal percent). A
// directive with no unconsumed argument left is kept as literal text; leftover
// arguments are appended space-separated.
func FormatArgs(template string, args ...any) string {
	p := acquirePrinter(DefaultOptions)
	defer releasePrinter(p)
	return p.formatArgs(template, args)
}

func (p *printer) formatArgs(template string, args []any) string {
	var sb strings.Builder
	sb.Grow(len(template) + 16*len(args))

	styled := false
	var style textStyle
	a := 0
	for i := 0; i < len(template); {
		c := template[i]
		if c != '%' || i+1 >= len(template) {
			sb.WriteByte(c)
			i++
			continue
		}
		d := template[i+1]
		if d == '%' {
			sb.WriteByte('%')
			i += 2
			continue
		}
		if !isDirective(d) || a >= len(args) {
			sb.WriteByte(c)
			i++
			continue
		}
		arg := args[a]
		a++
		switch d {
		case 's':
			sb.WriteString(p.formatText(arg))
		case 'd', 'i':
			sb.WriteString(p.st.wrap(styleNumber, formatInteger(arg)))
		case 'f':
			sb.WriteString(p.st.wrap(styleNumber, formatFloatArg(arg)))
		case 'o', 'O':
			sb.WriteString(p.inspectDefaultDepth(arg))
		case 'c':
			next := parseTextStyle(coerceText(arg))
			sb.WriteString(styleTransition(style, next))
			style = next
			styled = true
		}
		i += 2
	}

	for ; a < len(args); a++ {
		sb.WriteByte(' ')
		if s, ok := args[a].(string); ok {
			sb.WriteString(s)
		} else {
			sb.WriteString(p.inspect(args[a], 0))
		}
	}
	if styled {
		sb.WriteString(ansi.Reset)
	}
	return sb.String()
}

func isDirective(d byte) bool {
	switch d {
	case 's', 'd', 'i', 'f', 'o', 'O', 'c':
		return true
	}
	return false
}

func (p *printer) formatText(arg any) string {
	switch v := arg.(type) {
	case string:
		return v
	case *big.Int:
		return p.st.wrap(styleBigInt, v.String()+"n")
	}
	if classify(arg) == KindNumber {
		return p.st.wrap(styleNumber, formatNumber(arg))
	}
	return p.inspect(arg, 0)
}

// inspectDefaultDepth renders %o / %O arguments: a full recursive inspection
// at the default depth, keeping the caller's color settings.
func (p *printer) inspectDefaultDepth(arg any) string {
	opts := *p.opts
	opts.Depth = DefaultOptions.Depth
	opts.IndentLevel = 0
	sub := acquirePrinter(&opts)
	defer releasePrinter(sub)
	if s, ok := arg.(string); ok {
		return Quote(s)
	}
	return sub.inspect(arg, 0)
}

func formatInteger(arg any) string {
	switch n := arg.(type) {
	case *big.Int:
		return n.String() + "n"
	case float64:
		return truncFloat(n)
	case float32:
		return truncFloat(float64(n))
	}
	if classify(arg) == KindNumber {
		return formatNumber(arg)
	}
	return "NaN"
}

func truncFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return formatFloat(f)
	}
	return strconv.FormatFloat(math.Trunc(f), 'f', -1, 64)
}

func formatFloatArg(arg any) string {
	switch n := arg.(type) {
	case float64:
		return formatFloat(n)
	case float32:
		return formatFloat(float64(n))
	case *big.Int:
		f, _ := new(big.Float).SetInt(n).Float64()
		return formatFloat(f)
	}
	if classify(arg) == KindNumber {
		return formatNumber(arg)
	}
	return "NaN"
}

func coerceText(arg any) string {
	if s, ok := arg.(string); ok {
		return s
	}
	return fmt.Sprint(arg)
}

// RGB is a 24-bit color tuple used by the %c style parser.
type RGB struct {
	R, G, B uint8
}

// LookupColorKeyword maps a color keyword from a %c style description to an
// RGB tuple. The built-in table covers the basic keywords; hosts with a full
// color-keyword table can replace it.
var LookupColorKeyword = func(name string) (RGB, bool) {
	c, ok := basicColorKeywords[strings.ToLower(name)]
	return c, ok
}

var basicColorKeywords = map[string]RGB{
	"black":   {0x00, 0x00, 0x00},
	"silver":  {0xc0, 0xc0, 0xc0},
	"gray":    {0x80, 0x80, 0x80},
	"grey":    {0x80, 0x80, 0x80},
	"white":   {0xff, 0xff, 0xff},
	"maroon":  {0x80, 0x00, 0x00},
	"red":     {0xff, 0x00, 0x00},
	"purple":  {0x80, 0x00, 0x80},
	"fuchsia": {0xff, 0x00, 0xff},
	"magenta": {0xff, 0x00, 0xff},
	"green":   {0x00, 0x80, 0x00},
	"lime":    {0x00, 0xff, 0x00},
	"olive":   {0x80, 0x80, 0x00},
	"yellow":  {0xff, 0xff, 0x00},
	"navy":    {0x00, 0x00, 0x80},
	"blue":    {0x00, 0x00, 0xff},
	"teal":    {0x00, 0x80, 0x80},
	"aqua":    {0x00, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff},
	"orange":  {0xff, 0xa5, 0x00},
	"pink":    {0xff, 0xc0, 0xcb},
	"brown":   {0xa5, 0x2a, 0x2a},
}

// textStyle is the state carried between %c directives. Color fields hold
// SGR parameter fragments; empty means terminal default.
type textStyle struct {
	bold      bool
	italic    bool
	underline bool
	overline  bool
	strike    bool
	fg        string
	bg        string
	decoColor string
}

func parseTextStyle(desc string) textStyle {
	var st textStyle
	for _, decl := range strings.Split(desc, ";") {
		prop, value, found := strings.Cut(decl, ":")
		if !found {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		value = strings.TrimSpace(value)
		switch prop {
		case "color":
			if params, ok := colorParams(value, false); ok {
				st.fg = params
			}
		case "background", "background-color":
			if params, ok := colorParams(value, true); ok {
				st.bg = params
			}
		case "font-weight":
			st.bold = strings.EqualFold(value, "bold") || strings.EqualFold(value, "bolder")
		case "font-style":
			st.italic = strings.EqualFold(value, "italic") || strings.EqualFold(value, "oblique")
		case "text-decoration", "text-decoration-line":
			for _, word := range strings.Fields(value) {
				switch strings.ToLower(word) {
				case "underline":
					st.underline = true
				case "overline":
					st.overline = true
				case "line-through":
					st.strike = true
				case "none":
					st.underline, st.overline, st.strike = false, false, false
					st.decoColor = ""
				default:
					if rgb, ok := parseColorValue(word); ok {
						st.decoColor = fmt.Sprintf("58;2;%d;%d;%d", rgb.R, rgb.G, rgb.B)
					}
				}
			}
		case "text-decoration-color":
			if rgb, ok := parseColorValue(value); ok {
				st.decoColor = fmt.Sprintf("58;2;%d;%d;%d", rgb.R, rgb.G, rgb.B)
			}
		}
	}
	return st
}

// colorParams turns a color value into SGR parameters via termenv, so the
// emitted sequence matches the terminal conventions the rest of the corpus
// uses.
func colorParams(value string, bg bool) (string, bool) {
	rgb, ok := parseColorValue(value)
	if !ok {
		return "", false
	}
	c := termenv.TrueColor.Color(fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B))
	if c == nil {
		return "", false
	}
	return c.Sequence(bg), true
}

func parseColorValue(value string) (RGB, bool) {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "#") {
		return parseHexColor(value[1:])
	}
	if strings.HasPrefix(strings.ToLower(value), "rgb(") || strings.HasPrefix(strings.ToLower(value), "rgba(") {
		open := strings.IndexByte(value, '(')
		body := strings.TrimSuffix(value[open+1:], ")")
		parts := strings.Split(body, ",")
		if len(parts) < 3 {
			return RGB{}, false
		}
		var ch [3]uint8
		for i := 0; i < 3; i++ {
			n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
			if err != nil || n < 0 || n > 255 {
				return RGB{}, false
			}
			ch[i] = uint8(n)
		}
		return RGB{ch[0], ch[1], ch[2]}, true
	}
	return LookupColorKeyword(value)
}

func parseHexColor(hex string) (RGB, bool) {
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return RGB{}, false
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		if !isHex(hex[2*i]) || !isHex(hex[2*i+1]) {
			return RGB{}, false
		}
		ch[i] = fromHex(hex[2*i])<<4 | fromHex(hex[2*i+1])
	}
	return RGB{ch[0], ch[1], ch[2]}, true
}

// styleTransition emits the minimal SGR sequence taking the terminal from
// prev to next. An empty string means the states are identical.
func styleTransition(prev, next textStyle) string {
	var params []string
	flag := func(prevOn, nextOn bool, on, off string) {
		if prevOn == nextOn {
			return
		}
		if nextOn {
			params = append(params, on)
		} else {
			params = append(params, off)
		}
	}
	flag(prev.bold, next.bold, "1", "22")
	flag(prev.italic, next.italic, "3", "23")
	flag(prev.underline, next.underline, "4", "24")
	flag(prev.overline, next.overline, "53", "55")
	flag(prev.strike, next.strike, "9", "29")
	if prev.fg != next.fg {
		if next.fg == "" {
			params = append(params, "39")
		} else {
			params = append(params, next.fg)
		}
	}
	if prev.bg != next.bg {
		if next.bg == "" {
			params = append(params, "49")
		} else {
			params = append(params, next.bg)
		}
	}
	if prev.decoColor != next.decoColor {
		if next.decoColor == "" {
			params = append(params, "59")
		} else {
			params = append(params, next.decoColor)
		}
	}
	if len(params) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(params, ";") + "m"
}
