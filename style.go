package inspectx

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"pkt.systems/inspectx/internal/ansi"
)

// styleCategory selects the palette entry a rendered token belongs to.
type styleCategory int

const (
	styleNone styleCategory = iota
	styleNumber
	styleBigInt
	styleBoolean
	styleString
	styleSymbol
	styleCallable
	styleNull
	styleUndefined
	styleDate
	stylePattern
	styleError
	styleSpecial
	styleKey
)

// stylist wraps rendered tokens in ANSI sequences, or is the identity when
// coloring is disabled.
type stylist struct {
	enabled bool
	pal     ansi.Palette
}

func (st stylist) wrap(cat styleCategory, s string) string {
	if !st.enabled {
		return s
	}
	seq := st.sequence(cat)
	if seq == "" {
		return s
	}
	return seq + s + ansi.Reset
}

func (st stylist) sequence(cat styleCategory) string {
	switch cat {
	case styleNumber:
		return st.pal.Number
	case styleBigInt:
		return st.pal.BigInt
	case styleBoolean:
		return st.pal.Boolean
	case styleString:
		return st.pal.String
	case styleSymbol:
		return st.pal.Symbol
	case styleCallable:
		return st.pal.Callable
	case styleNull:
		return st.pal.Null
	case styleUndefined:
		return st.pal.Undefined
	case styleDate:
		return st.pal.Date
	case stylePattern:
		return st.pal.Pattern
	case styleError:
		return st.pal.Error
	case styleSpecial:
		return st.pal.Special
	case styleKey:
		return st.pal.Key
	default:
		return ""
	}
}

const (
	paletteDefaultName = "default"
	paletteNoneName    = "none"
)

var paletteRegistry = map[string]ansi.Palette{
	paletteDefaultName: ansi.PaletteDefault,
	"classic":          ansi.PaletteDefault,
	"doom-nord":        ansi.PaletteDoomNord,
	"synthwave84":      ansi.PaletteSynthwave84,
	"tokyo-night":      ansi.PaletteTokyoNight,
}

// PaletteNames returns the sorted list of palette names, including "none".
func PaletteNames() []string {
	names := make([]string, 0, len(paletteRegistry)+1)
	for name := range paletteRegistry {
		names = append(names, name)
	}
	names = append(names, paletteNoneName)
	sort.Strings(names)
	return names
}

// resolveStylist returns the stylist for the given options, defaulting to
// the "default" palette. The special name "none" disables coloring even when
// opts.Colors is set.
func resolveStylist(opts *Options) (stylist, error) {
	name := paletteDefaultName
	if opts != nil && strings.TrimSpace(opts.Palette) != "" {
		name = strings.ToLower(strings.TrimSpace(opts.Palette))
	}
	if name == paletteNoneName {
		return stylist{}, nil
	}
	pal, ok := paletteRegistry[name]
	if !ok {
		return stylist{}, fmt.Errorf("unknown palette %q (use one of: %s)", name, strings.Join(PaletteNames(), ", "))
	}
	if opts == nil || !opts.Colors {
		return stylist{}, nil
	}
	return stylist{enabled: true, pal: pal}, nil
}

// displayWidth measures the terminal cell width of s with ANSI sequences
// stripped, so color codes never influence layout.
func displayWidth(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}
