package ansi

import "testing"

func TestStrip(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"", ""},
		{Yellow + "1.5" + Reset, "1.5"},
		{"\x1b[38;5;176mx\x1b[0m", "x"},
		{"\x1b[1;38;2;255;0;0mbold red\x1b[0m", "bold red"},
		{"a" + Reset + "b" + Bold + "c", "abc"},
	}
	for _, tc := range cases {
		if got := Strip(tc.in); got != tc.want {
			t.Fatalf("Strip(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPalettesFullyPopulated(t *testing.T) {
	for name, pal := range map[string]Palette{
		"default":     PaletteDefault,
		"tokyo-night": PaletteTokyoNight,
		"synthwave84": PaletteSynthwave84,
		"doom-nord":   PaletteDoomNord,
	} {
		for field, seq := range map[string]string{
			"Number": pal.Number, "BigInt": pal.BigInt, "Boolean": pal.Boolean,
			"String": pal.String, "Symbol": pal.Symbol, "Callable": pal.Callable,
			"Null": pal.Null, "Undefined": pal.Undefined, "Date": pal.Date,
			"Pattern": pal.Pattern, "Error": pal.Error, "Special": pal.Special,
			"Key": pal.Key,
		} {
			if seq == "" {
				t.Fatalf("palette %s: field %s empty", name, field)
			}
			if Strip(seq) != "" {
				t.Fatalf("palette %s: field %s is not a pure escape sequence: %q", name, field, seq)
			}
		}
	}
}
