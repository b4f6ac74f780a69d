package inspectx

import (
	"strings"
	"testing"

	"pkt.systems/inspectx/internal/ansi"
)

func TestColors_AnnotateTokens(t *testing.T) {
	opts := testOpts()
	opts.Colors = true
	if got := Inspect(1.5, opts); got != "\x1b[33m1.5\x1b[0m" {
		t.Fatalf("number = %q", got)
	}
	if got := Inspect(nil, opts); got != "\x1b[1mnull\x1b[0m" {
		t.Fatalf("null = %q", got)
	}
	if got := Inspect("nested", opts); got != "nested" {
		t.Fatalf("top-level text must stay raw even with colors: %q", got)
	}
}

func TestColors_NeverChangeVisibleText(t *testing.T) {
	v := []any{1, "two", nil, NewObject("").Set("k", true)}
	plain := Inspect(v, nil)
	opts := testOpts()
	opts.Colors = true
	colored := Inspect(v, opts)
	if ansi.Strip(colored) != plain {
		t.Fatalf("stripped output diverges:\n%q\n%q", ansi.Strip(colored), plain)
	}
	if !strings.Contains(colored, "\x1b[") {
		t.Fatalf("expected escape sequences: %q", colored)
	}
}

func TestColors_DoNotAffectGrouping(t *testing.T) {
	elems := make([]any, 20)
	for i := range elems {
		elems[i] = i + 1
	}
	plain := Inspect(elems, nil)
	opts := testOpts()
	opts.Colors = true
	colored := Inspect(elems, opts)
	if ansi.Strip(colored) != plain {
		t.Fatalf("color codes changed layout:\n%q\n%q", ansi.Strip(colored), plain)
	}
}

func TestColors_NonePaletteDisables(t *testing.T) {
	opts := testOpts()
	opts.Colors = true
	opts.Palette = "none"
	if got := Inspect(1.5, opts); got != "1.5" {
		t.Fatalf("none palette = %q", got)
	}
}

func TestResolveStylist(t *testing.T) {
	if _, err := resolveStylist(&Options{Palette: "bogus"}); err == nil {
		t.Fatal("expected error for unknown palette")
	}
	st, err := resolveStylist(&Options{Colors: true, Palette: "Tokyo-Night"})
	if err != nil {
		t.Fatalf("resolveStylist: %v", err)
	}
	if !st.enabled {
		t.Fatal("stylist should be enabled")
	}
	st, err = resolveStylist(&Options{Palette: "tokyo-night"})
	if err != nil || st.enabled {
		t.Fatalf("colors off must disable stylist: %v %+v", err, st)
	}
}

func TestDisplayWidth(t *testing.T) {
	if got := displayWidth("\x1b[33m1.5\x1b[0m"); got != 3 {
		t.Fatalf("styled width = %d", got)
	}
	if got := displayWidth("héllo"); got != 5 {
		t.Fatalf("unicode width = %d", got)
	}
	// CJK runes occupy two cells.
	if got := displayWidth("漢"); got != 2 {
		t.Fatalf("wide rune width = %d", got)
	}
}
