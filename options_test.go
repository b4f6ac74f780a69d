package inspectx

import (
	"strings"
	"testing"
)

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestOptions_InvalidValuesPanic(t *testing.T) {
	mustPanic(t, "negative depth", func() {
		Inspect(1, &Options{Depth: -1, IterableLimit: 100})
	})
	mustPanic(t, "negative limit", func() {
		Inspect(1, &Options{Depth: 4, IterableLimit: -1})
	})
	mustPanic(t, "negative indent", func() {
		Inspect(1, &Options{Depth: 4, IterableLimit: 100, IndentLevel: -2})
	})
	mustPanic(t, "unknown palette", func() {
		Inspect(1, &Options{Depth: 4, IterableLimit: 100, Palette: "no-such-palette"})
	})
}

func TestOptions_NilUsesDefaults(t *testing.T) {
	if got, want := Inspect([]any{1}, nil), Inspect([]any{1}, DefaultOptions); got != want {
		t.Fatalf("nil options diverge: %q vs %q", got, want)
	}
}

func TestOptions_CallerValuesUntouched(t *testing.T) {
	opts := testOpts()
	before := *opts
	Inspect([]any{1, 2, 3}, opts)
	if *opts != before {
		t.Fatalf("options mutated: %+v -> %+v", before, *opts)
	}
}

func TestPaletteNames(t *testing.T) {
	names := PaletteNames()
	if len(names) == 0 {
		t.Fatal("no palettes registered")
	}
	seen := map[string]bool{}
	for _, n := range names {
		seen[n] = true
	}
	for _, want := range []string{"default", "none", "tokyo-night"} {
		if !seen[want] {
			t.Fatalf("palette %q missing from %v", want, names)
		}
	}
	if !strings.Contains(strings.Join(names, ","), "none") {
		t.Fatal("none palette must be selectable")
	}
}
