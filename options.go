package inspectx

import "fmt"

// Options controls rendering. The zero value of each field is a valid
// setting; use DefaultOptions for the conventional defaults.
type Options struct {
	// Depth is the max container nesting before elision. Default 4.
	Depth int
	// IndentLevel is a leading indent (in spaces) applied to every line
	// after the first. Default 0.
	IndentLevel int
	// Sorted sorts container keys and object fields. Default false.
	Sorted bool
	// TrailingComma appends a comma before a multi-line closing delimiter.
	// Default false.
	TrailingComma bool
	// Compact allows single-line and grouped layouts. Default true.
	Compact bool
	// IterableLimit caps the entries rendered per container. Default 100.
	IterableLimit int
	// ShowProxy renders interception wrappers explicitly instead of
	// transparently. Default false.
	ShowProxy bool
	// Colors wraps rendered categories in ANSI sequences. Default false.
	Colors bool
	// Getters invokes accessor fields eagerly. Default false.
	Getters bool
	// Palette selects the color scheme by name when Colors is set. Empty
	// means "default".
	Palette string
}

// DefaultOptions holds the fallback inspection configuration.
var DefaultOptions = &Options{Depth: 4, IterableLimit: 100, Compact: true}

// breakLength is the target max line width before switching to multi-line
// rendering.
const breakLength = 80

// validate panics on malformed configuration so broken call sites fail fast
// instead of producing partial output.
func (o *Options) validate() {
	if o.Depth < 0 {
		panic(fmt.Sprintf("inspectx: negative Depth %d", o.Depth))
	}
	if o.IterableLimit < 0 {
		panic(fmt.Sprintf("inspectx: negative IterableLimit %d", o.IterableLimit))
	}
	if o.IndentLevel < 0 {
		panic(fmt.Sprintf("inspectx: negative IndentLevel %d", o.IndentLevel))
	}
}
