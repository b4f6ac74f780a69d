// Command inspectx pretty-prints JSON documents through the value inspector:
// each document is decoded into runtime values and rendered the way a REPL
// would show them. With --compact-json it instead emits one compacted
// document per line, mirroring the jpact passthrough.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"pkt.systems/jpact"

	"pkt.systems/inspectx"
)

func main() {
	depth := pflag.Int("depth", inspectx.DefaultOptions.Depth, "max container nesting before elision")
	limit := pflag.Int("limit", inspectx.DefaultOptions.IterableLimit, "max entries rendered per container")
	sorted := pflag.Bool("sorted", false, "sort container keys and object fields")
	multiline := pflag.Bool("multiline", false, "disable single-line and grouped layouts")
	trailingComma := pflag.Bool("trailing-comma", false, "append a comma before multi-line closing delimiters")
	noColor := pflag.Bool("no-color", false, "disable colorized output, even when writing to a TTY")
	palette := pflag.String("palette", "default", "color palette ("+strings.Join(inspectx.PaletteNames(), ", ")+")")
	compactJSON := pflag.BoolP("compact-json", "c", false, "emit compacted JSON instead of inspecting")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [file...]\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	paths := pflag.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	opts := *inspectx.DefaultOptions
	opts.Depth = *depth
	opts.IterableLimit = *limit
	opts.Sorted = *sorted
	opts.Compact = !*multiline
	opts.TrailingComma = *trailingComma
	opts.Palette = *palette
	opts.Colors = !*noColor && isatty.IsTerminal(os.Stdout.Fd())
	if !known(inspectx.PaletteNames(), strings.ToLower(*palette)) {
		fmt.Fprintf(os.Stderr, "inspectx: unknown palette %q (use one of: %s)\n", *palette, strings.Join(inspectx.PaletteNames(), ", "))
		os.Exit(2)
	}

	for _, path := range paths {
		if err := processFile(os.Stdout, path, &opts, *compactJSON); err != nil {
			fmt.Fprintf(os.Stderr, "inspectx: %s: %v\n", path, err)
			os.Exit(1)
		}
	}
}

func known(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func processFile(w io.Writer, path string, opts *inspectx.Options, compactJSON bool) error {
	r, err := openInput(path)
	if err != nil {
		return err
	}
	defer r.Close()

	dec := json.NewDecoder(r)
	dec.UseNumber()
	for {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if compactJSON {
			if err := jpact.CompactWriter(w, bytes.NewReader(raw), 0); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
			continue
		}
		v, err := decodeValue(raw)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, inspectx.Inspect(v, opts)); err != nil {
			return err
		}
	}
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// decodeValue converts a JSON document into inspector values. Integral
// numbers too wide for float64 become big integers so they render exactly.
func decodeValue(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return convert(v), nil
}

func convert(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, vv := range x {
			x[k] = convert(vv)
		}
		return x
	case []any:
		for i, vv := range x {
			x[i] = convert(vv)
		}
		return x
	case json.Number:
		return convertNumber(x)
	default:
		return x
	}
}

const maxExactInt = int64(1) << 53

func convertNumber(n json.Number) any {
	if i, err := n.Int64(); err == nil {
		if i > -maxExactInt && i < maxExactInt {
			return float64(i)
		}
		return new(big.Int).SetInt64(i)
	}
	if b, ok := new(big.Int).SetString(n.String(), 10); ok {
		return b
	}
	f, err := n.Float64()
	if err != nil {
		return n.String()
	}
	return f
}
