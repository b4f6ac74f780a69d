// Package inspectx renders arbitrary runtime values into human-readable
// debug strings with optional ANSI coloring, for logging and REPL output.
//
// The engine dispatches on a closed taxonomy of semantic kinds (primitives,
// containers, boxed primitives, deferred values, pattern matchers,
// timestamps, numeric buffer views, and plain structured objects), detects
// cycles on the active recursion path, elides containers past a depth limit,
// and lays short sequence entries into aligned columns. Output is for
// humans; it is not a re-parseable serialization.
//
// Basic usage:
//
//	s := inspectx.Inspect(map[string]any{"a": 1, "b": []any{1, 2}}, nil)
//	fmt.Println(s) // { a: 1, b: [ 1, 2 ] }
//
// printf-style templates:
//
//	inspectx.FormatArgs("%s is %d", "answer", 42) // "answer is 42"
//
// Logging facades call InspectArgs, which applies the template when the
// first argument is text and otherwise space-joins independent inspections:
//
//	line := inspectx.InspectArgs(args, &inspectx.Options{Colors: true})
//
// All rendering is purely synchronous and per-call; concurrent callers are
// safe as long as they do not share Options mutation.
package inspectx
