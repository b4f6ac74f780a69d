package inspectx

import (
	"math"
	"math/big"
	"reflect"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// Inspect renders a single value into a human-readable debug string. A
// top-level text value passes through raw; everything else is rendered
// structurally according to its kind. Malformed options panic.
func Inspect(v any, opts *Options) string {
	opts = normalized(opts)
	if s, ok := v.(string); ok {
		return applyIndent(s, opts.IndentLevel)
	}
	p := acquirePrinter(opts)
	defer releasePrinter(p)
	return applyIndent(p.inspect(v, 0), opts.IndentLevel)
}

// InspectAll renders each value independently and joins the results with
// single spaces. Text values pass through raw.
func InspectAll(values []any, opts *Options) string {
	opts = normalized(opts)
	p := acquirePrinter(opts)
	defer releasePrinter(p)
	return applyIndent(p.inspectAll(values), opts.IndentLevel)
}

// InspectArgs is the boundary consumed by logging facades: when the first
// argument is text and more arguments follow, the text is treated as a
// printf-style template; otherwise every argument is inspected independently
// and space-joined.
func InspectArgs(args []any, opts *Options) string {
	opts = normalized(opts)
	p := acquirePrinter(opts)
	defer releasePrinter(p)
	if len(args) > 1 {
		if tmpl, ok := args[0].(string); ok {
			return applyIndent(p.formatArgs(tmpl, args[1:]), opts.IndentLevel)
		}
	}
	return applyIndent(p.inspectAll(args), opts.IndentLevel)
}

func normalized(opts *Options) *Options {
	if opts == nil {
		opts = DefaultOptions
	}
	opts.validate()
	return opts
}

// applyIndent prefixes every line after the first with indent spaces.
func applyIndent(s string, indent int) string {
	if indent == 0 || !strings.Contains(s, "\n") {
		return s
	}
	pad := strings.Repeat(" ", indent)
	return strings.ReplaceAll(s, "\n", "\n"+pad)
}

// printer holds the per-call render context: options, the visited set of the
// active recursion path, and the color stylist. A printer is never shared
// between calls.
type printer struct {
	opts    *Options
	st      stylist
	visited visitedSet
}

func (p *printer) inspectAll(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		if s, ok := v.(string); ok {
			parts[i] = s
			continue
		}
		parts[i] = p.inspect(v, 0)
	}
	return strings.Join(parts, " ")
}

// inspect renders one value at the given nesting level. Strings here are
// always nested (the raw top-level case is handled by the entry points).
func (p *printer) inspect(v any, level int) string {
	if ci, ok := v.(CustomInspector); ok {
		if s, ok := runCustomHook(ci); ok {
			return s
		}
	}

	switch classify(v) {
	case KindNull:
		return p.st.wrap(styleNull, "null")
	case KindUndefined:
		return p.st.wrap(styleUndefined, "undefined")
	case KindText:
		return p.st.wrap(styleString, quoteNested(v.(string)))
	case KindBoolean:
		return p.st.wrap(styleBoolean, strconv.FormatBool(v.(bool)))
	case KindNumber:
		return p.st.wrap(styleNumber, formatNumber(v))
	case KindBigInt:
		return p.st.wrap(styleBigInt, v.(*big.Int).String()+"n")
	case KindSymbol:
		return p.st.wrap(styleSymbol, quoteSymbol(v.(Symbol)))
	case KindCallable:
		return p.st.wrap(styleCallable, describeCallable(v))
	case KindTimestamp:
		return p.st.wrap(styleDate, timestampText(v))
	case KindPattern:
		return p.st.wrap(stylePattern, "/"+v.(*regexp.Regexp).String()+"/")
	case KindError:
		return p.st.wrap(styleError, errorText(v))
	case KindBoxed:
		return p.renderBoxed(v)
	case KindWeakSet:
		return "WeakSet { <items unknown> }"
	case KindWeakMapping:
		return "WeakMapping { <items unknown> }"
	case KindSequence:
		return p.renderSequence(v, level)
	case KindBufferView:
		return p.renderBufferView(v, level)
	case KindSet:
		return p.renderSet(v.(*Set), level)
	case KindMapping:
		return p.renderMapping(v, level)
	case KindDeferred:
		return p.renderDeferred(v.(*Deferred), level)
	case KindProxy:
		return p.renderProxy(v, level)
	case KindObject:
		return p.renderObject(v, level)
	default:
		return p.st.wrap(styleSpecial, "[not implemented]")
	}
}

// runCustomHook invokes the custom inspection hook, swallowing panics so a
// broken hook falls back to structural rendering.
func runCustomHook(ci CustomInspector) (s string, ok bool) {
	defer func() {
		if recover() != nil {
			s, ok = "", false
		}
	}()
	return ci.InspectCustom(), true
}

func formatNumber(v any) string {
	switch n := v.(type) {
	case float64:
		return formatFloat(n)
	case float32:
		return formatFloat(float64(n))
	case int:
		return strconv.FormatInt(int64(n), 10)
	case int8:
		return strconv.FormatInt(int64(n), 10)
	case int16:
		return strconv.FormatInt(int64(n), 10)
	case int32:
		return strconv.FormatInt(int64(n), 10)
	case int64:
		return strconv.FormatInt(n, 10)
	case uint:
		return strconv.FormatUint(uint64(n), 10)
	case uint8:
		return strconv.FormatUint(uint64(n), 10)
	case uint16:
		return strconv.FormatUint(uint64(n), 10)
	case uint32:
		return strconv.FormatUint(uint64(n), 10)
	case uint64:
		return strconv.FormatUint(n, 10)
	case uintptr:
		return strconv.FormatUint(uint64(n), 10)
	default:
		return "NaN"
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0 && math.Signbit(f):
		return "-0"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func timestampText(v any) string {
	switch t := v.(type) {
	case Timestamp:
		return t.text()
	case *Timestamp:
		return t.text()
	case time.Time:
		return TimestampOf(t).text()
	}
	return "Invalid Date"
}

func errorText(v any) string {
	if f, ok := v.(*Failure); ok {
		return f.text()
	}
	return v.(error).Error()
}

func describeCallable(v any) string {
	if fn, ok := v.(*Function); ok {
		v = *fn
	}
	if fn, ok := v.(Function); ok {
		if fn.Name == "" || fn.Name == "anonymous" {
			return "[" + fn.category() + "]"
		}
		return "[" + fn.category() + ": " + fn.Name + "]"
	}
	name := goFuncName(v)
	if name == "" {
		return "[Function]"
	}
	return "[Function: " + name + "]"
}

// goFuncName recovers the identifier of a Go func value, or "" for closures
// and other anonymous callables.
func goFuncName(v any) string {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return ""
	}
	fn := runtime.FuncForPC(rv.Pointer())
	if fn == nil {
		return ""
	}
	name := fn.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	// Closures carry generated funcN segments.
	for _, seg := range strings.Split(name, ".") {
		if len(seg) > 4 && seg[:4] == "func" {
			return ""
		}
	}
	if name == "" || name == "anonymous" {
		return ""
	}
	return name
}

func (p *printer) renderBoxed(v any) string {
	switch b := v.(type) {
	case *BoxedNumber:
		return p.renderBoxed(*b)
	case *BoxedBoolean:
		return p.renderBoxed(*b)
	case *BoxedText:
		return p.renderBoxed(*b)
	case BoxedNumber:
		return "[Number: " + p.st.wrap(styleNumber, formatFloat(b.Value)) + "]"
	case BoxedBoolean:
		return "[Boolean: " + p.st.wrap(styleBoolean, strconv.FormatBool(b.Value)) + "]"
	case BoxedText:
		return "[String: " + p.st.wrap(styleString, Quote(b.Value)) + "]"
	}
	return p.st.wrap(styleSpecial, "[not implemented]")
}

func (p *printer) renderDeferred(d *Deferred, level int) string {
	if level >= p.opts.Depth {
		return p.st.wrap(styleSpecial, "[Promise]")
	}
	leave, ok := p.visited.enter(d)
	if !ok {
		return p.st.wrap(styleSpecial, "[Circular]")
	}
	defer leave()

	var body string
	switch d.State() {
	case DeferredPending:
		body = p.st.wrap(styleSpecial, "<pending>")
	case DeferredFulfilled:
		body = p.inspect(d.Result(), level+1)
	case DeferredRejected:
		body = p.st.wrap(styleError, "<rejected>") + " " + p.inspect(d.Result(), level+1)
	}
	single := "Promise { " + body + " }"
	if !strings.Contains(body, "\n") && displayWidth(single)+2*level <= breakLength {
		return single
	}
	indent := strings.Repeat("  ", level+1)
	return "Promise {\n" + indent + body + "\n" + strings.Repeat("  ", level) + "}"
}

func (p *printer) renderProxy(v any, level int) string {
	var target, handler any
	switch px := v.(type) {
	case Proxy:
		target, handler = px.Target, px.Handler
	case *Proxy:
		target, handler = px.Target, px.Handler
	}
	// The wrapper itself goes on the path before any of its children render,
	// whichever branch is taken.
	leave, ok := p.visited.enter(v)
	if !ok {
		return p.st.wrap(styleSpecial, "[Circular]")
	}
	defer leave()
	if !p.opts.ShowProxy {
		return p.inspect(target, level)
	}
	if level >= p.opts.Depth {
		return p.st.wrap(styleSpecial, "[Proxy]")
	}
	return p.renderElems("Proxy", '[', ']', []any{target, handler}, level, false, false)
}
