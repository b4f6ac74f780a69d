package inspectx

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// minGroupEntries is the smallest sequence that may use column grouping.
const minGroupEntries = 6

func (p *printer) renderSequence(v any, level int) string {
	elems, ok := v.([]any)
	if !ok {
		elems = reflectElems(v)
	}
	if level >= p.opts.Depth {
		return p.st.wrap(styleSpecial, "[Array]")
	}
	leave, okDescent := p.visited.enter(v)
	if !okDescent {
		return p.st.wrap(styleSpecial, "[Circular]")
	}
	defer leave()
	return p.renderElems("", '[', ']', elems, level, true, allNumeric(elems))
}

func (p *printer) renderBufferView(v any, level int) string {
	rv := reflect.ValueOf(v)
	name := bufferViewName(rv)
	if level >= p.opts.Depth {
		return p.st.wrap(styleSpecial, "["+name+"]")
	}
	leave, okDescent := p.visited.enter(v)
	if !okDescent {
		return p.st.wrap(styleSpecial, "[Circular]")
	}
	defer leave()
	elems := reflectElems(v)
	return p.renderElems(fmt.Sprintf("%s(%d)", name, rv.Len()), '[', ']', elems, level, true, true)
}

func (p *printer) renderSet(s *Set, level int) string {
	if level >= p.opts.Depth {
		return p.st.wrap(styleSpecial, "[Set]")
	}
	leave, ok := p.visited.enter(s)
	if !ok {
		return p.st.wrap(styleSpecial, "[Circular]")
	}
	defer leave()
	return p.renderElems("Set", '{', '}', s.Elems(), level, false, false)
}

func (p *printer) renderMapping(v any, level int) string {
	if level >= p.opts.Depth {
		return p.st.wrap(styleSpecial, "[Mapping]")
	}
	leave, ok := p.visited.enter(v)
	if !ok {
		return p.st.wrap(styleSpecial, "[Circular]")
	}
	defer leave()

	var keys, vals []any
	if m, isMapping := v.(*Mapping); isMapping {
		keys, vals = m.Entries()
	} else {
		keys, vals = reflectMapEntries(v)
	}

	limited, excess := p.limit(len(keys))
	entries := make([]string, 0, limited+1)
	for i := 0; i < limited; i++ {
		entries = append(entries, p.inspect(keys[i], level+1)+" => "+p.inspect(vals[i], level+1))
	}
	if p.opts.Sorted {
		sort.Strings(entries)
	}
	if excess > 0 {
		entries = append(entries, moreItems(excess))
	}
	return p.wrapEntries("Mapping", '{', '}', entries, level)
}

// renderElems is the shared sequence/set/proxy body: limit, per-element
// render, optional column grouping, then layout.
func (p *printer) renderElems(name string, open, close byte, elems []any, level int, grouping, numeric bool) string {
	limited, excess := p.limit(len(elems))
	entries := make([]entry, 0, limited)
	for i := 0; i < limited; i++ {
		text := p.inspect(elems[i], level+1)
		entries = append(entries, entry{text: text, width: displayWidth(text)})
	}
	if p.opts.Sorted && open == '{' {
		sort.Slice(entries, func(i, j int) bool { return entries[i].text < entries[j].text })
	}

	if grouping && p.opts.Compact && limited > minGroupEntries && !anyMultiline(entries) {
		if rows := groupEntries(entries, 2*level, numeric); rows != nil {
			if excess > 0 {
				rows = append(rows, moreItems(excess))
			}
			return p.wrapRows(name, open, close, rows, level)
		}
	}

	texts := make([]string, 0, len(entries)+1)
	for _, e := range entries {
		texts = append(texts, e.text)
	}
	if excess > 0 {
		texts = append(texts, moreItems(excess))
	}
	return p.wrapEntries(name, open, close, texts, level)
}

// limit applies IterableLimit: how many entries to render individually and
// the true excess count.
func (p *printer) limit(n int) (rendered, excess int) {
	if n > p.opts.IterableLimit {
		return p.opts.IterableLimit, n - p.opts.IterableLimit
	}
	return n, 0
}

func moreItems(excess int) string {
	return fmt.Sprintf("... %d more items", excess)
}

// wrapEntries lays entries out on a single line when they fit within the
// break length (and Compact allows it), otherwise one per line with two
// spaces of indent per nesting level.
func (p *printer) wrapEntries(name string, open, close byte, entries []string, level int) string {
	prefix := ""
	if name != "" {
		prefix = name + " "
	}
	if len(entries) == 0 {
		return prefix + string(open) + string(close)
	}

	if p.opts.Compact && !anyMultilineText(entries) {
		single := prefix + string(open) + " " + strings.Join(entries, ", ") + " " + string(close)
		if displayWidth(single)+2*level <= breakLength {
			return single
		}
	}

	indent := strings.Repeat("  ", level+1)
	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteByte(open)
	for i, e := range entries {
		sb.WriteByte('\n')
		sb.WriteString(indent)
		sb.WriteString(e)
		if i < len(entries)-1 || p.opts.TrailingComma {
			sb.WriteByte(',')
		}
	}
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat("  ", level))
	sb.WriteByte(close)
	return sb.String()
}

// wrapRows emits pre-grouped column rows, one per line.
func (p *printer) wrapRows(name string, open, close byte, rows []string, level int) string {
	prefix := ""
	if name != "" {
		prefix = name + " "
	}
	indent := strings.Repeat("  ", level+1)
	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteByte(open)
	for i, row := range rows {
		sb.WriteByte('\n')
		sb.WriteString(indent)
		sb.WriteString(row)
		if i < len(rows)-1 || p.opts.TrailingComma {
			sb.WriteByte(',')
		}
	}
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat("  ", level))
	sb.WriteByte(close)
	return sb.String()
}

func anyMultiline(entries []entry) bool {
	for _, e := range entries {
		if strings.Contains(e.text, "\n") {
			return true
		}
	}
	return false
}

func anyMultilineText(entries []string) bool {
	for _, e := range entries {
		if strings.Contains(e, "\n") {
			return true
		}
	}
	return false
}

func allNumeric(elems []any) bool {
	for _, e := range elems {
		switch classify(e) {
		case KindNumber, KindBigInt:
		default:
			return false
		}
	}
	return true
}

func reflectElems(v any) []any {
	rv := reflect.ValueOf(v)
	// Classification follows pointers, so rendering must too.
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	elems := make([]any, rv.Len())
	for i := range elems {
		elems[i] = rv.Index(i).Interface()
	}
	return elems
}

func reflectMapEntries(v any) (keys, vals []any) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	mapKeys := rv.MapKeys()
	// Go map iteration order is random; sort by rendered key text so output
	// is deterministic regardless of the Sorted option.
	sort.Slice(mapKeys, func(i, j int) bool {
		return fmt.Sprint(mapKeys[i].Interface()) < fmt.Sprint(mapKeys[j].Interface())
	})
	for _, k := range mapKeys {
		keys = append(keys, k.Interface())
		vals = append(vals, rv.MapIndex(k).Interface())
	}
	return keys, vals
}

func bufferViewName(rv reflect.Value) string {
	elem := rv.Type().Elem().Kind().String()
	return strings.ToUpper(elem[:1]) + elem[1:] + "Array"
}
