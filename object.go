package inspectx

import (
	"fmt"
	"reflect"
	"sort"
)

func (p *printer) renderObject(v any, level int) string {
	class, fields := objectFields(v)
	if class == "Object" || class == "anonymous" {
		class = ""
	}

	if level >= p.opts.Depth {
		if class != "" {
			return p.st.wrap(styleSpecial, "["+class+"]")
		}
		return p.st.wrap(styleSpecial, "[Object]")
	}
	leave, ok := p.visited.enter(v)
	if !ok {
		return p.st.wrap(styleSpecial, "[Circular]")
	}
	defer leave()

	// Own textual keys first, then symbolic keys, each group independently
	// sortable.
	var stringFields, symbolFields []Field
	for _, f := range fields {
		if _, isSym := f.Key.(Symbol); isSym {
			symbolFields = append(symbolFields, f)
		} else {
			stringFields = append(stringFields, f)
		}
	}
	if p.opts.Sorted {
		sort.SliceStable(stringFields, func(i, j int) bool {
			return stringFields[i].Key.(string) < stringFields[j].Key.(string)
		})
		sort.SliceStable(symbolFields, func(i, j int) bool {
			return symbolFields[i].Key.(Symbol).Description < symbolFields[j].Key.(Symbol).Description
		})
	}

	limited, excess := p.limit(len(stringFields) + len(symbolFields))
	entries := make([]string, 0, limited+1)
	for _, f := range append(stringFields, symbolFields...) {
		if len(entries) == limited {
			break
		}
		entries = append(entries, p.renderField(f, level))
	}
	if excess > 0 {
		entries = append(entries, moreItems(excess))
	}
	return p.wrapEntries(class, '{', '}', entries, level)
}

func (p *printer) renderField(f Field, level int) string {
	key := p.fieldKey(f.Key)
	if !f.isAccessor() {
		return key + ": " + p.inspect(f.Value, level+1)
	}
	if !p.opts.Getters {
		marker := "[Getter]"
		switch {
		case f.Getter != nil && f.HasSetter:
			marker = "[Getter/Setter]"
		case f.Getter == nil:
			marker = "[Setter]"
		}
		return key + ": " + p.st.wrap(styleSpecial, marker)
	}
	if f.Getter == nil {
		return key + ": " + p.st.wrap(styleSpecial, "[Setter]")
	}
	v, err := invokeGetter(f.Getter)
	if err != nil {
		return key + ": " + p.st.wrap(styleError, "[Thrown "+thrownKind(err)+": "+errMessage(err)+"]")
	}
	return key + ": " + p.inspect(v, level+1)
}

func (p *printer) fieldKey(key any) string {
	if sym, ok := key.(Symbol); ok {
		return "[" + p.st.wrap(styleSymbol, quoteSymbol(sym)) + "]"
	}
	return quoteKey(key.(string))
}

// invokeGetter runs an accessor, converting panics into errors so they render
// inline and never escape the inspection.
func invokeGetter(fn func() (any, error)) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			if re, isErr := r.(error); isErr {
				err = re
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()
	return fn()
}

func thrownKind(err error) string {
	if f, ok := err.(*Failure); ok && f.Name != "" {
		return f.Name
	}
	return "Error"
}

// errMessage strips a leading "Name: " header when the error is a Failure so
// the thrown marker does not repeat the kind.
func errMessage(err error) string {
	if f, ok := err.(*Failure); ok {
		return f.Message
	}
	return err.Error()
}

// objectFields normalizes the three plain-object shapes (explicit *Object,
// string-keyed maps, structs) into a class name and field list.
func objectFields(v any) (class string, fields []Field) {
	if o, ok := v.(*Object); ok {
		return o.Class(), o.Fields()
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		for _, k := range keys {
			fields = append(fields, Field{Key: k.String(), Value: rv.MapIndex(k).Interface()})
		}
		return "", fields
	case reflect.Struct:
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if !sf.IsExported() {
				continue
			}
			fields = append(fields, Field{Key: sf.Name, Value: rv.Field(i).Interface()})
		}
		return t.Name(), fields
	}
	return "", nil
}
