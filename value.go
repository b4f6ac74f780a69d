package inspectx

import (
	"math"
	"reflect"
	"time"
)

// CustomInspector lets a value replace its structural rendering with its own
// text. When a value implements it, the returned string is used verbatim at
// every nesting level. A panicking hook is swallowed and the structural
// rendering is used instead.
type CustomInspector interface {
	InspectCustom() string
}

type undefinedType struct{}

// Undefined is the sentinel for an absent value, distinct from nil.
var Undefined = undefinedType{}

// Symbol is a symbolic property name with an optional description.
type Symbol struct {
	Description string
}

// Function carries callable metadata for hosts that know more about a
// callable than a bare Go func value exposes. Name may be empty for an
// anonymous callable.
type Function struct {
	Name      string
	Class     bool
	Generator bool
	Async     bool
}

func (f Function) category() string {
	switch {
	case f.Class:
		return "class"
	case f.Async && f.Generator:
		return "AsyncGeneratorFunction"
	case f.Async:
		return "AsyncFunction"
	case f.Generator:
		return "GeneratorFunction"
	default:
		return "Function"
	}
}

// Set is an ordered set container. Insertion order is preserved; duplicates
// (by interface equality, where comparable) are dropped.
type Set struct {
	elems []any
}

// NewSet builds a Set from the given elements.
func NewSet(elems ...any) *Set {
	s := &Set{}
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

// Add appends v unless an equal element is already present.
func (s *Set) Add(v any) *Set {
	if isComparable(v) {
		for _, e := range s.elems {
			if isComparable(e) && e == v {
				return s
			}
		}
	}
	s.elems = append(s.elems, v)
	return s
}

// Len reports the number of elements.
func (s *Set) Len() int { return len(s.elems) }

// Elems returns the elements in insertion order. The slice is shared.
func (s *Set) Elems() []any { return s.elems }

// Mapping is an ordered key/value container whose keys may be of any kind,
// including Symbols and other containers.
type Mapping struct {
	keys []any
	vals []any
}

// NewMapping builds a Mapping from key/value pairs.
func NewMapping(pairs ...[2]any) *Mapping {
	m := &Mapping{}
	for _, p := range pairs {
		m.Set(p[0], p[1])
	}
	return m
}

// Set stores v under k, replacing an existing equal key.
func (m *Mapping) Set(k, v any) *Mapping {
	if isComparable(k) {
		for i, e := range m.keys {
			if isComparable(e) && e == k {
				m.vals[i] = v
				return m
			}
		}
	}
	m.keys = append(m.keys, k)
	m.vals = append(m.vals, v)
	return m
}

// Get returns the value stored under k.
func (m *Mapping) Get(k any) (any, bool) {
	if !isComparable(k) {
		return nil, false
	}
	for i, e := range m.keys {
		if isComparable(e) && e == k {
			return m.vals[i], true
		}
	}
	return nil, false
}

// Len reports the number of entries.
func (m *Mapping) Len() int { return len(m.keys) }

// Entries returns the keys and values in insertion order. Both slices are
// shared with the mapping.
func (m *Mapping) Entries() ([]any, []any) { return m.keys, m.vals }

// WeakSet is an opaque weak set; its contents cannot be enumerated.
type WeakSet struct{}

// WeakMapping is an opaque weak mapping; its contents cannot be enumerated.
type WeakMapping struct{}

// Timestamp is a calendar timestamp measured in milliseconds since the Unix
// epoch. NaN millis mark an invalid timestamp.
type Timestamp struct {
	Millis float64
}

// TimestampOf converts a time.Time into a Timestamp.
func TimestampOf(t time.Time) Timestamp {
	return Timestamp{Millis: float64(t.UnixMilli())}
}

// Valid reports whether the timestamp holds a representable time value.
func (t Timestamp) Valid() bool {
	return !math.IsNaN(t.Millis) && !math.IsInf(t.Millis, 0)
}

// Time returns the timestamp as a time.Time in UTC. Only meaningful when
// Valid reports true.
func (t Timestamp) Time() time.Time {
	ms := int64(t.Millis)
	return time.UnixMilli(ms).UTC()
}

func (t Timestamp) text() string {
	if !t.Valid() {
		return "Invalid Date"
	}
	return t.Time().Format("2006-01-02T15:04:05.000Z")
}

// DeferredState enumerates the lifecycle states of a Deferred.
type DeferredState int

// Deferred lifecycle states.
const (
	DeferredPending DeferredState = iota
	DeferredFulfilled
	DeferredRejected
)

// Deferred is an eventual value: pending until resolved or rejected.
type Deferred struct {
	state  DeferredState
	result any
}

// NewDeferred returns a pending Deferred.
func NewDeferred() *Deferred { return &Deferred{} }

// Resolve settles the deferred with a fulfillment value. Settling twice is a
// no-op.
func (d *Deferred) Resolve(v any) *Deferred {
	if d.state == DeferredPending {
		d.state = DeferredFulfilled
		d.result = v
	}
	return d
}

// Reject settles the deferred with a rejection reason. Settling twice is a
// no-op.
func (d *Deferred) Reject(reason any) *Deferred {
	if d.state == DeferredPending {
		d.state = DeferredRejected
		d.result = reason
	}
	return d
}

// State returns the current lifecycle state.
func (d *Deferred) State() DeferredState { return d.state }

// Result returns the fulfillment value or rejection reason; nil while
// pending.
func (d *Deferred) Result() any { return d.result }

// Failure is an error value with a captured stack trace. When Stack is
// non-empty it is rendered verbatim; otherwise the "Name: Message" form is
// used.
type Failure struct {
	Name    string
	Message string
	Stack   string
}

// NewFailure builds a Failure whose stack is the single "Name: Message"
// header line.
func NewFailure(name, message string) *Failure {
	if name == "" {
		name = "Error"
	}
	return &Failure{Name: name, Message: message, Stack: name + ": " + message}
}

// Error implements the error interface.
func (f *Failure) Error() string {
	if f.Message == "" {
		return f.Name
	}
	return f.Name + ": " + f.Message
}

func (f *Failure) text() string {
	if f.Stack != "" {
		return f.Stack
	}
	return f.Error()
}

// BoxedNumber is a wrapped primitive number object.
type BoxedNumber struct {
	Value float64
}

// BoxedBoolean is a wrapped primitive boolean object.
type BoxedBoolean struct {
	Value bool
}

// BoxedText is a wrapped primitive text object.
type BoxedText struct {
	Value string
}

// Proxy is an interception wrapper: field access on Target is redirected
// through Handler. With Options.ShowProxy the pair is rendered explicitly;
// otherwise the proxy renders as its target would.
type Proxy struct {
	Target  any
	Handler any
}

// Field is a single Object property. Key is a string or a Symbol. A field
// is either a data field (Value) or an accessor field (Getter / HasSetter).
type Field struct {
	Key       any
	Value     any
	Getter    func() (any, error)
	HasSetter bool
}

func (f Field) isAccessor() bool { return f.Getter != nil || f.HasSetter }

// Object is a plain structured object with ordered fields, optional accessor
// fields, symbol keys, and an optional class name.
type Object struct {
	class  string
	fields []Field
}

// NewObject returns an empty object. class is the display-name hook; the
// generic names "Object" and "anonymous" are treated as absent.
func NewObject(class string) *Object {
	return &Object{class: class}
}

// Class returns the object's class name.
func (o *Object) Class() string { return o.class }

// Set stores a data field under a string key, replacing an existing field
// with the same key.
func (o *Object) Set(key string, v any) *Object {
	return o.put(Field{Key: key, Value: v})
}

// SetSymbol stores a data field under a symbol key.
func (o *Object) SetSymbol(sym Symbol, v any) *Object {
	return o.put(Field{Key: sym, Value: v})
}

// DefineGetter stores an accessor field whose value is produced by fn.
func (o *Object) DefineGetter(key string, fn func() (any, error)) *Object {
	return o.put(Field{Key: key, Getter: fn})
}

// DefineAccessor stores a field backed by both a getter and a setter.
func (o *Object) DefineAccessor(key string, fn func() (any, error)) *Object {
	return o.put(Field{Key: key, Getter: fn, HasSetter: true})
}

func (o *Object) put(f Field) *Object {
	for i, e := range o.fields {
		if e.Key == f.Key {
			o.fields[i] = f
			return o
		}
	}
	o.fields = append(o.fields, f)
	return o
}

// Get returns the data value stored under a string key. Accessor fields are
// not invoked.
func (o *Object) Get(key string) (any, bool) {
	for _, f := range o.fields {
		if f.Key == key && !f.isAccessor() {
			return f.Value, true
		}
	}
	return nil, false
}

// Len reports the number of fields.
func (o *Object) Len() int { return len(o.fields) }

// Fields returns the fields in insertion order. The slice is shared.
func (o *Object) Fields() []Field { return o.fields }

func isComparable(v any) bool {
	switch v.(type) {
	case nil:
		return true
	case string, bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, complex64, complex128, Symbol, undefinedType:
		return true
	}
	// Pointers compare by identity, which is what containers want; slices,
	// maps and funcs would panic on ==.
	return reflect.ValueOf(v).Kind() == reflect.Pointer
}
