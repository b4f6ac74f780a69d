package inspectx

import (
	"math/big"
	"reflect"
	"regexp"
	"time"
)

// Kind is the semantic category a value renders as. Classification is total:
// every value maps to exactly one Kind, with KindUnknown as the catch-all.
type Kind int

// The closed kind taxonomy.
const (
	KindText Kind = iota
	KindNumber
	KindBoolean
	KindNull
	KindUndefined
	KindSymbol
	KindBigInt
	KindCallable
	KindSequence
	KindBufferView
	KindSet
	KindMapping
	KindWeakSet
	KindWeakMapping
	KindTimestamp
	KindPattern
	KindDeferred
	KindError
	KindBoxed
	KindProxy
	KindObject
	KindUnknown
)

func classify(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case undefinedType:
		return KindUndefined
	case string:
		return KindText
	case bool:
		return KindBoolean
	case float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return KindNumber
	case *big.Int:
		return KindBigInt
	case Symbol:
		return KindSymbol
	case Function, *Function:
		return KindCallable
	case []any:
		return KindSequence
	case []int8, []int16, []int32, []int64,
		[]uint8, []uint16, []uint32, []uint64,
		[]float32, []float64:
		return KindBufferView
	case *Set:
		return KindSet
	case *Mapping:
		return KindMapping
	case WeakSet, *WeakSet:
		return KindWeakSet
	case WeakMapping, *WeakMapping:
		return KindWeakMapping
	case Timestamp, *Timestamp, time.Time:
		return KindTimestamp
	case *regexp.Regexp:
		return KindPattern
	case *Deferred:
		return KindDeferred
	case *Failure:
		return KindError
	case BoxedNumber, *BoxedNumber, BoxedBoolean, *BoxedBoolean, BoxedText, *BoxedText:
		return KindBoxed
	case Proxy, *Proxy:
		return KindProxy
	case *Object:
		return KindObject
	case error:
		return KindError
	}
	return classifyReflect(reflect.ValueOf(v))
}

func classifyReflect(rv reflect.Value) Kind {
	switch rv.Kind() {
	case reflect.Func:
		return KindCallable
	case reflect.Slice, reflect.Array:
		return KindSequence
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return KindObject
		}
		return KindMapping
	case reflect.Struct:
		return KindObject
	case reflect.Pointer:
		if rv.IsNil() {
			return KindNull
		}
		if rv.Elem().Kind() == reflect.Struct {
			return KindObject
		}
		return classifyReflect(rv.Elem())
	case reflect.Interface:
		if rv.IsNil() {
			return KindNull
		}
		return classifyReflect(rv.Elem())
	default:
		return KindUnknown
	}
}

// identityOf returns the referential identity the cycle tracker keys on.
// Value kinds without identity (numbers, strings, structs by value) cannot
// form cycles and report false.
func identityOf(v any) (uintptr, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.UnsafePointer, reflect.Chan:
		if rv.IsNil() {
			return 0, false
		}
		return rv.Pointer(), true
	}
	return 0, false
}
