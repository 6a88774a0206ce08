package immutable

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// Equaler is implemented by types which know how to compare themselves.
// Collections implement it, so sequences of sequences compare element-wise.
type Equaler[T any] interface {
	Equal(T) bool
}

// Equal is the element equality used by all collections of this module.
//
// Values implementing Equaler decide for themselves, even if T is an
// interface type. Values of comparable
// dynamic type are compared with ==, which for pointers means identity.
// Everything else (slices, maps, structs holding those) is compared structurally.
func Equal[T any](a, b T) bool {
	if eq, ok := any(a).(Equaler[T]); ok {
		return eq.Equal(b)
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return va.IsValid() == vb.IsValid()
	}
	if va.Type() != vb.Type() {
		return false
	}
	if eq, ok := equalMethod(va); ok { // T is an interface type, e.g. any
		return eq.Call([]reflect.Value{vb})[0].Bool()
	}
	if va.Comparable() && vb.Comparable() {
		return any(a) == any(b)
	}
	return cmp.Equal(a, b)
}

// equalMethod finds a method Equal(T) bool of the dynamic type of v.
func equalMethod(v reflect.Value) (reflect.Value, bool) {
	m := v.MethodByName("Equal")
	if !m.IsValid() {
		return m, false
	}
	mt := m.Type()
	if mt.NumIn() != 1 || mt.In(0) != v.Type() || mt.NumOut() != 1 || mt.Out(0).Kind() != reflect.Bool {
		return m, false
	}
	return m, true
}
