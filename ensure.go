package ensure

import (
	"reflect"
)

// True signals a violation if the given condition isn't true.
func True(condition bool, msgAndArgs ...any) {
	if !condition {
		fail("Given condition must be true", msgAndArgs)
	}
}

// False signals a violation if the given condition isn't false.
func False(condition bool, msgAndArgs ...any) {
	if condition {
		fail("Given condition must be false", msgAndArgs)
	}
}

// NotNil signals a violation if the given value is nil and otherwise returns
// it unchanged. Both untyped nil and typed nil (a nil pointer, slice, map,
// channel, or function held in an interface) count as nil.
func NotNil[T any](value T, msgAndArgs ...any) T {
	if isNil(any(value)) {
		fail("Given value must not be nil", msgAndArgs)
	}

	return value
}

// Nil signals a violation if the given value is not nil.
func Nil(value any, msgAndArgs ...any) {
	if !isNil(value) {
		fail("Given value must be nil", msgAndArgs)
	}
}

// Equals signals a violation if the given value doesn't match expected and
// otherwise returns the value unchanged. Values compare by reflect.DeepEqual;
// a nil expected value requires the given value to be nil as well.
func Equals[T any](expected, value T, msgAndArgs ...any) T {
	if !equalValues(any(expected), any(value)) {
		fail("Given value must match the expected value", msgAndArgs)
	}

	return value
}

// NotEquals signals a violation if the given value matches expected and
// otherwise returns the value unchanged.
func NotEquals[T any](expected, value T, msgAndArgs ...any) T {
	if equalValues(any(expected), any(value)) {
		fail("Given value must differ from expected value", msgAndArgs)
	}

	return value
}

// NotEmpty signals a violation if the given string, slice, array, map, or
// channel is nil or has length zero, and otherwise returns it unchanged.
// A value whose kind has no length is a misconfigured check and fails.
func NotEmpty[T any](value T, msgAndArgs ...any) T {
	kind, size := sizeOf(any(value))
	if isNil(any(value)) || size == 0 {
		fail("Given "+containerNoun(kind)+" must not be empty", msgAndArgs)
	}

	return value
}

// Empty signals a violation if the given string, slice, array, map, or
// channel is non-nil and has length greater than zero, and otherwise returns
// it unchanged. The nil value counts as empty.
func Empty[T any](value T, msgAndArgs ...any) T {
	kind, size := sizeOf(any(value))
	if !isNil(any(value)) && size > 0 {
		fail("Given "+containerNoun(kind)+" must be empty", msgAndArgs)
	}

	return value
}

// InstanceOf signals a violation if the given value is not assignable to T
// and otherwise returns it narrowed to T. T may be a concrete or an
// interface type; a nil value always fails, typed or untyped.
func InstanceOf[T any](value any, msgAndArgs ...any) T {
	narrowed, ok := value.(T)
	if !ok || isNil(value) {
		if len(msgAndArgs) == 0 {
			Fail("Given value must be of type %q but found %q", typeName[T](), valueTypeName(value))
		}

		fail("", msgAndArgs)
	}

	return narrowed
}

// One signals a violation if the given collection doesn't contain exactly one
// element, and otherwise returns that element.
func One[E any](collection []E, msgAndArgs ...any) E {
	if len(collection) != 1 {
		fail("Given collection must contain exactly one element", msgAndArgs)
	}

	return collection[0]
}

// Present signals a violation if the given pointer is nil and otherwise
// returns the dereferenced value.
func Present[T any](value *T, msgAndArgs ...any) T {
	if value == nil {
		fail("Given optional has no value", msgAndArgs)
	}

	return *value
}

// isNil checks if a value is nil, handling both untyped nil and typed nil
// (nil values of pointer, interface, slice, map, channel, or function kind).
func isNil(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

func equalValues(expected, value any) bool {
	if isNil(expected) || isNil(value) {
		return isNil(expected) && isNil(value)
	}

	return reflect.DeepEqual(expected, value)
}

// sizeOf returns the kind and length of a value. Fails for kinds that have
// no length, since asking for the emptiness of such a value is itself a bug.
func sizeOf(value any) (reflect.Kind, int) {
	if value == nil {
		return reflect.Invalid, 0
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Kind(), rv.Len()
	default:
		Fail("Given value of type %T has no length", value)
		return rv.Kind(), 0
	}
}

func containerNoun(kind reflect.Kind) string {
	switch kind {
	case reflect.String:
		return "string"
	case reflect.Map:
		return "map"
	default:
		return "collection"
	}
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

func valueTypeName(value any) string {
	if value == nil {
		return "nil"
	}

	return reflect.TypeOf(value).String()
}
