package enum

import (
	"fmt"
	"reflect"
)

var enumManager = map[reflect.Type]any{}

type enum[T comparable] struct {
	toEnum map[string]T
	values *[]T
}

// New registers value as a member of its type's vocabulary. It is meant to
// be called from package-level var blocks, before any concurrent use.
func New[T comparable](value T) T {
	t := reflect.TypeOf(value)
	if _, ok := enumManager[t]; !ok {
		enumManager[t] = enum[T]{toEnum: make(map[string]T), values: new([]T)}
	}

	e := enumManager[t].(enum[T])
	key := fmt.Sprint(value)
	if _, ok := e.toEnum[key]; !ok {
		*e.values = append(*e.values, value)
	}
	e.toEnum[key] = value

	return value
}

func ToEnum[T comparable](s string) (T, error) {
	var defaultT T
	e, ok := enumManager[reflect.TypeOf(defaultT)]
	if !ok {
		return defaultT, fmt.Errorf("not found enum type %T", defaultT)
	}

	t, ok := e.(enum[T]).toEnum[s]
	if !ok {
		return defaultT, fmt.Errorf("not found value %s in enum %T", s, defaultT)
	}

	return t, nil
}

// Values returns the registered members of T in registration order.
func Values[T comparable]() []T {
	var defaultT T
	e, ok := enumManager[reflect.TypeOf(defaultT)]
	if !ok {
		return nil
	}

	values := *e.(enum[T]).values
	result := make([]T, len(values))
	copy(result, values)
	return result
}

// Strings is Values rendered with fmt.Sprint.
func Strings[T comparable]() []string {
	values := Values[T]()
	result := make([]string, 0, len(values))
	for _, v := range values {
		result = append(result, fmt.Sprint(v))
	}

	return result
}

func IsValid[T comparable](value T) bool {
	_, err := ToEnum[T](fmt.Sprint(value))
	return err == nil
}
