package model1

import "fmt"

// Loadable holds either a loading placeholder or a loaded value of kind T.
// The zero value is a loading placeholder.
type Loadable[T Identifiable] struct {
	value  T
	loaded bool
}

// Loading returns a placeholder.
func Loading[T Identifiable]() Loadable[T] {
	return Loadable[T]{}
}

// Loaded returns a loaded value.
func Loaded[T Identifiable](v T) Loadable[T] {
	return Loadable[T]{value: v, loaded: true}
}

// IsLoading returns true for a placeholder.
func (l Loadable[T]) IsLoading() bool {
	return !l.loaded
}

// Value returns the loaded value, if any.
func (l Loadable[T]) Value() (T, bool) {
	return l.value, l.loaded
}

// Identifier returns the identifier of T whatever the variant, so both
// states route to the renderer registered for T.
func (l Loadable[T]) Identifier() string {
	return IdentifierOf[T]()
}

// String returns a diagnostic representation.
func (l Loadable[T]) String() string {
	if !l.loaded {
		return "Loading"
	}
	return fmt.Sprintf("Loaded(%v)", l.value)
}
