package factory

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

var (
	// ErrNilFactory is returned when a nil Factory is registered, including a
	// nil pointer (or other nil-able value) wrapped in the interface.
	ErrNilFactory = errors.New("factory: nil factory")

	// ErrRegistryPanic is returned if a Resolver implementation panics internally.
	ErrRegistryPanic = errors.New("factory: panic during Resolve")
)

// UnknownLineError is returned when no factory is registered under Name.
type UnknownLineError struct{ Name string }

// Error implements the error interface.
func (e UnknownLineError) Error() string {
	// Example: factory: unknown product line "deluxe"
	return "factory: unknown product line " + strconv.Quote(e.Name)
}

// DuplicateLineError is returned when a factory is already registered under Name.
type DuplicateLineError struct{ Name string }

// Error implements the error interface.
func (e DuplicateLineError) Error() string {
	// Example: factory: duplicate product line "super"
	return "factory: duplicate product line " + strconv.Quote(e.Name)
}

// Resolver looks up a Factory by product line name.
type Resolver interface {
	Resolve(name string) (Factory, error)
}

// Registry maps product line names to factories.
//
// It is the extension point for new product lines: register a Factory under a
// new name and every caller that resolves by name can use it. A Registry is
// not safe for concurrent registration. The zero value is an empty registry.
type Registry struct {
	items map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{items: map[string]Factory{}}
}

// Default returns a registry holding the built-in "super" and "normal" lines.
func Default() *Registry {
	r := NewRegistry()
	r.items["super"] = SuperFactory{}
	r.items["normal"] = NormalFactory{}
	return r
}

// Register stores f under name.
//
// It fails with ErrNilFactory for a nil f and DuplicateLineError when name is
// already taken.
func (r *Registry) Register(name string, f Factory) error {
	if isNilFactory(f) {
		return ErrNilFactory
	}
	if r.items == nil {
		r.items = make(map[string]Factory)
	}
	if _, exists := r.items[name]; exists {
		return DuplicateLineError{Name: name}
	}
	r.items[name] = f
	return nil
}

// Lookup returns the factory registered under name.
func (r *Registry) Lookup(name string) (Factory, bool) {
	f, ok := r.items[name]
	return f, ok
}

// Resolve implements Resolver. It returns UnknownLineError for missing names
// and converts panics into ErrRegistryPanic.
func (r *Registry) Resolve(name string) (f Factory, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			f = nil
			err = fmt.Errorf("%w: %v", ErrRegistryPanic, rec)
		}
	}()

	f, ok := r.items[name]
	if !ok {
		return nil, UnknownLineError{Name: name}
	}
	return f, nil
}

// MustResolve returns the factory registered under name or panics with
// UnknownLineError.
func (r *Registry) MustResolve(name string) Factory {
	f, ok := r.items[name]
	if !ok {
		panic(UnknownLineError{Name: name})
	}
	return f
}

// Names returns the registered line names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// isNilFactory reports whether f is nil or holds a typed nil value.
func isNilFactory(f Factory) bool {
	if f == nil {
		return true
	}
	v := reflect.ValueOf(f)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
