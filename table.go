package stockpile

import (
	"fmt"
	"iter"
	"reflect"
	"sort"
	"sync"
)

// View is the type-erased face a registry presents to tooling such as the
// manifest inspector. The typed submission path never goes through a View.
type View interface {
	// Name returns the registry name ("pkg.Type").
	Name() string
	// Type returns the aggregated value type.
	Type() reflect.Type
	// Len counts the currently registered values.
	Len() int
	// Values yields the registered values type-erased. Order is unspecified.
	Values() iter.Seq[any]
}

// The process-wide table of declared registries, keyed by type identity.
// Registries are added at package initialization and never removed.
var (
	tableMu sync.RWMutex
	byType  = make(map[reflect.Type]View)
	byName  = make(map[string]View)
)

func register[T any](r *Registry[T]) {
	tableMu.Lock()
	defer tableMu.Unlock()
	if _, exists := byType[r.typ]; exists {
		panic(fmt.Sprintf("stockpile: registry for type %s declared twice", r.name))
	}
	// Two distinct types can share a "pkg.Type" string when their packages
	// share a name; that would make name-based lookup ambiguous.
	if prev, exists := byName[r.name]; exists {
		panic(fmt.Sprintf("stockpile: registry name %s is ambiguous between %v and %v", r.name, prev.Type(), r.typ))
	}
	byType[r.typ] = r
	byName[r.name] = r
}

// Iter returns a traversal over T's registry, resolved through the registry
// table. It panics if no registry was declared for T; that is a programmer
// error, not a runtime condition. Call sites that hold the registry variable
// should prefer its All method, which makes the precondition a compile-time
// fact.
func Iter[T any]() iter.Seq[*T] {
	typ := reflect.TypeFor[T]()
	tableMu.RLock()
	v, ok := byType[typ]
	tableMu.RUnlock()
	if !ok {
		panic(fmt.Sprintf("stockpile: no registry declared for type %s", typ))
	}
	return v.(*Registry[T]).All()
}

// Lookup returns the registry declared under name ("pkg.Type"), if any.
func Lookup(name string) (View, bool) {
	tableMu.RLock()
	v, ok := byName[name]
	tableMu.RUnlock()
	return v, ok
}

// Registries returns a snapshot of every declared registry, sorted by name.
func Registries() []View {
	tableMu.RLock()
	views := make([]View, 0, len(byName))
	for _, v := range byName {
		views = append(views, v)
	}
	tableMu.RUnlock()

	sort.Slice(views, func(i, j int) bool { return views[i].Name() < views[j].Name() })
	return views
}
