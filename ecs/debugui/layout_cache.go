package debugui

import (
	"reflect"
	"sync"

	"github.com/plus3/hecs/ecs"
)

var baseType = reflect.TypeFor[ecs.Base]()

// editableField is an exported field the inspector draws an editor for.
type editableField struct {
	Name    string
	Index   int
	Pointer bool
}

// componentLayout is what the inspector knows about a component type: the
// fields it can edit in place and the method indices of a Data/SetData pair,
// -1 when the type has none.
type componentLayout struct {
	fields  []editableField
	getData int
	setData int
}

func (l *componentLayout) hasData() bool { return l.getData >= 0 }

// layoutCache memoizes componentLayout per reflect.Type. The inspector asks
// for the same few component types every frame.
type layoutCache struct {
	mu      sync.RWMutex
	layouts map[reflect.Type]*componentLayout
}

func newLayoutCache() *layoutCache {
	return &layoutCache{layouts: make(map[reflect.Type]*componentLayout)}
}

// layout returns the layout of t. Accessors are looked up on t itself, fields
// on the struct t points to.
func (lc *layoutCache) layout(t reflect.Type) *componentLayout {
	lc.mu.RLock()
	l, ok := lc.layouts[t]
	lc.mu.RUnlock()
	if ok {
		return l
	}

	l = computeLayout(t)

	lc.mu.Lock()
	defer lc.mu.Unlock()
	if cached, ok := lc.layouts[t]; ok {
		return cached
	}
	lc.layouts[t] = l
	return l
}

func computeLayout(t reflect.Type) *componentLayout {
	l := &componentLayout{getData: -1, setData: -1}

	get, okGet := t.MethodByName("Data")
	set, okSet := t.MethodByName("SetData")
	if okGet && okSet && isAccessorPair(get.Type, set.Type) {
		l.getData, l.setData = get.Index, set.Index
	}

	st := t
	if st.Kind() == reflect.Ptr {
		st = st.Elem()
	}
	if st.Kind() != reflect.Struct {
		return l
	}

	for i := range st.NumField() {
		f := st.Field(i)
		if !f.IsExported() || (f.Anonymous && f.Type == baseType) {
			continue
		}
		l.fields = append(l.fields, editableField{
			Name:    f.Name,
			Index:   i,
			Pointer: f.Type.Kind() == reflect.Ptr,
		})
	}
	return l
}

// isAccessorPair reports whether get is func(recv) T and set is
// func(recv, T). Method types from reflect.Type include the receiver.
func isAccessorPair(get, set reflect.Type) bool {
	return get.NumIn() == 1 && get.NumOut() == 1 &&
		set.NumIn() == 2 && set.NumOut() == 0 &&
		set.In(1) == get.Out(0)
}

var layouts = newLayoutCache()
