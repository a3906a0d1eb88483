package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/hecs/ecs"
)

func NewComponentInspectorComponent() ComponentInspectorComponent {
	return ComponentInspectorComponent{}
}

// Render shows the components attached to selected. Exported fields are
// edited in place. Components exposing Data() T and SetData(T) are edited
// through a copy that is written back with SetData.
func (ci *ComponentInspectorComponent) Render(selected *ecs.Entity) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ci.selected = selected

	if ci.selected == nil {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entity: %s", ci.selected.ID()))
	if h := ci.selected.Handle(); h != 0 {
		imgui.Text(fmt.Sprintf("Handle: %d", h))
	}
	if owner := ci.selected.Owner(); owner != nil {
		imgui.Text(fmt.Sprintf("Owner: %s", owner.ID()))
	} else {
		imgui.Text("Owner: <none>")
	}
	imgui.Separator()

	for i, component := range ci.selected.Components() {
		label := fmt.Sprintf("%s %q##%d", component.Kind(), component.ID(), i)
		if imgui.TreeNodeStr(label) {
			ci.renderComponent(component)
			imgui.TreePop()
		}
	}

	imgui.End()
}

func (ci *ComponentInspectorComponent) renderComponent(component ecs.Component) {
	if _, ok := component.(*ecs.Entity); ok {
		imgui.Text("nested entity")
		return
	}

	val := reflect.ValueOf(component)
	if data, setData, ok := dataAccessors(val); ok {
		copied := reflect.New(data.Type()).Elem()
		copied.Set(data)
		if ci.renderValue("Data", copied) {
			setData.Call([]reflect.Value{copied})
		}
	}

	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	for _, field := range layouts.layout(val.Type()).fields {
		ci.renderField(field, val.Field(field.Index))
	}
}

// dataAccessors finds a Data() T / SetData(T) pair on v and returns the
// current data with the setter.
func dataAccessors(v reflect.Value) (reflect.Value, reflect.Value, bool) {
	l := layouts.layout(v.Type())
	if !l.hasData() {
		return reflect.Value{}, reflect.Value{}, false
	}
	return v.Method(l.getData).Call(nil)[0], v.Method(l.setData), true
}

func (ci *ComponentInspectorComponent) renderField(field editableField, val reflect.Value) bool {
	if field.Pointer {
		if val.IsNil() {
			imgui.Text(fmt.Sprintf("%s: nil", field.Name))
			return false
		}
		val = val.Elem()
	}
	return ci.renderValue(field.Name, val)
}

// renderValue draws an editor for val, which must be settable, and reports
// whether the user changed it.
func (ci *ComponentInspectorComponent) renderValue(name string, val reflect.Value) bool {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", name))
		return false
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && !val.OverflowInt(int64(v)) {
			val.SetInt(int64(v))
			return true
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && v >= 0 && !val.OverflowUint(uint64(v)) {
			val.SetUint(uint64(v))
			return true
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(fmt.Sprintf("##%s", name), &v) {
			val.SetFloat(float64(v))
			return true
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) {
			val.SetBool(v)
			return true
		}

	case reflect.String:
		v := val.String()
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(fmt.Sprintf("##%s", name), "", &v, imgui.InputTextFlagsNone, nil) {
			val.SetString(v)
			return true
		}

	case reflect.Array:
		changed := false
		if imgui.TreeNodeStr(name) {
			for i := 0; i < val.Len(); i++ {
				if ci.renderValue(fmt.Sprintf("%s[%d]", name, i), val.Index(i)) {
					changed = true
				}
			}
			imgui.TreePop()
		}
		return changed

	case reflect.Struct:
		changed := false
		if imgui.TreeNodeStr(name) {
			for _, nf := range layouts.layout(val.Type()).fields {
				if ci.renderField(nf, val.Field(nf.Index)) {
					changed = true
				}
			}
			imgui.TreePop()
		}
		return changed

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	case reflect.Func:
		if val.IsNil() {
			imgui.Text(fmt.Sprintf("%s: nil func", name))
		} else {
			imgui.Text(fmt.Sprintf("%s: func", name))
		}

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
	return false
}
