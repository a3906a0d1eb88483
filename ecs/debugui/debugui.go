// Package debugui provides immediate-mode GUI integration for scene trees using Dear ImGui.
// Windows are ImguiItem components attached to the tree; ImguiSystem collects
// them each frame and defers their render functions to the end of the frame.
package debugui

import (
	"math"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/hecs/ecs"
)

// KindItem is the kind of ImguiItem. It is the last kind value so it never
// collides with host kinds counted up from ecs.KindUser.
const KindItem ecs.Kind = math.MaxUint8

// ImguiItem is a component that holds a Dear ImGui render function.
// Attach it anywhere in the tree to render ImGui widgets each frame.
type ImguiItem struct {
	ecs.Base
	Render func()
}

func NewImguiItem(id string, render func()) *ImguiItem {
	item := &ImguiItem{Render: render}
	item.Init(id, KindItem)
	return item
}

// ImguiInputState tracks Dear ImGui's input capture state.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem queries all ImguiItem components and defers their render functions.
// It also refreshes InputState with the current input capture state.
type ImguiSystem struct {
	Items      ecs.Query[*ImguiItem] `ecs:"255"`
	InputState ImguiInputState
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	i.InputState.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for item := range i.Items.Iter() {
		if item.Render != nil {
			frame.Commands.Defer(item.Render)
		}
	}
}
