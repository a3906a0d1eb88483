package debugui

import (
	"fmt"
	"slices"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/hecs/ecs"
)

func NewQueryDebuggerComponent() QueryDebuggerComponent {
	return QueryDebuggerComponent{
		selectedKinds: make(map[ecs.Kind]bool),
	}
}

// QueryMatch is one component returned by a kind query.
type QueryMatch struct {
	Kind      ecs.Kind
	ID        string
	Owner     string
	Component ecs.Component
}

// RunKindQuery collects every component of the given kinds under root,
// kind by kind in ascending order.
func RunKindQuery(root *ecs.Entity, kinds []ecs.Kind) []QueryMatch {
	kinds = slices.Clone(kinds)
	slices.Sort(kinds)

	var matches []QueryMatch
	for _, kind := range kinds {
		for _, c := range ecs.Collect[ecs.Component](root, kind) {
			m := QueryMatch{Kind: kind, ID: c.ID(), Component: c}
			if owner := c.Owner(); owner != nil {
				m.Owner = owner.ID()
			}
			matches = append(matches, m)
		}
	}
	return matches
}

func (qd *QueryDebuggerComponent) Render(root *ecs.Entity) {
	if !imgui.BeginV("Query Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text("Select Kinds:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		qd.selectedKinds = make(map[ecs.Kind]bool)
	}

	for _, ks := range CollectTreeStats(root).Kinds {
		selected := qd.selectedKinds[ks.Kind]
		if imgui.Checkbox(fmt.Sprintf("%s (%d)", ks.Kind, ks.Components), &selected) {
			if selected {
				qd.selectedKinds[ks.Kind] = true
			} else {
				delete(qd.selectedKinds, ks.Kind)
			}
		}
	}

	imgui.Separator()

	if len(qd.selectedKinds) == 0 {
		imgui.Text("No kinds selected")
		imgui.End()
		return
	}

	kinds := make([]ecs.Kind, 0, len(qd.selectedKinds))
	for kind := range qd.selectedKinds {
		kinds = append(kinds, kind)
	}
	matches := RunKindQuery(root, kinds)

	imgui.Text(fmt.Sprintf("Matching Components: %d", len(matches)))

	if imgui.TreeNodeStr("Match Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("QueryMatchTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Kind")
			imgui.TableSetupColumn("ID")
			imgui.TableSetupColumn("Owner")
			imgui.TableSetupColumn("Type")
			imgui.TableHeadersRow()

			for _, m := range matches {
				imgui.TableNextRow()

				imgui.TableSetColumnIndex(0)
				imgui.Text(m.Kind.String())

				imgui.TableSetColumnIndex(1)
				imgui.Text(m.ID)

				imgui.TableSetColumnIndex(2)
				imgui.Text(m.Owner)

				imgui.TableSetColumnIndex(3)
				imgui.Text(fmt.Sprintf("%T", m.Component))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
