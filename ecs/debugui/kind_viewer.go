package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/hecs/ecs"
)

type KindViewerCache struct {
	kinds         []KindStats
	sortColumn    int
	sortAscending bool
}

func NewKindViewerComponent() KindViewerComponent {
	return KindViewerComponent{
		cache: &KindViewerCache{
			sortColumn:    2,
			sortAscending: false,
		},
		sortColumn:    2,
		sortAscending: false,
	}
}

// Render lists every kind present under root with its component and holder
// counts. It returns the kind clicked this frame, if any.
func (kv *KindViewerComponent) Render(root *ecs.Entity) *ecs.Kind {
	if !imgui.BeginV("Kind Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return nil
	}

	stats := CollectTreeStats(root)
	kv.cache.kinds = stats.Kinds
	kv.sortKinds()

	imgui.Text(fmt.Sprintf("Entities: %d  Components: %d  Depth: %d", stats.Entities, stats.Components, stats.MaxDepth))

	maxComponents := 0
	for _, ks := range kv.cache.kinds {
		maxComponents = max(maxComponents, ks.Components)
	}

	var clicked *ecs.Kind

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("KindTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Value")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Holders")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			kv.cache.sortColumn = int(spec.ColumnIndex())
			kv.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			kv.sortColumn = kv.cache.sortColumn
			kv.sortAscending = kv.cache.sortAscending
			kv.sortKinds()
			sortSpecs.SetSpecsDirty(false)
		}

		for _, ks := range kv.cache.kinds {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := kv.selectedKind != nil && *kv.selectedKind == ks.Kind
			if imgui.SelectableBoolV(ks.Kind.String(), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				kind := ks.Kind
				clicked = &kind
				kv.selectedKind = &kind
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", ks.Kind))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", ks.Components))

			if maxComponents > 0 {
				barWidth := float32(ks.Components) / float32(maxComponents) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", ks.Holders))
		}

		imgui.EndTable()
	}

	imgui.End()
	return clicked
}

func (kv *KindViewerComponent) sortKinds() {
	sortKindStats(kv.cache.kinds, kv.cache.sortColumn, kv.cache.sortAscending)
}

func sortKindStats(kinds []KindStats, column int, ascending bool) {
	sort.SliceStable(kinds, func(i, j int) bool {
		a, b := kinds[i], kinds[j]
		if !ascending {
			a, b = b, a
		}
		var less bool

		switch column {
		case 0:
			less = a.Kind.String() < b.Kind.String()
		case 1:
			less = a.Kind < b.Kind
		case 3:
			less = a.Holders < b.Holders
		default:
			less = a.Components < b.Components
		}
		return less
	})
}
