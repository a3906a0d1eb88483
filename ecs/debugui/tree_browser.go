package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/hecs/ecs"
)

type TreeBrowserCache struct {
	sortColumn    int
	sortAscending bool
}

func NewTreeBrowserComponent(maxEntitiesPerPage int) TreeBrowserComponent {
	return TreeBrowserComponent{
		maxEntitiesPerPage: maxEntitiesPerPage,
	}
}

// Render draws the tree under root. With an empty filter the tree is shown
// as nested nodes; otherwise matching entities are listed in a sortable table.
func (tb *TreeBrowserComponent) Render(root *ecs.Entity) {
	if !imgui.BeginV("Tree Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##search", "Search...", &tb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		tb.filterText = ""
		tb.currentPage = 0
	}

	if tb.selected != nil && tb.selected != root && tb.selected.Owner() == nil {
		tb.selected = nil
	}

	if tb.filterText == "" {
		tb.renderNode(root, 0)
	} else {
		tb.renderTable(root)
	}

	imgui.End()
}

func (tb *TreeBrowserComponent) renderNode(e *ecs.Entity, depth int) {
	if depth > ecs.MaxDepth {
		imgui.Text("...")
		return
	}

	children := ecs.GetType[*ecs.Entity](e, ecs.KindEntity)

	flags := imgui.TreeNodeFlagsOpenOnArrow | imgui.TreeNodeFlagsSpanAvailWidth
	if len(children) == 0 {
		flags |= imgui.TreeNodeFlagsLeaf
	}
	if tb.selected == e {
		flags |= imgui.TreeNodeFlagsSelected
	}
	if depth == 0 {
		flags |= imgui.TreeNodeFlagsDefaultOpen
	}

	open := imgui.TreeNodeExStrV(fmt.Sprintf("%s  [%s]##%p", e.ID(), kindList(e.Kinds()), e), flags)
	if imgui.IsItemClicked() {
		tb.selected = e
	}
	if !open {
		return
	}
	for _, child := range children {
		tb.renderNode(child, depth+1)
	}
	imgui.TreePop()
}

func (tb *TreeBrowserComponent) renderTable(root *ecs.Entity) {
	rows := tb.filteredRows(FlattenTree(root))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Path")
		imgui.TableSetupColumn("Depth")
		imgui.TableSetupColumn("Kinds")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			tb.cache().sortColumn = int(spec.ColumnIndex())
			tb.cache().sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortSpecs.SetSpecsDirty(false)
		}
		tb.sortRows(rows)

		startIdx := min(tb.currentPage*tb.maxEntitiesPerPage, len(rows))
		endIdx := min(startIdx+tb.maxEntitiesPerPage, len(rows))

		for _, row := range rows[startIdx:endIdx] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			if imgui.SelectableBoolV(fmt.Sprintf("%s##%p", row.Path, row.Entity), tb.selected == row.Entity, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				tb.selected = row.Entity
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.Depth))

			imgui.TableNextColumn()
			imgui.Text(kindList(row.Kinds))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.Components))
		}

		imgui.EndTable()
	}

	if len(rows) > tb.maxEntitiesPerPage {
		totalPages := (len(rows) + tb.maxEntitiesPerPage - 1) / tb.maxEntitiesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", tb.currentPage+1, totalPages, len(rows)))
		imgui.SameLine()
		if imgui.Button("Prev") && tb.currentPage > 0 {
			tb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && tb.currentPage < totalPages-1 {
			tb.currentPage++
		}
	} else {
		tb.currentPage = 0
		imgui.Text(fmt.Sprintf("Total: %d entities", len(rows)))
	}
}

func (tb *TreeBrowserComponent) cache() *TreeBrowserCache {
	if tb.rowsCache == nil {
		tb.rowsCache = &TreeBrowserCache{sortAscending: true}
	}
	return tb.rowsCache
}

func (tb *TreeBrowserComponent) sortRows(rows []EntityInfo) {
	c := tb.cache()
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !c.sortAscending {
			a, b = b, a
		}
		var less bool

		switch c.sortColumn {
		case 1:
			less = a.Depth < b.Depth
		case 2:
			less = kindList(a.Kinds) < kindList(b.Kinds)
		case 3:
			less = a.Components < b.Components
		default:
			less = a.Path < b.Path
		}
		return less
	})
}

func (tb *TreeBrowserComponent) filteredRows(rows []EntityInfo) []EntityInfo {
	return filterRows(rows, tb.filterText)
}

// filterRows keeps the rows whose path or kind names contain filter,
// case-insensitively.
func filterRows(rows []EntityInfo, filter string) []EntityInfo {
	if filter == "" {
		return rows
	}

	filterLower := strings.ToLower(filter)
	filtered := make([]EntityInfo, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.Path), filterLower) ||
			strings.Contains(strings.ToLower(kindList(row.Kinds)), filterLower) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

func kindList(kinds []ecs.Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}

// Selected returns the entity picked in the browser, or nil.
func (tb *TreeBrowserComponent) Selected() *ecs.Entity {
	return tb.selected
}
