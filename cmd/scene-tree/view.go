package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/hecs/ecs"
)

// row is one visible line of the tree.
type row struct {
	entity *ecs.Entity
	depth  int
	label  string
}

// treeView renders a world's entity tree and tracks the cursor.
type treeView struct {
	world     *ecs.World
	selected  int
	collapsed map[*ecs.Entity]bool
	status    string
}

func newTreeView(world *ecs.World) *treeView {
	return &treeView{world: world, collapsed: map[*ecs.Entity]bool{}}
}

// rows lists the visible entities. Collapsed entities are shown but their
// subtrees are not.
func (v *treeView) rows() []row {
	var out []row
	ecs.Walk(v.world.Root(), func(e *ecs.Entity, depth int) bool {
		out = append(out, row{entity: e, depth: depth, label: v.label(e)})
		return !v.collapsed[e]
	})
	return out
}

func (v *treeView) label(e *ecs.Entity) string {
	marker := "-"
	if e.Has(ecs.KindEntity) {
		marker = "+"
		if !v.collapsed[e] {
			marker = "v"
		}
	}

	kinds := e.Kinds()
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		if k != ecs.KindEntity {
			names = append(names, k.String())
		}
	}

	label := fmt.Sprintf("%s %s", marker, e.ID())
	if len(names) > 0 {
		label += " [" + strings.Join(names, ", ") + "]"
	}
	if t, ok := ecs.GetFirst[*ecs.Transform](e, ecs.KindTransform); ok {
		p := t.Resolve().Position
		label += fmt.Sprintf(" @ (%.1f, %.1f, %.1f)", p.X(), p.Y(), p.Z())
	}
	return label
}

// selectedEntity clamps the cursor to rows and returns the entity under it.
func (v *treeView) selectedEntity(rows []row) *ecs.Entity {
	if len(rows) == 0 {
		return nil
	}
	v.selected = min(max(v.selected, 0), len(rows)-1)
	return rows[v.selected].entity
}

// handleKey applies a key press and reports whether the program should
// keep running.
func (v *treeView) handleKey(ev *tcell.EventKey) bool {
	rows := v.rows()
	switch {
	case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
		return false
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
		return false
	case ev.Key() == tcell.KeyUp || (ev.Key() == tcell.KeyRune && ev.Rune() == 'k'):
		v.selected--
	case ev.Key() == tcell.KeyDown || (ev.Key() == tcell.KeyRune && ev.Rune() == 'j'):
		v.selected++
	case ev.Key() == tcell.KeyEnter:
		if e := v.selectedEntity(rows); e != nil && e.Has(ecs.KindEntity) {
			v.collapsed[e] = !v.collapsed[e]
		}
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'x':
		v.removeSelected(rows)
	}
	v.selectedEntity(v.rows())
	return true
}

// removeSelected detaches the entity under the cursor from its owner. Its
// whole subtree is torn down with it.
func (v *treeView) removeSelected(rows []row) {
	e := v.selectedEntity(rows)
	if e == nil {
		return
	}
	owner := e.Owner()
	if owner == nil {
		v.status = "cannot remove the root"
		return
	}
	owner.Remove(e)
	delete(v.collapsed, e)
	v.status = fmt.Sprintf("removed %s", e.ID())
}

var (
	styleDefault  = tcell.StyleDefault
	styleSelected = tcell.StyleDefault.Reverse(true)
	styleHeader   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// draw paints the tree with the cursor kept on screen, then a status line.
func (v *treeView) draw(screen tcell.Screen, header string) {
	screen.Clear()
	width, height := screen.Size()

	drawText(screen, 0, 0, width, styleHeader, header)

	rows := v.rows()
	v.selectedEntity(rows)

	visible := max(height-3, 1)
	first := 0
	if v.selected >= visible {
		first = v.selected - visible + 1
	}

	for i := first; i < len(rows) && i-first < visible; i++ {
		r := rows[i]
		style := styleDefault
		if i == v.selected {
			style = styleSelected
		}
		drawText(screen, r.depth*2, 1+i-first, width, style, r.label)
	}

	help := "j/k move  enter fold  x remove  p pause  q quit"
	if v.status != "" {
		help = v.status + "  |  " + help
	}
	drawText(screen, 0, height-1, width, styleDim, help)

	screen.Show()
}

func drawText(screen tcell.Screen, x, y, width int, style tcell.Style, text string) {
	for _, r := range text {
		if x >= width {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
