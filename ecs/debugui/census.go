package debugui

import (
	"slices"

	"github.com/plus3/hecs/ecs"
)

// KindStats counts the components of one kind across a tree.
type KindStats struct {
	Kind       ecs.Kind
	Components int
	Holders    int
}

// TreeStats summarizes a tree for the debug windows.
type TreeStats struct {
	Entities   int
	Components int
	MaxDepth   int
	Kinds      []KindStats
}

// CollectTreeStats walks root and counts entities and components per kind.
// Kinds are sorted by value.
func CollectTreeStats(root *ecs.Entity) TreeStats {
	var stats TreeStats
	if root == nil {
		return stats
	}

	byKind := make(map[ecs.Kind]*KindStats)
	ecs.Walk(root, func(e *ecs.Entity, depth int) bool {
		stats.Entities++
		stats.MaxDepth = max(stats.MaxDepth, depth)

		for _, kind := range e.Kinds() {
			n := len(ecs.GetType[ecs.Component](e, kind))
			if n == 0 {
				continue
			}
			ks, ok := byKind[kind]
			if !ok {
				ks = &KindStats{Kind: kind}
				byKind[kind] = ks
			}
			ks.Components += n
			ks.Holders++
			stats.Components += n
		}
		return true
	})

	stats.Kinds = make([]KindStats, 0, len(byKind))
	for _, ks := range byKind {
		stats.Kinds = append(stats.Kinds, *ks)
	}
	slices.SortFunc(stats.Kinds, func(a, b KindStats) int {
		return int(a.Kind) - int(b.Kind)
	})
	return stats
}

// EntityInfo is a flattened row of the tree used by the browser table.
type EntityInfo struct {
	Entity     *ecs.Entity
	Path       string
	Depth      int
	Kinds      []ecs.Kind
	Components int
}

// FlattenTree lists root and its nested entities in walk order with their
// slash-separated id paths.
func FlattenTree(root *ecs.Entity) []EntityInfo {
	if root == nil {
		return nil
	}

	var rows []EntityInfo
	paths := map[*ecs.Entity]string{}
	ecs.Walk(root, func(e *ecs.Entity, depth int) bool {
		path := e.ID()
		if owner := e.Owner(); owner != nil && depth > 0 {
			path = paths[owner] + "/" + e.ID()
		}
		paths[e] = path

		rows = append(rows, EntityInfo{
			Entity:     e,
			Path:       path,
			Depth:      depth,
			Kinds:      e.Kinds(),
			Components: e.Len(),
		})
		return true
	})
	return rows
}
