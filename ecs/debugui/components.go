package debugui

import (
	"github.com/plus3/hecs/ecs"
)

type TreeBrowserComponent struct {
	selected           *ecs.Entity
	rowsCache          *TreeBrowserCache
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
}

type ComponentInspectorComponent struct {
	selected *ecs.Entity
}

type KindViewerComponent struct {
	cache         *KindViewerCache
	selectedKind  *ecs.Kind
	sortColumn    int
	sortAscending bool
}

type PerformanceStatsComponent struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	timer         *FrameTimer
}

type QueryDebuggerComponent struct {
	selectedKinds map[ecs.Kind]bool
}
