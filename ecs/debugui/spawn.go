package debugui

import "github.com/plus3/hecs/ecs"

// SpawnDebugUI attaches an entity holding the debug windows under the
// world's root and returns it. Remove the entity to close the windows.
func SpawnDebugUI(scheduler *ecs.Scheduler) *ecs.Entity {
	world := scheduler.World()

	browser := NewTreeBrowserComponent(100)
	inspector := NewComponentInspectorComponent()
	kinds := NewKindViewerComponent()
	stats := NewPerformanceStatsComponent(120)
	queries := NewQueryDebuggerComponent()

	debug := world.NewEntity("debugui")
	debug.AddAll(
		NewImguiItem("tree-browser", func() { browser.Render(world.Root()) }),
		NewImguiItem("component-inspector", func() { inspector.Render(browser.Selected()) }),
		NewImguiItem("kind-viewer", func() {
			if kind := kinds.Render(world.Root()); kind != nil {
				queries.selectedKinds = map[ecs.Kind]bool{*kind: true}
			}
		}),
		NewImguiItem("performance-stats", func() { stats.Render(scheduler) }),
		NewImguiItem("query-debugger", func() { queries.Render(world.Root()) }),
	)
	world.Root().Add(debug)
	return debug
}
