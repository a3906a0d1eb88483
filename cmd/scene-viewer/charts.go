package main

import (
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/hecs/ecs"
	"github.com/plus3/hecs/ecs/debugui"
)

const latencyHistorySize = 100

// latencyChart keeps a ring of per-system average latencies in milliseconds.
type latencyChart struct {
	offset  int
	samples map[string][]float32
}

func (c *latencyChart) record(stats *ecs.SchedulerStats) {
	for _, sys := range stats.Systems {
		if c.samples[sys.Name] == nil {
			c.samples[sys.Name] = make([]float32, latencyHistorySize)
		}
		c.samples[sys.Name][c.offset] = float32(sys.AvgDuration.Microseconds()) / 1000.0
	}
	c.offset = (c.offset + 1) % latencyHistorySize
}

// ordered returns the history of name oldest first.
func (c *latencyChart) ordered(name string) []float32 {
	data := c.samples[name]
	out := make([]float32, latencyHistorySize)
	copy(out, data[c.offset:])
	copy(out[latencyHistorySize-c.offset:], data[:c.offset])
	return out
}

func spawnLatencyChart(scheduler *ecs.Scheduler) {
	implot.CreateContext()

	chart := &latencyChart{samples: map[string][]float32{}}
	world := scheduler.World()

	charts := world.NewEntity("charts")
	charts.Add(debugui.NewImguiItem("system-latency", func() {
		chart.record(scheduler.GetStats())

		names := make([]string, 0, len(chart.samples))
		maxLatency := float32(1.0)
		for name, data := range chart.samples {
			names = append(names, name)
			for _, v := range data {
				maxLatency = max(maxLatency, v)
			}
		}
		sort.Strings(names)

		imgui.SetNextWindowPosV(imgui.NewVec2(10, 500), imgui.CondOnce, imgui.NewVec2(0, 0))
		imgui.SetNextWindowSizeV(imgui.NewVec2(600, 300), imgui.CondOnce)

		if imgui.BeginV("System Latency", nil, 0) {
			if implot.BeginPlotV("System Performance", imgui.NewVec2(-1, -1), 0) {
				implot.SetupAxesV("Frame", "Time (ms)", 0, 0)
				implot.SetupAxisLimitsV(implot.AxisY1, 0, float64(maxLatency*1.1), implot.CondAlways)

				for _, name := range names {
					samples := chart.ordered(name)
					implot.PlotLineFloatPtrInt(name, &samples[0], int32(len(samples)))
				}

				implot.EndPlot()
			}
		}
		imgui.End()
	}))
	world.Root().Add(charts)
}
