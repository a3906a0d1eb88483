package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/plus3/hecs/ecs"
	"github.com/plus3/hecs/internal/demo"
	"github.com/plus3/hecs/scene"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	depth := flag.Int("depth", 6, "Depth of the generated entity tree.")
	breadth := flag.Int("breadth", 4, "Child entities per non-leaf entity.")
	lights := flag.Int("lights", 8, "Number of point lights scattered through the tree.")
	profileMode := flag.String("profile", "", "Write a profile to the working directory: cpu, mem, trace or mutex.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if p := startProfile(*profileMode); p != nil {
		defer p.Stop()
	}

	log.Println("Starting ECS stress test...")

	// 1. Build the world, scene and engine
	world := ecs.NewWorld("root")
	log.Printf("Building tree with depth %d and breadth %d...\n", *depth, *breadth)
	tree := BuildTree(world, *depth, *breadth, *lights)
	log.Printf("Tree complete: %d entities, %d models, %d lights.\n", tree.Entities, tree.Models, tree.Lights)

	renderer := &countingRenderer{}
	engine := scene.NewEngine(scene.New(world, tree.Camera, mgl32Black), renderer)
	engine.Register(&demo.SpinSystem{})

	// 2. Run the simulation loop
	report := &Report{
		Duration:       *duration,
		Depth:          *depth,
		Breadth:        *breadth,
		Tree:           tree,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			engine.Step(float64(deltaTime) / float64(time.Second))
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.DrawCalls = renderer.draws
	report.UpdateTime.Finalize()
	report.Systems = engine.Stats().Systems
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	// 3. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

func startProfile(mode string) interface{ Stop() } {
	var opt func(*profile.Profile)
	switch mode {
	case "":
		return nil
	case "cpu":
		opt = profile.CPUProfile
	case "mem":
		opt = profile.MemProfileAllocs
	case "trace":
		opt = profile.TraceProfile
	case "mutex":
		opt = profile.MutexProfile
	default:
		log.Fatalf("Unknown profile mode %q", mode)
	}
	return profile.Start(opt, profile.ProfilePath("."), profile.NoShutdownHook)
}

// countingRenderer discards draw calls and counts them.
type countingRenderer struct {
	draws int64
}

func (r *countingRenderer) Begin(scene.Frame) {}

func (r *countingRenderer) DrawModel(scene.DrawCall) { r.draws++ }

func (r *countingRenderer) End() {}
