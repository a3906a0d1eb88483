package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/hecs/asset"
	"github.com/plus3/hecs/ecs"
	"github.com/plus3/hecs/ecs/debugui"
	debugui_ebiten "github.com/plus3/hecs/ecs/debugui/ebiten"
	"github.com/plus3/hecs/internal/demo"
	"github.com/plus3/hecs/render"
	"github.com/plus3/hecs/scene"
)

const title = "Scene Viewer - hecs"

// Game implements ebiten.Game around a scene engine.
type Game struct {
	engine    *scene.Engine
	wireframe *render.Wireframe
	input     render.Input

	imgui   *debugui_ebiten.ImguiBackend
	overlay *debugui.ImguiSystem

	offscreen     *ebiten.Image
	width, height int
}

func main() {
	width := flag.Int("width", 1280, "Window width.")
	height := flag.Int("height", 720, "Window height.")
	rings := flag.Int("rings", 3, "Rings of cubes in the demo scene.")
	cubes := flag.Int("cubes", 8, "Cubes per ring.")
	lights := flag.Int("lights", 2, "Point lights in the demo scene.")
	texture := flag.String("texture", "", "PNG applied to every cube.")
	debug := flag.Bool("debug", false, "Show the ImGui debug windows.")
	flag.Parse()

	world := ecs.NewWorld("root")
	opts := demo.DefaultOptions()
	opts.Rings, opts.Cubes, opts.Lights = *rings, *cubes, *lights
	s, handles := demo.Build(world, opts)

	if *texture != "" {
		tex, err := loadTexture(*texture)
		if err != nil {
			log.Fatalf("Failed to load texture: %v", err)
		}
		ecs.Visit(world.Root(), ecs.KindModel, func(m *scene.Model) {
			m.SetTexture(tex)
		})
	}

	g := &Game{wireframe: render.NewWireframe()}
	g.engine = scene.NewEngine(s, g.wireframe)
	g.engine.Register(&demo.SpinSystem{})

	rig := newRigController(handles.Rig, handles.Camera)
	handles.Rig.Add(scene.NewEventHandler("controls", rig))
	g.engine.Register(rig)

	if *debug {
		g.imgui = debugui_ebiten.NewImguiBackend(title, *width, *height)
		g.overlay = &debugui.ImguiSystem{}
		g.engine.Register(g.overlay)
		debugui.SpawnDebugUI(g.engine.Scheduler())
		spawnLatencyChart(g.engine.Scheduler())
	} else {
		ebiten.SetWindowSize(*width, *height)
		ebiten.SetWindowTitle(title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func loadTexture(path string) (*asset.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return asset.DecodePNG(f)
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.overlay == nil || !g.overlay.InputState.WantCaptureKeyboard {
		g.input.Poll(g.width, g.height, g.engine.Push)
	}

	g.wireframe.SetTarget(g.offscreen)
	if g.imgui != nil {
		g.imgui.Frame(func() { g.engine.Step(1.0 / 60.0) })
	} else {
		g.engine.Step(1.0 / 60.0)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.offscreen != nil {
		screen.DrawImage(g.offscreen, nil)
	}
	if g.imgui != nil {
		g.imgui.Overlay(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
	}
	if outsideWidth != g.width || outsideHeight != g.height || g.offscreen == nil {
		g.width, g.height = outsideWidth, outsideHeight
		g.offscreen = ebiten.NewImage(max(outsideWidth, 1), max(outsideHeight, 1))
	}
	return outsideWidth, outsideHeight
}
