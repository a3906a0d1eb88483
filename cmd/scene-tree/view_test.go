package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/hecs/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildWorld() (*ecs.World, *ecs.Entity, *ecs.Entity) {
	world := ecs.NewWorld("root")
	arm := world.NewEntity("arm")
	hand := world.NewEntity("hand")
	arm.AddAll(ecs.NewUnitTransform("t", mgl32.Vec3{1, 0, 0}, mgl32.Vec3{}), hand)
	hand.Add(ecs.NewTransform("t", mgl32.Vec3{0, 2, 0}, mgl32.Vec3{}, mgl32.Vec3{}))
	world.Root().Add(arm)
	return world, arm, hand
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func labels(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.label
	}
	return out
}

func TestTreeViewRows(t *testing.T) {
	world, _, _ := buildWorld()
	v := newTreeView(world)

	assert.Equal(t, []string{
		"v root",
		"v arm [transform] @ (1.0, 0.0, 0.0)",
		"- hand [transform] @ (1.0, 2.0, 0.0)",
	}, labels(v.rows()))
}

func TestTreeViewFold(t *testing.T) {
	world, _, _ := buildWorld()
	v := newTreeView(world)

	v.handleKey(key('j'))
	require.Equal(t, 1, v.selected)
	v.handleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	rows := v.rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "+ arm [transform] @ (1.0, 0.0, 0.0)", rows[1].label)
}

func TestTreeViewCursorClamps(t *testing.T) {
	world, _, _ := buildWorld()
	v := newTreeView(world)

	v.handleKey(key('k'))
	assert.Equal(t, 0, v.selected)
	for range 5 {
		v.handleKey(key('j'))
	}
	assert.Equal(t, 2, v.selected)
}

func TestTreeViewRemove(t *testing.T) {
	world, arm, hand := buildWorld()
	v := newTreeView(world)

	v.handleKey(key('x'))
	assert.Equal(t, "cannot remove the root", v.status)

	v.handleKey(key('j'))
	v.handleKey(key('x'))

	assert.Equal(t, "removed arm", v.status)
	assert.Nil(t, arm.Owner())
	assert.Nil(t, hand.Owner())
	assert.Len(t, v.rows(), 1)
	assert.Equal(t, 0, v.selected)
}

func TestTreeViewQuit(t *testing.T) {
	world, _, _ := buildWorld()
	v := newTreeView(world)

	assert.False(t, v.handleKey(key('q')))
	assert.False(t, v.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, v.handleKey(key('j')))
}

func TestTreeViewDraw(t *testing.T) {
	world, _, _ := buildWorld()
	v := newTreeView(world)

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(80, 24)

	v.draw(screen, "header")

	mainc, _, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, 'h', mainc)
	// arm is indented one level
	mainc, _, style, _ := screen.GetContent(2, 2)
	assert.Equal(t, 'v', mainc)
	assert.Equal(t, styleDefault, style)
	mainc, _, style, _ = screen.GetContent(0, 1)
	assert.Equal(t, 'v', mainc)
	assert.Equal(t, styleSelected, style)
}

func TestPollEventsStopsOnDone(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())

	events := make(chan tcell.Event)
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		pollEvents(screen, events, done)
		close(exited)
	}()

	screen.InjectKey(tcell.KeyRune, 'j', tcell.ModNone)
	timeout := time.After(time.Second)
	for got := false; !got; {
		select {
		case ev := <-events:
			if k, ok := ev.(*tcell.EventKey); ok {
				assert.Equal(t, 'j', k.Rune())
				got = true
			}
		case <-timeout:
			t.Fatal("key event not forwarded")
		}
	}

	close(done)
	screen.Fini()

	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("event goroutine still running")
	}
}
