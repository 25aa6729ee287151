// Terminal sandbox for the camera choreography: same animation core as the
// viewer, projected into cells. Click frames to zoom, click empty space or
// scroll up to zoom out, move the pointer for parallax.
package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vista/engine"
	"github.com/lixenwraith/vista/event"
	"github.com/lixenwraith/vista/input"
	"github.com/lixenwraith/vista/parameter"
	"github.com/lixenwraith/vista/render"
	"github.com/lixenwraith/vista/scene"
	"github.com/lixenwraith/vista/status"
	"github.com/lixenwraith/vista/system"
	"github.com/lixenwraith/vista/vmath"
)

// cellAspect compensates terminal cells being roughly twice as tall as wide
const cellAspect = 2.0

type sandbox struct {
	screen tcell.Screen

	pausable *engine.PausableClock
	clock    *engine.FrameClock

	queue   *event.Queue
	adapter *input.Adapter

	camera    *scene.Camera
	frames    *scene.Arena
	machine   *system.CameraStateMachine
	particles *system.ParticleSimulator
	statusReg *status.Registry
}

// viewport reports the projection surface in aspect-corrected cells
func (s *sandbox) viewport() render.Viewport {
	w, h := s.screen.Size()
	return render.Viewport{Width: w, Height: int(float64(h) * cellAspect)}
}

func (s *sandbox) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			if s.pausable.IsPaused() {
				s.pausable.Resume()
			} else {
				s.pausable.Pause()
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		vp := s.viewport()

		if ev.Buttons()&tcell.WheelUp != 0 {
			s.adapter.Wheel(-1)
			return true
		}
		if ev.Buttons()&tcell.ButtonPrimary != 0 {
			s.adapter.Click(x, int(float64(y)*cellAspect), vp)
			return true
		}
		s.adapter.PointerMoved(x, vp.Width)
	}
	return true
}

func (s *sandbox) draw() {
	s.screen.Clear()
	vp := s.viewport()

	// Particles back-to-front
	positions := s.particles.Positions()
	for _, i := range render.DepthOrder(s.camera, positions) {
		base := i * 3
		p := vmath.Vec3{X: positions[base], Y: positions[base+1], Z: positions[base+2]}
		sx, sy, depth, ok := render.Project(s.camera, p, vp)
		if !ok {
			continue
		}

		glyph := '·'
		style := tcell.StyleDefault.Foreground(tcell.ColorGray)
		if depth < 6 {
			glyph = '•'
			style = tcell.StyleDefault.Foreground(tcell.ColorWhite)
		}
		s.screen.SetContent(int(sx), int(sy/cellAspect), glyph, nil, style)
	}

	// Frames as labeled markers
	for _, f := range s.frames.All() {
		sx, sy, _, ok := render.Project(s.camera, f.Position, vp)
		if !ok {
			continue
		}

		style := tcell.StyleDefault.Foreground(tcell.ColorTeal)
		if f.ID == s.machine.SelectedID() {
			style = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
		}

		cx, cy := int(sx), int(sy/cellAspect)
		s.screen.SetContent(cx, cy, '▣', nil, style)
		for i, r := range f.Key {
			s.screen.SetContent(cx+2+i, cy, r, nil, style)
		}
	}

	// Status line
	fires := s.statusReg.Ints.Get("scheduler.fires").Load()
	statusLine := fmt.Sprintf(" %s  sel=%q  fov=%.1f  fires=%d ",
		s.machine.Phase(), s.machine.SelectedID(), s.camera.Fov, fires)
	_, h := s.screen.Size()
	for i, r := range statusLine {
		s.screen.SetContent(i, h-1, r, nil, tcell.StyleDefault.Reverse(true))
	}

	s.screen.Show()
}

func (s *sandbox) run() {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- s.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !s.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			s.clock.Advance()
			s.draw()
		}
	}
}

func main() {
	// Panic recovery: restore the terminal before reporting
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\nSANDBOX CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	frames := scene.NewArena()
	keys := []string{"about", "projects", "gallery", "contact"}
	for i, key := range keys {
		pos := vmath.Vec3{X: float64(i)*2 - 3, Y: 1.2, Z: 0}
		normal := vmath.V3Normalize(vmath.V3Sub(parameter.CameraOverviewPosition, pos))
		if err := frames.Add(scene.Frame{
			ID:       fmt.Sprintf("f%d", i+1),
			Key:      key,
			Position: pos,
			Normal:   normal,
		}); err != nil {
			panic(err)
		}
	}

	statusReg := status.NewRegistry()
	camera := scene.NewCamera()
	content := scene.NewMemoryContent(keys...)
	machine := system.NewCameraStateMachine(camera, frames, content, statusReg)

	parallax := system.NewMouseParallaxController(func() bool {
		return machine.Phase() == system.PhaseIdle
	})
	parallax.Attach(camera)

	cfg := system.DefaultParticleConfig()
	particles := system.NewParticleSimulator(cfg, statusReg)

	queue := event.NewQueue()
	// Terminal cells are coarse; shrink the pick radius accordingly
	picker := input.NewPicker(frames, camera, parameter.PickRadius/8)
	adapter := input.NewAdapter(queue, picker, func() bool {
		return machine.SelectedID() != ""
	})

	pausable := engine.NewPausableClock(engine.NewMonotonicTimeProvider())
	clock := engine.NewFrameClock(pausable)
	scheduler := engine.NewRateLimitedScheduler(statusReg)

	clock.Subscribe(func(sample engine.ClockSample) {
		system.Dispatch(queue, machine, parallax)
	})
	scheduler.Subscribe(particles.Advance, parameter.SimulationRateHz)
	clock.Subscribe(scheduler.Tick)
	clock.Subscribe(machine.Update)
	clock.Subscribe(parallax.Update)

	s := &sandbox{
		screen:    screen,
		pausable:  pausable,
		clock:     clock,
		queue:     queue,
		adapter:   adapter,
		camera:    camera,
		frames:    frames,
		machine:   machine,
		particles: particles,
		statusReg: statusReg,
	}
	s.run()
}
