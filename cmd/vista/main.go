package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/vista/audio"
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

const (
	windowWidth  = 1280
	windowHeight = 720

	frameHalfSize = 0.9 // World half-extent of a frame panel
)

var (
	particleCountFlag = flag.Int("particles", parameter.ParticleCount, "Particle count")
	seedFlag          = flag.Uint64("seed", 1, "Particle field seed")
	muteFlag          = flag.Bool("mute", false, "Disable audio cues")
)

// App drives the animation core from Ebitengine's per-frame Update callback
type App struct {
	pausable *engine.PausableClock
	clock    *engine.FrameClock

	queue   *event.Queue
	adapter *input.Adapter

	camera    *scene.Camera
	frames    *scene.Arena
	machine   *system.CameraStateMachine
	particles *system.ParticleSimulator

	viewport render.Viewport
	lastX    int
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if a.pausable.IsPaused() {
			a.pausable.Resume()
		} else {
			a.pausable.Pause()
		}
	}

	mx, my := ebiten.CursorPosition()
	if mx != a.lastX {
		a.adapter.PointerMoved(mx, a.viewport.Width)
		a.lastX = mx
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.adapter.Click(mx, my, a.viewport)
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		// Ebitengine reports wheel-up as positive; the gesture contract uses
		// the negative-is-up browser convention
		a.adapter.Wheel(-wy)
	}

	// One render tick: dispatch, rate-limited simulation, continuous systems
	// all run from the clock's subscriber chain
	a.clock.Advance()
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	// Particles back-to-front, sized by inverse depth
	positions := a.particles.Positions()
	for _, i := range render.DepthOrder(a.camera, positions) {
		base := i * 3
		p := vmath.Vec3{X: positions[base], Y: positions[base+1], Z: positions[base+2]}
		sx, sy, depth, ok := render.Project(a.camera, p, a.viewport)
		if !ok {
			continue
		}
		radius := float32(vmath.Clamp(3.0/depth, 0.5, 4))
		shade := uint8(vmath.Clamp(255/depth*4, 40, 255))
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), radius,
			color.RGBA{R: shade, G: shade, B: 255, A: 255}, true)
	}

	// Frame panels as wireframe quads; the selected one highlighted
	for _, f := range a.frames.All() {
		a.drawFrame(screen, f)
	}

	ebiten.SetWindowTitle(fmt.Sprintf("vista — %s", a.machine.Phase()))
}

// drawFrame projects the panel corners and strokes the outline
func (a *App) drawFrame(screen *ebiten.Image, f *scene.Frame) {
	up := parameter.CameraWorldUp
	right := vmath.V3Normalize(vmath.V3Cross(up, f.Normal))
	top := vmath.V3Cross(f.Normal, right)

	corners := [4]vmath.Vec3{
		vmath.V3Add(f.Position, vmath.V3Add(vmath.V3Scale(right, -frameHalfSize), vmath.V3Scale(top, frameHalfSize))),
		vmath.V3Add(f.Position, vmath.V3Add(vmath.V3Scale(right, frameHalfSize), vmath.V3Scale(top, frameHalfSize))),
		vmath.V3Add(f.Position, vmath.V3Add(vmath.V3Scale(right, frameHalfSize), vmath.V3Scale(top, -frameHalfSize))),
		vmath.V3Add(f.Position, vmath.V3Add(vmath.V3Scale(right, -frameHalfSize), vmath.V3Scale(top, -frameHalfSize))),
	}

	var screenPts [4][2]float32
	for i, c := range corners {
		sx, sy, _, ok := render.Project(a.camera, c, a.viewport)
		if !ok {
			return
		}
		screenPts[i] = [2]float32{float32(sx), float32(sy)}
	}

	lineColor := color.RGBA{R: 120, G: 120, B: 140, A: 255}
	if f.ID == a.machine.SelectedID() {
		lineColor = color.RGBA{R: 255, G: 200, B: 80, A: 255}
	}

	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		vector.StrokeLine(screen,
			screenPts[i][0], screenPts[i][1],
			screenPts[j][0], screenPts[j][1],
			2, lineColor, true)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowWidth, windowHeight
}

// buildGallery lays out frame panels in a shallow arc facing the overview camera
func buildGallery() (*scene.Arena, []string, error) {
	arena := scene.NewArena()
	layout := []struct {
		id  string
		key string
		pos vmath.Vec3
	}{
		{"f1", "about", vmath.Vec3{X: -3, Y: 1.2, Z: -0.4}},
		{"f2", "projects", vmath.Vec3{X: -1, Y: 1.2, Z: 0.2}},
		{"f3", "gallery", vmath.Vec3{X: 1, Y: 1.2, Z: 0.2}},
		{"f4", "contact", vmath.Vec3{X: 3, Y: 1.2, Z: -0.4}},
	}

	keys := make([]string, 0, len(layout))
	for _, l := range layout {
		// Panels face the overview viewpoint
		normal := vmath.V3Normalize(vmath.V3Sub(parameter.CameraOverviewPosition, l.pos))
		if err := arena.Add(scene.Frame{
			ID:       l.id,
			Key:      l.key,
			Position: l.pos,
			Normal:   normal,
		}); err != nil {
			return nil, nil, fmt.Errorf("gallery layout: %w", err)
		}
		keys = append(keys, l.key)
	}
	return arena, keys, nil
}

func main() {
	flag.Parse()

	frames, keys, err := buildGallery()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build scene: %v\n", err)
		os.Exit(1)
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
	cfg.Count = *particleCountFlag
	cfg.Seed = *seedFlag
	particles := system.NewParticleSimulator(cfg, statusReg)

	queue := event.NewQueue()
	picker := input.NewPicker(frames, camera, parameter.PickRadius)
	adapter := input.NewAdapter(queue, picker, func() bool {
		return machine.SelectedID() != ""
	})

	if !*muteFlag {
		cues := audio.NewCueManager()
		if err := cues.Initialize(); err != nil {
			// Non-fatal, the viewer can run without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer cues.Cleanup()
			machine.SetTransitionHook(func(from, to system.CameraPhase) {
				switch to {
				case system.PhaseZoomIn:
					cues.PlayZoomIn()
				case system.PhaseZoomingOut:
					cues.PlayZoomOut()
				}
			})
		}
	}

	pausable := engine.NewPausableClock(engine.NewMonotonicTimeProvider())
	clock := engine.NewFrameClock(pausable)
	scheduler := engine.NewRateLimitedScheduler(statusReg)

	// Subscriber order fixes in-tick sequencing: triggers dispatch first, the
	// particle advance completes before continuous consumers run
	clock.Subscribe(func(sample engine.ClockSample) {
		system.Dispatch(queue, machine, parallax)
	})
	scheduler.Subscribe(particles.Advance, parameter.SimulationRateHz)
	clock.Subscribe(scheduler.Tick)
	clock.Subscribe(machine.Update)
	clock.Subscribe(parallax.Update)

	app := &App{
		pausable:  pausable,
		clock:     clock,
		queue:     queue,
		adapter:   adapter,
		camera:    camera,
		frames:    frames,
		machine:   machine,
		particles: particles,
		viewport:  render.Viewport{Width: windowWidth, Height: windowHeight},
		lastX:     -1,
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("vista")
	if err := ebiten.RunGame(app); err != nil {
		fmt.Fprintf(os.Stderr, "Viewer exited: %v\n", err)
		os.Exit(1)
	}
}
