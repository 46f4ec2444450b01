// Package app wires the window, input, camera, and scene together and
// runs the render loop.
package app

import (
	"fmt"
	"image/color"
	gomath "math"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/softbody-labs/morphview/internal/config"
	"github.com/softbody-labs/morphview/internal/engine/camera"
	"github.com/softbody-labs/morphview/internal/engine/input"
	"github.com/softbody-labs/morphview/internal/engine/lighting"
	"github.com/softbody-labs/morphview/internal/engine/scene"
	"github.com/softbody-labs/morphview/internal/engine/texture"
	"github.com/softbody-labs/morphview/internal/engine/window"
	"github.com/softbody-labs/morphview/internal/logger"
	"github.com/softbody-labs/morphview/pkg/math"
)

// App is the main application instance. It owns all per-frame state:
// the camera, the spawn registry, the frame orchestrator, and the
// spawn-key trigger. Nothing here is shared across goroutines; the
// render loop is the sole scheduler.
type App struct {
	config  *config.Config
	running bool

	window *window.Window
	input  *input.Input
	camera *camera.FlyCamera

	shapes *scene.ShapeRenderer
	lamps  *scene.LampRenderer

	frame    *scene.Frame
	spawns   *scene.SpawnRegistry
	rig      lighting.Rig
	material lighting.Material

	spawnKey input.Trigger

	width  int
	height int
}

// New creates the application: window with GL context, renderers,
// camera, and scene state.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		config: cfg,
		width:  cfg.Graphics.Width,
		height: cfg.Graphics.Height,
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      "Superellipsoid Morphing",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// GL bindings are usable only after the context exists
	if err := gl.Init(); err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)

	diffuse := texture.Upload(texture.SolidRGBA(color.RGBA{R: 255, G: 255, B: 0, A: 255}, 4))

	a.shapes, err = scene.NewShapeRenderer(diffuse)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create shape renderer: %w", err)
	}

	a.lamps, err = scene.NewLampRenderer()
	if err != nil {
		a.shapes.Close()
		a.window.Close()
		return nil, fmt.Errorf("failed to create lamp renderer: %w", err)
	}

	a.input = input.New()
	a.camera = camera.NewFlyCamera(math.Vec3{X: 0, Y: 0, Z: 3})
	a.camera.MoveSpeed = cfg.Camera.MoveSpeed
	a.camera.MouseSensitivity = cfg.Camera.MouseSensitivity

	a.spawns = scene.NewSpawnRegistry()
	a.frame = scene.NewFrame(cfg.Mesh.Stacks, cfg.Mesh.Slices, a.spawns)
	a.rig = lighting.DefaultRig()
	a.material = lighting.DefaultMaterial()

	a.window.CaptureMouse(true)

	logger.Info("application initialized",
		zap.Int("stacks", cfg.Mesh.Stacks),
		zap.Int("slices", cfg.Mesh.Slices),
	)
	logger.Info("press E to spawn a superellipsoid, ESC to quit")

	return a, nil
}

// Close releases all resources.
func (a *App) Close() {
	if a.lamps != nil {
		a.lamps.Close()
	}
	if a.shapes != nil {
		a.shapes.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

// Run executes the render loop until quit is requested.
func (a *App) Run() error {
	a.running = true

	start := time.Now()
	lastTime := start

	logger.Info("starting render loop")

	for a.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now
		elapsed := now.Sub(start).Seconds()

		// 1. Input
		if a.input.Update() {
			break
		}
		a.handleEvents()
		a.handleMovement(dt)

		// Spawn fires once per press, not once per held frame
		if a.spawnKey.Update(a.input.IsHeld(sdl.SCANCODE_E)) {
			pos := a.camera.SpawnPoint()
			a.spawns.Record(pos)
			logger.Info("superellipsoid spawned",
				zap.Float32("x", pos.X),
				zap.Float32("y", pos.Y),
				zap.Float32("z", pos.Z),
				zap.Int("total", a.spawns.Len()),
			)
		}

		// 2. Render
		a.renderFrame(elapsed)
		a.window.SwapBuffers()
	}

	return nil
}

// handleEvents drains the frame's input events.
func (a *App) handleEvents() {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventQuit:
			a.running = false

		case input.EventWindowResize:
			a.width = event.Width
			a.height = event.Height
			gl.Viewport(0, 0, int32(event.Width), int32(event.Height))

		case input.EventKeyDown:
			if event.Key == sdl.SCANCODE_ESCAPE {
				a.running = false
			}

		case input.EventMouseMove:
			a.camera.HandleLook(float32(event.MouseDX), float32(event.MouseDY))

		case input.EventScroll:
			a.camera.HandleZoom(event.ScrollY)
		}
	}
}

// handleMovement applies held-key camera movement.
func (a *App) handleMovement(dt float32) {
	if a.input.IsHeld(sdl.SCANCODE_W) {
		a.camera.HandleMovement(camera.Forward, dt)
	}
	if a.input.IsHeld(sdl.SCANCODE_S) {
		a.camera.HandleMovement(camera.Backward, dt)
	}
	if a.input.IsHeld(sdl.SCANCODE_A) {
		a.camera.HandleMovement(camera.Left, dt)
	}
	if a.input.IsHeld(sdl.SCANCODE_D) {
		a.camera.HandleMovement(camera.Right, dt)
	}
}

// renderFrame draws one frame at the given elapsed time.
func (a *App) renderFrame(elapsed float64) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	projection := math.Perspective(
		a.camera.Zoom*gomath.Pi/180.0,
		float32(a.width)/float32(a.height),
		0.1, 100.0,
	)
	view := a.camera.ViewMatrix()

	a.rig.Spot.Follow(a.camera.Position, a.camera.Front)

	a.shapes.BeginFrame(view, projection, a.camera.Position, &a.rig, a.material)
	a.frame.Step(elapsed, a.shapes, a.shapes)
	a.shapes.EndFrame()

	a.lamps.Draw(view, projection, &a.rig)
}
