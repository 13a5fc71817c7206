// Command integerworld is a terminal demo of the rendering engine: it loads
// a glTF mesh, lights it, and spins it in response to arrow-key impulses,
// grounded on the teacher's cmd/trophy demo.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/gitmodu/integerworld/pkg/color"
	"github.com/gitmodu/integerworld/pkg/engine"
	"github.com/gitmodu/integerworld/pkg/fixedpoint"
	"github.com/gitmodu/integerworld/pkg/geometry"
	"github.com/gitmodu/integerworld/pkg/objects"
	"github.com/gitmodu/integerworld/pkg/raster"
	"github.com/gitmodu/integerworld/pkg/scene"
	"github.com/gitmodu/integerworld/pkg/shaders"
	"github.com/gitmodu/integerworld/pkg/source"
	"github.com/gitmodu/integerworld/pkg/surface"
	"github.com/gitmodu/integerworld/pkg/viewport"
)

var (
	texturePath = flag.String("texture", "", "path to an albedo texture (PNG/JPEG)")
	targetFPS   = flag.Int("fps", 30, "target frames per second")
	logInterval = flag.Uint("log-interval", 0, "log engine stats every N frames (0 disables)")
)

// impulseAxis tracks a rotation velocity with harmonica spring decay,
// grounded on the teacher's RotationAxis/RotationState.
type impulseAxis struct {
	angle     fixedpoint.Angle
	velocity  float64
	spring    harmonica.Spring
	velAccel  float64
}

func newImpulseAxis(fps int) impulseAxis {
	return impulseAxis{spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

func (a *impulseAxis) update() {
	a.angle = (a.angle + fixedpoint.Angle(a.velocity)).Normalize()
	a.velocity, a.velAccel = a.spring.Update(a.velocity, a.velAccel, 0)
}

type rotationRig struct {
	Pitch, Yaw, Roll impulseAxis
}

func newRotationRig(fps int) *rotationRig {
	return &rotationRig{Pitch: newImpulseAxis(fps), Yaw: newImpulseAxis(fps), Roll: newImpulseAxis(fps)}
}

func (r *rotationRig) update() { r.Pitch.update(); r.Yaw.update(); r.Roll.update() }

func (r *rotationRig) impulse(pitch, yaw, roll float64) {
	r.Pitch.velocity += pitch
	r.Yaw.velocity += yaw
	r.Roll.velocity += roll
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <model.gltf|model.glb>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0)); err != nil {
		log.Fatal(err)
	}
}

func run(modelPath string) error {
	mesh, err := source.LoadGltfMesh(modelPath)
	if err != nil {
		return fmt.Errorf("load mesh: %w", err)
	}

	var albedo source.AlbedoProvider
	if *texturePath != "" {
		f, err := os.Open(*texturePath)
		if err != nil {
			return fmt.Errorf("open texture: %w", err)
		}
		defer f.Close()
		albedo, err = source.LoadAlbedo(f)
		if err != nil {
			return fmt.Errorf("load texture: %w", err)
		}
	}

	term := uv.DefaultTerminal()
	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)
	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}()

	termSurface := surface.NewTerminal(term, int16(width), int16(height))

	rasterizer := raster.NewWindowRasterizer(termSurface)
	projector := viewport.NewProjector(rasterizer.Width, rasterizer.Height)
	collector := scene.NewFragmentCollector(4096)
	task := engine.NewEngineRenderTask(rasterizer, collector, projector)

	sunDirection := geometry.Vertex16{X: -geometry.Unit / 2, Y: -geometry.Unit, Z: geometry.Unit / 2}
	geometry.NormalizeVertex16(&sunDirection)

	lighting := &shaders.LightsShader{
		Ambient: color.Fraction16{R: 2048, G: 2048, B: 2048},
		Lights: []scene.LightSource{
			&shaders.DirectionalLight{
				Direction: sunDirection,
				Color:     color.Fraction16{R: 32768, G: 32768, B: 30000},
				Gloss:     200,
			},
			&shaders.CameraLight{
				Direction: geometry.Vertex16{Z: geometry.Unit},
				Color:     color.Fraction16{R: 8000, G: 8000, B: 8000},
				Gloss:     120,
			},
		},
	}

	backdrop := objects.NewBackground(scene.Material{}, nil)
	backdrop.SetColor(color.RGB(20, 22, 30))
	task.AddObject(backdrop)

	material := scene.Material{Diffuse: 220, Specular: 80, Gloss: 150, Rough: 64}
	object := objects.NewTriangleShadeMesh(mesh, geometry.Transform{Resize: geometry.Scale16One}, material, lighting)
	object.Albedo = albedo
	task.AddObject(object)

	task.SetCamera(geometry.CameraState{Position: geometry.Vertex16{Z: -3 * geometry.Unit}})
	task.SetEnabled(true)

	var perfLog *engine.PerformanceLogTask
	if *logInterval > 0 {
		perfLog = engine.NewPerformanceLogTask(task, uint32(*logInterval))
	}

	rotation := newRotationRig(*targetFPS)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		<-sigCh
		cancel()
	}()

	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				term.Erase()
				term.Resize(ev.Width, ev.Height)
				termSurface.Resize(int16(ev.Width), int16(ev.Height))
				w, h, _ := termSurface.Dimensions()
				rasterizer.Resize(w, h)
				projector.SetDimensions(rasterizer.Width, rasterizer.Height)
			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"), ev.MatchString("q"):
					cancel()
					return
				case ev.MatchString("left"):
					rotation.impulse(0, -2000, 0)
				case ev.MatchString("right"):
					rotation.impulse(0, 2000, 0)
				case ev.MatchString("up"):
					rotation.impulse(-2000, 0, 0)
				case ev.MatchString("down"):
					rotation.impulse(2000, 0, 0)
				}
			}
		}
	}()

	frameInterval := time.Second / time.Duration(*targetFPS)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			rotation.update()
			object.Transform.Rotation = geometry.CalculateRotationTrig(geometry.RotationAngle{
				X: rotation.Pitch.angle, Y: rotation.Yaw.angle, Z: rotation.Roll.angle,
			})

			completed := task.Status.CyclesCompleted
			for task.Status.CyclesCompleted == completed {
				task.Advance()
				if task.State() == engine.StateDisabled {
					return fmt.Errorf("surface failed to start")
				}
			}
			if perfLog != nil {
				perfLog.Tick()
			}
		}
	}
}
