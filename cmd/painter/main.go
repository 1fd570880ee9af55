// painter - software 3D pipeline in your terminal
// Renders a spinning model through two cameras side by side.
//
// Controls:
//
//	1-7         - Render mode (invisible, grey, grey-outline, wireframe,
//	              wireframe-rgb, textured, textured-outline)
//	W/S         - Pitch impulse
//	A/D         - Yaw impulse
//	Q/E         - Roll impulse
//	Space       - Apply random impulse
//	R           - Reset rotation
//	P           - Pause drift
//	B           - Toggle viewport borders
//	+/-         - Narrow/widen field of view
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/painter/internal/demo"
	"github.com/taigrr/painter/pkg/math3d"
	"github.com/taigrr/painter/pkg/models"
	"github.com/taigrr/painter/pkg/raster"
	"github.com/taigrr/painter/pkg/render"
)

const (
	cameraDistance = 3.0
	impulse        = 0.05
)

var defaultDrift = math3d.V3(0.007, 0.013, 0)

func main() {
	cfg := demo.DefaultConfig()
	demo.RegisterFlags(flag.CommandLine, &cfg)
	pngPath := flag.String("png", "", "Render a single frame to this PNG file and exit")
	pngSize := flag.String("size", "320x200", "Frame size for -png (WxH)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "painter - software 3D pipeline in your terminal\n\n")
		fmt.Fprintf(os.Stderr, "Usage: painter [options] [model.glb]\n\n")
		fmt.Fprintf(os.Stderr, "Without a model a unit cube is shown.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  1-7         - Render mode\n")
		fmt.Fprintf(os.Stderr, "  W/S/A/D/Q/E - Pitch, yaw and roll\n")
		fmt.Fprintf(os.Stderr, "  Space       - Random spin\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset rotation\n")
		fmt.Fprintf(os.Stderr, "  P           - Pause drift\n")
		fmt.Fprintf(os.Stderr, "  B           - Toggle borders\n")
		fmt.Fprintf(os.Stderr, "  +/-         - Field of view\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	demo.SetupLogging(cfg.Verbose, os.Stderr)

	mesh, err := demo.LoadMesh(flag.Arg(0), cfg.Texture)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	render.Logger().Info("loaded model",
		"name", mesh.Name,
		"vertices", mesh.VertexCount(),
		"triangles", mesh.TriangleCount())

	if *pngPath != "" {
		err = snapshot(cfg, mesh, *pngPath, *pngSize)
	} else {
		err = run(cfg, mesh)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// scene bundles the per-size rendering state.
type scene struct {
	fb    *raster.Framebuffer
	frame *render.Frame
	cams  []*render.Camera
}

func newScene(cfg demo.Config, width, height int) *scene {
	vps := demo.SplitViewports(width, height, 2)
	cams := []*render.Camera{
		demo.FrontCamera(cfg, vps[0], cameraDistance),
		demo.SideCamera(cfg, vps[1], cameraDistance),
	}
	frame := render.NewFrame(width, height, cams...)
	frame.Options = cfg.Options()
	frame.Border = true
	return &scene{
		fb:    raster.NewFramebuffer(width, height),
		frame: frame,
		cams:  cams,
	}
}

func (s *scene) resize(width, height int) {
	s.fb = raster.NewFramebuffer(width, height)
	s.frame.Depth = render.NewDepthBuffer(width, height)
	demo.Relayout(s.cams, demo.SplitViewports(width, height, 2))
}

func (s *scene) draw(mesh *models.Mesh, world math3d.Mat4) render.FrameStats {
	s.fb.Clear(raster.ColorBlack)
	return s.frame.Render(mesh, world, s.fb)
}

// snapshot renders one frame at a fixed angle and writes it as PNG.
func snapshot(cfg demo.Config, mesh *models.Mesh, path, size string) error {
	var w, h int
	if _, err := fmt.Sscanf(size, "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
		return fmt.Errorf("invalid size %q", size)
	}

	sc := newScene(cfg, w, h)
	world := math3d.TransformComplete(math3d.V3(1, 1, 1), math3d.V3(0.4, 0.6, 0), math3d.Vec3{})
	stats := sc.draw(mesh, world)
	if err := sc.fb.SavePNG(path); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d triangles drawn)\n", path, stats.Rendered)
	return nil
}

func run(cfg demo.Config, mesh *models.Mesh) error {
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

	fbW, fbH := raster.TerminalSize(width, height)
	sc := newScene(cfg, fbW, fbH)

	spin := demo.NewSpin(cfg.FPS)
	spin.Drift = defaultDrift

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	handle := func(ev uv.Event) {
		switch ev := ev.(type) {
		case uv.WindowSizeEvent:
			width, height = ev.Width, ev.Height
			term.Erase()
			term.Resize(width, height)
			sc.resize(raster.TerminalSize(width, height))

		case uv.KeyPressEvent:
			if mode, ok := modeKey(ev); ok {
				sc.frame.Options.Mode = mode
				render.Logger().Debug("render mode", "mode", mode)
				return
			}
			switch {
			case ev.MatchString("escape", "ctrl+c"):
				cancel()
			case ev.MatchString("w", "up"):
				spin.ApplyImpulse(-impulse, 0, 0)
			case ev.MatchString("s", "down"):
				spin.ApplyImpulse(impulse, 0, 0)
			case ev.MatchString("a", "left"):
				spin.ApplyImpulse(0, -impulse, 0)
			case ev.MatchString("d", "right"):
				spin.ApplyImpulse(0, impulse, 0)
			case ev.MatchString("q"):
				spin.ApplyImpulse(0, 0, -impulse)
			case ev.MatchString("e"):
				spin.ApplyImpulse(0, 0, impulse)
			case ev.MatchString("space"):
				spin.ApplyImpulse(
					(rand.Float64()-0.5)*0.3,
					(rand.Float64()-0.5)*0.3,
					(rand.Float64()-0.5)*0.3,
				)
			case ev.MatchString("r"):
				spin.Reset()
			case ev.MatchString("p"):
				if spin.Drift == (math3d.Vec3{}) {
					spin.Drift = defaultDrift
				} else {
					spin.Drift = math3d.Vec3{}
				}
			case ev.MatchString("b"):
				sc.frame.Border = !sc.frame.Border
			case ev.MatchString("+", "="):
				zoom(sc.cams, -5)
			case ev.MatchString("-", "_"):
				zoom(sc.cams, 5)
			}
		}
	}

	targetDuration := time.Second / time.Duration(cfg.FPS)
	events := term.Events()

	for {
		// Drain pending input before drawing.
	drain:
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev := <-events:
				handle(ev)
			default:
				break drain
			}
		}

		now := time.Now()
		spin.Update()
		sc.draw(mesh, spin.World())

		term.Draw(sc.fb)
		if err := term.Display(); err != nil {
			return fmt.Errorf("display: %w", err)
		}

		if elapsed := time.Since(now); elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

// modeKey maps the digit keys 1-7 to the render modes in value order.
func modeKey(ev uv.KeyPressEvent) (render.RenderMode, bool) {
	for mode := render.Invisible; mode <= render.TexturedOutline; mode++ {
		if ev.MatchString(strconv.Itoa(int(mode))) {
			return mode, true
		}
	}
	return render.Inherit, false
}

// zoom changes the field of view of every camera by delta degrees.
func zoom(cams []*render.Camera, delta float64) {
	for _, cam := range cams {
		fov := min(170, max(10, cam.FOV()+delta))
		cam.UpdateCamera(fov, cam.Near(), cam.Far())
	}
}
