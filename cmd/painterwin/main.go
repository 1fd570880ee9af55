// painterwin - software 3D pipeline in a window
// Renders a spinning model through one camera with a matrix readout beside
// it. The pipeline and rasterizer are the same as the terminal version;
// ebiten only presents the finished framebuffer.
//
// Controls:
//
//	F1-F7       - Render mode
//	W/S         - Move camera forward/back
//	A/D         - Strafe camera
//	Left/Right  - Turn camera
//	Up/Down     - Raise/lower camera
//	Space       - Apply random spin
//	R           - Reset camera and spin
//	B           - Toggle viewport borders
//	Esc         - Quit
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/taigrr/painter/internal/demo"
	"github.com/taigrr/painter/pkg/math3d"
	"github.com/taigrr/painter/pkg/models"
	"github.com/taigrr/painter/pkg/raster"
	"github.com/taigrr/painter/pkg/render"
)

const (
	screenWidth  = 800
	screenHeight = 400
	panelX       = 400

	cameraDistance = 3.0
	moveStep       = 0.05
	turnStep       = 0.03
)

var modeKeys = [...]ebiten.Key{
	render.Invisible:         ebiten.KeyF1,
	render.GreyFilled:        ebiten.KeyF2,
	render.GreyFilledOutline: ebiten.KeyF3,
	render.Wireframe:         ebiten.KeyF4,
	render.WireframeRGB:      ebiten.KeyF5,
	render.Textured:          ebiten.KeyF6,
	render.TexturedOutline:   ebiten.KeyF7,
}

// Game implements ebiten.Game.
type Game struct {
	cfg   demo.Config
	mesh  *models.Mesh
	spin  *demo.Spin
	cam   *render.Camera
	frame *render.Frame
	fb    *raster.Framebuffer
	stats render.FrameStats
	yaw   float64
}

func newGame(cfg demo.Config, mesh *models.Mesh) *Game {
	vp := demo.Viewport{X1: 2, Y1: 2, X2: panelX - 3, Y2: screenHeight - 3}
	cam := demo.NewCamera(cfg, "main", vp)

	frame := render.NewFrame(screenWidth, screenHeight, cam)
	frame.Options = cfg.Options()
	frame.Border = true

	spin := demo.NewSpin(cfg.FPS)
	spin.Drift = math3d.V3(0.007, 0.013, 0)

	g := &Game{
		cfg:   cfg,
		mesh:  mesh,
		spin:  spin,
		cam:   cam,
		frame: frame,
		fb:    raster.NewFramebuffer(screenWidth, screenHeight),
	}
	g.reset()
	return g
}

func (g *Game) reset() {
	g.yaw = 0
	g.cam.SetPosition(math3d.V3(0, 0, -cameraDistance))
	g.cam.SetRotation(0, 0, 0)
	g.cam.RecalculateCamera()
	g.spin.Reset()
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for mode, key := range modeKeys {
		if mode != int(render.Inherit) && inpututil.IsKeyJustPressed(key) {
			g.frame.Options.Mode = render.RenderMode(mode)
		}
	}

	if ebiten.IsKeyPressed(ebiten.KeyW) {
		g.cam.MoveForward(moveStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		g.cam.MoveForward(-moveStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		g.cam.MoveRight(-moveStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		g.cam.MoveRight(moveStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		g.cam.MoveUp(moveStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		g.cam.MoveUp(-moveStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.yaw += turnStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.yaw -= turnStep
	}
	g.cam.SetRotation(0, g.yaw, 0)
	g.cam.RecalculateCamera()

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.spin.ApplyImpulse(
			(rand.Float64()-0.5)*0.3,
			(rand.Float64()-0.5)*0.3,
			(rand.Float64()-0.5)*0.3,
		)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.frame.Border = !g.frame.Border
	}

	g.spin.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.fb.Clear(raster.ColorBlack)
	g.stats = g.frame.Render(g.mesh, g.spin.World(), g.fb)
	g.drawPanel()
	screen.WritePixels(g.fb.ToImage().Pix)
}

// drawPanel prints the camera state to the right of the viewport.
func (g *Game) drawPanel() {
	const lineHeight = 14
	x, y := panelX+8, 8
	line := func(format string, args ...any) {
		g.fb.DrawString(x, y, fmt.Sprintf(format, args...), raster.ColorWhite)
		y += lineHeight
	}
	matrix := func(name string, m math3d.Mat4) {
		line("%s", name)
		for _, row := range m {
			line("%7.3f %7.3f %7.3f %7.3f", row[0], row[1], row[2], row[3])
		}
		y += lineHeight / 2
	}

	pos := g.cam.Position
	line("mode   %s", g.frame.Options.Mode)
	line("pos    %6.2f %6.2f %6.2f", pos.X, pos.Y, pos.Z)
	line("yaw    %6.2f", g.yaw)
	line("tris   %d in, %d projected, %d drawn", g.stats.Input, g.stats.Projected, g.stats.Rendered)
	y += lineHeight / 2
	matrix("view", g.cam.ViewMatrix())
	matrix("projection", g.cam.ProjectionMatrix())
	matrix("world", g.spin.World())
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	cfg := demo.DefaultConfig()
	cfg.FPS = ebiten.DefaultTPS
	demo.RegisterFlags(flag.CommandLine, &cfg)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "painterwin - software 3D pipeline in a window\n\n")
		fmt.Fprintf(os.Stderr, "Usage: painterwin [options] [model.glb]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	demo.SetupLogging(cfg.Verbose, os.Stderr)

	mesh, err := demo.LoadMesh(flag.Arg(0), cfg.Texture)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("painter")
	ebiten.SetTPS(cfg.FPS)

	if err := ebiten.RunGame(newGame(cfg, mesh)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
