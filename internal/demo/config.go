// Package demo holds the setup shared by the painter commands: flags, scene
// loading, camera layout and the spring-driven spin.
package demo

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/taigrr/painter/pkg/math3d"
	"github.com/taigrr/painter/pkg/render"
)

// Config is the command-line configuration of a demo.
type Config struct {
	FOV     float64
	Near    float64
	Far     float64
	Mode    render.RenderMode
	Light   math3d.Vec3
	FPS     int
	Texture string
	GreyMin int
	GreyMax int
	Verbose bool
}

// DefaultConfig returns the settings used when no flags are given.
func DefaultConfig() Config {
	return Config{
		FOV:     render.DefaultFOV,
		Near:    render.DefaultNear,
		Far:     render.DefaultFar,
		Mode:    render.GreyFilledOutline,
		Light:   render.DefaultLightDir,
		FPS:     30,
		GreyMin: 32,
		GreyMax: 255,
	}
}

// RegisterFlags binds cfg to fs. Defaults are taken from cfg.
func RegisterFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Float64Var(&cfg.FOV, "fov", cfg.FOV, "Vertical field of view in degrees")
	fs.Float64Var(&cfg.Near, "near", cfg.Near, "Near clip distance")
	fs.Float64Var(&cfg.Far, "far", cfg.Far, "Far clip distance")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "Target FPS")
	fs.StringVar(&cfg.Texture, "texture", cfg.Texture, "Path to texture image (PNG/JPG)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Log pipeline statistics to stderr")

	fs.Func("mode", fmt.Sprintf("Render mode (%s) (default %q)", strings.Join(render.ModeNames(), ", "), cfg.Mode), func(s string) error {
		m, err := render.ParseRenderMode(s)
		if err != nil {
			return err
		}
		cfg.Mode = m
		return nil
	})
	fs.Func("light", fmt.Sprintf("Light direction X,Y,Z (default \"%g,%g,%g\")", cfg.Light.X, cfg.Light.Y, cfg.Light.Z), func(s string) error {
		v, err := ParseVec3(s)
		if err != nil {
			return err
		}
		cfg.Light = v
		return nil
	})
	fs.Func("grey", fmt.Sprintf("Grey shading range MIN,MAX (default \"%d,%d\")", cfg.GreyMin, cfg.GreyMax), func(s string) error {
		lo, hi, err := ParseRange(s)
		if err != nil {
			return err
		}
		cfg.GreyMin, cfg.GreyMax = lo, hi
		return nil
	})
}

// Validate reports configuration errors the flag parser can't catch.
func (c Config) Validate() error {
	switch {
	case c.FOV <= 0 || c.FOV >= 180:
		return fmt.Errorf("fov must be in (0, 180), got %g", c.FOV)
	case c.Near <= 0:
		return fmt.Errorf("near must be positive, got %g", c.Near)
	case c.Far <= c.Near:
		return fmt.Errorf("far (%g) must exceed near (%g)", c.Far, c.Near)
	case c.FPS <= 0:
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	case c.GreyMin < 0 || c.GreyMin >= c.GreyMax || c.GreyMax > 255:
		return fmt.Errorf("grey range must satisfy 0 <= min < max <= 255, got %d,%d", c.GreyMin, c.GreyMax)
	}
	return nil
}

// Options returns the frame options for this configuration.
func (c Config) Options() render.Options {
	return render.Options{Mode: c.Mode, LightDir: c.Light}
}

// ParseVec3 parses "x,y,z".
func ParseVec3(s string) (math3d.Vec3, error) {
	var v math3d.Vec3
	if _, err := fmt.Sscanf(s, "%g,%g,%g", &v.X, &v.Y, &v.Z); err != nil {
		return math3d.Vec3{}, fmt.Errorf("parse vector %q: %w", s, err)
	}
	return v, nil
}

// ParseRange parses "min,max".
func ParseRange(s string) (lo, hi int, err error) {
	if _, err := fmt.Sscanf(s, "%d,%d", &lo, &hi); err != nil {
		return 0, 0, fmt.Errorf("parse range %q: %w", s, err)
	}
	return lo, hi, nil
}

// SetupLogging routes pipeline logs to w at debug level when verbose is
// set, and silences them otherwise.
func SetupLogging(verbose bool, w io.Writer) {
	if !verbose {
		render.SetLogger(nil)
		return
	}
	render.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})))
}
