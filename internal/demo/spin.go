package demo

import (
	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/painter/pkg/math3d"
)

// RotationAxis tracks position and velocity for one rotation axis with spring decay
type RotationAxis struct {
	Position  float64
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64 // internal spring velocity (for animating Velocity toward 0)
}

// NewRotationAxis creates an axis with harmonica spring for smooth velocity decay
func NewRotationAxis(fps int) RotationAxis {
	return RotationAxis{
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update applies velocity to position and decays velocity toward 0 using spring
func (a *RotationAxis) Update() {
	a.Position += a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

// Spin drives the model's Euler angles. Impulses add angular velocity that
// springs back to zero; Drift is added every frame on top.
type Spin struct {
	Pitch, Yaw, Roll RotationAxis

	// Drift is a constant per-frame rotation in radians.
	Drift math3d.Vec3

	fps int
}

// NewSpin creates a spin at rest.
func NewSpin(fps int) *Spin {
	return &Spin{
		Pitch: NewRotationAxis(fps),
		Yaw:   NewRotationAxis(fps),
		Roll:  NewRotationAxis(fps),
		fps:   fps,
	}
}

// Update advances one frame.
func (s *Spin) Update() {
	s.Pitch.Update()
	s.Yaw.Update()
	s.Roll.Update()
	s.Pitch.Position += s.Drift.X
	s.Yaw.Position += s.Drift.Y
	s.Roll.Position += s.Drift.Z
}

// ApplyImpulse adds angular velocity in radians per frame.
func (s *Spin) ApplyImpulse(pitch, yaw, roll float64) {
	s.Pitch.Velocity += pitch
	s.Yaw.Velocity += yaw
	s.Roll.Velocity += roll
}

// Reset stops the spin and returns to the initial orientation. Drift is kept.
func (s *Spin) Reset() {
	s.Pitch = NewRotationAxis(s.fps)
	s.Yaw = NewRotationAxis(s.fps)
	s.Roll = NewRotationAxis(s.fps)
}

// Angles returns the current (pitch, yaw, roll).
func (s *Spin) Angles() math3d.Vec3 {
	return math3d.V3(s.Pitch.Position, s.Yaw.Position, s.Roll.Position)
}

// World returns the world matrix for the current angles at unit scale.
func (s *Spin) World() math3d.Mat4 {
	return math3d.TransformComplete(math3d.V3(1, 1, 1), s.Angles(), math3d.Vec3{})
}
