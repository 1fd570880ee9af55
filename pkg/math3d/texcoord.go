package math3d

// TexCoord is a texture coordinate. W starts at 1; after screen mapping it
// holds 1/w so a rasterizer can interpolate U/W and V/W linearly in screen
// space and divide back per pixel.
type TexCoord struct {
	U, V, W float64
}

// UV creates a texture coordinate with W = 1.
func UV(u, v float64) TexCoord {
	return TexCoord{u, v, 1}
}

// Lerp interpolates all three components by t.
func (a TexCoord) Lerp(b TexCoord, t float64) TexCoord {
	return TexCoord{
		a.U + (b.U-a.U)*t,
		a.V + (b.V-a.V)*t,
		a.W + (b.W-a.W)*t,
	}
}

// Perspective divides U and V by the projected w and stores 1/w in W.
func (a TexCoord) Perspective(w float64) TexCoord {
	return TexCoord{a.U / w, a.V / w, 1 / w}
}
