package render

import "testing"

func TestDepthBufferClear(t *testing.T) {
	tests := []struct {
		name    string
		rect    [4]int
		cleared [][2]int
		kept    [][2]int
	}{
		{
			name:    "inner region",
			rect:    [4]int{1, 1, 3, 3},
			cleared: [][2]int{{1, 1}, {2, 2}},
			kept:    [][2]int{{0, 0}, {3, 3}, {3, 1}},
		},
		{
			name:    "clamped to bounds",
			rect:    [4]int{-5, -5, 100, 2},
			cleared: [][2]int{{0, 0}, {4, 1}},
			kept:    [][2]int{{0, 2}, {4, 3}},
		},
		{
			name: "empty",
			rect: [4]int{3, 3, 3, 4},
			kept: [][2]int{{3, 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDepthBuffer(5, 4)
			for i := range d.Data {
				d.Data[i] = 7
			}
			d.Clear(tt.rect[0], tt.rect[1], tt.rect[2], tt.rect[3])

			for _, p := range tt.cleared {
				if got := d.At(p[0], p[1]); got != 0 {
					t.Errorf("At(%d, %d) = %v, want 0", p[0], p[1], got)
				}
			}
			for _, p := range tt.kept {
				if got := d.At(p[0], p[1]); got != 7 {
					t.Errorf("At(%d, %d) = %v, want 7", p[0], p[1], got)
				}
			}
		})
	}
}

func TestDepthBufferBounds(t *testing.T) {
	d := NewDepthBuffer(2, 2)
	d.Set(-1, 0, 5)
	d.Set(2, 0, 5)
	d.Set(1, 1, 3)

	if got := d.At(1, 1); got != 3 {
		t.Errorf("At(1, 1) = %v, want 3", got)
	}
	if got := d.At(5, 5); got != 0 {
		t.Errorf("out of range At = %v, want 0", got)
	}
	for i, v := range d.Data {
		if i != 3 && v != 0 {
			t.Errorf("Data[%d] = %v, out-of-range Set leaked", i, v)
		}
	}
}
