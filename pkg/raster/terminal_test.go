package raster

import (
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
)

func TestFramebufferDraw(t *testing.T) {
	fb := NewFramebuffer(3, 4)
	fb.SetPixel(0, 0, ColorWhite)
	fb.SetPixel(0, 1, ColorYellow)
	fb.SetPixel(2, 3, ColorGrey)

	scr := uv.NewScreenBuffer(5, 3)
	fb.Draw(scr, scr.Bounds())

	cell := scr.CellAt(0, 0)
	if cell == nil || cell.Content != "▀" {
		t.Fatalf("CellAt(0, 0) = %+v", cell)
	}
	if cell.Style.Fg != ColorWhite || cell.Style.Bg != ColorYellow {
		t.Errorf("cell colors = %v / %v", cell.Style.Fg, cell.Style.Bg)
	}
	if got := scr.CellAt(2, 1); got.Style.Bg != ColorGrey || got.Style.Fg != nil {
		t.Errorf("CellAt(2, 1) = %+v", got)
	}
	// Columns and rows beyond the framebuffer are left alone.
	if got := scr.CellAt(4, 0); got != nil && got.Content == "▀" {
		t.Error("drew past framebuffer width")
	}
	if got := scr.CellAt(0, 2); got != nil && got.Content == "▀" {
		t.Error("drew past framebuffer height")
	}
}

func TestTerminalSize(t *testing.T) {
	if w, h := TerminalSize(80, 24); w != 80 || h != 48 {
		t.Errorf("TerminalSize(80, 24) = %d, %d", w, h)
	}
}
