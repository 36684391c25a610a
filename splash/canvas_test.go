package splash

import "testing"

func TestNewCanvasMidGray(t *testing.T) {
	c := NewCanvas(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			r, g, b := c.At(x, y)
			if r != midGray || g != midGray || b != midGray {
				t.Fatalf("pixel (%d,%d) = (%d,%d,%d), want mid gray", x, y, r, g, b)
			}
		}
	}
}

func TestCanvasSetAt(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(1, 0, 10, 20, 30)
	r, g, b := c.At(1, 0)
	if r != 10 || g != 20 || b != 30 {
		t.Errorf("At(1,0) = (%d,%d,%d), want (10,20,30)", r, g, b)
	}
	// Neighboring pixel must be untouched.
	r, g, b = c.At(0, 0)
	if r != midGray || g != midGray || b != midGray {
		t.Errorf("At(0,0) = (%d,%d,%d), want mid gray", r, g, b)
	}
}

func TestCanvasExportPadding(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0, 10, 20, 30)
	c.Set(1, 0, 40, 50, 60)

	out := c.Export()
	want := []byte{10, 20, 30, 255, 40, 50, 60, 255}
	if len(out) != len(want) {
		t.Fatalf("Export() len = %d, want %d", len(out), len(want))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("Export()[%d] = %d, want %d", i, out[i], want[i])
		}
	}
}

func TestCanvasEqual(t *testing.T) {
	a := NewCanvas(2, 2)
	b := NewCanvas(2, 2)
	if !a.Equal(b) {
		t.Fatal("two fresh canvases of the same size should be equal")
	}
	b.Set(0, 0, 1, 2, 3)
	if a.Equal(b) {
		t.Fatal("canvases differing in one pixel should not be equal")
	}
}
