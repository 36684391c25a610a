package splash

// midGray is the initial value of every channel of every pixel at context
// open (spec §3).
const midGray = 0x7F

// Canvas is the shared W×H RGB reconstruction mutated only by the Splash
// Engine (spec §3 invariant). Internally it is packed 3 bytes per pixel; the
// host's 4-byte-per-pixel (R,G,B,padding) format is only materialized on
// Export, per the design note in spec §9 that implementations free of
// legacy pixel-format constraints may drop the padding byte internally.
type Canvas struct {
	Width  int
	Height int
	pix    []byte // len == Width*Height*3, row-major, R,G,B per pixel
}

// NewCanvas allocates a Canvas and fills it with mid gray (spec §3).
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		Width:  width,
		Height: height,
		pix:    make([]byte, width*height*3),
	}
	for i := range c.pix {
		c.pix[i] = midGray
	}
	return c
}

func (c *Canvas) offset(x, y int) int {
	return (y*c.Width + x) * 3
}

// At returns the RGB triple at (x, y).
func (c *Canvas) At(x, y int) (r, g, b byte) {
	o := c.offset(x, y)
	return c.pix[o], c.pix[o+1], c.pix[o+2]
}

// Set writes an RGB triple at (x, y).
func (c *Canvas) Set(x, y int, r, g, b byte) {
	o := c.offset(x, y)
	c.pix[o], c.pix[o+1], c.pix[o+2] = r, g, b
}

// Export widens the Canvas to the host's 4-byte-per-pixel RGB format,
// writing 255 into every pixel's padding byte (spec §4.3 step 5).
func (c *Canvas) Export() []byte {
	out := make([]byte, c.Width*c.Height*4)
	for i := 0; i < c.Width*c.Height; i++ {
		out[i*4+0] = c.pix[i*3+0]
		out[i*4+1] = c.pix[i*3+1]
		out[i*4+2] = c.pix[i*3+2]
		out[i*4+3] = 255
	}
	return out
}

// Equal reports whether two canvases are pixel-identical on their RGB
// channels (padding is never stored internally, so there is nothing to
// ignore). Used by tests asserting encoder/decoder symmetry (spec §8).
func (c *Canvas) Equal(other *Canvas) bool {
	if c.Width != other.Width || c.Height != other.Height {
		return false
	}
	for i := range c.pix {
		if c.pix[i] != other.pix[i] {
			return false
		}
	}
	return true
}
