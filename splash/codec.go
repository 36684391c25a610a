package splash

import (
	"fmt"

	"github.com/cocosip/splash-codec/codec"
)

const (
	// uid identifies this codec family in the generic registry.
	uid  = "splash-progressive-v1"
	name = "Splash Progressive"
)

var _ codec.Codec = (*Codec)(nil)

// Codec adapts a Splash Context to the module's generic codec.Codec
// interface (spec §6's host interface, generalized from the teacher's
// jpeg2000/lossless.Codec wrapper).
//
// Unlike the teacher's JPEG 2000 codec, which is stateless and resolution
// agnostic per call, Splash carries a Canvas and error rulers that evolve
// across frames within one stream (spec §5 "Ordering guarantees"). A Codec
// is therefore tied to one Context for its whole lifetime: construct one
// per stream with NewCodec, not as a single process-wide singleton.
type Codec struct {
	ctx *Context
}

// NewCodec opens a Context for one width×height stream and wraps it in the
// generic Codec interface.
func NewCodec(width, height int, params Params) (*Codec, error) {
	ctx, err := Open(width, height, params)
	if err != nil {
		return nil, err
	}
	return &Codec{ctx: ctx}, nil
}

// Close releases the underlying Context.
func (c *Codec) Close() {
	c.ctx.Close()
}

// UID returns this codec family's identifier.
func (c *Codec) UID() string { return uid }

// Name returns a human-readable name.
func (c *Codec) Name() string { return name }

// Encode implements codec.Codec by running the Encoder Driver for one frame.
func (c *Codec) Encode(params codec.EncodeParams) ([]byte, error) {
	if params.Width != c.ctx.Width || params.Height != c.ctx.Height {
		return nil, fmt.Errorf("splash: frame is %dx%d, codec opened for %dx%d: %w",
			params.Width, params.Height, c.ctx.Width, c.ctx.Height, ErrInvalidDimensions)
	}
	if want := params.Width * params.Height * 4; len(params.Frame) != want {
		return nil, fmt.Errorf("splash: frame buffer is %d bytes, want %d for %dx%d RGBX: %w",
			len(params.Frame), want, params.Width, params.Height, ErrInvalidDimensions)
	}
	packet, _, err := c.ctx.Encode(params.Frame)
	if err != nil {
		return nil, err
	}
	return packet, nil
}

// Decode implements codec.Codec by running the Decoder Driver for one
// packet. The packet's own header carries no width/height (spec §6's wire
// layout has none): Splash is a streaming codec tied to one resolution for
// its Context's lifetime, so the resolution must already be known from
// NewCodec, exactly as spec §6's Open(width, height, params) requires.
func (c *Codec) Decode(data []byte) (*codec.DecodeResult, error) {
	frame, keyFrame, err := c.ctx.Decode(data)
	if err != nil {
		return nil, err
	}
	return &codec.DecodeResult{
		Frame:    frame,
		Width:    c.ctx.Width,
		Height:   c.ctx.Height,
		KeyFrame: keyFrame,
	}, nil
}
