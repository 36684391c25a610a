package splash

import "github.com/google/uuid"

// Context is the per-codec-instance state described in spec §3: Canvas,
// rulers, configuration, and the current bitstream cursor. One Context
// lives for the lifetime of one encode/decode stream (possibly many
// frames); there is no shared state between contexts (spec §5).
type Context struct {
	Width, Height int
	Params        Params
	Canvas        *Canvas

	xErr []uint32
	yErr []uint32

	// SessionID distinguishes this context's log lines from any other
	// context's running concurrently in the same process (spec §5:
	// "Multiple independent contexts may run in the same process with no
	// interference").
	SessionID uuid.UUID

	// samples accumulates the sample stream produced by the current
	// ModeEncode frame; drained by the Encoder Driver into the outgoing
	// packet.
	samples []byte

	// data/pos are the current ModeDecode frame's sample-stream cursor,
	// borrowed from the host for the duration of one Decode call (spec §5).
	data []byte
	pos  int

	// numPixels counts samples emitted so far this ModeEncode frame (spec §3).
	// ModeDecode does not increment it.
	numPixels int

	// frameIndex counts frames already encoded/decoded on this context. 0
	// on the first frame selects the key-frame (ppk) sample budget; >0
	// selects the steady-state (ppf) budget (spec §4.2 step 3).
	frameIndex int
}

// Open allocates a new Context (spec §5: "Resources owned by a context").
// The canvas starts mid gray and the rulers start zeroed; callers invoke
// Encoder/Decoder Driver entry points to drive a frame.
func Open(width, height int, params Params) (*Context, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	ctx := &Context{
		Width:     width,
		Height:    height,
		Params:    params,
		Canvas:    NewCanvas(width, height),
		xErr:      newRuler(width),
		yErr:      newRuler(height),
		SessionID: uuid.New(),
	}
	return ctx, nil
}

// Close releases the context's resources (spec §5). A closed Context must
// not be reused.
func (ctx *Context) Close() {
	ctx.Canvas = nil
	ctx.xErr = nil
	ctx.yErr = nil
	ctx.samples = nil
	ctx.data = nil
}

// resetFrame clears per-frame counters ahead of a new Encode/Decode call.
// The rulers themselves are overwritten by the caller immediately
// afterward (computed fresh on encode, read from the wire on decode) so
// they are not touched here.
func (ctx *Context) resetFrame() {
	ctx.samples = ctx.samples[:0]
	ctx.numPixels = 0
	ctx.data = nil
	ctx.pos = 0
}
