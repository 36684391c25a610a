package splash

import "log"

// Decode runs the Decoder Driver for one packet (spec §4.3): parses the
// header and rulers, replays the Splash Engine against the sample stream,
// and exports the reconstructed Canvas. A malformed packet (bad magic,
// unsupported version, wrong header length, or a packet too short to hold
// its declared rulers) is fatal and the canvas is not exported (spec §7).
// A truncated sample stream is not fatal: Decode logs a warning and still
// returns the partially converged canvas.
func (ctx *Context) Decode(packet []byte) (frame []byte, keyFrame bool, err error) {
	ctx.resetFrame()

	pp, err := parsePacket(packet, ctx.Width, ctx.Height)
	if err != nil {
		return nil, false, err
	}

	ctx.Params.Radius = pp.radius
	ctx.xErr = pp.xErr
	ctx.yErr = pp.yErr
	ctx.data = pp.sampleData
	ctx.pos = 0

	incomplete := false
	for ctx.pos < len(ctx.data) {
		done, err := ctx.updateLines(ModeDecode, nil)
		if err != nil {
			incomplete = true
			break
		}
		if !done {
			break
		}
	}
	if ctx.pos != len(ctx.data) {
		incomplete = true
	}
	if incomplete {
		log.Printf("splash: session %s incomplete scan line", ctx.SessionID)
	}

	frame = ctx.Canvas.Export()
	ctx.frameIndex++
	return frame, true, nil
}
