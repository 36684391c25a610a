package splash

import "log"

// Encode runs the Encoder Driver for one frame (spec §4.2): it computes
// fresh error rulers against target, drives the Splash Engine until the
// frame's sample budget is spent, and returns the wire packet. target must
// be the host's opaque 32-bit RGB(padding) frame buffer, Width*Height*4 bytes.
//
// Every packet this driver emits is flagged as a key frame (spec §6): the
// codec has no inter-frame dependency visible to the host, even though the
// Canvas itself evolves across calls on the same Context.
func (ctx *Context) Encode(target []byte) (packet []byte, keyFrame bool, err error) {
	ctx.resetFrame()

	ctx.xErr = computeLineError(ctx.Canvas, target, ctx.Width, ctx.Height, columnAxis)
	ctx.yErr = computeLineError(ctx.Canvas, target, ctx.Width, ctx.Height, rowAxis)

	// The wire format carries the rulers as they stood right after step 1-2
	// (spec §4.2), before the engine loop below starts rebalancing them
	// toward zero: this is what lets an independent decoder replay the same
	// selection sequence from the same starting point.
	initialXErr := append([]uint32(nil), ctx.xErr...)
	initialYErr := append([]uint32(nil), ctx.yErr...)

	maxPixels := ctx.frameSampleBudget()

	for {
		done, err := ctx.updateLines(ModeEncode, target)
		if err != nil {
			return nil, false, err
		}
		if !done {
			break
		}
		if ctx.numPixels >= maxPixels {
			break
		}
	}

	packet = encodeHeader(ctx.Params.Radius)
	packet = encodeRuler(packet, initialXErr)
	packet = encodeRuler(packet, initialYErr)
	packet = append(packet, ctx.samples...)

	if ctx.Params.PPF == 1 {
		ctx.verifyLossless(target)
	}

	ctx.frameIndex++
	return packet, true, nil
}

// frameSampleBudget implements spec §4.2 step 3: round(W*H/ppk) on the
// context's first frame, round(W*H/ppf) on every frame after.
func (ctx *Context) frameSampleBudget() int {
	divisor := ctx.Params.PPF
	if ctx.frameIndex == 0 {
		divisor = ctx.Params.PPK
	}
	n := float64(ctx.Width*ctx.Height) / divisor
	return int(roundHalfToEven(float32(n)))
}

type lineAxis int

const (
	columnAxis lineAxis = iota
	rowAxis
)

// computeLineError implements spec §4.2 steps 1-2: the per-column (or
// per-row) sum of absolute per-channel differences between the current
// Canvas and target, clamped to the 24-bit ruler ceiling.
func computeLineError(canvas *Canvas, target []byte, width, height int, axis lineAxis) []uint32 {
	outer, inner := width, height
	if axis == rowAxis {
		outer, inner = height, width
	}

	ruler := make([]uint32, outer)
	for o := 0; o < outer; o++ {
		var sum uint32
		for n := 0; n < inner; n++ {
			var x, y int
			if axis == columnAxis {
				x, y = o, n
			} else {
				x, y = n, o
			}
			cr, cg, cb := canvas.At(x, y)
			to := (y*width + x) * 4
			tr, tg, tb := target[to], target[to+1], target[to+2]
			sum += absDiff(cr, tr) + absDiff(cg, tg) + absDiff(cb, tb)
			if sum > maxRulerValue {
				sum = maxRulerValue
			}
		}
		ruler[o] = sum
	}
	return ruler
}

func absDiff(a, b byte) uint32 {
	if a > b {
		return uint32(a - b)
	}
	return uint32(b - a)
}

// verifyLossless implements spec §4.2 step 6 and §7's "lossless
// verification miss" error kind: a non-fatal warning naming the count of
// mismatched channels.
func (ctx *Context) verifyLossless(target []byte) {
	misses := 0
	for y := 0; y < ctx.Height; y++ {
		for x := 0; x < ctx.Width; x++ {
			cr, cg, cb := ctx.Canvas.At(x, y)
			to := (y*ctx.Width + x) * 4
			if cr != target[to] {
				misses++
			}
			if cg != target[to+1] {
				misses++
			}
			if cb != target[to+2] {
				misses++
			}
		}
	}
	if misses > 0 {
		log.Printf("splash: session %s lossless verification miss: %d mismatched channels", ctx.SessionID, misses)
	}
}
