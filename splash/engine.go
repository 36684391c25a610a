package splash

import "math"

// Mode selects which half of the shared canvas-evolution engine runs: the
// encoder supplies samples from a target image, the decoder consumes them
// from the bitstream. Both modes execute the identical selection,
// rebalancing and blending arithmetic (spec §4.1), which is what makes the
// two sides converge to the same canvas byte-for-byte (spec §5).
type Mode int

const (
	// ModeEncode reads samples from the target frame and appends them to
	// Context.samples.
	ModeEncode Mode = iota
	// ModeDecode consumes samples from Context.data at Context.pos.
	ModeDecode
)

// updateLines performs one iteration of the Splash Engine (spec §4.1). It
// returns done=false only when both rulers are entirely zero; target is
// read only in ModeEncode and must be the 32-bit RGB(padding) target frame
// for the current frame.
func (ctx *Context) updateLines(mode Mode, target []byte) (done bool, err error) {
	worstX, wx := maxOf(ctx.xErr)
	worstY, wy := maxOf(ctx.yErr)
	if worstX+worstY == 0 {
		return false, nil
	}

	if worstX > worstY {
		if err := ctx.runColumnMajor(mode, target, wx); err != nil {
			return true, err
		}
	} else {
		if err := ctx.runRowMajor(mode, target, wy); err != nil {
			return true, err
		}
	}
	return true, nil
}

// maxOf returns the maximum value in ruler and the index of its first
// occurrence (spec §4.1 step 1).
func maxOf(ruler []uint32) (max uint32, idx int) {
	for i, v := range ruler {
		if v > max {
			max = v
			idx = i
		}
	}
	return max, idx
}

// runColumnMajor handles a column-pivot iteration: pivot column i=wx,
// perpendicular walk over exact rows (spec §4.1 steps 3-5).
func (ctx *Context) runColumnMajor(mode Mode, target []byte, i int) error {
	minI, maxI := expandRange(ctx.xErr, i, ctx.Params.Radius)
	maxError := ctx.xErr[i]
	rebalance(ctx.xErr, i, minI, maxI, ctx.Params.Radius)

	for j := 0; j < ctx.Height; j++ {
		if ctx.yErr[j] != 0 {
			continue
		}
		sR, sG, sB, err := ctx.obtainSample(mode, target, i, j)
		if err != nil {
			return err
		}
		minJ, maxJ := expandRange(ctx.yErr, j, ctx.Params.Radius)
		ctx.splat(i, j, minI, maxI, minJ, maxJ, maxError, sR, sG, sB)
	}
	return nil
}

// runRowMajor is the axis-swapped dual of runColumnMajor (spec §4.1, "Row-major
// mode is the axis-swapped dual").
func (ctx *Context) runRowMajor(mode Mode, target []byte, j int) error {
	minJ, maxJ := expandRange(ctx.yErr, j, ctx.Params.Radius)
	maxError := ctx.yErr[j]
	rebalance(ctx.yErr, j, minJ, maxJ, ctx.Params.Radius)

	for i := 0; i < ctx.Width; i++ {
		if ctx.xErr[i] != 0 {
			continue
		}
		sR, sG, sB, err := ctx.obtainSample(mode, target, i, j)
		if err != nil {
			return err
		}
		minI, maxI := expandRange(ctx.xErr, i, ctx.Params.Radius)
		ctx.splat(i, j, minI, maxI, minJ, maxJ, maxError, sR, sG, sB)
	}
	return nil
}

// obtainSample implements spec §4.1 step 5(a): in encode mode it reads the
// target pixel and appends it to the sample stream, counting it against the
// frame's sample budget (spec §3's numPixels, spec §4.2 step 4); in decode
// mode it consumes the next three bytes of the bitstream, which is sized by
// the incoming packet rather than a running count.
func (ctx *Context) obtainSample(mode Mode, target []byte, i, j int) (r, g, b byte, err error) {
	if mode == ModeEncode {
		o := (j*ctx.Width + i) * 4
		r, g, b = target[o], target[o+1], target[o+2]
		ctx.samples = append(ctx.samples, r, g, b)
		ctx.numPixels++
		return r, g, b, nil
	}

	if ctx.pos+3 > len(ctx.data) {
		return 0, 0, 0, errTruncatedStream
	}
	r, g, b = ctx.data[ctx.pos], ctx.data[ctx.pos+1], ctx.data[ctx.pos+2]
	ctx.pos += 3
	return r, g, b, nil
}

// splat implements spec §4.1 step 5(c): blend one sample into the
// rectangular neighborhood [minI..maxI]×[minJ..maxJ] around cross point (i, j).
func (ctx *Context) splat(i, j, minI, maxI, minJ, maxJ int, maxError uint32, sR, sG, sB byte) {
	radius := float32(ctx.Params.Radius)
	for jj := minJ; jj <= maxJ; jj++ {
		dy := float32(jj - j)
		for ii := minI; ii <= maxI; ii++ {
			dx := float32(ii - i)
			dist := float32(math.Sqrt(float64(dx*dx + dy*dy)))
			fillAlpha := 1 - dist/radius
			if fillAlpha <= 0 {
				continue
			}

			xerr := float32(ctx.xErr[ii]) / float32(maxError)
			yerr := float32(ctx.yErr[jj]) / float32(maxError)
			xyerr := (xerr + yerr) / 2
			alpha := clampOrdered(256-roundHalfToEven(256*xyerr), 0, 256)

			oR, oG, oB := ctx.Canvas.At(ii, jj)
			nR := blendChannel(sR, oR, alpha)
			nG := blendChannel(sG, oG, alpha)
			nB := blendChannel(sB, oB, alpha)
			ctx.Canvas.Set(ii, jj, nR, nG, nB)
		}
	}
}

// blendChannel implements spec §4.1 step 5(c)'s integer blend:
// (s*alpha + o*(256-alpha)) >> 8, an unsigned shift.
func blendChannel(s, o byte, alpha int64) byte {
	return byte((uint32(s)*uint32(alpha) + uint32(o)*uint32(256-alpha)) >> 8)
}
