package splash

import "testing"

// encodeDecodeRoundTrip runs one frame through an encoder Context and a
// freshly-primed decoder Context, asserting spec §8 property 1: the
// decoder's reconstructed frame equals the encoder's final canvas
// byte-for-byte on the RGB channels.
func encodeDecodeRoundTrip(t *testing.T, enc, dec *Context, target []byte) []byte {
	t.Helper()
	packet, keyFrame, err := enc.Encode(target)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !keyFrame {
		t.Fatal("Encode must always flag a key frame")
	}
	frame, keyFrame, err := dec.Decode(packet)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !keyFrame {
		t.Fatal("Decode must always flag a key frame")
	}
	if !enc.Canvas.Equal(dec.Canvas) {
		t.Fatal("decoder canvas does not match encoder canvas after round trip")
	}
	return frame
}

func TestRoundTripGradient(t *testing.T) {
	width, height := 16, 16
	params := Params{PPF: 2, PPK: 1, Radius: 3}
	enc, err := Open(width, height, params)
	if err != nil {
		t.Fatalf("Open(enc): %v", err)
	}
	dec, err := Open(width, height, params)
	if err != nil {
		t.Fatalf("Open(dec): %v", err)
	}
	target := rgbxFrame(width, height, func(x, y int) (byte, byte, byte) {
		return byte(x * 16 % 256), byte(y * 16 % 256), byte((x ^ y) % 256)
	})
	encodeDecodeRoundTrip(t, enc, dec, target)
}

func TestTwoFrameContinuity(t *testing.T) {
	// spec §8 "Two-frame continuity" scenario.
	width, height := 16, 16
	params := Params{PPF: 2, PPK: 1, Radius: 3}
	enc, err := Open(width, height, params)
	if err != nil {
		t.Fatalf("Open(enc): %v", err)
	}
	dec, err := Open(width, height, params)
	if err != nil {
		t.Fatalf("Open(dec): %v", err)
	}

	frame0 := rgbxFrame(width, height, func(x, y int) (byte, byte, byte) {
		return byte(x * 10), byte(y * 10), 128
	})
	encodeDecodeRoundTrip(t, enc, dec, frame0)

	frame1 := rgbxFrame(width, height, func(x, y int) (byte, byte, byte) {
		return byte(255 - x*10), byte(255 - y*10), 64
	})
	encodeDecodeRoundTrip(t, enc, dec, frame1)
}

func TestLosslessModeExactReconstruction(t *testing.T) {
	// spec §8 "Lossless mode" scenario.
	width, height := 4, 4
	params := Params{PPF: 1, PPK: 1, Radius: 1}
	enc, err := Open(width, height, params)
	if err != nil {
		t.Fatalf("Open(enc): %v", err)
	}
	dec, err := Open(width, height, params)
	if err != nil {
		t.Fatalf("Open(dec): %v", err)
	}
	target := rgbxFrame(width, height, func(x, y int) (byte, byte, byte) {
		return byte(16 * x), byte(16 * y), 0
	})

	frame := encodeDecodeRoundTrip(t, enc, dec, target)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			o := (y*width + x) * 4
			if frame[o] != target[o] || frame[o+1] != target[o+1] || frame[o+2] != target[o+2] {
				t.Fatalf("pixel (%d,%d) = (%d,%d,%d), want (%d,%d,%d)",
					x, y, frame[o], frame[o+1], frame[o+2], target[o], target[o+1], target[o+2])
			}
		}
	}
	for i, v := range enc.xErr {
		if v != 0 {
			t.Errorf("xErr[%d] = %d, want 0 after lossless convergence", i, v)
		}
	}
	for j, v := range enc.yErr {
		if v != 0 {
			t.Errorf("yErr[%d] = %d, want 0 after lossless convergence", j, v)
		}
	}
}

func TestProgressOrTermination(t *testing.T) {
	ctx, err := Open(4, 4, DefaultParams())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	before := ctx.Canvas.Export()

	done, err := ctx.updateLines(ModeDecode, nil)
	if err != nil {
		t.Fatalf("updateLines: %v", err)
	}
	if done {
		t.Fatal("updateLines should report no progress when both rulers are zero")
	}
	after := ctx.Canvas.Export()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("canvas changed despite no progress at byte %d", i)
		}
	}
}
