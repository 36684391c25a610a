package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cocosip/splash-codec/splash"
)

func newEncodeCmd(ctx context.Context) *cobra.Command {
	var (
		width, height int
		radius        int
		ppf, ppk      float64
		out           string
	)

	cmd := &cobra.Command{
		Use:   "encode <raw-rgba-frame>",
		Short: "encode one raw interleaved RGBA frame into a splash packet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.New()
			slog.InfoContext(ctx, "encode starting", "run", runID, "width", width, "height", height)

			frame, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read frame: %w", err)
			}
			if len(frame) != width*height*4 {
				return fmt.Errorf("frame is %d bytes, want %d for %dx%d RGBA", len(frame), width*height*4, width, height)
			}

			c, err := splash.Open(width, height, splash.Params{PPF: ppf, PPK: ppk, Radius: radius})
			if err != nil {
				return fmt.Errorf("open codec: %w", err)
			}
			defer c.Close()

			packet, keyFrame, err := c.Encode(frame)
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			slog.InfoContext(ctx, "encode complete", "run", runID, "bytes", len(packet), "keyFrame", keyFrame)

			if out == "" {
				out = args[0] + ".splash"
			}
			return os.WriteFile(out, packet, 0o644)
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "frame width (required)")
	cmd.Flags().IntVar(&height, "height", 0, "frame height (required)")
	cmd.Flags().IntVar(&radius, "radius", splash.DefaultParams().Radius, "brush radius")
	cmd.Flags().Float64Var(&ppf, "ppf", splash.DefaultParams().PPF, "pixels-per-frame divisor")
	cmd.Flags().Float64Var(&ppk, "ppk", splash.DefaultParams().PPK, "pixels-per-key-frame divisor")
	cmd.Flags().StringVar(&out, "out", "", "output packet path (default: <input>.splash)")
	cmd.MarkFlagRequired("width")
	cmd.MarkFlagRequired("height")

	return cmd
}
