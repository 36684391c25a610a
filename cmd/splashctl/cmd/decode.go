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

func newDecodeCmd(ctx context.Context) *cobra.Command {
	var (
		width, height int
		radius        int
		out           string
	)

	cmd := &cobra.Command{
		Use:   "decode <splash-packet>",
		Short: "decode one splash packet into a raw interleaved RGBA frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.New()
			slog.InfoContext(ctx, "decode starting", "run", runID, "width", width, "height", height)

			packet, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read packet: %w", err)
			}

			c, err := splash.Open(width, height, splash.Params{PPF: 1, PPK: 1, Radius: radius})
			if err != nil {
				return fmt.Errorf("open codec: %w", err)
			}
			defer c.Close()

			frame, keyFrame, err := c.Decode(packet)
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}
			slog.InfoContext(ctx, "decode complete", "run", runID, "bytes", len(frame), "keyFrame", keyFrame)

			if out == "" {
				out = args[0] + ".rgba"
			}
			return os.WriteFile(out, frame, 0o644)
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "frame width (required)")
	cmd.Flags().IntVar(&height, "height", 0, "frame height (required)")
	cmd.Flags().IntVar(&radius, "radius", splash.DefaultParams().Radius, "brush radius (overridden by the packet's own header, spec §6)")
	cmd.Flags().StringVar(&out, "out", "", "output frame path (default: <input>.rgba)")
	cmd.MarkFlagRequired("width")
	cmd.MarkFlagRequired("height")

	return cmd
}
