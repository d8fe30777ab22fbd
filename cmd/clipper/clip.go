package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/famomatic/clipper/internal/httputil"
)

var flagOutput string

var clipCmd = &cobra.Command{
	Use:   "clip <url> <start-seconds> <end-seconds>",
	Short: "Cut [start, end) out of a video and save it to disk",
	Args:  cobra.ExactArgs(3),
	RunE:  clipRun,
}

func init() {
	clipCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file (default: derived from the video title)")
}

func clipRun(cmd *cobra.Command, args []string) error {
	start, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid start %q: %w", args[1], err)
	}
	end, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid end %q: %w", args[2], err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, creds, err := buildClient()
	if err != nil {
		return err
	}

	result, err := c.Clip(ctx, args[0], start, end, creds)
	if err != nil {
		return err
	}

	outPath := flagOutput
	if outPath == "" {
		outPath = filepath.Join(userCfg.OutputDir, httputil.SanitizeFilename(result.Filename))
	}
	if err := os.WriteFile(outPath, result.Data, 0o644); err != nil {
		return fmt.Errorf("writing clip: %w", err)
	}

	cmd.Printf("wrote %s (%d bytes)\n", outPath, len(result.Data))
	return nil
}
