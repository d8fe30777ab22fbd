// Package trim cuts a time range out of a downloaded media buffer with
// ffmpeg stream copy. No re-encode happens; cuts land on keyframes.
package trim

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/famomatic/clipper/internal/types"
)

// ErrEmptyClip is returned when ffmpeg produces a zero-byte output file.
var ErrEmptyClip = errors.New("trim: extraction produced no output")

// Trimmer extracts a clip from an in-memory media buffer.
type Trimmer interface {
	Available() bool
	Extract(ctx context.Context, source []byte, rng types.TimeRange, container string) ([]byte, error)
}

// FFmpegTrimmer implements Trimmer using the ffmpeg command line tool.
type FFmpegTrimmer struct {
	Path string
}

// NewFFmpegTrimmer returns a new FFmpegTrimmer.
// If path is empty, it looks for "ffmpeg" in PATH.
func NewFFmpegTrimmer(path string) *FFmpegTrimmer {
	if path == "" {
		path = "ffmpeg"
	}
	return &FFmpegTrimmer{Path: path}
}

// Available checks if ffmpeg is executable.
func (f *FFmpegTrimmer) Available() bool {
	_, err := exec.LookPath(f.Path)
	return err == nil
}

// Extract writes source to a temp file, cuts rng out of it and returns the
// clip bytes. Both temp files are removed before returning.
func (f *FFmpegTrimmer) Extract(ctx context.Context, source []byte, rng types.TimeRange, container string) ([]byte, error) {
	if container == "" {
		container = "mp4"
	}

	in, err := os.CreateTemp("", "clipper-in-*."+container)
	if err != nil {
		return nil, fmt.Errorf("trim: %w", err)
	}
	defer os.Remove(in.Name())

	if _, err := in.Write(source); err != nil {
		in.Close()
		return nil, fmt.Errorf("trim: write source: %w", err)
	}
	if err := in.Close(); err != nil {
		return nil, fmt.Errorf("trim: %w", err)
	}

	out, err := os.CreateTemp("", "clipper-out-*."+container)
	if err != nil {
		return nil, fmt.Errorf("trim: %w", err)
	}
	outPath := out.Name()
	out.Close()
	defer os.Remove(outPath)

	cmd := exec.CommandContext(ctx, f.Path, buildArgs(in.Name(), outPath, rng)...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("trim: ffmpeg: %w", err)
	}

	clip, err := os.ReadFile(outPath)
	if err != nil {
		return nil, fmt.Errorf("trim: read output: %w", err)
	}
	if len(clip) == 0 {
		return nil, ErrEmptyClip
	}
	return clip, nil
}

// buildArgs places -ss before -i so ffmpeg seeks on the input side, then
// stream-copies the requested duration.
// ffmpeg -ss 5.000 -i in.mp4 -t 10.000 -c copy -y out.mp4
func buildArgs(inPath, outPath string, rng types.TimeRange) []string {
	return []string{
		"-ss", formatSeconds(rng.StartSeconds),
		"-i", inPath,
		"-t", formatSeconds(rng.Duration()),
		"-c", "copy",
		"-y", outPath,
	}
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
