package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/famomatic/clipper/client"
	"github.com/famomatic/clipper/internal/cookies"
	"github.com/famomatic/clipper/internal/types"
)

var previewCmd = &cobra.Command{
	Use:   "preview <url>",
	Short: "Show duration, title and description for a video URL",
	Args:  cobra.ExactArgs(1),
	RunE:  previewRun,
}

func previewRun(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, creds, err := buildClient()
	if err != nil {
		return err
	}

	result, err := c.Preview(ctx, args[0], creds)
	if err != nil {
		return err
	}

	cmd.Printf("id:       %s\n", result.VideoID)
	cmd.Printf("duration: %s\n", formatDuration(result.DurationSeconds))
	if result.Title != "" {
		cmd.Printf("title:    %s\n", result.Title)
	}
	if result.Description != "" {
		cmd.Printf("description:\n%s\n", result.Description)
	}
	return nil
}

// buildClient assembles the pipeline client and optional credentials from
// the merged CLI configuration.
func buildClient() (*client.Client, types.Credentials, error) {
	var creds types.Credentials
	if userCfg.CookiesFile != "" {
		var err error
		creds, err = cookies.LoadFile(userCfg.CookiesFile)
		if err != nil {
			return nil, "", fmt.Errorf("loading cookies: %w", err)
		}
	}

	c := client.New(client.Config{
		RequestTimeout:   userCfg.Timeout,
		MaxDownloadBytes: userCfg.MaxDownloadBytes,
		FFmpegPath:       userCfg.FFmpegPath,
	})
	return c, creds, nil
}

func formatDuration(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
