// Command clipper previews remote videos and extracts clips from them,
// either from the terminal or as an HTTP service.
package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Global flags
var (
	flagCookiesFile string
	flagFFmpeg      string
	flagTimeout     time.Duration
	flagMaxBytes    int64
)

// userCfg holds the loaded configuration (defaults < config file < flags).
var userCfg *UserConfig

var rootCmd = &cobra.Command{
	Use:   "clipper",
	Short: "Preview remote videos and cut clips without re-encoding",
	Long: `Clipper resolves a video URL, previews its duration and extracts a
time range from it using ffmpeg stream copy. Restricted videos are
reachable by passing a Netscape cookies.txt file.`,
	PersistentPreRunE: loadUserConfig,
	SilenceUsage:      true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagCookiesFile, "cookies-file", "c", "", "Netscape cookies.txt for restricted videos")
	rootCmd.PersistentFlags().StringVar(&flagFFmpeg, "ffmpeg", "", "Path to the ffmpeg binary")
	rootCmd.PersistentFlags().DurationVarP(&flagTimeout, "timeout", "t", 0, "Overall request deadline (default: no deadline)")
	rootCmd.PersistentFlags().Int64Var(&flagMaxBytes, "max-bytes", 0, "Cap on the in-memory source buffer")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(clipCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadUserConfig merges configuration: defaults < config file < CLI flags.
func loadUserConfig(cmd *cobra.Command, args []string) error {
	var err error
	userCfg, err = LoadUserConfig()
	if err != nil {
		return err
	}
	if flagCookiesFile != "" {
		userCfg.CookiesFile = flagCookiesFile
	}
	if flagFFmpeg != "" {
		userCfg.FFmpegPath = flagFFmpeg
	}
	if flagTimeout > 0 {
		userCfg.Timeout = flagTimeout
	}
	if flagMaxBytes > 0 {
		userCfg.MaxDownloadBytes = flagMaxBytes
	}
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the clipper version",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("clipper " + Version)
	},
}
