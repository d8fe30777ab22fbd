package formats

import (
	"mime"
	"strconv"
	"strings"

	"github.com/famomatic/clipper/internal/innertube"
	"github.com/famomatic/clipper/internal/types"
)

// Parse normalizes the formats from a player response. Formats without a
// direct URL carry a signature cipher and are flagged Ciphered.
func Parse(resp *innertube.PlayerResponse) []types.FormatInfo {
	if resp == nil {
		return nil
	}

	var out []types.FormatInfo
	extract := func(raw []innertube.Format) {
		for _, f := range raw {
			parsed := types.FormatInfo{
				Itag:         f.Itag,
				URL:          f.URL,
				MimeType:     f.MimeType,
				Container:    containerOf(f.MimeType),
				Bitrate:      pickBitrate(f.AverageBitrate, f.Bitrate),
				Width:        f.Width,
				Height:       f.Height,
				FPS:          f.FPS,
				Quality:      f.Quality,
				QualityLabel: f.QualityLabel,
				HasVideo:     strings.HasPrefix(f.MimeType, "video/"),
			}
			if f.URL == "" {
				parsed.SignatureCipher = firstNonEmpty(f.SignatureCipher, f.Cipher)
				parsed.Ciphered = parsed.SignatureCipher != ""
			}
			parsed.HasAudio = strings.HasPrefix(f.MimeType, "audio/") ||
				(parsed.HasVideo && f.AudioQuality != "")
			if f.ContentLength != "" {
				parsed.ContentLength, _ = strconv.ParseInt(f.ContentLength, 10, 64)
			}
			out = append(out, parsed)
		}
	}

	extract(resp.StreamingData.Formats)
	extract(resp.StreamingData.AdaptiveFormats)
	return out
}

// containerOf maps a format MIME type to its container extension.
func containerOf(mimeType string) string {
	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return "mp4"
	}
	parts := strings.SplitN(mediaType, "/", 2)
	if len(parts) != 2 || parts[1] == "" {
		return "mp4"
	}
	switch parts[1] {
	case "mp4", "webm", "3gpp":
		if parts[1] == "3gpp" {
			return "3gp"
		}
		return parts[1]
	default:
		return "mp4"
	}
}

func pickBitrate(average, nominal int) int {
	if average > 0 {
		return average
	}
	return nominal
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
