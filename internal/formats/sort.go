package formats

import (
	"sort"

	"github.com/famomatic/clipper/internal/types"
)

// SortByBest orders formats by Resolution -> FPS -> Bitrate, best first.
// This is the provider-quality ordering the selector relies on.
func SortByBest(formats []types.FormatInfo) {
	sort.SliceStable(formats, func(i, j int) bool {
		if formats[i].Height != formats[j].Height {
			return formats[i].Height > formats[j].Height
		}
		if formats[i].FPS != formats[j].FPS {
			return formats[i].FPS > formats[j].FPS
		}
		return formats[i].Bitrate > formats[j].Bitrate
	})
}
