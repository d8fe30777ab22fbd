package formats

import "github.com/famomatic/clipper/internal/types"

// SelectBest picks the highest-quality progressive format. Progressive
// formats carry audio and video in one contiguous file, which is what the
// trim stage requires. An empty candidate set is an error, never a default.
func SelectBest(formats []types.FormatInfo) (types.FormatInfo, error) {
	candidates := make([]types.FormatInfo, 0, len(formats))
	for _, f := range formats {
		if f.Progressive() {
			candidates = append(candidates, f)
		}
	}
	if len(candidates) == 0 {
		return types.FormatInfo{}, types.ErrNoFormats
	}
	SortByBest(candidates)
	return candidates[0], nil
}
