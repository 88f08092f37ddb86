package layout

// Track is the resolved position and size of one row or column.
type Track struct {
	Offset int
	Size   int
}

// End returns the offset just past the track (exclusive).
func (t Track) End() int {
	return t.Offset + t.Size
}

// TrackSpec is the input for resolving a single track.
type TrackSpec struct {
	Size Value

	// Content is the natural size of the content placed only in this track.
	// Auto tracks take exactly this size.
	Content int

	// Min and Max constrain the resolved size. Max of 0 means unbounded.
	Min int
	Max int
}

// ResolveTracks computes offsets and sizes for a sequence of tracks laid end
// to end within available cells, separated by gap.
//
// Fixed and auto tracks are sized first. Whatever is left is split among star
// tracks in proportion to their weights; cells lost to integer rounding are
// handed out one at a time starting from the first star track. Star tracks
// never receive negative space, so an over-committed axis simply overflows.
func ResolveTracks(specs []TrackSpec, available, gap int) []Track {
	tracks := make([]Track, len(specs))
	if len(specs) == 0 {
		return tracks
	}

	// Phase 1: size fixed and auto tracks, total the star weights
	used := gap * (len(specs) - 1)
	totalWeight := 0.0
	for i, spec := range specs {
		switch spec.Size.Unit {
		case UnitStar:
			if spec.Size.Amount > 0 {
				totalWeight += spec.Size.Amount
			}
			continue
		case UnitFixed:
			tracks[i].Size = clampTrack(spec.Size.Resolve(available, 0), spec)
		default:
			tracks[i].Size = clampTrack(spec.Content, spec)
		}
		used += tracks[i].Size
	}

	// Phase 2: distribute free space across star tracks by weight
	free := max(0, available-used)
	distributed := 0
	for i, spec := range specs {
		if !spec.Size.IsStar() {
			continue
		}
		share := 0
		if totalWeight > 0 && spec.Size.Amount > 0 {
			share = int(float64(free) * spec.Size.Amount / totalWeight)
		}
		tracks[i].Size = clampTrack(share, spec)
		distributed += tracks[i].Size
	}

	// Phase 3: hand out the rounding remainder
	for remainder := free - distributed; remainder > 0; {
		progressed := false
		for i, spec := range specs {
			if remainder == 0 {
				break
			}
			if !spec.Size.IsStar() || spec.Size.Amount <= 0 {
				continue
			}
			if spec.Max > 0 && tracks[i].Size >= spec.Max {
				continue
			}
			tracks[i].Size++
			remainder--
			progressed = true
		}
		if !progressed {
			break
		}
	}

	// Phase 4: position tracks
	offset := 0
	for i := range tracks {
		tracks[i].Offset = offset
		offset += tracks[i].Size + gap
	}

	return tracks
}

// clampTrack applies the track's min/max constraints and floors at zero.
func clampTrack(v int, spec TrackSpec) int {
	maxVal := spec.Max
	if maxVal <= 0 {
		maxVal = int(^uint(0) >> 1)
	}
	return max(0, clamp(v, spec.Min, maxVal))
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins (matches CSS behavior).
func clamp(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}

// Span returns the combined extent of tracks[start:start+count], including
// the gaps between them. Out-of-range spans are clipped to the track list.
func Span(tracks []Track, start, count int) Track {
	if len(tracks) == 0 || count <= 0 {
		return Track{}
	}
	start = clamp(start, 0, len(tracks)-1)
	end := clamp(start+count, start+1, len(tracks))
	first := tracks[start]
	last := tracks[end-1]
	return Track{Offset: first.Offset, Size: last.End() - first.Offset}
}
