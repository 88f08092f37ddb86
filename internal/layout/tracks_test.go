package layout

import "testing"

func sizes(tracks []Track) []int {
	out := make([]int, len(tracks))
	for i, t := range tracks {
		out[i] = t.Size
	}
	return out
}

func offsets(tracks []Track) []int {
	out := make([]int, len(tracks))
	for i, t := range tracks {
		out[i] = t.Offset
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestResolveTracks(t *testing.T) {
	type tc struct {
		specs     []TrackSpec
		available int
		gap       int
		sizes     []int
		offsets   []int
	}

	tests := map[string]tc{
		"empty": {
			specs:     nil,
			available: 10,
			sizes:     []int{},
			offsets:   []int{},
		},
		"auto tracks take content": {
			specs: []TrackSpec{
				{Size: Auto(), Content: 3},
				{Size: Auto(), Content: 5},
			},
			available: 20,
			sizes:     []int{3, 5},
			offsets:   []int{0, 3},
		},
		"star fills the remainder": {
			specs: []TrackSpec{
				{Size: Auto(), Content: 3},
				{Size: Star(1)},
				{Size: Auto(), Content: 4},
			},
			available: 20,
			sizes:     []int{3, 13, 4},
			offsets:   []int{0, 3, 16},
		},
		"weighted stars": {
			specs: []TrackSpec{
				{Size: Star(1)},
				{Size: Star(2)},
			},
			available: 9,
			sizes:     []int{3, 6},
			offsets:   []int{0, 3},
		},
		"rounding remainder goes to first star": {
			specs: []TrackSpec{
				{Size: Star(1)},
				{Size: Star(1)},
			},
			available: 5,
			sizes:     []int{3, 2},
			offsets:   []int{0, 3},
		},
		"fixed and gap": {
			specs: []TrackSpec{
				{Size: Fixed(4)},
				{Size: Star(1)},
				{Size: Fixed(2)},
			},
			available: 12,
			gap:       1,
			sizes:     []int{4, 4, 2},
			offsets:   []int{0, 5, 10},
		},
		"overcommitted axis leaves star empty": {
			specs: []TrackSpec{
				{Size: Fixed(8)},
				{Size: Star(1)},
			},
			available: 5,
			sizes:     []int{8, 0},
			offsets:   []int{0, 8},
		},
		"star max caps and passes remainder on": {
			specs: []TrackSpec{
				{Size: Star(1), Max: 2},
				{Size: Star(1)},
			},
			available: 10,
			sizes:     []int{2, 8},
			offsets:   []int{0, 2},
		},
		"star min": {
			specs: []TrackSpec{
				{Size: Fixed(10)},
				{Size: Star(1), Min: 2},
			},
			available: 10,
			sizes:     []int{10, 2},
			offsets:   []int{0, 10},
		},
		"zero weight star gets nothing": {
			specs: []TrackSpec{
				{Size: Star(0)},
				{Size: Star(1)},
			},
			available: 6,
			sizes:     []int{0, 6},
			offsets:   []int{0, 0},
		},
		"auto min max": {
			specs: []TrackSpec{
				{Size: Auto(), Content: 1, Min: 3},
				{Size: Auto(), Content: 9, Max: 4},
			},
			available: 20,
			sizes:     []int{3, 4},
			offsets:   []int{0, 3},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := ResolveTracks(tt.specs, tt.available, tt.gap)
			if !equalInts(sizes(got), tt.sizes) {
				t.Errorf("sizes = %v, want %v", sizes(got), tt.sizes)
			}
			if !equalInts(offsets(got), tt.offsets) {
				t.Errorf("offsets = %v, want %v", offsets(got), tt.offsets)
			}
		})
	}
}

func TestResolveTracks_StarNeverExceedsAvailable(t *testing.T) {
	for available := 0; available < 40; available++ {
		specs := []TrackSpec{
			{Size: Star(1)},
			{Size: Star(3)},
			{Size: Star(7)},
		}
		got := ResolveTracks(specs, available, 0)
		total := 0
		for _, tr := range got {
			total += tr.Size
		}
		if total != available {
			t.Errorf("available %d: total star size = %d", available, total)
		}
	}
}

func TestSpan(t *testing.T) {
	tracks := ResolveTracks([]TrackSpec{
		{Size: Fixed(3)},
		{Size: Fixed(4)},
		{Size: Fixed(5)},
	}, 100, 1)

	type tc struct {
		start, count int
		expected     Track
	}

	tests := map[string]tc{
		"single":         {start: 1, count: 1, expected: Track{Offset: 4, Size: 4}},
		"two with gap":   {start: 0, count: 2, expected: Track{Offset: 0, Size: 8}},
		"clipped at end": {start: 2, count: 5, expected: Track{Offset: 9, Size: 5}},
		"zero count":     {start: 0, count: 0, expected: Track{}},
		"start past end": {start: 7, count: 1, expected: Track{Offset: 9, Size: 5}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Span(tracks, tt.start, tt.count); got != tt.expected {
				t.Errorf("Span(%d, %d) = %+v, want %+v", tt.start, tt.count, got, tt.expected)
			}
		})
	}
}
