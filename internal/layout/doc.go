// Package layout implements the track-sizing engine behind grid layouts.
//
// A track is one row or one column. Each track carries a sizing [Value]:
// automatic (sized to its content), fixed (an absolute number of terminal
// cells), or star (a weighted share of whatever space the other tracks leave).
// Types are re-exported through the root grid package for public consumption.
//
// The main entry point is [ResolveTracks], which turns a list of [TrackSpec]
// into absolute [Track] offsets and sizes along one axis.
package layout
