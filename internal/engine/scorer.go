package engine

import "math"

// Score orders candidate placements bottom-left: the smallest Y (closest to
// the truck front) wins, then the smallest X.
type Score struct {
	Y float64
	X float64
}

// Less reports whether s is strictly better than o.
func (s Score) Less(o Score) bool {
	if math.Abs(s.Y-o.Y) > eps {
		return s.Y < o.Y
	}
	if math.Abs(s.X-o.X) > eps {
		return s.X < o.X
	}
	return false
}

// score rates placing a w x h box flush to the origin of free.
// The second result is false when the box does not fit.
func score(free Rect, w, h float64) (Score, bool) {
	if !free.Fits(w, h) {
		return Score{}, false
	}
	return Score{Y: free.Y, X: free.X}, true
}

// candidate is one (free rectangle, orientation) pair.
type candidate struct {
	at      Rect
	w, h    float64
	rotated bool
	score   Score
}

// footprint is the rectangle the box occupies when placed.
func (c candidate) footprint() Rect {
	return Rect{X: c.at.X, Y: c.at.Y, W: c.w, H: c.h}
}

// tieBreak decides which orientation wins an exact score tie.
type tieBreak int

const (
	declaredFirst tieBreak = iota
	rotatedFirst
)

// tieBreaks lists the passes every strategy packs with.
var tieBreaks = [...]tieBreak{declaredFirst, rotatedFirst}

func (tb tieBreak) String() string {
	if tb == rotatedFirst {
		return "rotated_first"
	}
	return "declared_first"
}

// bestCandidate scans both orientations of a w x l box over every tracked
// rectangle. On an exact score tie the first candidate seen wins: rectangles
// in tracker order, the orientation preferred by tb before the other one.
func bestCandidate(fs *freeSpace, w, l float64, tb tieBreak) (candidate, bool) {
	var best candidate
	found := false

	orientations := [2]struct {
		w, h    float64
		rotated bool
	}{
		{w, l, false},
		{l, w, true},
	}
	square := math.Abs(w-l) <= eps
	if tb == rotatedFirst && !square {
		orientations[0], orientations[1] = orientations[1], orientations[0]
	}
	for i, o := range orientations {
		// a square has a single orientation
		if i == 1 && square {
			break
		}
		for r, fits := range fs.Candidates(o.w, o.h) {
			if !fits {
				continue
			}
			s, ok := score(r, o.w, o.h)
			if !ok {
				continue
			}
			if !found || s.Less(best.score) {
				best = candidate{at: r, w: o.w, h: o.h, rotated: o.rotated, score: s}
				found = true
			}
		}
	}
	return best, found
}
