package engine

import (
	"fmt"
	"iter"

	"github.com/guttosm/truckload-service/internal/domain/model"
)

// freeSpace tracks the maximal empty rectangles of one truck floor.
// Surviving rectangles may overlap each other, but none is degenerate and
// none is contained in another.
type freeSpace struct {
	floor Rect
	rects []Rect
}

// newFreeSpace seeds the tracker with a single rectangle covering the floor.
func newFreeSpace(truck model.Truck) *freeSpace {
	floor := Rect{W: truck.Width, H: truck.Length}
	rects := make([]Rect, 1, 16)
	rects[0] = floor
	return &freeSpace{floor: floor, rects: rects}
}

// Candidates yields every tracked rectangle together with whether a w x h
// box fits in it. The sequence is lazy and stops when the consumer stops.
func (fs *freeSpace) Candidates(w, h float64) iter.Seq2[Rect, bool] {
	return func(yield func(Rect, bool) bool) {
		for _, r := range fs.rects {
			if !yield(r, r.Fits(w, h)) {
				return
			}
		}
	}
}

// Len returns the number of tracked rectangles.
func (fs *freeSpace) Len() int {
	return len(fs.rects)
}

// Rects returns a copy of the tracked rectangles.
func (fs *freeSpace) Rects() []Rect {
	out := make([]Rect, len(fs.rects))
	copy(out, fs.rects)
	return out
}

// Commit marks placed as occupied. Every tracked rectangle intersecting it is
// replaced by its non-degenerate slices outside placed, then contained
// rectangles are pruned.
func (fs *freeSpace) Commit(placed Rect) error {
	if placed.Degenerate() {
		return fmt.Errorf("%w: degenerate placement %s", errBookkeeping, placed)
	}
	if !fs.floor.Contains(placed) {
		return fmt.Errorf("%w: placement %s leaves the floor", errBookkeeping, placed)
	}

	n := len(fs.rects)
	hits := 0
	for i := 0; i < n; i++ {
		fr := fs.rects[i]
		if !fr.Intersects(placed) {
			continue
		}
		hits++
		fs.rects = appendSlices(fs.rects, fr, placed)
		// zero value is degenerate and gets swept below
		fs.rects[i] = Rect{}
	}
	if hits == 0 {
		return fmt.Errorf("%w: placement %s overlaps no free rectangle", errBookkeeping, placed)
	}

	fs.sweepDegenerate()
	fs.prune()
	return nil
}

// appendSlices appends the up to four maximal parts of fr lying outside used.
func appendSlices(dst []Rect, fr, used Rect) []Rect {
	slices := [4]Rect{
		// left
		{X: fr.X, Y: fr.Y, W: used.X - fr.X, H: fr.H},
		// right
		{X: used.Right(), Y: fr.Y, W: fr.Right() - used.Right(), H: fr.H},
		// front
		{X: fr.X, Y: fr.Y, W: fr.W, H: used.Y - fr.Y},
		// back
		{X: fr.X, Y: used.Top(), W: fr.W, H: fr.Top() - used.Top()},
	}
	for _, s := range slices {
		if !s.Degenerate() {
			dst = append(dst, s)
		}
	}
	return dst
}

// sweepDegenerate compacts the list in place, dropping degenerate entries.
func (fs *freeSpace) sweepDegenerate() {
	kept := fs.rects[:0]
	for _, r := range fs.rects {
		if !r.Degenerate() {
			kept = append(kept, r)
		}
	}
	fs.rects = kept
}

// prune removes every rectangle contained in another one. When two
// rectangles contain each other the earlier one is dropped.
func (fs *freeSpace) prune() {
	for i := 0; i < len(fs.rects); i++ {
		for j := i + 1; j < len(fs.rects); j++ {
			if fs.rects[j].Contains(fs.rects[i]) {
				fs.rects = append(fs.rects[:i], fs.rects[i+1:]...)
				i--
				break
			}
			if fs.rects[i].Contains(fs.rects[j]) {
				fs.rects = append(fs.rects[:j], fs.rects[j+1:]...)
				j--
			}
		}
	}
}
