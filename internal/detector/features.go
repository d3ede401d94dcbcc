package detector

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// AspectRatioUndefined is the sentinel stored in FeatureSet.AspectRatio when
// the bounding box has zero height. Callers must check for it before using
// the ratio; it is never a real ratio value.
const AspectRatioUndefined = -1

// Finger-count heuristic constants.
const (
	// fingerSampleStride bounds the heuristic's cost: only every Nth member
	// pixel is sampled.
	fingerSampleStride = 10
	// fingerDistanceQuantile selects the far 30% of samples by distance
	// from the centroid.
	fingerDistanceQuantile = 0.70
	// fingerAngleBinDegrees is the angular bucket width.
	fingerAngleBinDegrees = 30
	// fingerAngleBins is the number of angular buckets over [0, 360).
	fingerAngleBins = 360 / fingerAngleBinDegrees
)

// FeatureSet holds the geometric measurements extracted from one blob.
type FeatureSet struct {
	CentroidX float64
	CentroidY float64

	// Bounding box in pixel coordinates (all inclusive member extremes).
	Left   int
	Right  int
	Top    int
	Bottom int

	// Width and Height are the bounding box extents (Right-Left, Bottom-Top).
	Width  int
	Height int

	// AspectRatio is Width/Height, or AspectRatioUndefined when Height is 0.
	AspectRatio float64

	// FingerCount is the estimated number of extended fingers, in [1, 5].
	FingerCount int
}

// ComputeFeatures measures a blob extracted from a mask of the given width.
// Returns nil for an empty blob.
func ComputeFeatures(b *Blob, maskWidth int) *FeatureSet {
	if b == nil || b.Size == 0 {
		return nil
	}

	left, right := maskWidth, -1
	top, bottom := math.MaxInt32, -1
	for _, idx := range b.Members {
		x := idx % maskWidth
		y := idx / maskWidth
		if x < left {
			left = x
		}
		if x > right {
			right = x
		}
		if y < top {
			top = y
		}
		if y > bottom {
			bottom = y
		}
	}

	f := &FeatureSet{
		CentroidX: b.CentroidX,
		CentroidY: b.CentroidY,
		Left:      left,
		Right:     right,
		Top:       top,
		Bottom:    bottom,
		Width:     right - left,
		Height:    bottom - top,
	}

	if f.Height == 0 {
		f.AspectRatio = AspectRatioUndefined
	} else {
		f.AspectRatio = float64(f.Width) / float64(f.Height)
	}

	f.FingerCount = estimateFingerCount(b, maskWidth)
	return f
}

// estimateFingerCount approximates the number of directions the hand extends
// fingers without computing a convex hull. It samples every Nth member pixel,
// keeps the far 30% by distance from the centroid, buckets each kept point's
// angle from the centroid into 30-degree bins, and counts bins that hold more
// than one point. The result is clamped to [1, 5].
func estimateFingerCount(b *Blob, maskWidth int) int {
	type sample struct {
		dx, dy float64
		dist   float64
	}

	var samples []sample
	for i := 0; i < len(b.Members); i += fingerSampleStride {
		idx := b.Members[i]
		dx := float64(idx%maskWidth) - b.CentroidX
		dy := float64(idx/maskWidth) - b.CentroidY
		samples = append(samples, sample{dx: dx, dy: dy, dist: math.Hypot(dx, dy)})
	}
	if len(samples) < 2 {
		return 1
	}

	dists := make([]float64, len(samples))
	for i, s := range samples {
		dists[i] = s.dist
	}
	sort.Float64s(dists)
	cutoff := stat.Quantile(fingerDistanceQuantile, stat.Empirical, dists, nil)

	var bins [fingerAngleBins]int
	for _, s := range samples {
		if s.dist <= cutoff {
			continue
		}
		angle := math.Atan2(s.dy, s.dx) * 180 / math.Pi
		if angle < 0 {
			angle += 360
		}
		bins[int(angle)/fingerAngleBinDegrees%fingerAngleBins]++
	}

	count := 0
	for _, n := range bins {
		if n > 1 {
			count++
		}
	}

	if count < 1 {
		return 1
	}
	if count > 5 {
		return 5
	}
	return count
}
