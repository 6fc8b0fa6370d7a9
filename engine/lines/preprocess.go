package lines

import (
	"math"
	"sort"

	"github.com/npillmayer/lectio/core/geom"
	"github.com/npillmayer/lectio/engine/ocr"
)

// Unit pairs a text block with its normalized, axis-aligned bounding box.
// The box lives outside the block record on purpose: it is a transient of
// layout analysis and must never appear on blocks handed back to callers.
type Unit struct {
	BBox  geom.Rect
	Block *ocr.TextBlock
}

// Height returns the height of the unit's normalized box, falling back to 1
// for degenerate geometry so that callers may divide by it.
func (u Unit) Height() float64 {
	h := u.BBox.Height()
	if h <= 0 {
		return 1
	}
	return h
}

const (
	// skewThreshold is the page skew below which rotation is skipped and
	// the quads' envelopes are used as-is, preserving pixel-exact
	// coordinates.
	skewThreshold = 3 * math.Pi / 180

	// foldBand is the width of the hysteresis band at the ±π/2 fold of
	// block angles. Long sides within the band of +π/2 are folded to the
	// negative side, so near-vertical boxes do not straddle the fold and
	// destabilize the median.
	foldBand = 3 * math.Pi / 180
)

// Preprocess estimates the page skew as the median of the blocks' long-side
// angles and emits one unit per block, carrying the axis-aligned envelope
// of the (de-skewed) quad. Units are sorted top to bottom. The blocks
// themselves are left untouched.
//
// The median is preferred over the mean for robustness against the odd
// rotated caption or stamp. If the estimated skew stays within
// skewThreshold, no rotation is applied. Otherwise all quads are rotated
// back by the skew angle and, if any coordinate ends up negative, every
// envelope is shifted into the non-negative quadrant, so downstream code
// may assume a first-quadrant frame.
func Preprocess(blocks []*ocr.TextBlock) []Unit {
	if len(blocks) == 0 {
		return nil
	}
	angles := make([]float64, len(blocks))
	for i, tb := range blocks {
		angles[i] = foldAngle(tb.Box.LongSideAngle())
	}
	theta := median(angles)
	tracer().Debugf("estimated page skew = %.2f°", theta*180/math.Pi)
	units := make([]Unit, len(blocks))
	if math.Abs(theta) <= skewThreshold {
		for i, tb := range blocks {
			units[i] = Unit{BBox: tb.Box.Bounds(), Block: tb}
		}
	} else {
		minX, minY := math.Inf(1), math.Inf(1)
		for i, tb := range blocks {
			r := tb.Box.Rotate(-theta).Bounds()
			units[i] = Unit{BBox: r, Block: tb}
			minX = math.Min(minX, r.X0)
			minY = math.Min(minY, r.Y0)
		}
		var dx, dy float64
		if minX < 0 {
			dx = -minX
		}
		if minY < 0 {
			dy = -minY
		}
		if dx > 0 || dy > 0 {
			for i := range units {
				units[i].BBox = units[i].BBox.Translate(dx, dy)
			}
		}
	}
	sort.SliceStable(units, func(i, j int) bool {
		return units[i].BBox.Y0 < units[j].BBox.Y0
	})
	return units
}

// foldAngle normalizes an angle into [−π/2, π/2), then shifts angles inside
// the hysteresis band below +π/2 by −π, to just below −π/2. The result
// therefore lies in [−π/2−foldBand, π/2−foldBand).
func foldAngle(theta float64) float64 {
	theta = math.Mod(theta, math.Pi)
	if theta >= math.Pi/2 {
		theta -= math.Pi
	} else if theta < -math.Pi/2 {
		theta += math.Pi
	}
	if theta >= math.Pi/2-foldBand {
		theta -= math.Pi
	}
	return theta
}

func median(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
