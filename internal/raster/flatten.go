// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import "math"

// Tolerance is the maximum distance in raster pixels between a curve and
// its flattened approximation.
const Tolerance = 0.1

// maxDepth bounds the recursion so pathological control points cannot
// blow the stack.
const maxDepth = 16

// flattenCubic appends the flattened cubic p0..p3 (excluding p0) to dst.
func flattenCubic(dst []Point, p0, p1, p2, p3 Point, tolerance float64) []Point {
	return flattenCubicRec(dst, p0, p1, p2, p3, tolerance, 0)
}

func flattenCubicRec(dst []Point, p0, p1, p2, p3 Point, tolerance float64, depth int) []Point {
	d := math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3))
	if d < tolerance || depth >= maxDepth {
		return append(dst, p3)
	}

	// de Casteljau split at t = 0.5.
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	dst = flattenCubicRec(dst, p0, q0, r0, s, tolerance, depth+1)
	return flattenCubicRec(dst, s, r1, q2, p3, tolerance, depth+1)
}

// distanceToLine returns the distance from p to the segment a-b.
func distanceToLine(p, a, b Point) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	l2 := abx*abx + aby*aby
	if l2 < 1e-20 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / l2
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(p.X-(a.X+abx*t), p.Y-(a.Y+aby*t))
}
