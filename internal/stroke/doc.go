// Package stroke converts stroked polylines into filled outlines.
//
// A stroke is built as a union of simple closed pieces rather than as a
// single offset outline:
//   - one quadrilateral per segment, offset by ±width/2 along its normal
//   - one disc at every vertex where the polyline turns, forming round joins
//   - one disc at each end of an open contour, forming round caps
//
// Every piece is emitted with the same (positive) orientation so that a
// nonzero or saturating-coverage rasterizer renders the union solid, with
// no holes where the pieces overlap.
//
// A contour that collapses to a single point becomes a single disc, so a
// zero-length line still leaves a round dot.
//
// # Usage
//
//	e := stroke.NewStrokeExpander(3.0)
//	e.SetTolerance(0.1)
//	outline := e.Expand(path) // *raster.Path, fill with raster.Filler
package stroke
