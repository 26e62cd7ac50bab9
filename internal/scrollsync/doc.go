// Package scrollsync keeps a pixel-offset list and a section rail pointing at
// the same position.
//
// Both surfaces share one PositionState: a continuous section index and the
// owner currently allowed to write it. The list writes the index while the
// user scrolls it; the rail writes it while the user drags it; whichever
// surface does not own the index follows it. Conversions between the two
// coordinate spaces use heights that are only known after the first layout,
// published once through a Calibration.
//
// Nothing in this package blocks or returns errors: uncalibrated geometry,
// out-of-range candidates and writes from a non-owner all degrade to keeping
// the previous state.
package scrollsync
