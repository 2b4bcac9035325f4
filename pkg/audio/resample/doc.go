// ABOUTME: Package documentation for resample
// ABOUTME: Whole-clip linear resampling used by the playback device
// Package resample converts decoded clips between sample rates using
// linear interpolation. The playback device runs at one fixed rate, so
// any clip decoded at a foreign rate is converted once, at load time.
package resample
