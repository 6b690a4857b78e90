// Package loudness measures gated integrated loudness (ITU-R BS.1770,
// EBU R128) of rendered stereo buffers.
package loudness
