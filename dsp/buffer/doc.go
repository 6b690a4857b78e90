// Package buffer provides the stereo sample buffer produced by the renderer
// and a pool of reusable stereo blocks for allocation-free streaming.
package buffer
