// Package render drives the mixer block by block.
//
// Session is the real-time path: an Idle/Running state machine whose
// Process method is called from an audio callback with blocks of any
// positive size. Parameters are re-read from a control.Live at the start of
// every internal block, so live changes take effect within one block.
//
// Render is the offline path: it snapshots a Request and produces a
// complete stereo buffer using its own generator state.
package render
