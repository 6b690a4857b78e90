// Package mixer combines brown, pink and white noise into a stereo signal.
//
// In Pure mode one stream of each colour is weighted by the bass/mid/treble
// gains and doubled onto both channels. In Organic mode three brown and two
// pink layers are blended, the sum is shaped by the organic modulator's
// amplitude and equal-power pan, and each channel is smoothed with a
// single-pole filter that restarts at every block.
//
// A Mixer is real-time safe and not thread-safe.
package mixer
