// Package organic derives slow amplitude and stereo movement from a
// low-frequency oscillator.
//
// Per sample the Modulator evaluates sin(phase), passes it through a
// selectable Shape, adds a small random jitter and turns the result into
// an amplitude multiplier and an equal-power pan position. The phase
// advances by 2*pi*rate/sampleRate per sample, so changing the rate only
// changes the speed of travel; SetPhaseOffset jumps the phase on purpose.
//
// A Modulator is real-time safe and not thread-safe.
package organic
