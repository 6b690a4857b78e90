// Package slope estimates the spectral tilt of a signal.
//
// A Welch-averaged power spectrum (Hann window, 50% overlap by default) is
// computed with algo-fft, and a least-squares line is fitted to power in dB
// against log2 frequency. The slope in dB per octave identifies the noise
// colour: about 0 for white, -3 for pink and -6 for brown.
//
// This is an analysis tool; the synthesis path never filters in the
// frequency domain.
package slope
