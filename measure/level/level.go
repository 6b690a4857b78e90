// Package level computes peak, RMS and DC statistics of rendered audio.
package level

import (
	"math"

	"github.com/cwbudde/algo-noise/dsp/buffer"
	"github.com/cwbudde/algo-noise/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Stats holds time-domain level statistics of one channel.
//
//nolint:revive
type Stats struct {
	Length      int
	DC          float64 // mean
	RMS         float64
	RMS_dB      float64
	Peak        float64 // max |x|
	Peak_dB     float64
	CrestFactor float64 // peak / RMS (linear)
	Clipped     int     // samples with |x| >= 1
	NonFinite   int
}

// Calculate measures one channel. Non-finite samples are counted and
// excluded from the level figures.
func Calculate(signal []float64) Stats {
	st := Stats{
		Length:  len(signal),
		RMS_dB:  math.Inf(-1),
		Peak_dB: math.Inf(-1),
	}
	if len(signal) == 0 {
		return st
	}

	for _, x := range signal {
		if !core.IsFinite(x) {
			st.NonFinite++
			continue
		}
		if math.Abs(x) >= 1 {
			st.Clipped++
		}
	}
	if st.NonFinite > 0 {
		clean := make([]float64, 0, len(signal)-st.NonFinite)
		for _, x := range signal {
			if core.IsFinite(x) {
				clean = append(clean, x)
			}
		}
		signal = clean
		if len(signal) == 0 {
			return st
		}
	}

	n := float64(len(signal))
	st.DC = vecmath.Sum(signal) / n
	st.RMS = math.Sqrt(vecmath.DotProduct(signal, signal) / n)
	st.Peak = vecmath.MaxAbs(signal)
	st.RMS_dB = core.LinearToDB(st.RMS)
	st.Peak_dB = core.LinearToDB(st.Peak)
	if st.RMS > 0 {
		st.CrestFactor = st.Peak / st.RMS
	}
	return st
}

// Stereo measures both channels of buf.
func Stereo(buf *buffer.Stereo) (left, right Stats) {
	if buf == nil {
		return Calculate(nil), Calculate(nil)
	}
	return Calculate(buf.Left), Calculate(buf.Right)
}
