package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/cwbudde/algo-noise/dsp/buffer"
	"github.com/cwbudde/algo-noise/measure/level"
	"github.com/cwbudde/algo-noise/measure/loudness"
	"github.com/cwbudde/algo-noise/measure/slope"
)

// Slope band for the report; white is ~0, pink ~-3 and brown ~-6 dB/oct.
const (
	slopeLoHz = 100.0
	slopeHiHz = 10000.0
)

func slopeBand(sampleRate float64) (lo, hi float64) {
	hi = math.Min(slopeHiHz, 0.45*sampleRate)
	return slopeLoHz, hi
}

func formatSlope(samples []float64, sampleRate float64) string {
	lo, hi := slopeBand(sampleRate)
	v, err := slope.DBPerOctave(samples, sampleRate, lo, hi)
	if err != nil {
		return "n/a"
	}
	return fmt.Sprintf("%+.2f", v)
}

func printReport(w io.Writer, left, right []float64, sampleRate float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Channel\tRMS [dBFS]\tPeak [dBFS]\tCrest\tDC\tClipped\tSlope [dB/oct]\n")
	fmt.Fprintf(tw, "-------\t----------\t-----------\t-----\t--\t-------\t--------------\n")
	for _, ch := range []struct {
		name string
		data []float64
	}{{"left", left}, {"right", right}} {
		st := level.Calculate(ch.data)
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f\t%+.5f\t%d\t%s\n",
			ch.name, st.RMS_dB, st.Peak_dB, st.CrestFactor, st.DC, st.Clipped,
			formatSlope(ch.data, sampleRate))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	res, err := loudness.Measure(&buffer.Stereo{Left: left, Right: right}, sampleRate)
	if err != nil {
		fmt.Fprintf(w, "\nLoudness: n/a (%v)\n", err)
		return nil
	}
	fmt.Fprintf(w, "\nLoudness: %.1f LUFS integrated, %.1f LUFS max momentary\n", res.Integrated, res.MaxMomentary)
	return nil
}
