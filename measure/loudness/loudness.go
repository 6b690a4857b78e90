package loudness

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-noise/dsp/buffer"
	"github.com/cwbudde/algo-noise/dsp/core"
)

const (
	// K-weighting filter parameters from BS.1770.
	shelfFreq   = 1500.0
	shelfGainDB = 4.0
	hpfFreq     = 38.0
	filterQ     = 1 / math.Sqrt2

	blockSeconds = 0.4
	stepSeconds  = 0.1

	absThreshold = -70.0
	relThreshold = -10.0
)

// Result holds the loudness figures of one buffer.
type Result struct {
	// Integrated is the gated programme loudness in LUFS, -Inf when every
	// block is below the absolute gate.
	Integrated float64
	// MaxMomentary is the loudest 400 ms block in LUFS.
	MaxMomentary float64
	// Blocks is the number of 400 ms gating blocks measured.
	Blocks int
}

type biquad struct {
	b0, b1, b2, a1, a2 float64
	z1, z2             float64
}

func (f *biquad) process(x float64) float64 {
	y := f.b0*x + f.z1
	f.z1 = f.b1*x - f.a1*y + f.z2
	f.z2 = f.b2*x - f.a2*y
	return y
}

func newBiquad(b0, b1, b2, a0, a1, a2 float64) biquad {
	return biquad{b0: b0 / a0, b1: b1 / a0, b2: b2 / a0, a1: a1 / a0, a2: a2 / a0}
}

func highShelf(freq, gainDB, sampleRate float64) biquad {
	w0 := 2 * math.Pi * freq / sampleRate
	cw, sw := math.Cos(w0), math.Sin(w0)
	alpha := sw / (2 * filterQ)
	a := math.Pow(10, gainDB/40)
	beta := 2 * math.Sqrt(a) * alpha
	return newBiquad(
		a*((a+1)+(a-1)*cw+beta),
		-2*a*((a-1)+(a+1)*cw),
		a*((a+1)+(a-1)*cw-beta),
		(a+1)-(a-1)*cw+beta,
		2*((a-1)-(a+1)*cw),
		(a+1)-(a-1)*cw-beta,
	)
}

func highpass(freq, sampleRate float64) biquad {
	w0 := 2 * math.Pi * freq / sampleRate
	cw, sw := math.Cos(w0), math.Sin(w0)
	alpha := sw / (2 * filterQ)
	return newBiquad((1+cw)/2, -(1 + cw), (1+cw)/2, 1+alpha, -2*cw, 1-alpha)
}

// weightedSquares returns the cumulative sum of the squared K-weighted
// signal, with a leading zero.
func weightedSquares(x []float64, sampleRate float64) []float64 {
	shelf := highShelf(shelfFreq, shelfGainDB, sampleRate)
	hpf := highpass(hpfFreq, sampleRate)
	cum := make([]float64, len(x)+1)
	for i, v := range x {
		y := hpf.process(shelf.process(v))
		cum[i+1] = cum[i] + y*y
	}
	return cum
}

func toLUFS(meanSquare float64) float64 {
	if meanSquare <= 0 {
		return math.Inf(-1)
	}
	return -0.691 + 10*math.Log10(meanSquare)
}

// Measure computes the loudness of buf. The buffer must hold at least one
// 400 ms block.
func Measure(buf *buffer.Stereo, sampleRate float64) (Result, error) {
	if err := buf.Validate(); err != nil {
		return Result{}, err
	}
	if sampleRate <= 2*shelfFreq || !core.IsFinite(sampleRate) {
		return Result{}, fmt.Errorf("loudness sample rate too low: %f: %w", sampleRate, core.ErrInvalidParameter)
	}
	blockLen := int(math.Round(blockSeconds * sampleRate))
	step := int(math.Round(stepSeconds * sampleRate))
	if buf.Frames() < blockLen {
		return Result{}, fmt.Errorf("loudness needs at least %d frames, got %d: %w",
			blockLen, buf.Frames(), core.ErrInvalidBuffer)
	}

	left := weightedSquares(buf.Left, sampleRate)
	right := weightedSquares(buf.Right, sampleRate)

	var blocks []float64
	res := Result{MaxMomentary: math.Inf(-1)}
	for start := 0; start+blockLen <= buf.Frames(); start += step {
		end := start + blockLen
		z := (left[end] - left[start] + right[end] - right[start]) / float64(blockLen)
		blocks = append(blocks, z)
		if l := toLUFS(z); l > res.MaxMomentary {
			res.MaxMomentary = l
		}
	}
	res.Blocks = len(blocks)
	res.Integrated = gate(blocks)
	return res, nil
}

// gate applies the absolute and relative gates and returns the loudness
// of the surviving blocks.
func gate(blocks []float64) float64 {
	var sum float64
	var n int
	for _, z := range blocks {
		if toLUFS(z) > absThreshold {
			sum += z
			n++
		}
	}
	if n == 0 {
		return math.Inf(-1)
	}

	rel := toLUFS(sum/float64(n)) + relThreshold
	sum, n = 0, 0
	for _, z := range blocks {
		if l := toLUFS(z); l > absThreshold && l > rel {
			sum += z
			n++
		}
	}
	if n == 0 {
		return math.Inf(-1)
	}
	return toLUFS(sum / float64(n))
}
