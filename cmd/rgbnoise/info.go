package main

import (
	"fmt"
	"os"

	gowav "github.com/go-audio/wav"
)

func runInfo(args []string, e *env) error {
	var verbose bool
	fs := newFlagSet("info", e, &verbose)
	fs.Usage = func() {
		fmt.Fprintf(e.stderr, "Usage: rgbnoise info [flags] file.wav ...\n\n")
		fs.PrintDefaults()
	}
	analyze := fs.Bool("analyze", true, "print level and spectral slope")
	if err := parse(fs, args, e, &verbose); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	for i, path := range fs.Args() {
		if i > 0 {
			fmt.Fprintln(e.stdout)
		}
		if err := printInfo(path, *analyze, e); err != nil {
			return err
		}
	}
	return nil
}

// decodeWAV reads a PCM WAV file into one float slice per channel,
// normalised to [-1, 1).
func decodeWAV(path string) (channels [][]float64, sampleRate int, bitDepth int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	dec := gowav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, 0, fmt.Errorf("%s is not a valid WAV file", path)
	}
	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decode %s: %w", path, err)
	}

	n := int(dec.NumChans)
	bits := int(dec.BitDepth)
	if n < 1 || bits < 1 {
		return nil, 0, 0, fmt.Errorf("%s has no PCM data", path)
	}
	scale := float64(int64(1) << (bits - 1))
	frames := len(pcm.Data) / n
	channels = make([][]float64, n)
	for ch := range channels {
		channels[ch] = make([]float64, frames)
		for i := 0; i < frames; i++ {
			channels[ch][i] = float64(pcm.Data[i*n+ch]) / scale
		}
	}
	return channels, int(dec.SampleRate), bits, nil
}

func printInfo(path string, analyze bool, e *env) error {
	channels, sr, bits, err := decodeWAV(path)
	if err != nil {
		return err
	}
	frames := len(channels[0])
	fmt.Fprintf(e.stdout, "%s\n", path)
	fmt.Fprintf(e.stdout, "  format:   %d Hz, %d-bit, %d channel(s)\n", sr, bits, len(channels))
	fmt.Fprintf(e.stdout, "  duration: %.3f s (%d frames)\n", float64(frames)/float64(sr), frames)
	if !analyze {
		return nil
	}

	right := channels[0]
	if len(channels) > 1 {
		right = channels[1]
	}
	return printReport(e.stdout, channels[0], right, float64(sr))
}
