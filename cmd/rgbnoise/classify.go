package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-noise/dsp/color"
	"github.com/cwbudde/algo-noise/dsp/control"
	"github.com/cwbudde/algo-noise/dsp/mixer"
)

func runClassify(args []string, e *env) error {
	var verbose bool
	fs := newFlagSet("classify", e, &verbose)
	fs.Usage = func() {
		fmt.Fprintf(e.stderr, "Usage: rgbnoise classify [flags] r,g,b|preset ...\n\n")
		fs.PrintDefaults()
	}
	organicFlag := fs.Bool("organic", false, "name files for organic mode")
	if err := parse(fs, args, e, &verbose); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	tw := tabwriter.NewWriter(e.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Colour\tHex\tCategory\tPreset name\tFile\n")
	for _, arg := range fs.Args() {
		c, err := resolveColour(arg)
		if err != nil {
			return err
		}
		s := control.DefaultState()
		s.RGB = c
		if *organicFlag {
			s.Mode = mixer.Organic
		}
		s = s.Sanitize()
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c, c.Hex(), s.Category(), control.DefaultName(s), s.FileName())
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func resolveColour(arg string) (color.RGB, error) {
	if c, ok := color.QuickPreset(arg); ok {
		return c, nil
	}
	if !strings.Contains(arg, ",") {
		return color.RGB{}, fmt.Errorf("unknown colour %q (use r,g,b or one of %s)",
			arg, strings.Join(color.QuickPresetNames(), ", "))
	}
	return color.ParseRGB(arg)
}

func runPresets(args []string, e *env) error {
	var verbose bool
	fs := newFlagSet("presets", e, &verbose)
	if err := parse(fs, args, e, &verbose); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(e.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name\tColour\tHex\tCategory\n")
	for _, name := range color.QuickPresetNames() {
		c, _ := color.QuickPreset(name)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", name, c, c.Hex(), color.Classify(c))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
