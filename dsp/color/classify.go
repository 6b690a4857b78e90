package color

// Category is the human-readable noise colour of an RGB triple.
type Category int

const (
	CategoryCustom Category = iota
	CategoryWhite
	CategoryNearSilence
	CategoryBrownish
	CategoryPinkish
	CategoryBlueish
)

// String returns the display label of the category.
func (c Category) String() string {
	switch c {
	case CategoryWhite:
		return "White Noise"
	case CategoryNearSilence:
		return "Near Silence"
	case CategoryBrownish:
		return "Brown-ish Noise"
	case CategoryPinkish:
		return "Pink-ish Noise"
	case CategoryBlueish:
		return "Blue-ish Noise"
	default:
		return "Custom Noise"
	}
}

// Classify names the noise colour of c. Rules are evaluated in order and
// the first match wins:
//
//	all channels > 250                   White Noise
//	all channels < 50                    Near Silence
//	red share > 50% and blue share < 25% Brown-ish Noise
//	red share > 40% and blue share < 35% Pink-ish Noise
//	blue share > 50%                     Blue-ish Noise
//	otherwise                            Custom Noise
//
// An all-zero triple is Near Silence without computing any share.
func Classify(c RGB) Category {
	c = c.Clamped()
	if c.R > 250 && c.G > 250 && c.B > 250 {
		return CategoryWhite
	}
	if c.R < 50 && c.G < 50 && c.B < 50 {
		return CategoryNearSilence
	}

	total := c.R + c.G + c.B
	if total == 0 {
		return CategoryNearSilence
	}
	red := float64(c.R) / float64(total)
	blue := float64(c.B) / float64(total)

	switch {
	case red > 0.50 && blue < 0.25:
		return CategoryBrownish
	case red > 0.40 && blue < 0.35:
		return CategoryPinkish
	case blue > 0.50:
		return CategoryBlueish
	default:
		return CategoryCustom
	}
}
