package noise

// Option configures a Layer.
type Option func(*layerConfig)

type layerConfig struct {
	seed    int64
	hasSeed bool
}

// WithSeed sets a deterministic seed for the layer's random source.
func WithSeed(seed int64) Option {
	return func(cfg *layerConfig) {
		cfg.seed = seed
		cfg.hasSeed = true
	}
}

// Layer couples one coloured generator with its own random source, so
// several layers of the same colour stay decorrelated.
type Layer struct {
	src   Source
	seed  int64
	brown Brown
	pink  Pink
}

// NewLayer creates a layer. Without WithSeed the layer is seeded randomly.
func NewLayer(opts ...Option) *Layer {
	cfg := layerConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if !cfg.hasSeed {
		cfg.seed = RandomSeed()
	}
	return &Layer{src: NewSource(cfg.seed), seed: cfg.seed}
}

// Seed returns the seed the layer was created with.
func (l *Layer) Seed() int64 { return l.seed }

// Brown returns the next brown sample of this layer.
func (l *Layer) Brown() float64 { return l.brown.Next(l.src) }

// Pink returns the next pink sample of this layer.
func (l *Layer) Pink() float64 { return l.pink.Next(l.src) }

// White returns the next white sample of this layer.
func (l *Layer) White() float64 { return White(l.src) }

// Uniform returns a raw uniform value in [0, 1) from the layer's source.
func (l *Layer) Uniform() float64 { return l.src.Float64() }
