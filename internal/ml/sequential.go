package ml

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// ErrShapeMismatch is returned when an input or a parameter set does not fit the model.
var ErrShapeMismatch = errors.New("shape mismatch")

// CompileConfig records how the model would be trained. Nothing in this
// package trains; the config is kept so exported models describe themselves.
type CompileConfig struct {
	Optimizer    string   `json:"optimizer"`
	LearningRate float64  `json:"learning_rate"`
	Loss         string   `json:"loss"`
	Metrics      []string `json:"metrics"`
}

// Sequential is a feed-forward stack of layers.
type Sequential struct {
	inputs  int
	layers  []Layer
	compile *CompileConfig
}

// NewSequential starts an empty model over inputs features.
func NewSequential(inputs int) (*Sequential, error) {
	if inputs <= 0 {
		return nil, fmt.Errorf("model needs a positive input width, got %d", inputs)
	}
	return &Sequential{inputs: inputs}, nil
}

// Add appends a layer whose input width must match the current output width.
func (s *Sequential) Add(layer Layer) error {
	if layer.InputSize() != s.OutputSize() {
		return fmt.Errorf("%w: %s expects %d inputs, previous layer yields %d",
			ErrShapeMismatch, layer.Name(), layer.InputSize(), s.OutputSize())
	}
	s.layers = append(s.layers, layer)
	return nil
}

// Compile stores the training configuration.
func (s *Sequential) Compile(cfg CompileConfig) {
	cfg.Metrics = append([]string(nil), cfg.Metrics...)
	s.compile = &cfg
}

// CompileConfig returns the stored training configuration, if any.
func (s *Sequential) CompileConfig() (CompileConfig, bool) {
	if s.compile == nil {
		return CompileConfig{}, false
	}
	return *s.compile, true
}

func (s *Sequential) InputSize() int {
	return s.inputs
}

func (s *Sequential) OutputSize() int {
	if len(s.layers) == 0 {
		return s.inputs
	}
	return s.layers[len(s.layers)-1].OutputSize()
}

// Layers returns the model's layers in order.
func (s *Sequential) Layers() []Layer {
	return append([]Layer(nil), s.layers...)
}

// Predict runs one input vector through every layer.
func (s *Sequential) Predict(input []float64) ([]float64, error) {
	if len(input) != s.inputs {
		return nil, fmt.Errorf("%w: model expects %d inputs, got %d", ErrShapeMismatch, s.inputs, len(input))
	}

	x := mat.NewVecDense(len(input), append([]float64(nil), input...))
	for _, layer := range s.layers {
		x = layer.Forward(x)
	}

	out := make([]float64, x.Len())
	for i := range out {
		out[i] = x.AtVec(i)
	}
	return out, nil
}

// LayerParameters are one dense layer's weights (row-major, units x inputs) and biases.
type LayerParameters struct {
	Weights []float64 `json:"weights"`
	Bias    []float64 `json:"bias"`
}

// Parameters holds the parameters of every dense layer in model order.
type Parameters []LayerParameters

// Weights returns a copy of the model's parameters.
func (s *Sequential) Weights() Parameters {
	var params Parameters
	for _, d := range s.denseLayers() {
		r, c := d.weights.Dims()
		w := make([]float64, 0, r*c)
		for i := 0; i < r; i++ {
			w = append(w, d.weights.RawRowView(i)...)
		}
		params = append(params, LayerParameters{
			Weights: w,
			Bias:    append([]float64(nil), d.bias.RawVector().Data...),
		})
	}
	return params
}

// SetWeights replaces every dense layer's parameters after checking shapes.
// Nothing is modified unless all layers fit.
func (s *Sequential) SetWeights(params Parameters) error {
	dense := s.denseLayers()
	if len(params) != len(dense) {
		return fmt.Errorf("%w: model has %d dense layers, got %d parameter sets", ErrShapeMismatch, len(dense), len(params))
	}
	for i, d := range dense {
		r, c := d.weights.Dims()
		if len(params[i].Weights) != r*c || len(params[i].Bias) != r {
			return fmt.Errorf("%w: layer %d wants %dx%d weights and %d biases, got %d and %d",
				ErrShapeMismatch, i, r, c, r, len(params[i].Weights), len(params[i].Bias))
		}
	}

	for i, d := range dense {
		r, c := d.weights.Dims()
		d.weights = mat.NewDense(r, c, append([]float64(nil), params[i].Weights...))
		d.bias = mat.NewVecDense(r, append([]float64(nil), params[i].Bias...))
	}
	return nil
}

// RandomNormal fills every weight and bias with draws from N(mean, stddev).
func (s *Sequential) RandomNormal(rng *rand.Rand, mean, stddev float64) {
	for _, d := range s.denseLayers() {
		r, c := d.weights.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				d.weights.Set(i, j, mean+stddev*rng.NormFloat64())
			}
			d.bias.SetVec(i, mean+stddev*rng.NormFloat64())
		}
	}
}

func (s *Sequential) denseLayers() []*Dense {
	var dense []*Dense
	for _, layer := range s.layers {
		if d, ok := layer.(*Dense); ok {
			dense = append(dense, d)
		}
	}
	return dense
}

// ArgMax returns the index of the first maximum, or -1 for an empty slice.
func ArgMax(values []float64) int {
	best := -1
	for i, v := range values {
		if best == -1 || v > values[best] {
			best = i
		}
	}
	return best
}
