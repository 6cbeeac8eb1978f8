package ml

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Activation names the element-wise non-linearity applied after a dense layer.
type Activation string

const (
	ActivationLinear  Activation = "linear"
	ActivationReLU    Activation = "relu"
	ActivationSoftmax Activation = "softmax"
)

// Layer is one stage of a Sequential model. Forward must not mutate the
// layer, so a built model can serve concurrent callers.
type Layer interface {
	Name() string
	InputSize() int
	OutputSize() int
	Forward(x *mat.VecDense) *mat.VecDense
}

// Dense is a fully connected layer: activation(W·x + b).
type Dense struct {
	weights    *mat.Dense
	bias       *mat.VecDense
	activation Activation
}

// NewDense allocates a zeroed dense layer with in inputs and out units.
func NewDense(in, out int, activation Activation) (*Dense, error) {
	if in <= 0 || out <= 0 {
		return nil, fmt.Errorf("dense layer needs positive dimensions, got %dx%d", out, in)
	}
	switch activation {
	case ActivationLinear, ActivationReLU, ActivationSoftmax:
	default:
		return nil, fmt.Errorf("unsupported activation %q", activation)
	}

	return &Dense{
		weights:    mat.NewDense(out, in, nil),
		bias:       mat.NewVecDense(out, nil),
		activation: activation,
	}, nil
}

func (d *Dense) Name() string {
	return "dense_" + string(d.activation)
}

func (d *Dense) InputSize() int {
	_, c := d.weights.Dims()
	return c
}

func (d *Dense) OutputSize() int {
	r, _ := d.weights.Dims()
	return r
}

func (d *Dense) Forward(x *mat.VecDense) *mat.VecDense {
	out := mat.NewVecDense(d.OutputSize(), nil)
	out.MulVec(d.weights, x)
	out.AddVec(out, d.bias)

	switch d.activation {
	case ActivationReLU:
		relu(out)
	case ActivationSoftmax:
		softmax(out)
	}
	return out
}

// Dropout zeroes a fraction of activations while training. Inference never
// drops, so Forward is the identity.
type Dropout struct {
	Rate float64
	size int
}

// NewDropout creates a dropout stage over size activations.
func NewDropout(size int, rate float64) (*Dropout, error) {
	if rate < 0 || rate >= 1 {
		return nil, fmt.Errorf("dropout rate must be in [0,1), got %v", rate)
	}
	return &Dropout{Rate: rate, size: size}, nil
}

func (d *Dropout) Name() string { return "dropout" }

func (d *Dropout) InputSize() int { return d.size }

func (d *Dropout) OutputSize() int { return d.size }

func (d *Dropout) Forward(x *mat.VecDense) *mat.VecDense { return x }

func relu(v *mat.VecDense) {
	for i := 0; i < v.Len(); i++ {
		if v.AtVec(i) < 0 {
			v.SetVec(i, 0)
		}
	}
}

// softmax normalizes v in place, shifting by the max for numerical stability.
func softmax(v *mat.VecDense) {
	n := v.Len()
	if n == 0 {
		return
	}

	maxVal := math.Inf(-1)
	for i := 0; i < n; i++ {
		if x := v.AtVec(i); x > maxVal {
			maxVal = x
		}
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		e := math.Exp(v.AtVec(i) - maxVal)
		v.SetVec(i, e)
		sum += e
	}
	for i := 0; i < n; i++ {
		v.SetVec(i, v.AtVec(i)/sum)
	}
}
