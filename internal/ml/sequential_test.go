package ml

import (
	"bytes"
	"math"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildModel(t *testing.T, in, hidden, out int) *Sequential {
	t.Helper()

	m, err := NewSequential(in)
	require.NoError(t, err)

	d1, err := NewDense(in, hidden, ActivationReLU)
	require.NoError(t, err)
	require.NoError(t, m.Add(d1))

	drop, err := NewDropout(hidden, 0.3)
	require.NoError(t, err)
	require.NoError(t, m.Add(drop))

	d2, err := NewDense(hidden, out, ActivationSoftmax)
	require.NoError(t, err)
	require.NoError(t, m.Add(d2))

	return m
}

func TestSequential_PredictIsDistribution(t *testing.T) {
	m := buildModel(t, 6, 8, 4)
	m.RandomNormal(rand.New(rand.NewPCG(1, 2)), 0, 0.1)

	out, err := m.Predict([]float64{1, 0, 1, 0, 0, 1})
	require.NoError(t, err)
	require.Len(t, out, 4)

	sum := 0.0
	for _, p := range out {
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestSequential_PredictRejectsWrongWidth(t *testing.T) {
	m := buildModel(t, 3, 4, 2)

	_, err := m.Predict([]float64{1, 0})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestSequential_AddRejectsMismatchedLayer(t *testing.T) {
	m, err := NewSequential(3)
	require.NoError(t, err)

	d, err := NewDense(4, 2, ActivationLinear)
	require.NoError(t, err)
	assert.ErrorIs(t, m.Add(d), ErrShapeMismatch)
}

func TestSequential_SeededInitIsReproducible(t *testing.T) {
	a := buildModel(t, 5, 6, 3)
	b := buildModel(t, 5, 6, 3)
	a.RandomNormal(rand.New(rand.NewPCG(42, 42)), 0, 0.1)
	b.RandomNormal(rand.New(rand.NewPCG(42, 42)), 0, 0.1)

	assert.Equal(t, a.Weights(), b.Weights())

	input := []float64{1, 1, 0, 0, 1}
	pa, err := a.Predict(input)
	require.NoError(t, err)
	pb, err := b.Predict(input)
	require.NoError(t, err)
	assert.Equal(t, pa, pb)
}

func TestSequential_SetWeightsRoundTrip(t *testing.T) {
	src := buildModel(t, 4, 3, 2)
	src.RandomNormal(rand.New(rand.NewPCG(7, 9)), 0, 0.1)

	dst := buildModel(t, 4, 3, 2)
	require.NoError(t, dst.SetWeights(src.Weights()))
	assert.Equal(t, src.Weights(), dst.Weights())
}

func TestSequential_SetWeightsShapeChecked(t *testing.T) {
	m := buildModel(t, 4, 3, 2)
	before := m.Weights()

	params := m.Weights()
	params[1].Bias = []float64{1}
	assert.ErrorIs(t, m.SetWeights(params), ErrShapeMismatch)
	assert.Equal(t, before, m.Weights())

	assert.ErrorIs(t, m.SetWeights(params[:1]), ErrShapeMismatch)
}

func TestDense_KnownValues(t *testing.T) {
	m, err := NewSequential(2)
	require.NoError(t, err)
	d, err := NewDense(2, 2, ActivationReLU)
	require.NoError(t, err)
	require.NoError(t, m.Add(d))

	require.NoError(t, m.SetWeights(Parameters{{
		Weights: []float64{1, 2, -1, -1},
		Bias:    []float64{0.5, 0},
	}}))

	out, err := m.Predict([]float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{3.5, 0}, out)
}

func TestSoftmax_StableForLargeLogits(t *testing.T) {
	m, err := NewSequential(1)
	require.NoError(t, err)
	d, err := NewDense(1, 2, ActivationSoftmax)
	require.NoError(t, err)
	require.NoError(t, m.Add(d))
	require.NoError(t, m.SetWeights(Parameters{{
		Weights: []float64{1000, 999},
		Bias:    []float64{0, 0},
	}}))

	out, err := m.Predict([]float64{1})
	require.NoError(t, err)
	for _, p := range out {
		assert.False(t, math.IsNaN(p))
	}
	assert.InDelta(t, 1/(1+math.Exp(-1)), out[0], 1e-12)
}

func TestArgMax(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   int
	}{
		{"empty", nil, -1},
		{"single", []float64{0.2}, 0},
		{"last", []float64{0.1, 0.2, 0.7}, 2},
		{"tie picks lowest index", []float64{0.4, 0.2, 0.4}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ArgMax(tt.values))
		})
	}
}

func TestNewDense_Validation(t *testing.T) {
	_, err := NewDense(0, 3, ActivationReLU)
	assert.Error(t, err)

	_, err = NewDense(3, 3, Activation("tanh"))
	assert.Error(t, err)

	_, err = NewDropout(3, 1)
	assert.Error(t, err)
}

func TestCompileConfigIsStored(t *testing.T) {
	m := buildModel(t, 2, 2, 2)
	_, ok := m.CompileConfig()
	assert.False(t, ok)

	m.Compile(CompileConfig{Optimizer: "adam", LearningRate: 0.001, Loss: "categoricalCrossentropy", Metrics: []string{"accuracy"}})
	cfg, ok := m.CompileConfig()
	require.True(t, ok)
	assert.Equal(t, "adam", cfg.Optimizer)
	assert.Equal(t, []string{"accuracy"}, cfg.Metrics)
}

func TestParameters_WriteReadRoundTrip(t *testing.T) {
	src := buildModel(t, 4, 3, 2)
	src.RandomNormal(rand.New(rand.NewPCG(7, 8)), 0, 0.1)
	src.Compile(CompileConfig{Optimizer: "adam", LearningRate: 0.001})

	var buf bytes.Buffer
	require.NoError(t, WriteParameters(&buf, src))
	assert.Contains(t, buf.String(), `"optimizer": "adam"`)

	params, err := ReadParameters(&buf)
	require.NoError(t, err)

	dst := buildModel(t, 4, 3, 2)
	require.NoError(t, dst.SetWeights(params))

	input := []float64{1, 0, 1, 0}
	want, err := src.Predict(input)
	require.NoError(t, err)
	got, err := dst.Predict(input)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, got, 1e-12)
}

func TestReadParameters_Rejects(t *testing.T) {
	_, err := ReadParameters(strings.NewReader(`{"layers": []}`))
	assert.Error(t, err)

	_, err = ReadParameters(strings.NewReader(`{`))
	assert.Error(t, err)

	_, err = LoadParameters(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
