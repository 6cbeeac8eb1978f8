package triage

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/gregory-bot/telecurehospital/internal/domain/vocabulary"
	"github.com/gregory-bot/telecurehospital/internal/infrastructure/observability"
	"github.com/gregory-bot/telecurehospital/internal/ml"
)

// Network shape and initialization constants.
const (
	HiddenUnits1 = 256
	HiddenUnits2 = 128
	DropoutRate1 = 0.3
	DropoutRate2 = 0.2
	InitMean     = 0.0
	InitStddev   = 0.1
)

// DefaultCompileConfig is carried on every built network. No training loop consumes it.
var DefaultCompileConfig = ml.CompileConfig{
	Optimizer:    "adam",
	LearningRate: 0.001,
	Loss:         "categoricalCrossentropy",
	Metrics:      []string{"accuracy"},
}

// seededModelNamespace scopes model IDs derived from a seed.
var seededModelNamespace = uuid.MustParse("6f1d2c1e-3a57-4b8e-9d0c-5e2f7a9b1c44")

// Model is a built network that maps a presence vector to a distribution
// over conditions. Implementations must be safe for concurrent Predict calls.
type Model interface {
	Predict(input []float64) ([]float64, error)
}

// ModelFactory constructs a model with the given input and output widths.
type ModelFactory func(ctx context.Context, inputs, outputs int) (Model, error)

// ClassifierState is the lifecycle state of a ConditionClassifier.
type ClassifierState int

const (
	StateUninitialized ClassifierState = iota
	StateReady
)

func (s ClassifierState) String() string {
	switch s {
	case StateReady:
		return "ready"
	default:
		return "uninitialized"
	}
}

// ClassifierOption customizes a ConditionClassifier.
type ClassifierOption func(*ConditionClassifier)

// WithSeed makes random initialization reproducible. Classifiers sharing a
// seed also share a model ID.
func WithSeed(seed uint64) ClassifierOption {
	return func(c *ConditionClassifier) {
		c.factory = RandomNetworkFactory(seed)
		c.modelID = uuid.NewSHA1(seededModelNamespace, []byte("seed:"+strconv.FormatUint(seed, 10))).String()
	}
}

// WithParameters builds the network from externally supplied parameters.
// Shapes are checked at construction. The model ID is derived from the
// parameter values, so identical parameter sets share an ID.
func WithParameters(params ml.Parameters) ClassifierOption {
	params = cloneParameters(params)
	return func(c *ConditionClassifier) {
		c.factory = ParameterizedNetworkFactory(params)
		c.modelID = uuid.NewSHA1(seededModelNamespace, parameterDigest(params)).String()
	}
}

func cloneParameters(params ml.Parameters) ml.Parameters {
	out := make(ml.Parameters, len(params))
	for i, layer := range params {
		out[i] = ml.LayerParameters{
			Weights: append([]float64(nil), layer.Weights...),
			Bias:    append([]float64(nil), layer.Bias...),
		}
	}
	return out
}

func parameterDigest(params ml.Parameters) []byte {
	h := sha256.New()
	var buf [8]byte
	write := func(values []float64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(values)))
		h.Write(buf[:])
		for _, v := range values {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			h.Write(buf[:])
		}
	}
	for _, layer := range params {
		write(layer.Weights)
		write(layer.Bias)
	}
	return append([]byte("params:"), h.Sum(nil)...)
}

// ModelSource names where classifier parameters come from. A parameter file
// takes precedence over a seed.
type ModelSource struct {
	ParametersPath string
	Seed           uint64
	HasSeed        bool
}

// Options resolves the source into classifier options. It returns no options
// when neither a file nor a seed is set, leaving the weights random.
func (s ModelSource) Options() ([]ClassifierOption, error) {
	switch {
	case s.ParametersPath != "":
		params, err := ml.LoadParameters(s.ParametersPath)
		if err != nil {
			return nil, err
		}
		return []ClassifierOption{WithParameters(params)}, nil
	case s.HasSeed:
		return []ClassifierOption{WithSeed(s.Seed)}, nil
	}
	return nil, nil
}

// WithModelFactory replaces network construction entirely.
func WithModelFactory(factory ModelFactory) ClassifierOption {
	return func(c *ConditionClassifier) {
		c.factory = factory
	}
}

type readyModel struct {
	model Model
}

// ConditionClassifier owns the network's lifecycle. The model is built on
// first use, exactly once, and reused for the lifetime of the classifier.
// A failed build leaves the classifier uninitialized.
type ConditionClassifier struct {
	vocab   *vocabulary.Vocabulary
	factory ModelFactory
	modelID string

	mu    sync.Mutex
	ready atomic.Pointer[readyModel]
}

// NewConditionClassifier returns an uninitialized classifier. Without options
// the network is randomly initialized from an unseeded source.
func NewConditionClassifier(v *vocabulary.Vocabulary, opts ...ClassifierOption) *ConditionClassifier {
	c := &ConditionClassifier{
		vocab:   v,
		factory: RandomNetworkFactory(rand.Uint64()),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.modelID == "" {
		c.modelID = uuid.NewString()
	}
	return c
}

// ModelID identifies the parameter state predictions come from.
func (c *ConditionClassifier) ModelID() string {
	return c.modelID
}

// State reports the lifecycle state.
func (c *ConditionClassifier) State() ClassifierState {
	if c.ready.Load() != nil {
		return StateReady
	}
	return StateUninitialized
}

// Warm forces construction without predicting.
func (c *ConditionClassifier) Warm(ctx context.Context) error {
	_, err := c.ensureReady(ctx)
	return err
}

// Predict returns the most probable condition and its probability. Ties go
// to the lowest catalog index.
func (c *ConditionClassifier) Predict(ctx context.Context, vec PresenceVector) (string, float64, error) {
	if len(vec) != c.vocab.SymptomCount() {
		return "", 0, fmt.Errorf("presence vector has %d slots, want %d", len(vec), c.vocab.SymptomCount())
	}

	model, err := c.ensureReady(ctx)
	if err != nil {
		return "", 0, err
	}

	probs, err := model.Predict(vec)
	if err != nil {
		return "", 0, fmt.Errorf("failed to run classifier: %w", err)
	}
	if len(probs) != c.vocab.ConditionCount() {
		return "", 0, fmt.Errorf("classifier returned %d probabilities, want %d", len(probs), c.vocab.ConditionCount())
	}
	for i, p := range probs {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return "", 0, fmt.Errorf("classifier returned invalid probability %v at index %d", p, i)
		}
	}

	idx := ml.ArgMax(probs)
	condition, ok := c.vocab.Condition(idx)
	if !ok {
		return "", 0, fmt.Errorf("classifier selected index %d outside the catalog", idx)
	}
	return condition, probs[idx], nil
}

// Network returns the built network, constructing it if needed. It fails
// when the configured factory produced something other than an ml network.
func (c *ConditionClassifier) Network(ctx context.Context) (*ml.Sequential, error) {
	model, err := c.ensureReady(ctx)
	if err != nil {
		return nil, err
	}
	net, ok := model.(*ml.Sequential)
	if !ok {
		return nil, fmt.Errorf("classifier model %T has no exportable parameters", model)
	}
	return net, nil
}

func (c *ConditionClassifier) ensureReady(ctx context.Context) (Model, error) {
	if r := c.ready.Load(); r != nil {
		return r.model, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if r := c.ready.Load(); r != nil {
		return r.model, nil
	}

	ctx, span := observability.StartSpan(ctx, "triage.model.initialize")
	defer span.End()
	observability.SetSpanAttributes(span,
		attribute.String("model.id", c.modelID),
		attribute.Int("model.inputs", c.vocab.SymptomCount()),
		attribute.Int("model.outputs", c.vocab.ConditionCount()),
	)

	model, err := c.build(ctx)
	observability.RecordModelInit(ctx, err)
	if err != nil {
		observability.RecordError(span, err)
		return nil, &ModelInitializationError{Err: err}
	}

	c.ready.Store(&readyModel{model: model})
	observability.LoggerFromContext(ctx).Info().
		Str("model_id", c.modelID).
		Msg("condition classifier initialized")
	return model, nil
}

func (c *ConditionClassifier) build(ctx context.Context) (model Model, err error) {
	defer func() {
		if r := recover(); r != nil {
			model = nil
			err = fmt.Errorf("model construction panicked: %v", r)
		}
	}()

	if c.factory == nil {
		return nil, fmt.Errorf("no model factory configured")
	}
	model, err = c.factory(ctx, c.vocab.SymptomCount(), c.vocab.ConditionCount())
	if err != nil {
		return nil, err
	}
	if model == nil {
		return nil, fmt.Errorf("model factory returned no model")
	}
	return model, nil
}

// NewNetwork lays out the untrained classifier network.
func NewNetwork(inputs, outputs int) (*ml.Sequential, error) {
	net, err := ml.NewSequential(inputs)
	if err != nil {
		return nil, err
	}

	hidden1, err := ml.NewDense(inputs, HiddenUnits1, ml.ActivationReLU)
	if err != nil {
		return nil, err
	}
	drop1, err := ml.NewDropout(HiddenUnits1, DropoutRate1)
	if err != nil {
		return nil, err
	}
	hidden2, err := ml.NewDense(HiddenUnits1, HiddenUnits2, ml.ActivationReLU)
	if err != nil {
		return nil, err
	}
	drop2, err := ml.NewDropout(HiddenUnits2, DropoutRate2)
	if err != nil {
		return nil, err
	}
	out, err := ml.NewDense(HiddenUnits2, outputs, ml.ActivationSoftmax)
	if err != nil {
		return nil, err
	}

	for _, layer := range []ml.Layer{hidden1, drop1, hidden2, drop2, out} {
		if err := net.Add(layer); err != nil {
			return nil, err
		}
	}
	net.Compile(DefaultCompileConfig)
	return net, nil
}

// RandomNetworkFactory draws every parameter from N(InitMean, InitStddev)
// using a PCG source seeded with seed.
func RandomNetworkFactory(seed uint64) ModelFactory {
	return func(_ context.Context, inputs, outputs int) (Model, error) {
		net, err := NewNetwork(inputs, outputs)
		if err != nil {
			return nil, err
		}
		net.RandomNormal(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), InitMean, InitStddev)
		return net, nil
	}
}

// ParameterizedNetworkFactory loads params into a freshly laid out network.
func ParameterizedNetworkFactory(params ml.Parameters) ModelFactory {
	return func(_ context.Context, inputs, outputs int) (Model, error) {
		net, err := NewNetwork(inputs, outputs)
		if err != nil {
			return nil, err
		}
		if err := net.SetWeights(params); err != nil {
			return nil, fmt.Errorf("failed to load classifier parameters: %w", err)
		}
		return net, nil
	}
}
