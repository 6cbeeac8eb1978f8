package ml

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ModelFile is the on-disk form of a model's parameters.
type ModelFile struct {
	Compile *CompileConfig `json:"compile,omitempty"`
	Layers  Parameters     `json:"layers"`
}

// WriteParameters encodes the model's parameters and compile config as JSON.
func WriteParameters(w io.Writer, s *Sequential) error {
	file := ModelFile{Layers: s.Weights()}
	if cfg, ok := s.CompileConfig(); ok {
		file.Compile = &cfg
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(file)
}

// ReadParameters decodes a ModelFile. Shapes are checked later by SetWeights.
func ReadParameters(r io.Reader) (Parameters, error) {
	var file ModelFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode model parameters: %w", err)
	}
	if len(file.Layers) == 0 {
		return nil, fmt.Errorf("model parameters contain no layers")
	}
	return file.Layers, nil
}

// LoadParameters reads a ModelFile from path.
func LoadParameters(path string) (Parameters, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model parameters: %w", err)
	}
	defer f.Close()
	return ReadParameters(f)
}
