package prediction

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/yungbote/buildflow-backend/internal/logger"
)

// Prediction types keyed in the bundle artifact.
const (
	ModelDelay  = "delay"
	ModelBudget = "budget"
	ModelRisk   = "risk"
)

const (
	EstimatorLinear   = "linear"
	EstimatorLogistic = "logistic"
)

// Scaler is the standard-score normalization exported with each model.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Model is one trained estimator: an ordered feature vocabulary, its input
// normalization, and a coefficient head. Linear heads return a raw value
// (days of delay); logistic heads return the positive-class probability.
type Model struct {
	FeatureNames []string  `json:"feature_names"`
	Scaler       Scaler    `json:"scaler"`
	Type         string    `json:"type"`
	Coef         []float64 `json:"coef"`
	Intercept    float64   `json:"intercept"`
}

// Bundle is the process-wide, read-only parameter artifact. It is loaded once
// at startup and handed to the engine; a nil Bundle (or a missing key) simply
// means the statistical path is used.
type Bundle struct {
	models map[string]*Model
}

func (b *Bundle) Model(name string) *Model {
	if b == nil {
		return nil
	}
	return b.models[name]
}

// LoadBundle reads the model artifact from path. Absence or any structural
// mismatch is reported as an error so the caller can log it, but callers are
// expected to continue with a nil bundle.
func LoadBundle(path string, log *logger.Logger) (*Bundle, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model bundle: %w", err)
	}
	return ParseBundle(raw, log)
}

func ParseBundle(raw []byte, log *logger.Logger) (*Bundle, error) {
	var models map[string]*Model
	if err := json.Unmarshal(raw, &models); err != nil {
		return nil, fmt.Errorf("parse model bundle: %w", err)
	}
	for _, key := range []string{ModelDelay, ModelBudget, ModelRisk} {
		m, ok := models[key]
		if !ok || m == nil {
			return nil, fmt.Errorf("model bundle missing key %q", key)
		}
		if err := m.validate(); err != nil {
			return nil, fmt.Errorf("model %q invalid: %w", key, err)
		}
	}
	if log != nil {
		log.Info("Model bundle loaded", "models", len(models))
	}
	return &Bundle{models: models}, nil
}

func (m *Model) validate() error {
	n := len(m.FeatureNames)
	if n == 0 {
		return fmt.Errorf("no feature names")
	}
	if len(m.Coef) != n || len(m.Scaler.Mean) != n || len(m.Scaler.Scale) != n {
		return fmt.Errorf("coefficient/scaler length mismatch")
	}
	if m.Type != EstimatorLinear && m.Type != EstimatorLogistic {
		return fmt.Errorf("unknown estimator type %q", m.Type)
	}
	return nil
}

// Predict runs the estimator over a feature map. Features missing from the
// map contribute 0 before normalization.
func (m *Model) Predict(features map[string]float64) (float64, error) {
	if m == nil {
		return 0, fmt.Errorf("model unavailable")
	}
	sum := m.Intercept
	for i, name := range m.FeatureNames {
		x := features[name]
		scale := m.Scaler.Scale[i]
		if scale == 0 {
			scale = 1
		}
		z := (x - m.Scaler.Mean[i]) / scale
		if math.IsNaN(z) || math.IsInf(z, 0) {
			return 0, fmt.Errorf("feature %q not finite after scaling", name)
		}
		sum += m.Coef[i] * z
	}
	if m.Type == EstimatorLogistic {
		return 1 / (1 + math.Exp(-sum)), nil
	}
	return sum, nil
}
