package policy

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"project-chooser/internal/match"
)

// Policy defaults.
const (
	// OperationalThreshold is used for includes and excludes without an
	// exact title match.
	OperationalThreshold = 0.5
	// LenientThreshold is used when every block is inactive and nothing
	// has been staged for activation.
	LenientThreshold = 0.4
	// FallbackCount is the number of leading blocks activated when no
	// recommendation matched anything.
	FallbackCount = 3
)

// ErrInvalidPolicy is returned when a policy fails validation.
var ErrInvalidPolicy = errors.New("invalid policy")

// Policy configures the decision pipeline.
type Policy struct {
	// MatchThreshold is the minimum fuzzy score for includes and excludes.
	MatchThreshold float64 `yaml:"match_threshold" json:"match_threshold" validate:"gte=0,lte=1"`
	// LenientThreshold is the minimum fuzzy score when re-matching includes
	// for an all-inactive document.
	LenientThreshold float64 `yaml:"lenient_threshold" json:"lenient_threshold" validate:"gte=0,lte=1"`
	// ContainmentBoost is the score given when one title contains the other.
	ContainmentBoost float64 `yaml:"containment_boost" json:"containment_boost" validate:"gte=0,lte=1"`
	// CoverageCap bounds the score token coverage alone can reach.
	CoverageCap float64 `yaml:"coverage_cap" json:"coverage_cap" validate:"gte=0,lte=1"`
	// FallbackCount is the number of leading blocks the last-resort guard
	// activates.
	FallbackCount int `yaml:"fallback_count" json:"fallback_count" validate:"gte=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the default policy.
func Default() Policy {
	return Policy{
		MatchThreshold:   OperationalThreshold,
		LenientThreshold: LenientThreshold,
		ContainmentBoost: match.DefaultContainmentBoost,
		CoverageCap:      match.DefaultCoverageCap,
		FallbackCount:    FallbackCount,
	}
}

// Scorer returns the match scorer configured by the policy.
func (p Policy) Scorer() match.Scorer {
	return match.Scorer{
		CoverageCap:      p.CoverageCap,
		ContainmentBoost: p.ContainmentBoost,
	}
}

// Validate checks every field is in range.
func (p Policy) Validate() error {
	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed %s=%s", ErrInvalidPolicy, fe.Field(), fe.Tag(), fe.Param())
		}

		return fmt.Errorf("%w: %w", ErrInvalidPolicy, err)
	}

	return nil
}

// LoadFile loads and validates a YAML policy file from the given path.
func LoadFile(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Policy. Fields left out keep their defaults.
func Parse(data []byte) (*Policy, error) {
	p := Default()

	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse policy YAML: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Marshal serializes a Policy to YAML.
func Marshal(p *Policy) ([]byte, error) {
	return yaml.Marshal(p)
}
