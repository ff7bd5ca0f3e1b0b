package grading

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Tolerances control how far a submitted amount may drift from the key.
// Worksheet and statement fields compare to the centavo; ledger and trial
// balance amounts are looser because students round to the nearest peso.
type Tolerances struct {
	Cent  decimal.Decimal // worksheet / statement fields
	Peso  decimal.Decimal // ledger row amounts
	Total decimal.Decimal // ledger totals, trial balance
}

// DefaultTolerances returns the standard grading tolerances.
func DefaultTolerances() Tolerances {
	return Tolerances{
		Cent:  decimal.New(1, -2), // 0.01
		Peso:  decimal.NewFromInt(1),
		Total: decimal.NewFromInt(2),
	}
}

// within reports |a-b| < tol.
func within(a, b, tol decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(tol)
}

type tolerancesYAML struct {
	Cent  string `yaml:"cent"`
	Peso  string `yaml:"peso"`
	Total string `yaml:"total"`
}

// UnmarshalYAML fills the tolerances from string amounts; absent fields keep
// their defaults when decoding over a DefaultTolerances value.
func (t *Tolerances) UnmarshalYAML(value *yaml.Node) error {
	var raw tolerancesYAML
	if err := value.Decode(&raw); err != nil {
		return err
	}
	set := func(dst *decimal.Decimal, field, s string) error {
		if s == "" {
			return nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return fmt.Errorf("parsing %s tolerance %q: %w", field, s, err)
		}
		*dst = d
		return nil
	}
	if err := set(&t.Cent, "cent", raw.Cent); err != nil {
		return err
	}
	if err := set(&t.Peso, "peso", raw.Peso); err != nil {
		return err
	}
	return set(&t.Total, "total", raw.Total)
}

// LoadTolerances reads tolerance overrides from a YAML file; fields not
// present keep their defaults.
func LoadTolerances(path string) (Tolerances, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tolerances{}, fmt.Errorf("reading tolerances: %w", err)
	}
	tol := DefaultTolerances()
	if err := yaml.Unmarshal(data, &tol); err != nil {
		return Tolerances{}, fmt.Errorf("parsing tolerances: %w", err)
	}
	return tol, nil
}
