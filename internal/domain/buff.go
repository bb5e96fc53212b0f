package domain

import "fmt"

// BuffKind describes how a buff combines with the base rate
type BuffKind string

const (
	// BuffAdditive buffs add flat percentage points after multipliers are applied
	BuffAdditive BuffKind = "additive"
	// BuffMultiplicative buffs scale the base rate
	BuffMultiplicative BuffKind = "multiplicative"
)

// Valid reports whether k is one of the known kinds
func (k BuffKind) Valid() bool {
	return k == BuffAdditive || k == BuffMultiplicative
}

// Symbol returns the short operator used in help listings ("+" or "x")
func (k BuffKind) Symbol() string {
	if k == BuffMultiplicative {
		return "x"
	}
	return "+"
}

// BuffDefinition is a single catalog entry. Values are never mutated after load.
type BuffDefinition struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	Magnitude float64  `yaml:"magnitude"`
	Kind      BuffKind `yaml:"kind"`
}

// Label renders the buff the way the help command lists it, e.g. "Dance of Siren (x2)"
func (b BuffDefinition) Label() string {
	return fmt.Sprintf("%s (%s%g)", b.Name, b.Kind.Symbol(), b.Magnitude)
}

// CalculationRequest is a WIT value plus the buff ids the player selected
type CalculationRequest struct {
	Attribute       int
	SelectedBuffIDs []string
}

// CalculationResult holds the outcome of a magic critical rate calculation.
// FinalRate is the raw computed value; the display cap never feeds back into it.
type CalculationResult struct {
	Attribute    int
	BaseRate     float64
	FinalRate    float64
	Capped       bool
	AppliedBuffs []string
}
