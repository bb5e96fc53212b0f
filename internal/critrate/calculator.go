package critrate

import (
	"fmt"
	"math"
	"strings"

	"github.com/osse101/MagicCritBot_Go/internal/domain"
)

// Calculator computes magic critical rates against a fixed catalog.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	catalog *Catalog
}

// NewCalculator creates a calculator bound to catalog.
// A nil catalog falls back to the embedded default.
func NewCalculator(catalog *Catalog) *Calculator {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Calculator{catalog: catalog}
}

// Catalog returns the catalog the calculator resolves ids against
func (c *Calculator) Catalog() *Catalog {
	return c.catalog
}

// BaseRate returns the magic critical rate for a WIT value before buffs.
// No bounds are enforced; extreme WIT values produce extreme rates.
func BaseRate(attribute int) float64 {
	return (WitBonusOffset + math.Pow(WitGrowth, float64(attribute-WitPivot))) * BaseRateScale
}

// ApplyBuffs multiplies base by every multiplicative buff, then adds every additive buff.
func ApplyBuffs(base float64, buffs []domain.BuffDefinition) float64 {
	multiplier := 1.0
	bonus := 0.0
	for _, b := range buffs {
		switch b.Kind {
		case domain.BuffMultiplicative:
			multiplier *= b.Magnitude
		case domain.BuffAdditive:
			bonus += b.Magnitude
		}
	}
	return base*multiplier + bonus
}

// LookupBuffs resolves ids in order. The first id missing from the catalog
// aborts the lookup with an *domain.UnknownBuffError naming it.
func (c *Calculator) LookupBuffs(ids []string) ([]domain.BuffDefinition, error) {
	buffs := make([]domain.BuffDefinition, 0, len(ids))
	for _, id := range ids {
		b, ok := c.catalog.Get(id)
		if !ok {
			return nil, &domain.UnknownBuffError{Token: id}
		}
		buffs = append(buffs, b)
	}
	return buffs, nil
}

// FormatResult renders a rate with two decimals. Rates above the cap show
// "20%" with the raw value in parentheses.
func FormatResult(rate float64) string {
	if rate <= DisplayCap {
		return fmt.Sprintf(FormatRate, rate)
	}
	return fmt.Sprintf(FormatCappedRate, rate)
}

// ComputeRate runs a full calculation. An empty token list applies no buffs.
func (c *Calculator) ComputeRate(attribute int, tokens []string) (domain.CalculationResult, error) {
	buffs, err := c.LookupBuffs(tokens)
	if err != nil {
		return domain.CalculationResult{}, err
	}

	base := BaseRate(attribute)
	rate := ApplyBuffs(base, buffs)

	names := make([]string, len(buffs))
	for i, b := range buffs {
		names[i] = b.Name
	}

	return domain.CalculationResult{
		Attribute:    attribute,
		BaseRate:     base,
		FinalRate:    rate,
		Capped:       rate > DisplayCap,
		AppliedBuffs: names,
	}, nil
}

// Compute is ComputeRate over a request value
func (c *Calculator) Compute(req domain.CalculationRequest) (domain.CalculationResult, error) {
	return c.ComputeRate(req.Attribute, req.SelectedBuffIDs)
}

// ParseBuffTokens splits a free-text buff list ("3 9", "3  9 ") into ids
func ParseBuffTokens(s string) []string {
	return strings.Fields(s)
}
