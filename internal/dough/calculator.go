// Package dough implements the baker's-percentage calculation engine.
//
// The engine is a single pure transformation: a RecipeParameters value goes
// in, a fully materialized CalculatedRecipe comes out. Nothing is cached and
// nothing is recomputed lazily; every call derives everything from scratch.
package dough

import (
	"fmt"
	"math"

	"github.com/saltandflour/doughlab/internal/domain"
)

// humidityReduction is the fixed hydration cut applied when the humidity
// adjustment is on: 2.5 percentage points, not configurable.
const humidityReduction = 0.025

// Calculate derives ingredient weights from baker's percentages.
//
// Flour is the anchor: total dough weight divided by one plus the sum of all
// percentage fractions. Every other ingredient is flour times its fraction.
// Flour, water, oil and sugar round to whole grams; salt and yeast round to
// one decimal place because they're measured on finer scales.
func Calculate(params domain.RecipeParameters) (*domain.CalculatedRecipe, error) {
	if err := validate(params); err != nil {
		return nil, err
	}

	total := params.TotalDoughWeight()

	hydration := params.Hydration
	if params.HumidityAdjust {
		hydration -= humidityReduction
		if hydration <= 0 {
			return nil, fmt.Errorf("%w: humidity adjustment leaves non-positive hydration (%v)", domain.ErrInvalidParameters, hydration)
		}
	}

	denom := 1 + hydration + params.Salt + params.Yeast + params.Oil + params.Sugar
	if denom <= 0 {
		return nil, fmt.Errorf("%w: percentage sum leaves a non-positive flour denominator (%.3f)", domain.ErrInvalidParameters, denom)
	}

	flour := total / denom
	water := flour * hydration

	out := &domain.CalculatedRecipe{
		TotalWeight: total,
		Percentages: domain.Percentages{
			Hydration: hydration * 100,
			Salt:      params.Salt * 100,
			Yeast:     params.Yeast * 100,
			Oil:       params.Oil * 100,
			Sugar:     params.Sugar * 100,
		},
	}

	if !params.UsePreFerment {
		out.Single = &domain.IngredientWeights{
			Flour: math.Round(flour),
			Water: math.Round(water),
			Salt:  round1(flour * params.Salt),
			Yeast: round1(flour * params.Yeast),
			Oil:   math.Round(flour * params.Oil),
			Sugar: math.Round(flour * params.Sugar),
		}
		return out, nil
	}

	// Two-stage dough. The pre-ferment takes a slice of the total flour and,
	// following the traditional method, ALL of the yeast — the final dough
	// gets zero additional yeast. Poolish hydration is pinned at 100%; only
	// a biga's hydration is configurable.
	pfHydration := 1.0
	if params.PreFermentType == domain.PreFermentBiga {
		pfHydration = params.BigaHydration
	}

	totalFlour := math.Round(flour)
	totalWater := math.Round(water)
	pfFlour := math.Round(totalFlour * params.PreFermentFlourPercent)
	pfWater := math.Round(pfFlour * pfHydration)

	out.PreFerment = &domain.PreFermentWeights{
		Type:         params.PreFermentType,
		Flour:        pfFlour,
		Water:        pfWater,
		Yeast:        round1(flour * params.Yeast),
		Hydration:    pfHydration * 100,
		FlourPercent: params.PreFermentFlourPercent * 100,
	}

	// Final dough flour and water are remainders of the rounded totals, so
	// the two stages always sum back to the whole batch.
	out.FinalDough = &domain.IngredientWeights{
		Flour: totalFlour - pfFlour,
		Water: totalWater - pfWater,
		Salt:  round1(flour * params.Salt),
		Yeast: 0,
		Oil:   math.Round(flour * params.Oil),
		Sugar: math.Round(flour * params.Sugar),
	}

	return out, nil
}

// validate rejects parameter sets the calculation is undefined for, rather
// than dividing anyway and handing back NaN or negative weights.
func validate(params domain.RecipeParameters) error {
	if params.NumBalls < 1 {
		return fmt.Errorf("%w: numBalls must be at least 1, got %d", domain.ErrInvalidParameters, params.NumBalls)
	}
	if params.BallWeight <= 0 || math.IsNaN(params.BallWeight) || math.IsInf(params.BallWeight, 0) {
		return fmt.Errorf("%w: ballWeight must be positive, got %v", domain.ErrInvalidParameters, params.BallWeight)
	}
	if math.IsNaN(params.Hydration) || params.Hydration <= 0 || params.Hydration > 2 {
		return fmt.Errorf("%w: hydration must be in (0, 2], got %v", domain.ErrInvalidParameters, params.Hydration)
	}
	for name, v := range map[string]float64{
		"salt":  params.Salt,
		"yeast": params.Yeast,
		"oil":   params.Oil,
		"sugar": params.Sugar,
	} {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("%w: %s must be in [0, 1], got %v", domain.ErrInvalidParameters, name, v)
		}
	}
	if params.UsePreFerment {
		if params.PreFermentFlourPercent <= 0 || params.PreFermentFlourPercent > 1 {
			return fmt.Errorf("%w: preFermentFlourPercent must be in (0, 1], got %v", domain.ErrInvalidParameters, params.PreFermentFlourPercent)
		}
		if params.PreFermentType == domain.PreFermentBiga && (params.BigaHydration <= 0 || params.BigaHydration > 1) {
			return fmt.Errorf("%w: bigaHydration must be in (0, 1], got %v", domain.ErrInvalidParameters, params.BigaHydration)
		}
	}
	return nil
}

// round1 rounds to one decimal place.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
