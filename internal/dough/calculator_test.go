package dough

import (
	"errors"
	"math"
	"testing"

	"github.com/saltandflour/doughlab/internal/domain"
)

// baseParams is the reference recipe: 4 x 250g balls at 65% hydration,
// 2% salt, 0.3% yeast.
func baseParams() domain.RecipeParameters {
	return domain.RecipeParameters{
		NumBalls:   4,
		BallWeight: 250,
		Hydration:  0.65,
		Salt:       0.02,
		Yeast:      0.003,
	}
}

func TestCalculateSingleStage(t *testing.T) {
	recipe, err := Calculate(baseParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if recipe.TwoStage() {
		t.Fatal("expected single-stage result")
	}
	if recipe.TotalWeight != 1000 {
		t.Fatalf("expected total weight 1000, got %v", recipe.TotalWeight)
	}

	// denominator = 1.673, flour = 1000/1.673 = 597.7 -> 598
	w := recipe.Single
	if w.Flour != 598 {
		t.Fatalf("expected flour 598, got %v", w.Flour)
	}
	if w.Water != 389 {
		t.Fatalf("expected water 389, got %v", w.Water)
	}
	if w.Salt != 12.0 {
		t.Fatalf("expected salt 12.0, got %v", w.Salt)
	}
	if w.Yeast != 1.8 {
		t.Fatalf("expected yeast 1.8, got %v", w.Yeast)
	}
	if w.Oil != 0 || w.Sugar != 0 {
		t.Fatalf("expected zero oil/sugar, got %v / %v", w.Oil, w.Sugar)
	}

	if math.Abs(recipe.Percentages.Hydration-65) > 1e-9 {
		t.Fatalf("expected 65%% hydration echoed back, got %v", recipe.Percentages.Hydration)
	}
	if math.Abs(recipe.Percentages.Salt-2) > 1e-9 {
		t.Fatalf("expected 2%% salt echoed back, got %v", recipe.Percentages.Salt)
	}
}

func TestCalculateWeightsSumToTotal(t *testing.T) {
	tests := []struct {
		name   string
		params domain.RecipeParameters
	}{
		{"lean dough", baseParams()},
		{"enriched dough", domain.RecipeParameters{
			NumBalls: 2, BallWeight: 280,
			Hydration: 0.58, Salt: 0.02, Yeast: 0.004, Oil: 0.025, Sugar: 0.02,
		}},
		{"high hydration", domain.RecipeParameters{
			NumBalls: 6, BallWeight: 270,
			Hydration: 0.8, Salt: 0.025, Yeast: 0.002,
		}},
		{"single ball", domain.RecipeParameters{
			NumBalls: 1, BallWeight: 230,
			Hydration: 0.6, Salt: 0.018, Yeast: 0.005,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipe, err := Calculate(tt.params)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			w := recipe.Single
			sum := w.Flour + w.Water + w.Salt + w.Yeast + w.Oil + w.Sugar
			if math.Abs(sum-recipe.TotalWeight) > 3 {
				t.Fatalf("ingredient sum %v deviates from total %v by more than rounding tolerance", sum, recipe.TotalWeight)
			}
		})
	}
}

func TestHumidityAdjustment(t *testing.T) {
	params := baseParams()

	plain, err := Calculate(params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	params.HumidityAdjust = true
	adjusted, err := Calculate(params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Exactly 2.5 percentage points less, never more, never less.
	diff := plain.Percentages.Hydration - adjusted.Percentages.Hydration
	if math.Abs(diff-2.5) > 1e-9 {
		t.Fatalf("expected hydration reduced by exactly 2.5 points, got %v", diff)
	}

	// Less water means the same total is reached with more flour.
	if adjusted.Single.Flour <= plain.Single.Flour {
		t.Fatalf("expected more flour after humidity adjustment: %v vs %v", adjusted.Single.Flour, plain.Single.Flour)
	}
	if adjusted.Single.Water >= plain.Single.Water {
		t.Fatalf("expected less water after humidity adjustment: %v vs %v", adjusted.Single.Water, plain.Single.Water)
	}
}

func TestCalculatePoolish(t *testing.T) {
	params := baseParams()
	params.UsePreFerment = true
	params.PreFermentType = domain.PreFermentPoolish
	params.PreFermentFlourPercent = 0.25
	// Deliberately nonsense biga hydration — must be ignored for poolish.
	params.BigaHydration = 0.5

	recipe, err := Calculate(params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !recipe.TwoStage() {
		t.Fatal("expected two-stage result")
	}

	pf := recipe.PreFerment
	if pf.Flour != 150 {
		t.Fatalf("expected pre-ferment flour 150, got %v", pf.Flour)
	}
	// Poolish hydration is pinned at 100% regardless of the base 65%.
	if pf.Hydration != 100 {
		t.Fatalf("expected poolish hydration 100%%, got %v", pf.Hydration)
	}
	if pf.Water != 150 {
		t.Fatalf("expected pre-ferment water 150, got %v", pf.Water)
	}
	if pf.FlourPercent != 25 {
		t.Fatalf("expected flour percent 25, got %v", pf.FlourPercent)
	}

	// All yeast goes into the pre-ferment.
	if pf.Yeast != 1.8 {
		t.Fatalf("expected pre-ferment yeast 1.8, got %v", pf.Yeast)
	}
	if recipe.FinalDough.Yeast != 0 {
		t.Fatalf("final dough yeast must be exactly 0, got %v", recipe.FinalDough.Yeast)
	}
}

func TestCalculateBiga(t *testing.T) {
	params := baseParams()
	params.UsePreFerment = true
	params.PreFermentType = domain.PreFermentBiga
	params.PreFermentFlourPercent = 0.3
	params.BigaHydration = 0.45

	recipe, err := Calculate(params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pf := recipe.PreFerment
	if math.Abs(pf.Hydration-45) > 1e-9 {
		t.Fatalf("expected biga hydration 45%%, got %v", pf.Hydration)
	}
	wantWater := math.Round(pf.Flour * 0.45)
	if pf.Water != wantWater {
		t.Fatalf("expected biga water %v, got %v", wantWater, pf.Water)
	}
}

func TestTwoStageConservation(t *testing.T) {
	tests := []struct {
		name   string
		pfType domain.PreFermentType
		pfp    float64
		bigaH  float64
	}{
		{"poolish 20%", domain.PreFermentPoolish, 0.2, 0},
		{"poolish 25%", domain.PreFermentPoolish, 0.25, 0},
		{"poolish 50%", domain.PreFermentPoolish, 0.5, 0},
		{"biga 30% at 45%", domain.PreFermentBiga, 0.3, 0.45},
		{"biga 50% at 60%", domain.PreFermentBiga, 0.5, 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := baseParams()
			params.UsePreFerment = true
			params.PreFermentType = tt.pfType
			params.PreFermentFlourPercent = tt.pfp
			params.BigaHydration = tt.bigaH

			two, err := Calculate(params)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			params.UsePreFerment = false
			single, err := Calculate(params)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			gotFlour := two.PreFerment.Flour + two.FinalDough.Flour
			if gotFlour != single.Single.Flour {
				t.Fatalf("flour not conserved: %v + %v != %v", two.PreFerment.Flour, two.FinalDough.Flour, single.Single.Flour)
			}
			gotWater := two.PreFerment.Water + two.FinalDough.Water
			if gotWater != single.Single.Water {
				t.Fatalf("water not conserved: %v + %v != %v", two.PreFerment.Water, two.FinalDough.Water, single.Single.Water)
			}
		})
	}
}

func TestCalculateInvalidParameters(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.RecipeParameters)
	}{
		{"zero balls", func(p *domain.RecipeParameters) { p.NumBalls = 0 }},
		{"negative balls", func(p *domain.RecipeParameters) { p.NumBalls = -2 }},
		{"zero ball weight", func(p *domain.RecipeParameters) { p.BallWeight = 0 }},
		{"negative ball weight", func(p *domain.RecipeParameters) { p.BallWeight = -100 }},
		{"NaN hydration", func(p *domain.RecipeParameters) { p.Hydration = math.NaN() }},
		{"denominator driven to zero", func(p *domain.RecipeParameters) { p.Hydration = -1.023 }},
		{"denominator negative", func(p *domain.RecipeParameters) { p.Hydration = -2 }},
		{"hydration above two", func(p *domain.RecipeParameters) { p.Hydration = 2.5 }},
		{"negative salt", func(p *domain.RecipeParameters) { p.Salt = -0.01 }},
		{"humidity cut below zero hydration", func(p *domain.RecipeParameters) {
			p.Hydration = 0.02
			p.HumidityAdjust = true
		}},
		{"oil above one", func(p *domain.RecipeParameters) { p.Oil = 1.5 }},
		{"pre-ferment percent zero", func(p *domain.RecipeParameters) {
			p.UsePreFerment = true
			p.PreFermentFlourPercent = 0
		}},
		{"pre-ferment percent above one", func(p *domain.RecipeParameters) {
			p.UsePreFerment = true
			p.PreFermentFlourPercent = 1.2
		}},
		{"biga without hydration", func(p *domain.RecipeParameters) {
			p.UsePreFerment = true
			p.PreFermentType = domain.PreFermentBiga
			p.PreFermentFlourPercent = 0.3
			p.BigaHydration = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := baseParams()
			tt.mutate(&params)

			_, err := Calculate(params)
			if !errors.Is(err, domain.ErrInvalidParameters) {
				t.Fatalf("expected ErrInvalidParameters, got %v", err)
			}
		})
	}
}
