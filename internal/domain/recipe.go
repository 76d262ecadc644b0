// Package domain defines the core types and interfaces for the dough
// calculator. All other packages depend on domain; domain depends on nothing.
package domain

// PreFermentType distinguishes the two supported pre-ferment styles.
type PreFermentType int

const (
	// PreFermentPoolish is a liquid pre-ferment, always at 100% hydration.
	PreFermentPoolish PreFermentType = iota
	// PreFermentBiga is a stiff pre-ferment with configurable hydration.
	PreFermentBiga
)

// String returns the wire/display name of the pre-ferment type.
func (t PreFermentType) String() string {
	switch t {
	case PreFermentPoolish:
		return "poolish"
	case PreFermentBiga:
		return "biga"
	default:
		return "unknown"
	}
}

// ParsePreFermentType converts a wire name back to a PreFermentType.
// Returns false for unrecognized names.
func ParsePreFermentType(name string) (PreFermentType, bool) {
	switch name {
	case "poolish":
		return PreFermentPoolish, true
	case "biga":
		return PreFermentBiga, true
	default:
		return PreFermentPoolish, false
	}
}

// RecipeParameters is the immutable input to the calculator. All percentage
// fields are baker's percentages expressed as fractions of flour weight,
// so Hydration 0.65 means 65% water relative to flour.
type RecipeParameters struct {
	NumBalls   int     // number of dough balls, >= 1
	BallWeight float64 // grams per ball, > 0

	Hydration float64
	Salt      float64
	Yeast     float64
	Oil       float64
	Sugar     float64

	// HumidityAdjust knocks 2.5 percentage points off the hydration for
	// humid environments where flour has already absorbed moisture.
	HumidityAdjust bool

	UsePreFerment          bool
	PreFermentType         PreFermentType
	PreFermentFlourPercent float64 // fraction of total flour, (0, 1]
	BigaHydration          float64 // only read when type is biga
}

// TotalDoughWeight is always derived, never stored.
func (p RecipeParameters) TotalDoughWeight() float64 {
	return float64(p.NumBalls) * p.BallWeight
}

// IngredientWeights holds the computed weights in grams for one dough stage.
// Flour, Water, Oil and Sugar are whole grams; Salt and Yeast carry one
// decimal place since they're dosed on finer scales.
type IngredientWeights struct {
	Flour float64
	Water float64
	Salt  float64
	Yeast float64
	Oil   float64
	Sugar float64
}

// PreFermentWeights describes the first stage of a two-stage dough.
type PreFermentWeights struct {
	Type         PreFermentType
	Flour        float64
	Water        float64
	Yeast        float64
	Hydration    float64 // percent, e.g. 100 for poolish
	FlourPercent float64 // percent of total flour in the pre-ferment
}

// Percentages echoes back the baker's percentages actually used by the
// calculation, after humidity adjustment, scaled to percent (x100).
type Percentages struct {
	Hydration float64
	Salt      float64
	Yeast     float64
	Oil       float64
	Sugar     float64
}

// CalculatedRecipe is the fully materialized output of a calculation.
// Exactly one of Single or the PreFerment/FinalDough pair is set.
type CalculatedRecipe struct {
	TotalWeight float64
	Percentages Percentages

	// Single-stage result. nil when a pre-ferment is used.
	Single *IngredientWeights

	// Two-stage result. Both nil for a single-stage dough.
	PreFerment *PreFermentWeights
	FinalDough *IngredientWeights
}

// TwoStage reports whether the recipe uses a pre-ferment.
func (r *CalculatedRecipe) TwoStage() bool { return r.PreFerment != nil }
