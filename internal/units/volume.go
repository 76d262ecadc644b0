package units

// Sub-cup measures per US cup.
const (
	tablespoonsPerCup = 16
	teaspoonsPerCup   = 48
)

// density records how much an ingredient weighs per volume measure.
// Sub-cup fields may be zero, in which case the cup ratio is divided down.
type density struct {
	gramsPerCup        float64
	gramsPerTablespoon float64
	gramsPerTeaspoon   float64
}

// volumeTable holds the known ingredient densities. Values are for the
// typical calculator ingredients: scooped-and-leveled flour, fine sea salt,
// instant dry yeast.
var volumeTable = map[string]density{
	"flour": {gramsPerCup: 125},
	"water": {gramsPerCup: 237},
	"salt":  {gramsPerCup: 292, gramsPerTeaspoon: 6},
	"yeast": {gramsPerTeaspoon: 3.1, gramsPerCup: 149},
	"oil":   {gramsPerCup: 218, gramsPerTablespoon: 13.6},
	"sugar": {gramsPerCup: 200, gramsPerTeaspoon: 4.2},
}

// VolumeIngredients returns the ingredients with a recorded density.
func VolumeIngredients() []string {
	return []string{"flour", "water", "salt", "yeast", "oil", "sugar"}
}

// GramsPerCup returns the cup density for an ingredient.
// Returns false for ingredients without a recorded density.
func GramsPerCup(ingredient string) (float64, bool) {
	d, ok := volumeTable[ingredient]
	if !ok || d.gramsPerCup == 0 {
		return 0, false
	}
	return d.gramsPerCup, true
}

// GramsPerTablespoon returns the tablespoon density, falling back to the cup
// ratio when no ingredient-specific tablespoon weight is recorded.
func GramsPerTablespoon(ingredient string) (float64, bool) {
	d, ok := volumeTable[ingredient]
	if !ok {
		return 0, false
	}
	if d.gramsPerTablespoon > 0 {
		return d.gramsPerTablespoon, true
	}
	if d.gramsPerCup > 0 {
		return d.gramsPerCup / tablespoonsPerCup, true
	}
	return 0, false
}

// GramsPerTeaspoon returns the teaspoon density, falling back to the cup
// ratio when no ingredient-specific teaspoon weight is recorded.
func GramsPerTeaspoon(ingredient string) (float64, bool) {
	d, ok := volumeTable[ingredient]
	if !ok {
		return 0, false
	}
	if d.gramsPerTeaspoon > 0 {
		return d.gramsPerTeaspoon, true
	}
	if d.gramsPerCup > 0 {
		return d.gramsPerCup / teaspoonsPerCup, true
	}
	return 0, false
}

// VolumeEquivalents expresses one weight as the three common US volume
// measures.
type VolumeEquivalents struct {
	Cups        float64
	Tablespoons float64
	Teaspoons   float64
}

// GramsToVolume converts a gram weight of the named ingredient into volume
// equivalents. Returns false for ingredients without a recorded density.
func GramsToVolume(ingredient string, grams float64) (VolumeEquivalents, bool) {
	cup, cupOK := GramsPerCup(ingredient)
	tbsp, tbspOK := GramsPerTablespoon(ingredient)
	tsp, tspOK := GramsPerTeaspoon(ingredient)
	if !cupOK && !tbspOK && !tspOK {
		return VolumeEquivalents{}, false
	}

	var out VolumeEquivalents
	if cupOK {
		out.Cups = grams / cup
	}
	if tbspOK {
		out.Tablespoons = grams / tbsp
	}
	if tspOK {
		out.Teaspoons = grams / tsp
	}
	return out, true
}
