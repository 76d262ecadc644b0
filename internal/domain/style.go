package domain

// StylePreset is an immutable catalog entry for a pizza style: calculator
// defaults plus presentation metadata the calculator never reads.
type StylePreset struct {
	ID          string
	Name        string
	Description string
	Defaults    RecipeParameters
	Meta        StyleMeta
}

// StyleMeta carries descriptive guidance for a style. Consumed only by the
// display layer.
type StyleMeta struct {
	Equipment    []string
	Flour        string
	BakeTemp     string
	BakeTime     string
	Fermentation string
	Tips         []string
}

// StyleSummary is a lightweight view of a preset for listing.
type StyleSummary struct {
	ID          string
	Name        string
	Description string
}
