// Package style provides the pizza style preset catalog.
package style

import (
	"context"
	"sort"
	"strings"

	"github.com/saltandflour/doughlab/internal/domain"
	"github.com/saltandflour/doughlab/internal/logger"
)

// CustomStyleID is the catch-all preset unknown ids fall back to.
const CustomStyleID = "custom"

// Compile-time interface check.
var _ domain.StyleSource = (*Catalog)(nil)

// Catalog holds the built-in style presets. The map is filled once at
// construction and never mutated, so reads need no locking.
type Catalog struct {
	styles map[string]*domain.StylePreset
	order  []string
	log    *logger.Logger
}

// NewCatalog creates a catalog preloaded with the built-in styles.
func NewCatalog(log *logger.Logger) *Catalog {
	c := &Catalog{
		styles: make(map[string]*domain.StylePreset),
		log:    log,
	}
	c.seed()
	return c
}

// IDs returns all style ids in presentation order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// List returns summaries of all styles in presentation order.
func (c *Catalog) List(ctx context.Context) ([]domain.StyleSummary, error) {
	c.log.Debug("listing styles, count=%d", len(c.order))

	out := make([]domain.StyleSummary, 0, len(c.order))
	for _, id := range c.order {
		s := c.styles[id]
		out = append(out, domain.StyleSummary{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
		})
	}
	return out, nil
}

// Get returns a style preset by id.
func (c *Catalog) Get(ctx context.Context, id string) (*domain.StylePreset, error) {
	s, ok := c.styles[id]
	if !ok {
		c.log.Debug("style not found: %s", id)
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// Defaults returns the default parameters for a style. Unknown ids fall back
// to the custom preset — a bad style id in a shared link should never be an
// error, just a neutral starting point.
func (c *Catalog) Defaults(ctx context.Context, id string) domain.RecipeParameters {
	if s, ok := c.styles[id]; ok {
		return s.Defaults
	}
	c.log.Debug("unknown style %q, falling back to %s defaults", id, CustomStyleID)
	return c.styles[CustomStyleID].Defaults
}

// Search returns styles whose name or description contain the query string.
func (c *Catalog) Search(ctx context.Context, query string) []domain.StyleSummary {
	q := strings.ToLower(query)

	var out []domain.StyleSummary
	for _, id := range c.order {
		s := c.styles[id]
		if strings.Contains(strings.ToLower(s.Name), q) || strings.Contains(strings.ToLower(s.Description), q) {
			out = append(out, domain.StyleSummary{ID: s.ID, Name: s.Name, Description: s.Description})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// seed populates the catalog with the seven built-in styles.
func (c *Catalog) seed() {
	presets := []*domain.StylePreset{
		c.neapolitan(),
		c.newYork(),
		c.detroit(),
		c.thinCrispy(),
		c.poolishBiga(),
		c.emergency(),
		c.custom(),
	}
	for _, s := range presets {
		c.styles[s.ID] = s
		c.order = append(c.order, s.ID)
	}
	c.log.Debug("seeded %d styles", len(presets))
}

func (c *Catalog) neapolitan() *domain.StylePreset {
	return &domain.StylePreset{
		ID:          "neapolitan",
		Name:        "Neapolitan",
		Description: "The classic: soft, leopard-spotted cornicione, eaten with a knife and fork or folded. Lean dough, screaming hot oven.",
		Defaults: domain.RecipeParameters{
			NumBalls:   4,
			BallWeight: 250,
			Hydration:  0.62,
			Salt:       0.028,
			Yeast:      0.002,
		},
		Meta: domain.StyleMeta{
			Equipment:    []string{"pizza stone or steel", "wood-fired or 450°C+ oven", "peel"},
			Flour:        "Finely milled 00 flour, 11-12.5% protein",
			BakeTemp:     "430-480°C (800-900°F)",
			BakeTime:     "60-90 seconds",
			Fermentation: "2h bulk at room temperature, then ball and proof 6-8h at room temperature (or 24-48h cold).",
			Tips: []string{
				"No oil, no sugar — the oven is hot enough to brown a lean dough.",
				"Keep the rim untouched when stretching to preserve the air in the cornicione.",
			},
		},
	}
}

func (c *Catalog) newYork() *domain.StylePreset {
	return &domain.StylePreset{
		ID:          "new-york",
		Name:        "New York",
		Description: "Large foldable slices with a crisp bottom and chewy crumb. Oil and a touch of sugar help it brown in a home oven.",
		Defaults: domain.RecipeParameters{
			NumBalls:   2,
			BallWeight: 320,
			Hydration:  0.63,
			Salt:       0.02,
			Yeast:      0.004,
			Oil:        0.025,
			Sugar:      0.02,
		},
		Meta: domain.StyleMeta{
			Equipment: []string{"pizza steel", "home oven at max", "wide peel"},
			Flour:     "Strong bread flour, 12.5-14% protein",
			BakeTemp:  "280-300°C (540-570°F)",
			BakeTime:  "6-8 minutes",
			Fermentation: "1h at room temperature, then 24-72h cold ferment. The long cold rest builds the flavor " +
				"the style is known for.",
			Tips: []string{
				"Stretch thin in the middle; the fold is the point.",
				"Cold dough tears — let balls warm up 1-2h before stretching.",
			},
		},
	}
}

func (c *Catalog) detroit() *domain.StylePreset {
	return &domain.StylePreset{
		ID:          "detroit",
		Name:        "Detroit",
		Description: "Pan pizza with a light, open crumb and caramelized cheese edges. High hydration, baked in a steel pan.",
		Defaults: domain.RecipeParameters{
			NumBalls:   1,
			BallWeight: 600,
			Hydration:  0.70,
			Salt:       0.02,
			Yeast:      0.005,
			Oil:        0.02,
		},
		Meta: domain.StyleMeta{
			Equipment: []string{"Detroit steel pan (10x14\")", "home oven"},
			Flour:     "Bread flour, around 13% protein",
			BakeTemp:  "250°C (480°F)",
			BakeTime:  "12-15 minutes",
			Fermentation: "2h bulk, then press into the oiled pan and proof 2-4h until the dough fills the corners " +
				"and looks bubbly.",
			Tips: []string{
				"Cheese all the way to the pan edge — the burnt cheese wall is mandatory.",
				"Sauce goes on top, after the bake or in racing stripes before it.",
			},
		},
	}
}

func (c *Catalog) thinCrispy() *domain.StylePreset {
	return &domain.StylePreset{
		ID:          "thin-crispy",
		Name:        "Thin & Crispy",
		Description: "Cracker-thin bar-style crust that snaps. Low hydration, rolled flat, docked, and baked until golden.",
		Defaults: domain.RecipeParameters{
			NumBalls:   4,
			BallWeight: 180,
			Hydration:  0.55,
			Salt:       0.018,
			Yeast:      0.003,
			Oil:        0.03,
			Sugar:      0.01,
		},
		Meta: domain.StyleMeta{
			Equipment: []string{"rolling pin", "dough docker or fork", "pizza screen or steel"},
			Flour:     "All-purpose flour, 10-11.5% protein",
			BakeTemp:  "260°C (500°F)",
			BakeTime:  "8-10 minutes",
			Fermentation: "Short: 1-2h at room temperature is enough. This crust is about texture, not " +
				"fermentation flavor.",
			Tips: []string{
				"Dock thoroughly or it will balloon.",
				"Roll, don't stretch — you want the gas out, not in.",
			},
		},
	}
}

func (c *Catalog) poolishBiga() *domain.StylePreset {
	return &domain.StylePreset{
		ID:          "poolish-biga",
		Name:        "Poolish / Biga",
		Description: "Two-stage dough built on a pre-ferment for deeper flavor and a lighter crumb. Poolish is liquid, biga is stiff.",
		Defaults: domain.RecipeParameters{
			NumBalls:               4,
			BallWeight:             250,
			Hydration:              0.65,
			Salt:                   0.025,
			Yeast:                  0.003,
			UsePreFerment:          true,
			PreFermentType:         domain.PreFermentPoolish,
			PreFermentFlourPercent: 0.3,
			BigaHydration:          0.5,
		},
		Meta: domain.StyleMeta{
			Equipment: []string{"container for the pre-ferment", "pizza stone or steel"},
			Flour:     "00 or bread flour, 12-13% protein",
			BakeTemp:  "300-450°C depending on target style",
			BakeTime:  "2-7 minutes",
			Fermentation: "Pre-ferment 12-16h at room temperature until domed and bubbly, then mix the final dough, " +
				"bulk 1-2h, ball, and proof 4-6h.",
			Tips: []string{
				"All the yeast lives in the pre-ferment — the final dough gets none.",
				"A poolish at its peak smells nutty and sweet; collapsed and sour means it went too long.",
			},
		},
	}
}

func (c *Catalog) emergency() *domain.StylePreset {
	return &domain.StylePreset{
		ID:          "emergency",
		Name:        "Emergency",
		Description: "Pizza tonight, decided at 5pm. Heavy yeast and a warm spot stand in for time. Use the countdown timer.",
		Defaults: domain.RecipeParameters{
			NumBalls:   4,
			BallWeight: 250,
			Hydration:  0.60,
			Salt:       0.02,
			Yeast:      0.01,
			Sugar:      0.01,
		},
		Meta: domain.StyleMeta{
			Equipment: []string{"home oven at max", "pizza steel if you have one"},
			Flour:     "Whatever is in the cupboard — bread flour if possible",
			BakeTemp:  "As hot as the oven goes",
			BakeTime:  "7-9 minutes",
			Fermentation: "2h total: 1h bulk somewhere warm (25-27°C), ball, then 1h proof. Start the timer when " +
				"the dough goes to rest.",
			Tips: []string{
				"It won't have the depth of a long ferment. It will still beat delivery.",
				"Sugar feeds the rushed yeast and helps browning.",
			},
		},
	}
}

func (c *Catalog) custom() *domain.StylePreset {
	return &domain.StylePreset{
		ID:          CustomStyleID,
		Name:        "Custom",
		Description: "A neutral starting point. Set every parameter yourself.",
		Defaults: domain.RecipeParameters{
			NumBalls:   4,
			BallWeight: 250,
			Hydration:  0.60,
			Salt:       0.02,
			Yeast:      0.003,
		},
		Meta: domain.StyleMeta{
			Flour:        "Your choice",
			BakeTemp:     "Depends on the target style",
			BakeTime:     "Depends on the target style",
			Fermentation: "Depends on yeast amount and temperature.",
		},
	}
}
