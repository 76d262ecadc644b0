package style

import (
	"context"
	"errors"
	"testing"

	"github.com/saltandflour/doughlab/internal/domain"
	"github.com/saltandflour/doughlab/internal/logger"
)

func setupCatalog(t *testing.T) (*Catalog, context.Context) {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	return NewCatalog(log), context.Background()
}

func TestCatalogShipsSevenStyles(t *testing.T) {
	c, ctx := setupCatalog(t)

	want := []string{"neapolitan", "new-york", "detroit", "thin-crispy", "poolish-biga", "emergency", "custom"}

	ids := c.IDs()
	if len(ids) != len(want) {
		t.Fatalf("expected %d styles, got %d", len(want), len(ids))
	}
	for i, id := range want {
		if ids[i] != id {
			t.Fatalf("expected style %q at position %d, got %q", id, i, ids[i])
		}
	}

	summaries, err := c.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != len(want) {
		t.Fatalf("expected %d summaries, got %d", len(want), len(summaries))
	}
}

func TestCatalogGet(t *testing.T) {
	c, ctx := setupCatalog(t)

	s, err := c.Get(ctx, "neapolitan")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if s.Name != "Neapolitan" {
		t.Fatalf("expected Neapolitan, got %q", s.Name)
	}
	if s.Defaults.Oil != 0 || s.Defaults.Sugar != 0 {
		t.Fatal("neapolitan defaults must be lean (no oil, no sugar)")
	}

	_, err = c.Get(ctx, "chicago")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalogDefaultsFallback(t *testing.T) {
	c, ctx := setupCatalog(t)

	custom := c.Defaults(ctx, CustomStyleID)
	unknown := c.Defaults(ctx, "no-such-style")
	if unknown != custom {
		t.Fatalf("expected custom defaults for unknown id, got %+v", unknown)
	}
}

func TestCatalogPoolishBigaDefaults(t *testing.T) {
	c, ctx := setupCatalog(t)

	p := c.Defaults(ctx, "poolish-biga")
	if !p.UsePreFerment {
		t.Fatal("poolish-biga defaults must enable the pre-ferment")
	}
	if p.PreFermentType != domain.PreFermentPoolish {
		t.Fatalf("expected poolish default, got %s", p.PreFermentType)
	}
	if p.PreFermentFlourPercent <= 0 || p.PreFermentFlourPercent > 1 {
		t.Fatalf("pre-ferment flour percent out of range: %v", p.PreFermentFlourPercent)
	}
}

func TestCatalogDefaultsAreCalculable(t *testing.T) {
	// Every shipped preset must produce a defined calculation: positive
	// balls and weight, positive flour denominator.
	c, ctx := setupCatalog(t)

	for _, id := range c.IDs() {
		p := c.Defaults(ctx, id)
		if p.NumBalls < 1 {
			t.Fatalf("style %s: numBalls %d", id, p.NumBalls)
		}
		if p.BallWeight <= 0 {
			t.Fatalf("style %s: ballWeight %v", id, p.BallWeight)
		}
		denom := 1 + p.Hydration + p.Salt + p.Yeast + p.Oil + p.Sugar
		if denom <= 0 {
			t.Fatalf("style %s: non-positive denominator %v", id, denom)
		}
	}
}

func TestCatalogSearch(t *testing.T) {
	c, ctx := setupCatalog(t)

	hits := c.Search(ctx, "pan")
	if len(hits) == 0 {
		t.Fatal("expected a hit for 'pan' (detroit)")
	}

	if hits := c.Search(ctx, "zzz-nothing"); len(hits) != 0 {
		t.Fatalf("expected no hits, got %d", len(hits))
	}
}
