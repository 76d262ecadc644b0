package units

import (
	"math"
	"testing"
)

func TestConvertWeight(t *testing.T) {
	tests := []struct {
		name  string
		grams float64
		unit  Unit
		want  float64
	}{
		{"grams round to whole", 597.7, Grams, 598},
		{"grams round down", 388.4, Grams, 388},
		{"ounces one decimal", 598, Ounces, 21.1},
		{"small dose in ounces", 12, Ounces, 0.4},
		{"zero", 0, Grams, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConvertWeight(tt.grams, tt.unit)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("ConvertWeight(%v, %s) = %v, want %v", tt.grams, tt.unit, got, tt.want)
			}
		})
	}
}

func TestFormatWeight(t *testing.T) {
	if got := FormatWeight(598, Grams); got != "598 g" {
		t.Fatalf("expected \"598 g\", got %q", got)
	}
	if got := FormatWeight(598, Ounces); got != "21.1 oz" {
		t.Fatalf("expected \"21.1 oz\", got %q", got)
	}
}

func TestFormatWeightPrecise(t *testing.T) {
	tests := []struct {
		name  string
		grams float64
		unit  Unit
		want  string
	}{
		{"small dose keeps a decimal", 1.8, Grams, "1.8 g"},
		{"salt dose keeps a decimal", 9.96, Grams, "10.0 g"},
		{"large weight stays whole", 598, Grams, "598 g"},
		{"boundary is whole", 10, Grams, "10 g"},
		{"ounces always one decimal", 598, Ounces, "21.1 oz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatWeightPrecise(tt.grams, tt.unit); got != tt.want {
				t.Fatalf("FormatWeightPrecise(%v, %s) = %q, want %q", tt.grams, tt.unit, got, tt.want)
			}
		})
	}
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		input  string
		want   Unit
		wantOK bool
	}{
		{"grams", Grams, true},
		{"g", Grams, true},
		{"ounces", Ounces, true},
		{"oz", Ounces, true},
		{"pounds", Grams, false},
		{"", Grams, false},
	}

	for _, tt := range tests {
		got, ok := ParseUnit(tt.input)
		if ok != tt.wantOK || got != tt.want {
			t.Fatalf("ParseUnit(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestVolumeLookups(t *testing.T) {
	// Flour has only a cup density; sub-cup measures divide it down.
	cup, ok := GramsPerCup("flour")
	if !ok {
		t.Fatal("expected flour cup density")
	}
	tbsp, ok := GramsPerTablespoon("flour")
	if !ok {
		t.Fatal("expected flour tablespoon fallback")
	}
	if math.Abs(tbsp-cup/16) > 1e-9 {
		t.Fatalf("tablespoon fallback should be cup/16: %v vs %v", tbsp, cup/16)
	}
	tsp, ok := GramsPerTeaspoon("flour")
	if !ok {
		t.Fatal("expected flour teaspoon fallback")
	}
	if math.Abs(tsp-cup/48) > 1e-9 {
		t.Fatalf("teaspoon fallback should be cup/48: %v vs %v", tsp, cup/48)
	}

	// Salt records its own teaspoon weight — no fallback.
	saltTsp, ok := GramsPerTeaspoon("salt")
	if !ok || saltTsp != 6 {
		t.Fatalf("expected salt teaspoon density 6, got %v (%v)", saltTsp, ok)
	}

	if _, ok := GramsPerCup("saffron"); ok {
		t.Fatal("unknown ingredient should not resolve")
	}
}

func TestGramsToVolume(t *testing.T) {
	eq, ok := GramsToVolume("flour", 250)
	if !ok {
		t.Fatal("expected flour volume")
	}
	if math.Abs(eq.Cups-2) > 1e-9 {
		t.Fatalf("250 g flour should be 2 cups, got %v", eq.Cups)
	}

	if _, ok := GramsToVolume("saffron", 1); ok {
		t.Fatal("unknown ingredient should not convert")
	}
}
