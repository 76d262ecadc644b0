package conversation

import (
	"context"
	"testing"

	"github.com/saltandflour/doughlab/internal/domain"
	"github.com/saltandflour/doughlab/internal/logger"
)

func TestKeywordParser(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	parser := NewKeywordParser(log)
	ctx := context.Background()

	tests := []struct {
		input       string
		wantType    domain.IntentType
		wantPayload string
	}{
		// List styles
		{"styles", domain.IntentListStyles, ""},
		{"list", domain.IntentListStyles, ""},
		{"presets", domain.IntentListStyles, ""},

		// Select by number
		{"1", domain.IntentSelectStyle, "1"},
		{"7", domain.IntentSelectStyle, "7"},

		// Select by name
		{"style detroit", domain.IntentSelectStyle, "detroit"},
		{"select neapolitan", domain.IntentSelectStyle, "neapolitan"},
		{"pick new-york", domain.IntentSelectStyle, "new-york"},

		// Parameter changes carry the full input
		{"hydration 65", domain.IntentSetParam, "hydration 65"},
		{"set hydration 65%", domain.IntentSetParam, "set hydration 65%"},
		{"salt 2.5", domain.IntentSetParam, "salt 2.5"},
		{"balls 6", domain.IntentSetParam, "balls 6"},
		{"weight 280", domain.IntentSetParam, "weight 280"},
		{"humidity on", domain.IntentSetParam, "humidity on"},
		{"preferment biga", domain.IntentSetParam, "preferment biga"},

		// Recipe output
		{"recipe", domain.IntentShowRecipe, ""},
		{"calc", domain.IntentShowRecipe, ""},
		{"weights", domain.IntentShowRecipe, ""},

		// Style info
		{"info", domain.IntentShowStyle, ""},
		{"tips", domain.IntentShowStyle, ""},

		// Sharing
		{"share", domain.IntentShare, ""},
		{"link", domain.IntentShare, ""},

		// Loading
		{"load https://doughlab.app/r?s=detroit&w=600", domain.IntentLoad, "https://doughlab.app/r?s=detroit&w=600"},
		{"https://doughlab.app/r?s=detroit&w=600", domain.IntentLoad, "https://doughlab.app/r?s=detroit&w=600"},
		{"s=neapolitan&n=4&w=250", domain.IntentLoad, "s=neapolitan&n=4&w=250"},

		// Units and volume
		{"units oz", domain.IntentUnits, "units oz"},
		{"grams", domain.IntentUnits, "grams"},
		{"volume", domain.IntentVolume, ""},
		{"cups", domain.IntentVolume, ""},

		// Timer family
		{"timer", domain.IntentTimerStatus, ""},
		{"timer status", domain.IntentTimerStatus, ""},
		{"timer 2h", domain.IntentTimerSet, "2h"},
		{"timer 90m", domain.IntentTimerSet, "90m"},
		{"timer start", domain.IntentTimerStart, ""},
		{"timer pause", domain.IntentTimerPause, ""},
		{"timer toggle", domain.IntentTimerToggle, ""},
		{"timer reset", domain.IntentTimerReset, ""},
		{"timer +10m", domain.IntentTimerAdd, "+10m"},
		{"timer -5m", domain.IntentTimerAdd, "-5m"},

		// Help / quit
		{"help", domain.IntentHelp, ""},
		{"?", domain.IntentHelp, ""},
		{"quit", domain.IntentQuit, ""},
		{"q", domain.IntentQuit, ""},

		// Unknown
		{"bake me a cake", domain.IntentUnknown, "bake me a cake"},
		{"", domain.IntentUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			intent, err := parser.Parse(ctx, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if intent.Type != tt.wantType {
				t.Errorf("input=%q: got type %s, want %s", tt.input, intent.Type, tt.wantType)
			}
			if tt.wantPayload != "" && intent.Payload != tt.wantPayload {
				t.Errorf("input=%q: got payload %q, want %q", tt.input, intent.Payload, tt.wantPayload)
			}
		})
	}
}
