// Package conversation provides intent parsing for the interactive prompt.
package conversation

import (
	"context"
	"regexp"
	"strings"

	"github.com/saltandflour/doughlab/internal/domain"
	"github.com/saltandflour/doughlab/internal/logger"
)

// Compile-time interface check.
var _ domain.IntentParser = (*KeywordParser)(nil)

// KeywordParser matches user input to intents using keywords and simple patterns.
type KeywordParser struct {
	log      *logger.Logger
	patterns []patternRule
}

type patternRule struct {
	regex   *regexp.Regexp
	intent  domain.IntentType
	payload bool // carry the full input as payload
}

// paramNames are the recipe fields a "set" command can target.
const paramNames = `hydration|salt|yeast|oil|sugar|balls|weight|humidity|preferment|pf`

// NewKeywordParser creates a keyword-based intent parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(styles|presets|list|browse)$`), domain.IntentListStyles, false},
		{regexp.MustCompile(`(?i)^(recipe|show|calc|calculate|weights)$`), domain.IntentShowRecipe, false},
		{regexp.MustCompile(`(?i)^(info|about|details|tips)$`), domain.IntentShowStyle, false},
		{regexp.MustCompile(`(?i)^(share|link|url)$`), domain.IntentShare, false},
		{regexp.MustCompile(`(?i)^(volume|cups|spoons)$`), domain.IntentVolume, false},
		{regexp.MustCompile(`(?i)^units?\b`), domain.IntentUnits, true},
		{regexp.MustCompile(`(?i)^(grams|ounces|oz|imperial|metric)$`), domain.IntentUnits, true},
		{regexp.MustCompile(`(?i)^(help|h|\?)$`), domain.IntentHelp, false},
		{regexp.MustCompile(`(?i)^(quit|exit|q)$`), domain.IntentQuit, false},
		{regexp.MustCompile(`(?i)^(set\s+)?(` + paramNames + `)\b`), domain.IntentSetParam, true},
	}
	return p
}

// Parse converts user input into an intent.
func (p *KeywordParser) Parse(ctx context.Context, input string) (*domain.Intent, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &domain.Intent{Type: domain.IntentUnknown}, nil
	}

	p.log.Debug("parsing input: %q", trimmed)
	lower := strings.ToLower(trimmed)

	// Pasted share links and explicit "load" commands.
	if strings.HasPrefix(lower, "load ") {
		parts := strings.SplitN(trimmed, " ", 2)
		if len(parts) == 2 {
			return &domain.Intent{Type: domain.IntentLoad, Payload: strings.TrimSpace(parts[1])}, nil
		}
	}
	if looksLikeShareLink(trimmed) {
		return &domain.Intent{Type: domain.IntentLoad, Payload: trimmed}, nil
	}

	// Style selection by number (e.g., "1", "2", "3").
	if len(trimmed) <= 2 && isDigits(trimmed) {
		return &domain.Intent{Type: domain.IntentSelectStyle, Payload: trimmed}, nil
	}

	// Timer commands route on the word after "timer".
	if lower == "timer" || strings.HasPrefix(lower, "timer ") {
		return p.parseTimer(trimmed), nil
	}

	// Check keyword patterns.
	for _, rule := range p.patterns {
		if rule.regex.MatchString(trimmed) {
			p.log.Debug("matched intent: %s", rule.intent)
			if rule.payload {
				return &domain.Intent{Type: rule.intent, Payload: trimmed}, nil
			}
			return &domain.Intent{Type: rule.intent}, nil
		}
	}

	// Check if input starts with "style", "select" or "pick" followed by something.
	for _, prefix := range []string{"style ", "select ", "pick "} {
		if strings.HasPrefix(lower, prefix) {
			parts := strings.SplitN(trimmed, " ", 2)
			if len(parts) == 2 {
				return &domain.Intent{Type: domain.IntentSelectStyle, Payload: strings.TrimSpace(parts[1])}, nil
			}
		}
	}

	p.log.Debug("no match, returning unknown intent")
	return &domain.Intent{Type: domain.IntentUnknown, Payload: trimmed}, nil
}

// parseTimer routes "timer ..." input to the right timer intent. The payload
// carries the argument text; the app layer parses durations.
func (p *KeywordParser) parseTimer(input string) *domain.Intent {
	arg := strings.TrimSpace(input[len("timer"):])
	lower := strings.ToLower(arg)

	switch lower {
	case "", "status":
		return &domain.Intent{Type: domain.IntentTimerStatus}
	case "start", "go":
		return &domain.Intent{Type: domain.IntentTimerStart}
	case "pause", "hold":
		return &domain.Intent{Type: domain.IntentTimerPause}
	case "toggle":
		return &domain.Intent{Type: domain.IntentTimerToggle}
	case "reset", "clear":
		return &domain.Intent{Type: domain.IntentTimerReset}
	}

	if strings.HasPrefix(arg, "+") || strings.HasPrefix(arg, "-") {
		return &domain.Intent{Type: domain.IntentTimerAdd, Payload: arg}
	}
	// Anything else is a duration, e.g. "timer 2h" or "timer 90m".
	return &domain.Intent{Type: domain.IntentTimerSet, Payload: arg}
}

// looksLikeShareLink reports whether the input is a pasted recipe link or
// query string rather than a command.
func looksLikeShareLink(s string) bool {
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return true
	}
	// Bare query strings like "s=neapolitan&w=250".
	return strings.Contains(s, "=") && strings.Contains(s, "&")
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
