// Package share implements the compact recipe link codec.
//
// A recipe is serialized into short query-string keys with scaled-integer
// values so links stay short and free of floating-point noise. Decoding is
// deliberately forgiving: unknown or malformed keys are dropped, and absent
// fields stay absent so the caller can overlay a style's defaults onto the
// gaps.
package share

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/saltandflour/doughlab/internal/domain"
	"github.com/saltandflour/doughlab/internal/logger"
)

// Query keys. Percent-like values are stored as scaled integers: hydration
// x100, salt and yeast x1000 (finer dosing), oil/sugar/pre-ferment flour
// percent x100.
const (
	keyStyle           = "s"
	keyNumBalls        = "n"
	keyBallWeight      = "w"
	keyHydration       = "h"
	keySalt            = "sa"
	keyYeast           = "y"
	keyOil             = "o"
	keySugar           = "su"
	keyPreFerment      = "pf"
	keyPreFermentType  = "pft"
	keyPreFermentFlour = "pfp"
	keyHumidity        = "ha"
	keyFlourType       = "ft"
)

// Option configures the codec.
type Option func(*Codec)

// WithBaseURL prefixes encoded links with the given page URL.
func WithBaseURL(base string) Option {
	return func(c *Codec) {
		c.baseURL = strings.TrimRight(base, "?&")
	}
}

// Codec encodes and decodes recipe share links.
type Codec struct {
	log     *logger.Logger
	baseURL string
}

// NewCodec creates a share link codec.
func NewCodec(log *logger.Logger, opts ...Option) *Codec {
	c := &Codec{log: log}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Encode serializes the parameters into a share link. Only fields that
// differ from the unset baseline are written: oil and sugar are omitted at
// zero, the pre-ferment block is omitted entirely when disabled, and the
// humidity flag is omitted when off. styleID and flourType are passed
// through as raw strings and may be empty.
func (c *Codec) Encode(params domain.RecipeParameters, styleID, flourType string) string {
	vals := url.Values{}

	if styleID != "" {
		vals.Set(keyStyle, styleID)
	}
	vals.Set(keyNumBalls, strconv.Itoa(params.NumBalls))
	vals.Set(keyBallWeight, strconv.Itoa(int(math.Round(params.BallWeight))))
	vals.Set(keyHydration, scaled(params.Hydration, 100))
	vals.Set(keySalt, scaled(params.Salt, 1000))
	vals.Set(keyYeast, scaled(params.Yeast, 1000))
	if params.Oil != 0 {
		vals.Set(keyOil, scaled(params.Oil, 100))
	}
	if params.Sugar != 0 {
		vals.Set(keySugar, scaled(params.Sugar, 100))
	}
	if params.UsePreFerment {
		vals.Set(keyPreFerment, "1")
		vals.Set(keyPreFermentType, params.PreFermentType.String())
		vals.Set(keyPreFermentFlour, scaled(params.PreFermentFlourPercent, 100))
	}
	if params.HumidityAdjust {
		vals.Set(keyHumidity, "1")
	}
	if flourType != "" {
		vals.Set(keyFlourType, flourType)
	}

	query := vals.Encode()
	c.log.Debug("encoded share link: %s", query)

	if c.baseURL == "" {
		return query
	}
	return c.baseURL + "?" + query
}

// DecodedRecipe is the partial result of decoding a link. Numeric fields are
// pointers: nil means the key was absent and the caller should keep whatever
// the style defaults say. The booleans are plain — the encoder omits them
// when false, so absence and false are the same thing.
type DecodedRecipe struct {
	StyleID   string
	FlourType string

	NumBalls               *int
	BallWeight             *float64
	Hydration              *float64
	Salt                   *float64
	Yeast                  *float64
	Oil                    *float64
	Sugar                  *float64
	PreFermentType         *domain.PreFermentType
	PreFermentFlourPercent *float64

	UsePreFerment  bool
	HumidityAdjust bool
}

// Overlay applies every decoded field on top of a base parameter set and
// returns the result. Fields the link didn't carry keep their base values.
func (d *DecodedRecipe) Overlay(base domain.RecipeParameters) domain.RecipeParameters {
	out := base

	if d.NumBalls != nil {
		out.NumBalls = *d.NumBalls
	}
	if d.BallWeight != nil {
		out.BallWeight = *d.BallWeight
	}
	if d.Hydration != nil {
		out.Hydration = *d.Hydration
	}
	if d.Salt != nil {
		out.Salt = *d.Salt
	}
	if d.Yeast != nil {
		out.Yeast = *d.Yeast
	}
	if d.Oil != nil {
		out.Oil = *d.Oil
	}
	if d.Sugar != nil {
		out.Sugar = *d.Sugar
	}
	out.UsePreFerment = d.UsePreFerment
	out.HumidityAdjust = d.HumidityAdjust
	if d.PreFermentType != nil {
		out.PreFermentType = *d.PreFermentType
	}
	if d.PreFermentFlourPercent != nil {
		out.PreFermentFlourPercent = *d.PreFermentFlourPercent
	}

	return out
}

// Decode parses a share link. Accepts a full URL or a raw query string,
// with or without a leading "?". Returns nil only when the input can't be
// read as either; unknown and malformed keys are silently dropped.
func (c *Codec) Decode(input string) *DecodedRecipe {
	query := extractQuery(input)
	if query == "" {
		c.log.Debug("share decode: no query string in %q", input)
		return nil
	}

	vals, err := url.ParseQuery(query)
	if err != nil && len(vals) == 0 {
		c.log.Debug("share decode: unparseable query %q: %v", query, err)
		return nil
	}

	d := &DecodedRecipe{
		StyleID:   vals.Get(keyStyle),
		FlourType: vals.Get(keyFlourType),
	}

	if n, ok := parseInt(vals.Get(keyNumBalls)); ok {
		d.NumBalls = &n
	}
	if w, ok := parseInt(vals.Get(keyBallWeight)); ok {
		f := float64(w)
		d.BallWeight = &f
	}
	d.Hydration = unscale(vals.Get(keyHydration), 100)
	d.Salt = unscale(vals.Get(keySalt), 1000)
	d.Yeast = unscale(vals.Get(keyYeast), 1000)
	d.Oil = unscale(vals.Get(keyOil), 100)
	d.Sugar = unscale(vals.Get(keySugar), 100)

	d.UsePreFerment = vals.Get(keyPreFerment) == "1"
	d.HumidityAdjust = vals.Get(keyHumidity) == "1"

	if d.UsePreFerment {
		if t, ok := domain.ParsePreFermentType(vals.Get(keyPreFermentType)); ok {
			d.PreFermentType = &t
		}
		d.PreFermentFlourPercent = unscale(vals.Get(keyPreFermentFlour), 100)
	}

	return d
}

// extractQuery pulls the query-string part out of the input: the RawQuery of
// a full URL, or the input itself when it already looks like a query string.
// Returns "" when neither reading works.
func extractQuery(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}

	q := strings.TrimPrefix(trimmed, "?")
	if u, err := url.Parse(trimmed); err == nil && u.RawQuery != "" {
		q = u.RawQuery
	}

	// A query string has at least one key=value pair.
	if strings.Contains(q, "=") {
		return q
	}
	return ""
}

// scaled formats a fraction as a rounded scaled integer.
func scaled(v float64, factor float64) string {
	return strconv.Itoa(int(math.Round(v * factor)))
}

// unscale parses a scaled integer back to a fraction. Returns nil for absent
// or malformed values.
func unscale(raw string, factor float64) *float64 {
	n, ok := parseInt(raw)
	if !ok {
		return nil
	}
	f := float64(n) / factor
	return &f
}

func parseInt(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
