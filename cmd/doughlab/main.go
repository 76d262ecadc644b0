// DoughLab — a pizza dough calculator for the terminal.
//
// Usage:
//
//	doughlab [-verbose] [-quiet] [-mem] [-no-sound]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/saltandflour/doughlab/internal/conversation"
	"github.com/saltandflour/doughlab/internal/display"
	"github.com/saltandflour/doughlab/internal/domain"
	"github.com/saltandflour/doughlab/internal/dough"
	"github.com/saltandflour/doughlab/internal/logger"
	"github.com/saltandflour/doughlab/internal/notify"
	"github.com/saltandflour/doughlab/internal/share"
	"github.com/saltandflour/doughlab/internal/storage"
	"github.com/saltandflour/doughlab/internal/style"
	"github.com/saltandflour/doughlab/internal/timer"
	"github.com/saltandflour/doughlab/internal/units"
)

// unitPrefKey is where the weight unit preference lives in the KV store.
const unitPrefKey = "unit_pref"

func main() {
	_ = godotenv.Load()

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", ".doughlab/doughlab.log", "file to write logs to (use \"stderr\" to log to console)")
	dbPath := flag.String("db", ".doughlab/doughlab.db", "path to the SQLite state database")
	memOnly := flag.Bool("mem", false, "keep timer and preferences in memory only (no database)")
	noSound := flag.Bool("no-sound", false, "disable the timer chime")
	baseURL := flag.String("base-url", defaultBaseURL(), "base URL for generated share links")
	flag.Parse()

	// Configure logger.
	logLevel := logger.LevelNormal
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so the REPL stays clean.
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" {
		dir := filepath.Dir(*logFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	// Redirect Go's default log package (used by third-party libs) to the
	// same output so it doesn't spam the terminal.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)

	// Set up context — cancelled when the UI quits.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire dependencies. The store falls back to memory when SQLite is
	// unavailable; the calculator still works, only persistence is lost.
	var store domain.KVStore = storage.NewMemoryStore(log)
	if !*memOnly {
		sqlStore, err := storage.NewSQLiteStore(*dbPath, log)
		if err != nil {
			log.Error("sqlite unavailable, state will not survive restarts: %v", err)
		} else {
			store = sqlStore
			defer sqlStore.Close()
		}
	}

	catalog := style.NewCatalog(log)
	parser := conversation.NewKeywordParser(log)
	codec := share.NewCodec(log, share.WithBaseURL(*baseURL))

	// The notifier prints through the UI, which doesn't exist yet. The
	// closure captures the variable, not the value; ui is set before any
	// notification can fire.
	var ui *display.UI
	textNotifier := notify.NewCLINotifier(log, func(format string, a ...interface{}) {
		ui.Printf(format+"\n", a...)
	})

	var activeNotifier domain.Notifier = textNotifier
	if !*noSound {
		chime, err := notify.NewChimeNotifier(textNotifier, log)
		if err != nil {
			log.Error("audio init failed, chime disabled: %v", err)
		} else {
			activeNotifier = chime
		}
	}

	countdown := timer.New(store, activeNotifier, log)
	ui = display.NewUI(countdown)

	// Pick up a timer left over from a previous run.
	countdown.Restore(ctx)
	defer countdown.Stop()

	// Build the CLI app with the custom style as the neutral starting point.
	app := &cliApp{
		catalog:   catalog,
		codec:     codec,
		countdown: countdown,
		store:     store,
		parser:    parser,
		log:       log,
		ui:        ui,
		styleID:   style.CustomStyleID,
		params:    catalog.Defaults(ctx, style.CustomStyleID),
		unit:      loadUnitPref(ctx, store, log),
	}

	fmt.Println(display.RenderBanner())
	fmt.Println(display.BannerStyle.Render("  Type 'help' for commands, 'quit' to exit."))
	fmt.Println()

	// Run app logic in a background goroutine.
	go func() {
		ui.WaitReady()
		app.run(ctx)
		ui.Quit()
	}()

	// Bubble Tea owns the terminal — blocks until quit.
	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
	}
	cancel()
}

// defaultBaseURL reads the share link base from the environment so a .env
// file can point links at a self-hosted instance.
func defaultBaseURL() string {
	if v := os.Getenv("DOUGHLAB_BASE_URL"); v != "" {
		return v
	}
	return "https://doughlab.app/r"
}

// loadUnitPref restores the persisted weight unit, defaulting to grams.
func loadUnitPref(ctx context.Context, store domain.KVStore, log *logger.Logger) units.Unit {
	raw, err := store.Get(ctx, unitPrefKey)
	if err != nil {
		return units.Grams
	}
	u, ok := units.ParseUnit(string(raw))
	if !ok {
		log.Warn("ignoring unknown unit preference %q", raw)
		return units.Grams
	}
	return u
}

type cliApp struct {
	catalog   *style.Catalog
	codec     *share.Codec
	countdown *timer.Countdown
	store     domain.KVStore
	parser    domain.IntentParser
	log       *logger.Logger
	ui        *display.UI

	styleID   string
	params    domain.RecipeParameters
	flourType string
	unit      units.Unit
}

func (a *cliApp) run(ctx context.Context) {
	a.showStyles(ctx)

	uiCh := a.ui.InputChan()

	for {
		var input string
		var ok bool

		select {
		case <-ctx.Done():
			return
		case input, ok = <-uiCh:
			if !ok {
				return
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		intent, err := a.parser.Parse(ctx, input)
		if err != nil {
			a.log.Error("parsing input: %v", err)
			continue
		}

		a.log.Debug("intent: %s (payload=%q)", intent.Type, intent.Payload)
		a.handleIntent(ctx, intent)
	}
}

func (a *cliApp) handleIntent(ctx context.Context, intent *domain.Intent) {
	switch intent.Type {
	case domain.IntentHelp:
		a.showHelp()
	case domain.IntentListStyles:
		a.showStyles(ctx)
	case domain.IntentSelectStyle:
		a.selectStyle(ctx, intent.Payload)
	case domain.IntentSetParam:
		a.setParam(ctx, intent.Payload)
	case domain.IntentShowRecipe:
		a.showRecipe(ctx)
	case domain.IntentShowStyle:
		a.showStyleInfo(ctx)
	case domain.IntentShare:
		a.shareRecipe(ctx)
	case domain.IntentLoad:
		a.loadRecipe(ctx, intent.Payload)
	case domain.IntentUnits:
		a.setUnits(ctx, intent.Payload)
	case domain.IntentVolume:
		a.showVolume(ctx)
	case domain.IntentTimerSet:
		a.timerSet(ctx, intent.Payload)
	case domain.IntentTimerStart:
		a.countdown.Start(ctx)
		a.timerStatus()
	case domain.IntentTimerPause:
		a.countdown.Pause(ctx)
		a.timerStatus()
	case domain.IntentTimerToggle:
		a.countdown.Toggle(ctx)
		a.timerStatus()
	case domain.IntentTimerReset:
		a.countdown.Reset(ctx)
		a.ui.PrintHint("Timer reset.")
	case domain.IntentTimerAdd:
		a.timerAdd(ctx, intent.Payload)
	case domain.IntentTimerStatus:
		a.timerStatus()
	case domain.IntentQuit:
		a.ui.Quit()
	case domain.IntentUnknown:
		a.ui.PrintHint(fmt.Sprintf("Didn't catch that (%q). Type 'help' for commands.", intent.Payload))
	}
}

// ── Styles ───────────────────────────────────────────────────────

func (a *cliApp) showStyles(ctx context.Context) {
	styles, err := a.catalog.List(ctx)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error loading styles: %v", err))
		return
	}

	a.ui.PrintHeader("Pizza styles:")
	a.ui.Println("")
	for i, s := range styles {
		marker := " "
		if s.ID == a.styleID {
			marker = "*"
		}
		a.ui.PrintLine(fmt.Sprintf("%s[%d] %s", marker, i+1, s.Name))
		a.ui.PrintHint("    " + s.Description)
	}
	a.ui.Println("")
	a.ui.PrintHint("Pick a style by number or name, then 'recipe' to see the formula.")
}

func (a *cliApp) selectStyle(ctx context.Context, payload string) {
	styles, err := a.catalog.List(ctx)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}

	id := ""
	if idx, err := strconv.Atoi(payload); err == nil {
		if idx < 1 || idx > len(styles) {
			a.ui.PrintHint(fmt.Sprintf("No style number %d — pick 1 to %d.", idx, len(styles)))
			return
		}
		id = styles[idx-1].ID
	} else {
		id = strings.ToLower(payload)
		if _, err := a.catalog.Get(ctx, id); err != nil {
			// Fall back to a name search for inputs like "new york".
			matches := a.catalog.Search(ctx, payload)
			if len(matches) == 0 {
				a.ui.PrintHint(fmt.Sprintf("No style named %q.", payload))
				return
			}
			id = matches[0].ID
		}
	}

	a.styleID = id
	a.params = a.catalog.Defaults(ctx, id)
	a.flourType = ""

	preset, err := a.catalog.Get(ctx, id)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}
	a.ui.PrintHeader(preset.Name)
	a.ui.PrintHint(preset.Description)
	a.showRecipe(ctx)
}

func (a *cliApp) showStyleInfo(ctx context.Context) {
	preset, err := a.catalog.Get(ctx, a.styleID)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}

	a.ui.PrintHeader(fmt.Sprintf("=== %s ===", preset.Name))
	a.ui.PrintLine(preset.Description)
	a.ui.Println("")
	m := preset.Meta
	if len(m.Equipment) > 0 {
		a.ui.PrintLine("Equipment:    " + strings.Join(m.Equipment, ", "))
	}
	a.ui.PrintLine("Flour:        " + m.Flour)
	a.ui.PrintLine("Bake:         " + m.BakeTemp + ", " + m.BakeTime)
	a.ui.PrintLine("Fermentation: " + m.Fermentation)
	for _, tip := range m.Tips {
		a.ui.PrintHint("tip: " + tip)
	}
}

// ── Parameters ───────────────────────────────────────────────────

// setParam applies a single parameter change. The change is validated by
// running the calculator on a copy; invalid input leaves state untouched.
// Any edit moves the session onto the custom style.
func (a *cliApp) setParam(ctx context.Context, payload string) {
	fields := strings.Fields(strings.ToLower(payload))
	if len(fields) > 0 && fields[0] == "set" {
		fields = fields[1:]
	}
	if len(fields) < 2 {
		a.ui.PrintHint("Usage: <hydration|salt|yeast|oil|sugar> <percent>, balls <n>, weight <grams>, humidity <on|off>, preferment <off|poolish|biga> [flour%]")
		return
	}

	name, args := fields[0], fields[1:]
	next := a.params

	switch name {
	case "balls":
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			a.ui.PrintHint("Ball count must be a whole number of at least 1.")
			return
		}
		next.NumBalls = n
	case "weight":
		w, err := strconv.ParseFloat(args[0], 64)
		if err != nil || w <= 0 {
			a.ui.PrintHint("Ball weight must be a positive number of grams.")
			return
		}
		next.BallWeight = w
	case "hydration", "salt", "yeast", "oil", "sugar":
		pct, ok := parsePercent(args[0])
		if !ok {
			a.ui.PrintHint("Expected a percentage, e.g. 'hydration 65'.")
			return
		}
		switch name {
		case "hydration":
			next.Hydration = pct
		case "salt":
			next.Salt = pct
		case "yeast":
			next.Yeast = pct
		case "oil":
			next.Oil = pct
		case "sugar":
			next.Sugar = pct
		}
	case "humidity":
		switch args[0] {
		case "on":
			next.HumidityAdjust = true
		case "off":
			next.HumidityAdjust = false
		default:
			a.ui.PrintHint("Usage: humidity <on|off>")
			return
		}
	case "preferment", "pf":
		if args[0] == "off" {
			next.UsePreFerment = false
			break
		}
		pfType, ok := domain.ParsePreFermentType(args[0])
		if !ok {
			a.ui.PrintHint("Usage: preferment <off|poolish|biga> [flour%]")
			return
		}
		next.UsePreFerment = true
		next.PreFermentType = pfType
		if next.PreFermentFlourPercent == 0 {
			next.PreFermentFlourPercent = 0.25
		}
		if pfType == domain.PreFermentBiga && next.BigaHydration == 0 {
			next.BigaHydration = 0.5
		}
		if len(args) > 1 {
			pct, ok := parsePercent(args[1])
			if !ok {
				a.ui.PrintHint("Pre-ferment flour share must be a percentage, e.g. 'preferment poolish 30'.")
				return
			}
			next.PreFermentFlourPercent = pct
		}
	default:
		a.ui.PrintHint(fmt.Sprintf("Unknown parameter %q.", name))
		return
	}

	if _, err := dough.Calculate(next); err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Invalid value: %v", err))
		return
	}

	a.params = next
	a.styleID = style.CustomStyleID
	a.showRecipe(ctx)
}

// parsePercent reads "65", "65%", or "2.5" as a fraction of flour weight.
func parsePercent(s string) (float64, bool) {
	s = strings.TrimSuffix(s, "%")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v / 100, true
}

// ── Recipe output ────────────────────────────────────────────────

func (a *cliApp) showRecipe(ctx context.Context) {
	rec, err := dough.Calculate(a.params)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}

	name := "Custom"
	if preset, err := a.catalog.Get(ctx, a.styleID); err == nil {
		name = preset.Name
	}

	a.ui.Println("")
	a.ui.PrintHeader(fmt.Sprintf("=== %s — %d × %s ===", name, a.params.NumBalls, units.FormatWeight(a.params.BallWeight, a.unit)))
	hint := fmt.Sprintf("Total dough %s · hydration %.1f%% · salt %.1f%%",
		units.FormatWeight(rec.TotalWeight, a.unit), rec.Percentages.Hydration, rec.Percentages.Salt)
	if a.params.HumidityAdjust {
		hint += " (humidity adjusted)"
	}
	a.ui.PrintHint(hint)
	a.ui.Println("")

	if !rec.TwoStage() {
		a.printWeights(rec.Single, true)
		return
	}

	pf := rec.PreFerment
	a.ui.PrintHeader(fmt.Sprintf("%s (%.0f%% of flour, %.0f%% hydration)",
		titleCase(pf.Type.String()), pf.FlourPercent, pf.Hydration))
	a.ui.PrintIngredient("flour  " + units.FormatWeightPrecise(pf.Flour, a.unit))
	a.ui.PrintIngredient("water  " + units.FormatWeightPrecise(pf.Water, a.unit))
	a.ui.PrintIngredient("yeast  " + units.FormatWeightPrecise(pf.Yeast, a.unit))
	a.ui.Println("")

	a.ui.PrintHeader("Final dough")
	a.printWeights(rec.FinalDough, false)
	a.ui.PrintHint("All the yeast lives in the " + pf.Type.String() + "; none goes in the final dough.")
}

// printWeights renders one stage's formula. withYeast is false for the
// final dough of a two-stage recipe.
func (a *cliApp) printWeights(w *domain.IngredientWeights, withYeast bool) {
	a.ui.PrintIngredient("flour  " + units.FormatWeightPrecise(w.Flour, a.unit))
	a.ui.PrintIngredient("water  " + units.FormatWeightPrecise(w.Water, a.unit))
	a.ui.PrintIngredient("salt   " + units.FormatWeightPrecise(w.Salt, a.unit))
	if withYeast {
		a.ui.PrintIngredient("yeast  " + units.FormatWeightPrecise(w.Yeast, a.unit))
	}
	if w.Oil > 0 {
		a.ui.PrintIngredient("oil    " + units.FormatWeightPrecise(w.Oil, a.unit))
	}
	if w.Sugar > 0 {
		a.ui.PrintIngredient("sugar  " + units.FormatWeightPrecise(w.Sugar, a.unit))
	}
}

func (a *cliApp) showVolume(ctx context.Context) {
	rec, err := dough.Calculate(a.params)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}

	// Volume approximations only make sense against the combined totals.
	totals := rec.Single
	if rec.TwoStage() {
		combined := *rec.FinalDough
		combined.Flour += rec.PreFerment.Flour
		combined.Water += rec.PreFerment.Water
		combined.Yeast += rec.PreFerment.Yeast
		totals = &combined
	}

	a.ui.PrintHeader("Approximate volume measures:")
	a.ui.PrintHint("Weigh when you can — volume varies with how flour packs.")
	a.ui.Println("")
	printVol := func(name string, grams float64) {
		if grams <= 0 {
			return
		}
		ve, ok := units.GramsToVolume(name, grams)
		if !ok {
			return
		}
		a.ui.PrintIngredient(fmt.Sprintf("%-6s %s ≈ %s", name, units.FormatWeightPrecise(grams, a.unit), formatVolume(ve)))
	}
	printVol("flour", totals.Flour)
	printVol("water", totals.Water)
	printVol("salt", totals.Salt)
	printVol("yeast", totals.Yeast)
	printVol("oil", totals.Oil)
	printVol("sugar", totals.Sugar)
}

// formatVolume picks the most readable measure for an amount: cups for
// anything over half a cup, tablespoons over one, otherwise teaspoons.
func formatVolume(ve units.VolumeEquivalents) string {
	switch {
	case ve.Cups >= 0.5:
		return fmt.Sprintf("%.2f cups", ve.Cups)
	case ve.Tablespoons >= 1:
		return fmt.Sprintf("%.1f tbsp", ve.Tablespoons)
	default:
		return fmt.Sprintf("%.1f tsp", ve.Teaspoons)
	}
}

// ── Sharing ──────────────────────────────────────────────────────

func (a *cliApp) shareRecipe(ctx context.Context) {
	link := a.codec.Encode(a.params, a.styleID, a.flourType)
	a.ui.PrintHeader("Share link:")
	a.ui.PrintLine(link)
	a.ui.PrintHint("Paste this link (or just its query part) back in to reload the recipe.")
}

func (a *cliApp) loadRecipe(ctx context.Context, payload string) {
	dec := a.codec.Decode(payload)
	if dec == nil {
		a.ui.PrintUrgent("That doesn't look like a recipe link.")
		return
	}

	styleID := dec.StyleID
	if styleID == "" {
		styleID = style.CustomStyleID
	}

	base := a.catalog.Defaults(ctx, styleID)
	a.params = dec.Overlay(base)
	a.styleID = styleID
	a.flourType = dec.FlourType

	a.ui.PrintHint("Recipe loaded.")
	a.showRecipe(ctx)
}

// ── Units ────────────────────────────────────────────────────────

func (a *cliApp) setUnits(ctx context.Context, payload string) {
	fields := strings.Fields(strings.ToLower(payload))
	name := fields[len(fields)-1]
	switch name {
	case "units", "unit":
		a.ui.PrintHint("Current unit: " + a.unit.String() + ". Usage: units <grams|oz>")
		return
	case "imperial":
		name = "oz"
	case "metric":
		name = "g"
	}

	u, ok := units.ParseUnit(name)
	if !ok {
		a.ui.PrintHint("Usage: units <grams|oz>")
		return
	}

	a.unit = u
	if err := a.store.Set(ctx, unitPrefKey, []byte(u.String())); err != nil {
		a.log.Error("saving unit preference: %v", err)
	}
	a.ui.PrintHint("Weights now shown in " + u.String() + ".")
}

// ── Timer ────────────────────────────────────────────────────────

func (a *cliApp) timerSet(ctx context.Context, payload string) {
	d, ok := parseHumanDuration(payload)
	if !ok {
		a.ui.PrintHint("Usage: timer <duration>, e.g. 'timer 2h' or 'timer 90m'.")
		return
	}
	if err := a.countdown.SetDuration(ctx, d); err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
		return
	}
	a.ui.PrintHint(fmt.Sprintf("Timer set for %s. Type 'timer start' to begin.", d))
}

func (a *cliApp) timerAdd(ctx context.Context, payload string) {
	neg := strings.HasPrefix(payload, "-")
	d, ok := parseHumanDuration(strings.TrimLeft(payload, "+-"))
	if !ok {
		a.ui.PrintHint("Usage: timer +10m or timer -5m.")
		return
	}
	if neg {
		d = -d
	}
	a.countdown.AddTime(ctx, d)
	a.timerStatus()
}

func (a *cliApp) timerStatus() {
	phase, remaining, duration := a.countdown.Status()
	switch phase {
	case domain.TimerIdle:
		if duration == 0 {
			a.ui.PrintHint("No timer set. Try 'timer 2h'.")
		} else {
			a.ui.PrintHint(fmt.Sprintf("Timer ready: %s. Type 'timer start'.", duration))
		}
	case domain.TimerRunning:
		a.ui.PrintLine(fmt.Sprintf("Timer running — %s of %s left.", remaining.Round(time.Second), duration))
	case domain.TimerPaused:
		a.ui.PrintLine(fmt.Sprintf("Timer paused at %s of %s.", remaining.Round(time.Second), duration))
	case domain.TimerCompleted:
		a.ui.PrintUrgent("Timer done! 'timer reset' to clear it.")
	}
}

// parseHumanDuration accepts Go duration syntax ("1h30m") and bare numbers
// as minutes ("90").
func parseHumanDuration(s string) (time.Duration, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return time.Duration(n) * time.Minute, n > 0
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, false
	}
	return d, true
}

// ── Help ─────────────────────────────────────────────────────────

func (a *cliApp) showHelp() {
	a.ui.PrintHeader("Commands:")
	a.ui.PrintLine("  styles / list       Show the style presets")
	a.ui.PrintLine("  1, 2, 3...          Select a style by number")
	a.ui.PrintLine("  style <name>        Select a style by name")
	a.ui.PrintLine("  recipe / calc       Show the current formula")
	a.ui.PrintLine("  info / tips         Show style details and baking notes")
	a.ui.PrintLine("  hydration 65        Set a baker's percentage (salt, yeast, oil, sugar too)")
	a.ui.PrintLine("  balls 4 / weight 250  Set batch size")
	a.ui.PrintLine("  humidity on|off     Adjust hydration for humid weather")
	a.ui.PrintLine("  preferment poolish 30   Use a pre-ferment (poolish, biga, or off)")
	a.ui.PrintLine("  share / link        Print a shareable recipe link")
	a.ui.PrintLine("  load <url>          Load a shared recipe (pasting the link also works)")
	a.ui.PrintLine("  units grams|oz      Switch display units")
	a.ui.PrintLine("  volume / cups       Show approximate cup/spoon measures")
	a.ui.PrintLine("  timer 2h            Set the dough timer")
	a.ui.PrintLine("  timer start|pause|toggle|reset|status")
	a.ui.PrintLine("  timer +10m / -5m    Nudge the running timer")
	a.ui.PrintLine("  help                Show this message")
	a.ui.PrintLine("  quit / exit         Exit")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
