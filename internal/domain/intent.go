package domain

// IntentType classifies what the user wants to do at the prompt.
type IntentType int

const (
	IntentUnknown IntentType = iota
	IntentListStyles
	IntentSelectStyle
	IntentSetParam   // "set hydration 65"
	IntentShowRecipe // recompute and print the recipe
	IntentShowStyle  // print the selected style's metadata
	IntentShare      // encode the current parameters as a link
	IntentLoad       // decode a pasted link
	IntentUnits      // switch between grams and ounces
	IntentVolume     // volume equivalents for an ingredient
	IntentTimerSet   // "timer 90m"
	IntentTimerStart
	IntentTimerPause
	IntentTimerToggle
	IntentTimerReset
	IntentTimerAdd // "add 5m"
	IntentTimerStatus
	IntentHelp
	IntentQuit
)

// String returns a human-readable intent type.
func (i IntentType) String() string {
	switch i {
	case IntentListStyles:
		return "list_styles"
	case IntentSelectStyle:
		return "select_style"
	case IntentSetParam:
		return "set_param"
	case IntentShowRecipe:
		return "show_recipe"
	case IntentShowStyle:
		return "show_style"
	case IntentShare:
		return "share"
	case IntentLoad:
		return "load"
	case IntentUnits:
		return "units"
	case IntentVolume:
		return "volume"
	case IntentTimerSet:
		return "timer_set"
	case IntentTimerStart:
		return "timer_start"
	case IntentTimerPause:
		return "timer_pause"
	case IntentTimerToggle:
		return "timer_toggle"
	case IntentTimerReset:
		return "timer_reset"
	case IntentTimerAdd:
		return "timer_add"
	case IntentTimerStatus:
		return "timer_status"
	case IntentHelp:
		return "help"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Intent represents a parsed user action.
type Intent struct {
	Type    IntentType
	Payload string // optional context, e.g. style id or "hydration 65"
}
