package input

// Action represents a high-level intent of the person driving the generator.
type Action int

const (
	ActionNone Action = iota

	ActionGenerate         // Generate a whole dungeon at once
	ActionGenerateStepwise // Generate pausing after every step
	ActionAdvance          // Continue a paused step-by-step generation
	ActionDump             // Write the current dungeon to a dump file
	ActionQuit
)

// String returns the name of the action
func (a Action) String() string {
	switch a {
	case ActionGenerate:
		return "generate"
	case ActionGenerateStepwise:
		return "generate-stepwise"
	case ActionAdvance:
		return "advance"
	case ActionDump:
		return "dump"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// keyBindings maps key codes from every device to actions.
// Terminal codes come from DecodeKey; ebiten codes are key names such as "KeyG".
var keyBindings = map[string]Action{
	"g":      ActionGenerate,
	"KeyG":   ActionGenerate,
	"s":      ActionGenerateStepwise,
	"KeyS":   ActionGenerateStepwise,
	"m":      ActionDump,
	"KeyM":   ActionDump,
	"space":  ActionAdvance,
	"enter":  ActionAdvance,
	"Space":  ActionAdvance,
	"Enter":  ActionAdvance,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,
	"Escape": ActionQuit,
}

// MapKey returns the action bound to a key code, or ActionNone
func MapKey(code string) Action {
	return keyBindings[code]
}
