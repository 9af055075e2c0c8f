package coordinator

// EngineKind enumerates the engine implementations the selector can resolve.
type EngineKind int

const (
	// EngineCalendar is the primary, calendar-store-backed scoring engine.
	EngineCalendar EngineKind = iota
	// EngineAssistant is the secondary, language-model-backed engine.
	EngineAssistant
)

// String returns the engine kind's log-friendly name.
func (k EngineKind) String() string {
	switch k {
	case EngineAssistant:
		return "assistant"
	default:
		return "calendar"
	}
}

// ResolveEngineKind maps the external selection signal to an engine kind.
// The exact value "true" selects the secondary (assistant) engine; anything
// else, including empty, selects the primary. The function is pure and is
// evaluated exactly once, at coordinator construction.
func ResolveEngineKind(signal string) EngineKind {
	if signal == "true" {
		return EngineAssistant
	}
	return EngineCalendar
}
