package core

// Level represents the portable severity of a log record
type Level int8

const (
	// VerboseLevel is the lowest severity and the fallback for unknown codes
	VerboseLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for failures that should never happen ("F" and "WTF")
	FatalLevel
)

// Priority is the native severity ordinal of the host logging facility.
// The values match android.util.Log priorities.
type Priority int

const (
	PriorityVerbose Priority = 2
	PriorityDebug   Priority = 3
	PriorityInfo    Priority = 4
	PriorityWarn    Priority = 5
	PriorityError   Priority = 6
	PriorityAssert  Priority = 7
)

// DefaultLevelCode is substituted when a payload carries no level.
const DefaultLevelCode = "V"

// NumLevels is the number of portable levels. Handlers size their level
// lookup tables with it.
const NumLevels = int(FatalLevel) + 1

var levelNames = [NumLevels]string{
	VerboseLevel: "VERBOSE",
	DebugLevel:   "DEBUG",
	InfoLevel:    "INFO",
	WarnLevel:    "WARN",
	ErrorLevel:   "ERROR",
	FatalLevel:   "FATAL",
}

var levelCodes = [NumLevels]string{
	VerboseLevel: "V",
	DebugLevel:   "D",
	InfoLevel:    "I",
	WarnLevel:    "W",
	ErrorLevel:   "E",
	FatalLevel:   "F",
}

var levelPriorities = [NumLevels]Priority{
	VerboseLevel: PriorityVerbose,
	DebugLevel:   PriorityDebug,
	InfoLevel:    PriorityInfo,
	WarnLevel:    PriorityWarn,
	ErrorLevel:   PriorityError,
	FatalLevel:   PriorityAssert,
}

// codeLevels is case-sensitive; lookups that miss fall back to VerboseLevel.
var codeLevels = map[string]Level{
	"V":   VerboseLevel,
	"D":   DebugLevel,
	"I":   InfoLevel,
	"W":   WarnLevel,
	"E":   ErrorLevel,
	"F":   FatalLevel,
	"WTF": FatalLevel,
}

// String returns the upper-case name of the level
func (l Level) String() string {
	if l.valid() {
		return levelNames[l]
	}
	return "UNKNOWN"
}

// Code returns the short portable code of the level ("V", "D", ...).
// Out of range levels report the code of VerboseLevel.
func (l Level) Code() string {
	if l.valid() {
		return levelCodes[l]
	}
	return levelCodes[VerboseLevel]
}

// Priority returns the native priority ordinal of the level
func (l Level) Priority() Priority {
	if l.valid() {
		return levelPriorities[l]
	}
	return PriorityVerbose
}

func (l Level) valid() bool {
	return l >= VerboseLevel && l <= FatalLevel
}

// ParseLevel converts a portable severity code to a Level.
// Codes are case-sensitive; anything outside V, D, I, W, E, F and WTF
// (including the empty string) maps to VerboseLevel.
func ParseLevel(code string) Level {
	if l, ok := codeLevels[code]; ok {
		return l
	}
	return VerboseLevel
}

// Translate maps a portable severity code straight to the native priority.
func Translate(code string) Priority {
	return ParseLevel(code).Priority()
}

// String returns the android.util.Log name of the priority
func (p Priority) String() string {
	switch p {
	case PriorityVerbose:
		return "VERBOSE"
	case PriorityDebug:
		return "DEBUG"
	case PriorityInfo:
		return "INFO"
	case PriorityWarn:
		return "WARN"
	case PriorityError:
		return "ERROR"
	case PriorityAssert:
		return "ASSERT"
	default:
		return "UNKNOWN"
	}
}
