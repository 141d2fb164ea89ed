package difficulty

// Level is the learner's proficiency band: beginner < intermediate < advanced.
type Level string

const (
	Beginner     Level = "beginner"
	Intermediate Level = "intermediate"
	Advanced     Level = "advanced"
)

// AllLevels returns the levels from lowest to highest.
func AllLevels() []Level {
	return []Level{Beginner, Intermediate, Advanced}
}

// Valid reports whether l is one of the three recognized levels.
func (l Level) Valid() bool {
	switch l {
	case Beginner, Intermediate, Advanced:
		return true
	default:
		return false
	}
}

// Index returns the ordinal of l (0 for beginner), or -1 if l is invalid.
func (l Level) Index() int {
	switch l {
	case Beginner:
		return 0
	case Intermediate:
		return 1
	case Advanced:
		return 2
	default:
		return -1
	}
}

// Next returns the level above l. Advanced is its own successor.
func (l Level) Next() Level {
	switch l {
	case Beginner:
		return Intermediate
	case Intermediate, Advanced:
		return Advanced
	default:
		return Intermediate
	}
}

// Prev returns the level below l. Beginner is its own predecessor.
func (l Level) Prev() Level {
	switch l {
	case Advanced:
		return Intermediate
	case Intermediate, Beginner:
		return Beginner
	default:
		return Intermediate
	}
}

// String implements fmt.Stringer.
func (l Level) String() string {
	return string(l)
}
