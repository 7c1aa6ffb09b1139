package vim

// Leader is the prefix key for sub-word motions.
const Leader = ','

// Motion represents a sub-word motion command.
type Motion struct {
	// Name is the motion identifier (e.g., "subwordForward").
	Name string

	// Keys is the key sequence that triggers this motion, leader included.
	Keys string

	// Action is the action name to dispatch (e.g., "cursor.subwordForward").
	Action string

	// Inclusive indicates if the motion includes the character under cursor.
	// ',e' is inclusive, ',w' and ',b' are exclusive.
	Inclusive bool

	// Repeatable indicates if this motion can be repeated with count.
	Repeatable bool
}

// Sub-word motions.
var (
	MotionSubwordForward = Motion{
		Name:       "subwordForward",
		Keys:       ",w",
		Action:     "cursor.subwordForward",
		Inclusive:  false,
		Repeatable: true,
	}

	MotionSubwordBackward = Motion{
		Name:       "subwordBackward",
		Keys:       ",b",
		Action:     "cursor.subwordBackward",
		Inclusive:  false,
		Repeatable: true,
	}

	MotionSubwordEnd = Motion{
		Name:       "subwordEnd",
		Keys:       ",e",
		Action:     "cursor.subwordEndForward",
		Inclusive:  true,
		Repeatable: true,
	}
)

// motions maps the key after the leader to its definition.
var motions = map[rune]*Motion{
	'w': &MotionSubwordForward,
	'b': &MotionSubwordBackward,
	'e': &MotionSubwordEnd,
}

// motionsByName maps motion names to their definitions.
var motionsByName = map[string]*Motion{
	MotionSubwordForward.Name:  &MotionSubwordForward,
	MotionSubwordBackward.Name: &MotionSubwordBackward,
	MotionSubwordEnd.Name:      &MotionSubwordEnd,
}

// GetMotion returns the motion for the key following the leader.
// Returns nil if the key is not a sub-word motion.
func GetMotion(key rune) *Motion {
	return motions[key]
}

// GetMotionByName returns the motion with the given name.
// Returns nil if no motion has that name.
func GetMotionByName(name string) *Motion {
	return motionsByName[name]
}

// IsMotion returns true if the key following the leader is a motion.
func IsMotion(key rune) bool {
	_, ok := motions[key]
	return ok
}

// MotionKeys returns all motion key characters (without the leader).
func MotionKeys() []rune {
	keys := make([]rune, 0, len(motions))
	for k := range motions {
		keys = append(keys, k)
	}
	return keys
}
