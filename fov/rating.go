package fov

// Level identifies a viewing-angle band.
type Level int

const (
	LevelIdeal Level = iota
	LevelGood
	LevelImmersive
	LevelTooFar
	LevelVeryClose
)

// String returns a stable identifier for the level.
func (l Level) String() string {
	switch l {
	case LevelIdeal:
		return "ideal"
	case LevelGood:
		return "good"
	case LevelImmersive:
		return "immersive"
	case LevelTooFar:
		return "too_far"
	case LevelVeryClose:
		return "very_close"
	default:
		return "unknown"
	}
}

// Rating is the classification of a horizontal FOV.
type Rating struct {
	Level Level  `json:"-" yaml:"-" toml:"-"`
	Label string `json:"label" yaml:"label" toml:"label"`
	// Color is a hex color used by the presentation layer.
	Color string `json:"color" yaml:"color" toml:"color"`
	// Range is the human readable angle band, e.g. "36°–44°".
	Range       string `json:"range" yaml:"range" toml:"range"`
	Description string `json:"description" yaml:"description" toml:"description"`
}

var (
	RatingIdeal = Rating{
		Level:       LevelIdeal,
		Label:       "Ideal (THX)",
		Color:       "#22c55e",
		Range:       "36°–44°",
		Description: "THX Recommended (cinematic)",
	}
	RatingGood = Rating{
		Level:       LevelGood,
		Label:       "Good (SMPTE)",
		Color:       "#84cc16",
		Range:       "28°–36°",
		Description: "SMPTE Standard (comfortable)",
	}
	RatingImmersive = Rating{
		Level:       LevelImmersive,
		Label:       "Immersive",
		Color:       "#eab308",
		Range:       "44°–55°",
		Description: "Immersive (gaming, sports)",
	}
	RatingTooFar = Rating{
		Level:       LevelTooFar,
		Label:       "Too Far",
		Color:       "#f97316",
		Range:       "<28°",
		Description: "Too far – consider moving closer",
	}
	RatingVeryClose = Rating{
		Level:       LevelVeryClose,
		Label:       "Very Close",
		Color:       "#ef4444",
		Range:       ">55°",
		Description: "Very close – may cause eye strain",
	}
)

// Classify rates a horizontal FOV in degrees. Bands are checked in order, so
// 36° and 44° both belong to the THX band.
func Classify(horizontalFOV float64) Rating {
	switch {
	case horizontalFOV >= 36 && horizontalFOV <= 44:
		return RatingIdeal
	case horizontalFOV >= 28 && horizontalFOV <= 36:
		return RatingGood
	case horizontalFOV >= 44 && horizontalFOV <= 55:
		return RatingImmersive
	case horizontalFOV < 28:
		return RatingTooFar
	default:
		return RatingVeryClose
	}
}

// Guidelines returns every band in reference-guide order.
func Guidelines() []Rating {
	return []Rating{RatingIdeal, RatingGood, RatingImmersive, RatingTooFar, RatingVeryClose}
}
