package recommend

import "strings"

// ExperienceLevel is an ordered scale: Fresher < Junior < Mid < Senior.
type ExperienceLevel int

const (
	LevelFresher ExperienceLevel = iota
	LevelJunior
	LevelMid
	LevelSenior
)

func (l ExperienceLevel) String() string {
	switch l {
	case LevelJunior:
		return "junior"
	case LevelMid:
		return "mid"
	case LevelSenior:
		return "senior"
	default:
		return "fresher"
	}
}

func ParseExperienceLevel(s string) (ExperienceLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fresher", "entry", "entry-level", "intern":
		return LevelFresher, true
	case "junior":
		return LevelJunior, true
	case "mid", "mid-level", "middle", "intermediate":
		return LevelMid, true
	case "senior", "lead":
		return LevelSenior, true
	default:
		return LevelFresher, false
	}
}
