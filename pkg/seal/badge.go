package seal

import (
	"errors"
)

// BadgeLevel is the certification tier earned from an evaluation score
type BadgeLevel string

const (
	BadgeNone   BadgeLevel = ""
	BadgeBronze BadgeLevel = "bronze"
	BadgeSilver BadgeLevel = "silver"
	BadgeGold   BadgeLevel = "gold"
)

// ErrInvalidScore is returned for scores outside [0, 100]
var ErrInvalidScore = errors.New("score must be between 0 and 100")

// ResolveBadge maps an evaluation score to a badge tier.
// Below 70 no badge is earned; 100 exactly earns gold.
func ResolveBadge(score int) (BadgeLevel, error) {
	if score < 0 || score > 100 {
		return BadgeNone, ErrInvalidScore
	}
	switch {
	case score == 100:
		return BadgeGold, nil
	case score >= 90:
		return BadgeSilver, nil
	case score >= 70:
		return BadgeBronze, nil
	default:
		return BadgeNone, nil
	}
}
