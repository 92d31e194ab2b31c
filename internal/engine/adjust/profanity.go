package adjust

import (
	"regexp"

	"github.com/fernwell/attune/internal/clamp"
)

var profanityPattern = regexp.MustCompile(
	`(?i)\b(damn|dammit|hell|shit\w*|fuck\w*|pissed|wtf|bullshit|screw (?:this|it|that))\b`)

const (
	profanityArousalLift = 0.15
	profanityArousalCap  = 0.95
)

// Profanity raises arousal when the text swears; profanity marks activation
// regardless of which emotion it rides on. Applied after the VA mapper, never
// to the probability vector. Returns the adjusted arousal and whether the
// transform fired.
func Profanity(text string, arousal float64) (float64, bool) {
	if !profanityPattern.MatchString(text) {
		return arousal, false
	}
	lifted := arousal + profanityArousalLift
	if lifted > profanityArousalCap {
		lifted = profanityArousalCap
	}
	return clamp.Unit(lifted), true
}
