package adjust

import "regexp"

// Negated positive-emotion phrasing. "Not happy" is evidence against the
// happy primary, not merely absence of evidence for it.
var negationPattern = regexp.MustCompile(
	`(?i)\b(not (?:happy|glad|excited|okay|ok|fine|good|great)|` +
		`don.?t feel (?:good|great|happy|okay|ok)|` +
		`no longer (?:happy|excited|hopeful)|` +
		`can.?t (?:enjoy|feel) )`)

const (
	negationCut = 0.40 // share of happy mass removed on trigger
)

// Negation shifts probability mass away from the happy primary when the text
// explicitly negates a positive state. The removed mass is split evenly
// between sad and fearful: negated positives read as loss or unease, not
// anger. Returns the adjusted vector and whether the transform fired.
func Negation(text string, v Vector) (Vector, bool) {
	if !negationPattern.MatchString(text) {
		return v.Clone(), false
	}

	out := v.Clone()
	removed := out["happy"] * negationCut
	out["happy"] -= removed
	out["sad"] += removed / 2
	out["fearful"] += removed / 2
	out.Normalize()
	return out, true
}
