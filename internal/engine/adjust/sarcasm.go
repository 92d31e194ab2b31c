package adjust

import "regexp"

// Four independent sarcasm detectors. Any single match triggers the flag.
var (
	// A positive word within reach of a negative event, in either order.
	sarcasmJuxtaposition = regexp.MustCompile(
		`(?i)\b(great|perfect|wonderful|awesome|lovely|fantastic)\b.{0,40}\b(failed|broke|fired|rejected|ruined|disaster|mess|crashed)\b|` +
			`\b(failed|broke|fired|rejected|ruined|disaster|mess|crashed)\b.{0,40}\b(great|perfect|wonderful|awesome|lovely|fantastic)\b`)

	// A positive word in scare quotes.
	sarcasmScareQuotes = regexp.MustCompile(
		`(?i)["'“‘](?:great|fine|perfect|wonderful|amazing|fun|helpful)["'”’]`)

	// Sarcastic discourse markers.
	sarcasmDiscourse = regexp.MustCompile(
		`(?i)\b(oh (?:great|wonderful|perfect)|yeah,? right|as if|just great|just what i needed|how lovely|of course it did)\b`)

	// Sarcastic emoji.
	sarcasmEmoji = regexp.MustCompile(`🙃|🙄|😒|:\)\)+`)
)

const (
	sarcasmPositiveCut   = 0.30 // removed from the positive primary
	sarcasmStrengthBoost = 0.15 // added to each anger/strength-family primary
)

// Sarcasm reweights the vector when any detector fires: the surface-positive
// reading loses mass and the anger/strength family (angry, disgusted) gains
// it, then the vector is renormalized. Returns the adjusted vector and
// whether sarcasm was detected.
func Sarcasm(text string, v Vector) (Vector, bool) {
	detected := sarcasmJuxtaposition.MatchString(text) ||
		sarcasmScareQuotes.MatchString(text) ||
		sarcasmDiscourse.MatchString(text) ||
		sarcasmEmoji.MatchString(text)
	if !detected {
		return v.Clone(), false
	}

	out := v.Clone()
	out["happy"] *= 1 - sarcasmPositiveCut
	out["angry"] *= 1 + sarcasmStrengthBoost
	out["disgusted"] *= 1 + sarcasmStrengthBoost
	out.Normalize()
	return out, true
}
