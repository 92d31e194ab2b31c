// Package features scans reflection text for motif signals. Extraction is a
// pure, total function: it never fails, matching is case-insensitive, and
// identical input yields byte-identical output.
package features

import (
	"regexp"
	"strings"

	"github.com/fernwell/attune/internal/model"
)

// Motif patterns, compiled once at package init. One pass per category.
var motifPatterns = []struct {
	motif   model.Motif
	pattern *regexp.Regexp
}{
	{model.MotifFatigue, regexp.MustCompile(`(?i)\b(exhaust\w*|tired|drained|worn out|burn(?:ed|t) out|no energy|fatigued|running on empty|so sleepy)\b`)},
	{model.MotifHedge, regexp.MustCompile(`(?i)\b(maybe|i guess|i suppose|perhaps|sort of|kind of|not sure|i think|possibly|somewhat|probably)\b`)},
	{model.MotifPraise, regexp.MustCompile(`(?i)\b(praised|complimented|good job|well done|proud of me|recognized|appreciated|congratulated|shout ?out)\b`)},
	{model.MotifNegMetaphor, regexp.MustCompile(`(?i)\b(empty|hollow|numb|void|sinking|drowning|suffocating|trapped|dark cloud|weight on (?:my|the) (?:chest|shoulders))\b`)},
	{model.MotifSarcasmCue, regexp.MustCompile(`(?i)(\boh (?:great|wonderful|perfect)\b|\byeah,? right\b|\bas if\b|\bjust great\b|\bhow lovely\b|🙃|🙄|😒)`)},
	{model.MotifPhysioDistress, regexp.MustCompile(`(?i)\b(can.?t sleep|heart (?:racing|pounding)|shaking|nauseous|headache|chest (?:tight|hurts)|can.?t breathe|stomach (?:churn\w*|knot\w*)|sweating|insomnia)\b`)},
	{model.MotifAgencyHigh, regexp.MustCompile(`(?i)\b(i decided|i chose|i will|i.?m going to|i made|i can\b|i took|my plan|i set|i started)\b`)},
	{model.MotifAgencyLow, regexp.MustCompile(`(?i)\b(can.?t|couldn.?t|no choice|forced|out of my hands|nothing i can do|helpless|stuck with|powerless)\b`)},
	{model.MotifPastAction, regexp.MustCompile(`(?i)\b(yesterday|last (?:week|night|month)|i did|i went|i finished|i told|i got|earlier today|this morning|\w+ ago)\b`)},
	{model.MotifFailedAttempt, regexp.MustCompile(`(?i)\b(tried to|attempted|failed to|couldn.?t manage|didn.?t work|gave up|fell short)\b`)},
	{model.MotifHypothetical, regexp.MustCompile(`(?i)\b(what if|if i\b|would have|could have|imagine if|i wish|hypothetically|suppose i)\b`)},
	{model.MotifPresentReflection, regexp.MustCompile(`(?i)\b(lately|these days|recently|i.?ve been|keep (?:thinking|feeling)|can.?t stop thinking)\b`)},
	{model.MotifNegatedPast, regexp.MustCompile(`(?i)\b(never happened|didn.?t happen|did not happen|it wasn.?t real)\b`)},
	{model.MotifPluralThird, regexp.MustCompile(`(?i)\b(they|everyone|everybody|people|my friends|the (?:team|group))\b`)},
}

// Domain token patterns. Matches are recorded in order of appearance so the
// resolver can reason about first mentions.
var domainPatterns = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"work", regexp.MustCompile(`(?i)\b(boss|meeting|deadline|project|promot\w+|office|work|job|client|shipped|launch\w*|coworker|manager)\b`)},
	{"money", regexp.MustCompile(`(?i)\b(rent|loan|debt|bills?|salary|paycheck|money|budget|afford|payments?|savings|broke\b)\b`)},
	{"ritual", regexp.MustCompile(`(?i)\b(meditat\w+|journal\w*|workout|gym|yoga|morning walk|routine|habit|practice|streak)\b`)},
	{"family", regexp.MustCompile(`(?i)\b(mom|dad|mother|father|sister|brother|family|parents?|kids?|son|daughter|grandma|grandpa)\b`)},
	{"study", regexp.MustCompile(`(?i)\b(exam|class|study\w*|homework|course|lecture|semester|grades?|thesis|professor)\b`)},
	{"relationship", regexp.MustCompile(`(?i)\b(partner|boyfriend|girlfriend|wife|husband|dating|relationship|breakup|broke up|crush|marriage)\b`)},
	{"health", regexp.MustCompile(`(?i)\b(doctor|sick|pain|sleep|body|health|therap\w+|diet|medication|symptoms?)\b`)},
}

// Extract scans text once per motif category and returns the resulting
// FeatureSet. Empty or whitespace-only text yields an all-zero set with a
// non-nil, empty audit map.
func Extract(text string) model.FeatureSet {
	fs := model.FeatureSet{Matches: make(map[model.Motif][]string)}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fs
	}

	for _, mp := range motifPatterns {
		matches := mp.pattern.FindAllString(trimmed, -1)
		if len(matches) == 0 {
			continue
		}
		sig := model.Signal{Present: true, Count: len(matches)}
		fs.Matches[mp.motif] = matches
		setSignal(&fs, mp.motif, sig)
	}

	for _, dp := range domainPatterns {
		matches := dp.pattern.FindAllString(trimmed, -1)
		if len(matches) == 0 {
			continue
		}
		lowered := make([]string, len(matches))
		for i, m := range matches {
			lowered[i] = strings.ToLower(m)
		}
		setDomainTokens(&fs, dp.name, lowered)
	}

	return fs
}

func setSignal(fs *model.FeatureSet, motif model.Motif, sig model.Signal) {
	switch motif {
	case model.MotifFatigue:
		fs.Fatigue = sig
	case model.MotifHedge:
		fs.Hedge = sig
	case model.MotifPraise:
		fs.Praise = sig
	case model.MotifNegMetaphor:
		fs.NegMetaphor = sig
	case model.MotifSarcasmCue:
		fs.SarcasmCue = sig
	case model.MotifPhysioDistress:
		fs.PhysioDistress = sig
	case model.MotifAgencyHigh:
		fs.AgencyHigh = sig
	case model.MotifAgencyLow:
		fs.AgencyLow = sig
	case model.MotifPastAction:
		fs.PastAction = sig
	case model.MotifFailedAttempt:
		fs.FailedAttempt = sig
	case model.MotifHypothetical:
		fs.Hypothetical = sig
	case model.MotifPresentReflection:
		fs.PresentReflection = sig
	case model.MotifNegatedPast:
		fs.NegatedPast = sig
	case model.MotifPluralThird:
		fs.PluralThird = sig
	}
}

func setDomainTokens(fs *model.FeatureSet, name string, tokens []string) {
	switch name {
	case "work":
		fs.WorkTokens = tokens
	case "money":
		fs.MoneyTokens = tokens
	case "ritual":
		fs.RitualTokens = tokens
	case "family":
		fs.FamilyTokens = tokens
	case "study":
		fs.StudyTokens = tokens
	case "relationship":
		fs.RelationshipTokens = tokens
	case "health":
		fs.HealthTokens = tokens
	}
}
