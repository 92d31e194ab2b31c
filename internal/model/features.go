package model

// Motif names a signal category scanned by the feature extractor.
type Motif string

const (
	MotifFatigue           Motif = "fatigue"
	MotifHedge             Motif = "hedge"
	MotifPraise            Motif = "praise"
	MotifNegMetaphor       Motif = "neg_metaphor"
	MotifSarcasmCue        Motif = "sarcasm_cue"
	MotifPhysioDistress    Motif = "physio_distress"
	MotifAgencyHigh        Motif = "agency_high"
	MotifAgencyLow         Motif = "agency_low"
	MotifPastAction        Motif = "past_action"
	MotifFailedAttempt     Motif = "failed_attempt"
	MotifHypothetical      Motif = "hypothetical"
	MotifPresentReflection Motif = "present_reflection"
	MotifNegatedPast       Motif = "negated_past"
	MotifPluralThird       Motif = "plural_third"
)

// Signal is one motif's boolean + count reading.
type Signal struct {
	Present bool
	Count   int
}

// FeatureSet is the flat signal record produced once per reflection text and
// read by every downstream stage. It is never mutated after extraction;
// extracting the same text twice yields an identical value.
type FeatureSet struct {
	Fatigue           Signal
	Hedge             Signal
	Praise            Signal
	NegMetaphor       Signal
	SarcasmCue        Signal
	PhysioDistress    Signal
	AgencyHigh        Signal
	AgencyLow         Signal
	PastAction        Signal
	FailedAttempt     Signal
	Hypothetical      Signal
	PresentReflection Signal
	NegatedPast       Signal
	PluralThird       Signal

	// Ordered domain token hits, in order of appearance in the text.
	WorkTokens         []string
	MoneyTokens        []string
	RitualTokens       []string
	FamilyTokens       []string
	StudyTokens        []string
	RelationshipTokens []string
	HealthTokens       []string

	// Matches maps each motif to its matched substrings, retained for audit.
	Matches map[Motif][]string
}
