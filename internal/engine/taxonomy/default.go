package taxonomy

// Canonical primary labels. The engine, selector, and classifier are all
// hard-wired to these six; there is no eight-category variant.
const (
	PrimaryHappy     = "happy"
	PrimarySad       = "sad"
	PrimaryAngry     = "angry"
	PrimaryFearful   = "fearful"
	PrimarySurprised = "surprised"
	PrimaryDisgusted = "disgusted"
)

// CanonicalPrimaries lists the six primaries in wheel order. Probability
// vectors are keyed and ordered by this list.
var CanonicalPrimaries = []string{
	PrimaryHappy, PrimarySad, PrimaryAngry,
	PrimaryFearful, PrimarySurprised, PrimaryDisgusted,
}

// Default returns the built-in 216-leaf wheel. Callers that need a custom
// wheel load one from a file instead; the shape contract is identical.
func Default() *Taxonomy {
	t, err := New(defaultWheel())
	if err != nil {
		// The built-in wheel is a compile-time constant; a shape error here
		// is a programming bug, not a runtime condition.
		panic(err)
	}
	return t
}

func defaultWheel() Wheel {
	return Wheel{
		PrimaryHappy: {
			"playful":    {"cheeky", "free", "joyful", "lively", "amused", "mischievous"},
			"content":    {"peaceful", "satisfied", "fulfilled", "calm", "serene", "mellow"},
			"proud":      {"successful", "confident", "respected", "valued", "accomplished", "triumphant"},
			"optimistic": {"hopeful", "inspired", "eager", "encouraged", "motivated", "uplifted"},
			"accepted":   {"welcomed", "included", "appreciated", "cherished", "supported", "understood"},
			"interested": {"curious", "inquisitive", "fascinated", "absorbed", "intrigued", "engaged"},
		},
		PrimarySad: {
			"lonely":     {"isolated", "abandoned", "excluded", "forsaken", "homesick", "neglected"},
			"vulnerable": {"fragile", "exposed", "helpless", "insecure", "sensitive", "unguarded"},
			"despairing": {"hopeless", "defeated", "crushed", "despondent", "gloomy", "miserable"},
			"guilty":     {"ashamed", "remorseful", "regretful", "embarrassed", "contrite", "apologetic"},
			"depressed":  {"empty", "numb", "withdrawn", "weary", "downcast", "flat"},
			"hurt":       {"disappointed", "betrayed", "wounded", "aggrieved", "slighted", "dismayed"},
		},
		PrimaryAngry: {
			"frustrated": {"annoyed", "irritated", "exasperated", "thwarted", "impatient", "agitated"},
			"resentful":  {"bitter", "envious", "jealous", "begrudging", "indignant", "sullen"},
			"critical":   {"judgmental", "skeptical", "dismissive", "contemptuous", "cynical", "scornful"},
			"hostile":    {"aggressive", "provoked", "vengeful", "furious", "enraged", "hateful"},
			"distant":    {"cold", "detached", "aloof", "guarded", "unresponsive", "shut_down"},
			"humiliated": {"disrespected", "ridiculed", "belittled", "shamed", "mocked", "degraded"},
		},
		PrimaryFearful: {
			"anxious":  {"worried", "overwhelmed", "nervous", "restless", "uneasy", "tense"},
			"insecure": {"inadequate", "inferior", "self_doubting", "unworthy", "small", "unsure"},
			"scared":   {"frightened", "terrified", "panicked", "alarmed", "threatened", "spooked"},
			"helpless": {"powerless", "trapped", "paralyzed", "stuck", "dependent", "resigned"},
			"rejected": {"unwanted", "dismissed", "unheard", "invisible", "overlooked", "left_out"},
			"confused": {"disoriented", "lost", "perplexed", "bewildered", "torn", "uncertain"},
		},
		PrimarySurprised: {
			"startled":      {"shocked", "jolted", "stunned", "rattled", "jarred", "blindsided"},
			"amazed":        {"awed", "astonished", "wonderstruck", "dazzled", "impressed", "spellbound"},
			"excited":       {"energized", "thrilled", "exhilarated", "giddy", "buzzing", "elated"},
			"disillusioned": {"disenchanted", "deflated", "jaded", "unsettled", "taken_aback", "sobered"},
			"moved":         {"touched", "stirred", "humbled", "tearful", "warmed", "softened"},
			"puzzled":       {"baffled", "mystified", "disbelieving", "incredulous", "questioning", "curious_why"},
		},
		PrimaryDisgusted: {
			"disapproving": {"offended", "appalled", "scandalized", "disdainful", "affronted", "outraged"},
			"disappointed": {"disheartened", "crestfallen", "let_down", "soured", "disgruntled", "underwhelmed"},
			"awful":        {"nauseated", "revolted", "sickened", "repelled", "horrified", "queasy"},
			"averse":       {"hesitant", "reluctant", "repulsed", "alienated", "estranged", "wary"},
			"ashamed_of":   {"mortified", "chagrined", "sheepish", "self_conscious", "abashed", "flustered"},
			"judgmental":   {"superior", "condescending", "derisive", "smug", "moralistic", "scoffing"},
		},
	}
}
