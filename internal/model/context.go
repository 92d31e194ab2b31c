package model

// Domain is a life-domain label from the canonical set.
type Domain string

const (
	DomainWork          Domain = "work"
	DomainRelationships Domain = "relationships"
	DomainSocial        Domain = "social"
	DomainSelf          Domain = "self"
	DomainFamily        Domain = "family"
	DomainHealth        Domain = "health"
	DomainMoney         Domain = "money"
	DomainStudy         Domain = "study"
)

// ControlLevel is the writer's perceived agency over their situation.
type ControlLevel string

const (
	ControlLow    ControlLevel = "low"
	ControlMedium ControlLevel = "medium"
	ControlHigh   ControlLevel = "high"
)

// Polarity states whether the described event happened, did not happen, is
// hypothetical, or is unspecified.
type Polarity string

const (
	PolarityHappened     Polarity = "happened"
	PolarityDidNotHappen Polarity = "did_not_happen"
	PolarityHypothetical Polarity = "hypothetical"
	PolarityNone         Polarity = "none"
)

// DomainLabel is the resolved life-domain with an optional secondary domain
// and a mixture ratio in [0.5, 1.0] describing how dominant the primary is.
type DomainLabel struct {
	Primary      Domain  `json:"primary"`
	Secondary    Domain  `json:"secondary,omitempty"`
	MixtureRatio float64 `json:"mixture_ratio"`
	Confidence   float64 `json:"confidence"`
}

// ControlLabel is the inferred agency category with confidence.
type ControlLabel struct {
	Level      ControlLevel `json:"level"`
	Confidence float64      `json:"confidence"`
}

// PolarityLabel is the inferred event polarity with confidence.
type PolarityLabel struct {
	Value      Polarity `json:"value"`
	Confidence float64  `json:"confidence"`
}

// ContextLabels bundles the three context inferences. Each inferencer owns
// exactly one field; they never write to each other.
type ContextLabels struct {
	Domain   DomainLabel   `json:"domain"`
	Control  ControlLabel  `json:"control"`
	Polarity PolarityLabel `json:"polarity"`
}
