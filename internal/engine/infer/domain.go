// Package infer derives the three context labels (life domain, perceived
// control, and event polarity) from the extracted feature set. Each
// inferencer owns exactly one label and never writes to another.
package infer

import (
	"math"

	"github.com/fernwell/attune/internal/clamp"
	"github.com/fernwell/attune/internal/model"
)

// domainBucket pairs a canonical domain with its token hits for the cascade.
type domainBucket struct {
	domain model.Domain
	hits   int
}

// Domain resolves the life domain by priority cascade: money → work → family
// → study → ritual (health when body terms co-occur, else self) → praise
// disambiguation → relationship terms → default self.
func Domain(fs model.FeatureSet) model.DomainLabel {
	buckets := cascade(fs)

	primary := domainBucket{domain: model.DomainSelf}
	var rest []domainBucket
	for i, b := range buckets {
		if b.hits > 0 {
			primary = b
			rest = buckets[i+1:]
			break
		}
	}

	label := model.DomainLabel{
		Primary:      primary.domain,
		MixtureRatio: 1.0,
		Confidence:   0.4,
	}
	if primary.hits > 0 {
		label.Confidence = math.Min(0.9, 0.5+0.1*float64(primary.hits))
	}

	// Secondary domain: the next bucket in cascade order with evidence.
	for _, b := range rest {
		if b.hits == 0 || b.domain == primary.domain {
			continue
		}
		label.Secondary = b.domain
		ratio := float64(primary.hits) / float64(primary.hits+b.hits)
		label.MixtureRatio = clamp.Range(0.5, 1.0, ratio)
		break
	}

	return label
}

// cascade lists the evidence buckets in priority order. Praise disambiguation
// sits between ritual and relationship terms: praised work is caught by the
// work bucket above, praise from a plural third party reads as social credit,
// and self-praise reads as self-regard.
func cascade(fs model.FeatureSet) []domainBucket {
	praiseSocial, praiseSelf := 0, 0
	if fs.Praise.Present && len(fs.WorkTokens) == 0 {
		if fs.PluralThird.Present {
			praiseSocial = fs.Praise.Count
		} else {
			praiseSelf = fs.Praise.Count
		}
	}

	return []domainBucket{
		{model.DomainMoney, len(fs.MoneyTokens)},
		{model.DomainWork, len(fs.WorkTokens)},
		{model.DomainFamily, len(fs.FamilyTokens)},
		{model.DomainStudy, len(fs.StudyTokens)},
		{ritualDomain(fs), len(fs.RitualTokens)},
		{model.DomainSocial, praiseSocial},
		{model.DomainSelf, praiseSelf},
		{model.DomainRelationships, len(fs.RelationshipTokens)},
	}
}

// ritualDomain maps ritual tokens to health when body or health terms are
// also present, otherwise to self (a ritual is self-care by default).
func ritualDomain(fs model.FeatureSet) model.Domain {
	if len(fs.HealthTokens) > 0 {
		return model.DomainHealth
	}
	return model.DomainSelf
}

// domainAliases normalizes externally supplied domain strings onto the
// canonical set. Unknown strings map to self, never to an invented label.
var domainAliases = map[string]model.Domain{
	"work": model.DomainWork, "job": model.DomainWork, "career": model.DomainWork, "office": model.DomainWork,
	"relationships": model.DomainRelationships, "relationship": model.DomainRelationships,
	"love": model.DomainRelationships, "romance": model.DomainRelationships,
	"social": model.DomainSocial, "friends": model.DomainSocial, "friendship": model.DomainSocial,
	"self": model.DomainSelf, "personal": model.DomainSelf, "identity": model.DomainSelf,
	"family": model.DomainFamily, "home": model.DomainFamily,
	"health": model.DomainHealth, "fitness": model.DomainHealth, "wellness": model.DomainHealth,
	"money": model.DomainMoney, "finances": model.DomainMoney, "finance": model.DomainMoney, "financial": model.DomainMoney,
	"study": model.DomainStudy, "school": model.DomainStudy, "college": model.DomainStudy, "education": model.DomainStudy,
}

// NormalizeDomain maps an external domain string to the canonical set.
func NormalizeDomain(s string) model.Domain {
	if d, ok := domainAliases[s]; ok {
		return d
	}
	return model.DomainSelf
}
