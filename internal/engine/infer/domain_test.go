package infer

import (
	"testing"

	"github.com/fernwell/attune/internal/engine/features"
	"github.com/fernwell/attune/internal/model"
)

func TestDomainCascade(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.Domain
	}{
		{"money beats work", "Worried about rent and bills after the job news", model.DomainMoney},
		{"work", "The meeting with my boss ran long", model.DomainWork},
		{"family", "Called my mom about the holidays", model.DomainFamily},
		{"study", "The exam is next week and I have not studied", model.DomainStudy},
		{"ritual as self", "Kept my meditation streak going", model.DomainSelf},
		{"ritual with body terms as health", "Skipped the gym because my body ached", model.DomainHealth},
		{"relationships", "My partner and I argued again", model.DomainRelationships},
		{"default self", "Nothing much happened today", model.DomainSelf},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label := Domain(features.Extract(tt.text))
			if label.Primary != tt.want {
				t.Errorf("Domain(%q).Primary = %q, want %q", tt.text, label.Primary, tt.want)
			}
		})
	}
}

// Rent, loan, and payments outrank the single work token, so money wins even
// though work sits high in the cascade.
func TestDomainMoneyScenario(t *testing.T) {
	label := Domain(features.Extract("Stressed about rent, the loan, and the car payments piling up at work"))
	if label.Primary != model.DomainMoney {
		t.Fatalf("Primary = %q, want money", label.Primary)
	}
	if label.Secondary != model.DomainWork {
		t.Errorf("Secondary = %q, want work", label.Secondary)
	}
	if label.MixtureRatio < 0.5 || label.MixtureRatio > 1.0 {
		t.Errorf("MixtureRatio = %v, want within [0.5, 1.0]", label.MixtureRatio)
	}
	if label.Confidence <= 0.5 {
		t.Errorf("Confidence = %v, want > 0.5 with evidence", label.Confidence)
	}
}

func TestDomainPraiseDisambiguation(t *testing.T) {
	// Praise from a plural third party without work context reads as social.
	social := Domain(features.Extract("Everyone complimented the dinner I cooked"))
	if social.Primary != model.DomainSocial {
		t.Errorf("plural-third praise = %q, want social", social.Primary)
	}

	// Praise without any third party reads as self-regard.
	self := Domain(features.Extract("Felt appreciated for once"))
	if self.Primary != model.DomainSelf {
		t.Errorf("bare praise = %q, want self", self.Primary)
	}

	// Praise with work tokens is caught by the work bucket first.
	work := Domain(features.Extract("My manager praised the launch"))
	if work.Primary != model.DomainWork {
		t.Errorf("work praise = %q, want work", work.Primary)
	}
}

func TestDomainNoEvidenceDefaults(t *testing.T) {
	label := Domain(features.Extract("An unremarkable afternoon"))
	if label.Primary != model.DomainSelf {
		t.Errorf("Primary = %q, want self", label.Primary)
	}
	if label.Secondary != "" {
		t.Errorf("Secondary = %q, want empty", label.Secondary)
	}
	if label.MixtureRatio != 1.0 {
		t.Errorf("MixtureRatio = %v, want 1.0", label.MixtureRatio)
	}
	if label.Confidence != 0.4 {
		t.Errorf("Confidence = %v, want 0.4", label.Confidence)
	}
}

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		in   string
		want model.Domain
	}{
		{"work", model.DomainWork},
		{"career", model.DomainWork},
		{"finances", model.DomainMoney},
		{"school", model.DomainStudy},
		{"friends", model.DomainSocial},
		{"wellness", model.DomainHealth},
		{"romance", model.DomainRelationships},
		{"unknown-label", model.DomainSelf},
		{"", model.DomainSelf},
	}
	for _, tt := range tests {
		if got := NormalizeDomain(tt.in); got != tt.want {
			t.Errorf("NormalizeDomain(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
