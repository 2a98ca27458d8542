// Package triage maps a free-text symptom description to a severity verdict
// through a fixed, ordered keyword cascade. It is a pure function: no I/O, no
// state, no learning.
package triage

import (
	"errors"
	"strings"
)

type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

type Urgency string

const (
	UrgencyNormal    Urgency = "normal"
	UrgencyUrgent    Urgency = "urgent"
	UrgencyEmergency Urgency = "emergency"
)

// Verdict is the structured outcome of a classification.
type Verdict struct {
	Problem        string
	Severity       Severity
	Urgency        Urgency
	Recommendation string
}

// ErrEmptyDescription is returned when the description is empty or whitespace.
var ErrEmptyDescription = errors.New("description required")

type rule struct {
	keywords []string
	verdict  Verdict
}

// rules are evaluated top to bottom, first match wins. The order is the point:
// life-threatening signals must pre-empt weaker matches when several keyword
// sets co-occur ("chest pain and fever" is critical, not moderate). Matching
// is plain substring presence, no negation handling: "no bleeding" still
// matches the bleeding rule.
var rules = []rule{
	{
		keywords: []string{"chest", "stroke", "unconscious"},
		verdict: Verdict{
			Problem:  "Possible cardiac / neurological emergency",
			Severity: SeverityCritical,
			Urgency:  UrgencyEmergency,
			Recommendation: "Immediate ambulance required. Do NOT drive yourself. " +
				"Start CPR if not breathing.",
		},
	},
	{
		keywords: []string{"breath", "difficulty breathing", "asthma"},
		verdict: Verdict{
			Problem:  "Breathing difficulty / possible asthma or lung issue",
			Severity: SeverityHigh,
			Urgency:  UrgencyUrgent,
			Recommendation: "Use inhaler if prescribed & seek emergency department or " +
				"ambulance if worsening.",
		},
	},
	{
		keywords: []string{"bleeding", "blood"},
		verdict: Verdict{
			Problem:        "Significant bleeding",
			Severity:       SeverityHigh,
			Urgency:        UrgencyUrgent,
			Recommendation: "Apply firm pressure, keep limb elevated & visit nearest emergency within 30 minutes.",
		},
	},
	{
		keywords: []string{"fever", "temperature"},
		verdict: Verdict{
			Problem:  "Fever / infection-like symptoms",
			Severity: SeverityModerate,
			Urgency:  UrgencyNormal,
			Recommendation: "Hydrate, use paracetamol as advised & book online doctor if " +
				"more than 48h or very high fever.",
		},
	},
}

// defaultVerdict is returned when no keyword matched.
var defaultVerdict = Verdict{
	Problem:        "General viral / mild condition",
	Severity:       SeverityMild,
	Urgency:        UrgencyNormal,
	Recommendation: "Monitor at home, hydrate well & consult online if symptoms persist.",
}

// Classify evaluates the rule cascade over the lower-cased description.
// Deterministic: the same input always yields the same verdict.
func Classify(description string) (Verdict, error) {
	text := strings.ToLower(description)
	if strings.TrimSpace(text) == "" {
		return Verdict{}, ErrEmptyDescription
	}

	for _, rule := range rules {
		if matchesAny(text, rule.keywords) {
			return rule.verdict, nil
		}
	}

	return defaultVerdict, nil
}

func matchesAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
