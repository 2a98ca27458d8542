package response

import (
	"nightcare/internal/triage"
)

type SymptomCheckResponse struct {
	PossibleProblem string `json:"possible_problem"`
	Severity        string `json:"severity"`
	Urgency         string `json:"urgency"`
	Recommendation  string `json:"recommendation"`
}

func VerdictToResponse(verdict triage.Verdict) *SymptomCheckResponse {
	return &SymptomCheckResponse{
		PossibleProblem: verdict.Problem,
		Severity:        string(verdict.Severity),
		Urgency:         string(verdict.Urgency),
		Recommendation:  verdict.Recommendation,
	}
}
