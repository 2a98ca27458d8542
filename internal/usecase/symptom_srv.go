package usecase

import (
	"context"
	"errors"

	"nightcare/internal/dto/request"
	"nightcare/internal/dto/response"
	"nightcare/internal/triage"
	"nightcare/pkg/apperrors"

	"go.uber.org/zap"
)

type SymptomService interface {
	Check(ctx context.Context, req *request.SymptomCheckRequest) (*response.SymptomCheckResponse, error)
}

type symptomService struct {
	log *zap.Logger
}

func NewSymptomService(log *zap.Logger) SymptomService {
	return &symptomService{
		log: log,
	}
}

// Check delegates to the triage engine and returns its verdict verbatim.
func (s *symptomService) Check(_ context.Context, req *request.SymptomCheckRequest) (*response.SymptomCheckResponse, error) {
	verdict, err := triage.Classify(req.Description)
	if err != nil {
		if errors.Is(err, triage.ErrEmptyDescription) {
			return nil, apperrors.NewValidationWithHint(
				"description required",
				"please describe at least one symptom",
			)
		}
		return nil, err
	}

	s.log.Info("Symptom classified",
		zap.String("severity", string(verdict.Severity)),
		zap.String("urgency", string(verdict.Urgency)),
	)

	return response.VerdictToResponse(verdict), nil
}
