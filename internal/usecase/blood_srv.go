package usecase

import (
	"context"
	"strings"

	"nightcare/internal/data/repository"
	"nightcare/internal/dto/request"
	"nightcare/internal/dto/response"
	"nightcare/pkg/apperrors"
	"nightcare/pkg/utils"

	"go.uber.org/zap"
)

type BloodService interface {
	Check(ctx context.Context, req *request.BloodCheckRequest) (*response.BloodCheckResponse, error)
}

type bloodService struct {
	bloodBankRepo repository.BloodBankRepository
	log           *zap.Logger
}

func NewBloodService(bloodBankRepo repository.BloodBankRepository, log *zap.Logger) BloodService {
	return &bloodService{
		bloodBankRepo: bloodBankRepo,
		log:           log,
	}
}

// Check looks up availability for a blood group. The group is upper-cased
// before the lookup so "a+" and "A+" answer identically; a group nobody
// stocks returns an empty list, not an error.
func (s *bloodService) Check(ctx context.Context, req *request.BloodCheckRequest) (*response.BloodCheckResponse, error) {
	req.BloodGroup = strings.ToUpper(strings.TrimSpace(req.BloodGroup))
	group := req.BloodGroup

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Blood check rejected, no blood group", zap.Any("errors", errs))
		return nil, apperrors.NewValidation("blood_group required")
	}

	banks, err := s.bloodBankRepo.FindByGroup(ctx, group)
	if err != nil {
		s.log.Error("Failed to check blood banks",
			zap.Error(err),
			zap.String("blood_group", group))
		return nil, apperrors.NewStore("find blood banks", err)
	}

	return response.BloodBanksToResponse(group, banks), nil
}
