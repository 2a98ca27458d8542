package usecase

import (
	"context"

	"nightcare/internal/data/repository"
	"nightcare/internal/dto/response"
	"nightcare/pkg/apperrors"

	"go.uber.org/zap"
)

type DoctorService interface {
	List(ctx context.Context) (*response.DoctorListResponse, error)
}

type doctorService struct {
	doctorRepo repository.DoctorRepository
	log        *zap.Logger
}

func NewDoctorService(doctorRepo repository.DoctorRepository, log *zap.Logger) DoctorService {
	return &doctorService{
		doctorRepo: doctorRepo,
		log:        log,
	}
}

// List returns the whole directory, nearest doctor first.
func (s *doctorService) List(ctx context.Context) (*response.DoctorListResponse, error) {
	doctors, err := s.doctorRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list doctors", zap.Error(err))
		return nil, apperrors.NewStore("list doctors", err)
	}

	return response.DoctorsToResponse(doctors), nil
}
