package usecase

import (
	"nightcare/internal/data/repository"
	"nightcare/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Symptom   SymptomService
	Doctor    DoctorService
	Ambulance AmbulanceService
	Blood     BloodService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo.User, config, log),
		Symptom:   NewSymptomService(log),
		Doctor:    NewDoctorService(repo.Doctor, log),
		Ambulance: NewAmbulanceService(repo.Ambulance, config, log),
		Blood:     NewBloodService(repo.BloodBank, log),
	}
}
