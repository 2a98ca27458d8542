package repository

import (
	"nightcare/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User      UserRepository
	Doctor    DoctorRepository
	Ambulance AmbulanceRepository
	BloodBank BloodBankRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:      NewUserRepository(db, log),
		Doctor:    NewDoctorRepository(db, log),
		Ambulance: NewAmbulanceRepository(db, log),
		BloodBank: NewBloodBankRepository(db, log),
	}
}
