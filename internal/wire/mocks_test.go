package wire

import (
	"context"
	"errors"
	"time"

	"nightcare/internal/data/entity"
	"nightcare/internal/data/repository"
)

var _ repository.UserRepository = (*stubUserRepo)(nil)
var _ repository.DoctorRepository = (*stubDoctorRepo)(nil)
var _ repository.AmbulanceRepository = (*stubAmbulanceRepo)(nil)
var _ repository.BloodBankRepository = (*stubBloodBankRepo)(nil)

// stubUserRepo upserts into a map, like the real ON CONFLICT insert
type stubUserRepo struct {
	users  map[string]*entity.User
	nextID int64
	// when set, CreateIfAbsent reports a lost row
	loseRows bool
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[string]*entity.User{}}
}

func (s *stubUserRepo) CreateIfAbsent(_ context.Context, phone string) (*entity.User, error) {
	if s.loseRows {
		return nil, nil
	}
	if user, ok := s.users[phone]; ok {
		return user, nil
	}
	s.nextID++
	user := &entity.User{ID: s.nextID, Phone: phone, CreatedAt: time.Now()}
	s.users[phone] = user
	return user, nil
}

func (s *stubUserRepo) FindByPhone(_ context.Context, phone string) (*entity.User, error) {
	return s.users[phone], nil
}

func (s *stubUserRepo) CountAll(context.Context) (int64, error) {
	return int64(len(s.users)), nil
}

type stubDoctorRepo struct {
	doctors []*entity.Doctor
	err     error
}

func (s *stubDoctorRepo) FindAll(context.Context) ([]*entity.Doctor, error) {
	return s.doctors, s.err
}

func (s *stubDoctorRepo) CountAll(context.Context) (int64, error) {
	return int64(len(s.doctors)), nil
}

func (s *stubDoctorRepo) CreateBatch(context.Context, []*entity.Doctor) error {
	return errors.New("read-only stub")
}

type stubAmbulanceRepo struct {
	nextID int64
}

func (s *stubAmbulanceRepo) Create(context.Context, *entity.AmbulanceBooking) (int64, error) {
	s.nextID++
	return s.nextID, nil
}

func (s *stubAmbulanceRepo) CountAll(context.Context) (int64, error) {
	return s.nextID, nil
}

type stubBloodBankRepo struct {
	banks map[string][]*entity.BloodBank
}

func (s *stubBloodBankRepo) FindByGroup(_ context.Context, bloodGroup string) ([]*entity.BloodBank, error) {
	return s.banks[bloodGroup], nil
}

func (s *stubBloodBankRepo) CountAll(context.Context) (int64, error) {
	var n int64
	for _, banks := range s.banks {
		n += int64(len(banks))
	}
	return n, nil
}

func (s *stubBloodBankRepo) CreateBatch(context.Context, []*entity.BloodBank) error {
	return errors.New("read-only stub")
}
