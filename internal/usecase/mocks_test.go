package usecase

import (
	"context"
	"errors"
	"sync/atomic"

	"nightcare/internal/data/entity"
	"nightcare/internal/data/repository"
)

// Compile-time checks that the mocks satisfy the repository interfaces
var _ repository.UserRepository = (*MockUserRepository)(nil)
var _ repository.DoctorRepository = (*MockDoctorRepository)(nil)
var _ repository.AmbulanceRepository = (*MockAmbulanceRepository)(nil)
var _ repository.BloodBankRepository = (*MockBloodBankRepository)(nil)

type MockUserRepository struct {
	CreateIfAbsentFunc func(ctx context.Context, phone string) (*entity.User, error)
	FindByPhoneFunc    func(ctx context.Context, phone string) (*entity.User, error)
	CountAllFunc       func(ctx context.Context) (int64, error)

	CreateIfAbsentCallCount int32
}

func (m *MockUserRepository) CreateIfAbsent(ctx context.Context, phone string) (*entity.User, error) {
	atomic.AddInt32(&m.CreateIfAbsentCallCount, 1)
	if m.CreateIfAbsentFunc != nil {
		return m.CreateIfAbsentFunc(ctx, phone)
	}
	return nil, errors.New("CreateIfAbsentFunc not implemented in mock")
}

func (m *MockUserRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	if m.FindByPhoneFunc != nil {
		return m.FindByPhoneFunc(ctx, phone)
	}
	return nil, errors.New("FindByPhoneFunc not implemented in mock")
}

func (m *MockUserRepository) CountAll(ctx context.Context) (int64, error) {
	if m.CountAllFunc != nil {
		return m.CountAllFunc(ctx)
	}
	return 0, errors.New("CountAllFunc not implemented in mock")
}

type MockDoctorRepository struct {
	FindAllFunc     func(ctx context.Context) ([]*entity.Doctor, error)
	CountAllFunc    func(ctx context.Context) (int64, error)
	CreateBatchFunc func(ctx context.Context, doctors []*entity.Doctor) error
}

func (m *MockDoctorRepository) FindAll(ctx context.Context) ([]*entity.Doctor, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, errors.New("FindAllFunc not implemented in mock")
}

func (m *MockDoctorRepository) CountAll(ctx context.Context) (int64, error) {
	if m.CountAllFunc != nil {
		return m.CountAllFunc(ctx)
	}
	return 0, errors.New("CountAllFunc not implemented in mock")
}

func (m *MockDoctorRepository) CreateBatch(ctx context.Context, doctors []*entity.Doctor) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, doctors)
	}
	return errors.New("CreateBatchFunc not implemented in mock")
}

type MockAmbulanceRepository struct {
	CreateFunc   func(ctx context.Context, booking *entity.AmbulanceBooking) (int64, error)
	CountAllFunc func(ctx context.Context) (int64, error)

	CreateCallCount int32
}

func (m *MockAmbulanceRepository) Create(ctx context.Context, booking *entity.AmbulanceBooking) (int64, error) {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, booking)
	}
	return 0, errors.New("CreateFunc not implemented in mock")
}

func (m *MockAmbulanceRepository) CountAll(ctx context.Context) (int64, error) {
	if m.CountAllFunc != nil {
		return m.CountAllFunc(ctx)
	}
	return 0, errors.New("CountAllFunc not implemented in mock")
}

type MockBloodBankRepository struct {
	FindByGroupFunc func(ctx context.Context, bloodGroup string) ([]*entity.BloodBank, error)
	CountAllFunc    func(ctx context.Context) (int64, error)
	CreateBatchFunc func(ctx context.Context, banks []*entity.BloodBank) error
}

func (m *MockBloodBankRepository) FindByGroup(ctx context.Context, bloodGroup string) ([]*entity.BloodBank, error) {
	if m.FindByGroupFunc != nil {
		return m.FindByGroupFunc(ctx, bloodGroup)
	}
	return nil, errors.New("FindByGroupFunc not implemented in mock")
}

func (m *MockBloodBankRepository) CountAll(ctx context.Context) (int64, error) {
	if m.CountAllFunc != nil {
		return m.CountAllFunc(ctx)
	}
	return 0, errors.New("CountAllFunc not implemented in mock")
}

func (m *MockBloodBankRepository) CreateBatch(ctx context.Context, banks []*entity.BloodBank) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, banks)
	}
	return errors.New("CreateBatchFunc not implemented in mock")
}
