package seeder

import (
	"context"
	"errors"
	"testing"

	"nightcare/internal/data/entity"
	"nightcare/internal/data/repository"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

var _ repository.DoctorRepository = (*fakeDoctorRepo)(nil)
var _ repository.BloodBankRepository = (*fakeBloodBankRepo)(nil)

// fakeDoctorRepo keeps inserted rows so a second Run sees a non-zero count
type fakeDoctorRepo struct {
	rows []*entity.Doctor
}

func (f *fakeDoctorRepo) FindAll(context.Context) ([]*entity.Doctor, error) {
	return f.rows, nil
}

func (f *fakeDoctorRepo) CountAll(context.Context) (int64, error) {
	return int64(len(f.rows)), nil
}

func (f *fakeDoctorRepo) CreateBatch(_ context.Context, doctors []*entity.Doctor) error {
	f.rows = append(f.rows, doctors...)
	return nil
}

type fakeBloodBankRepo struct {
	rows []*entity.BloodBank
	err  error
}

func (f *fakeBloodBankRepo) FindByGroup(_ context.Context, group string) ([]*entity.BloodBank, error) {
	var matched []*entity.BloodBank
	for _, row := range f.rows {
		if row.BloodGroup == group {
			matched = append(matched, row)
		}
	}
	return matched, nil
}

func (f *fakeBloodBankRepo) CountAll(context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.rows)), nil
}

func (f *fakeBloodBankRepo) CreateBatch(_ context.Context, banks []*entity.BloodBank) error {
	f.rows = append(f.rows, banks...)
	return nil
}

func fakeRepos() (*repository.Repository, *fakeDoctorRepo, *fakeBloodBankRepo) {
	doctorRepo := &fakeDoctorRepo{}
	bloodRepo := &fakeBloodBankRepo{}
	return &repository.Repository{Doctor: doctorRepo, BloodBank: bloodRepo}, doctorRepo, bloodRepo
}

func TestRunSeedsEmptyCollections(t *testing.T) {
	repos, doctorRepo, bloodRepo := fakeRepos()

	err := Run(context.Background(), repos, zap.NewNop())

	assert.NoError(t, err)
	assert.Len(t, doctorRepo.rows, 3)
	assert.Len(t, bloodRepo.rows, 5)
}

func TestRunIsIdempotent(t *testing.T) {
	repos, doctorRepo, bloodRepo := fakeRepos()
	ctx := context.Background()

	assert.NoError(t, Run(ctx, repos, zap.NewNop()))
	assert.NoError(t, Run(ctx, repos, zap.NewNop()))

	// second run must not duplicate rows
	assert.Len(t, doctorRepo.rows, 3)
	assert.Len(t, bloodRepo.rows, 5)
}

func TestRunPropagatesStoreErrors(t *testing.T) {
	repos, _, bloodRepo := fakeRepos()
	bloodRepo.err = errors.New("connection refused")

	err := Run(context.Background(), repos, zap.NewNop())

	assert.Error(t, err)
}

func TestSeedDataShape(t *testing.T) {
	repos, doctorRepo, bloodRepo := fakeRepos()

	assert.NoError(t, Run(context.Background(), repos, zap.NewNop()))

	for _, doctor := range doctorRepo.rows {
		assert.NotEmpty(t, doctor.Name)
		assert.NotEmpty(t, doctor.Speciality)
		assert.GreaterOrEqual(t, doctor.Rating, 0.0)
		assert.LessOrEqual(t, doctor.Rating, 5.0)
		assert.GreaterOrEqual(t, doctor.DistanceKm, 0.0)
	}

	// out-of-stock entries stay listed
	outOfStock, err := bloodRepo.FindByGroup(context.Background(), "A+")
	assert.NoError(t, err)

	var zeroUnits bool
	for _, bank := range outOfStock {
		assert.GreaterOrEqual(t, bank.UnitsAvailable, 0)
		if bank.UnitsAvailable == 0 {
			zeroUnits = true
		}
	}
	assert.True(t, zeroUnits, "seed keeps a zero-unit bank listed")
}
