package service

import (
	"context"
	"errors"

	"github.com/DevAyush27/med-tracker/internal/model"
	"github.com/DevAyush27/med-tracker/internal/repository"

	"github.com/google/uuid"
)

// Compile-time checks that the mocks satisfy the repository interfaces
var (
	_ repository.UserRepository     = (*MockUserRepository)(nil)
	_ repository.MedicineRepository = (*MockMedicineRepository)(nil)
)

// MockUserRepository is a function-field mock of repository.UserRepository.
type MockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *model.User) error
	FindByEmailFunc func(ctx context.Context, email string) (*model.User, error)
	FindByIDFunc    func(ctx context.Context, id int) (*model.User, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

// MockMedicineRepository is a function-field mock of repository.MedicineRepository.
type MockMedicineRepository struct {
	CreateFunc            func(ctx context.Context, medicine *model.Medicine) error
	FindByOwnerFunc       func(ctx context.Context, userID int) ([]model.Medicine, error)
	FindByIDAndOwnerFunc  func(ctx context.Context, id uuid.UUID, userID int) (*model.Medicine, error)
	FindAllFunc           func(ctx context.Context) ([]model.Medicine, error)
	FindAllWithOwnersFunc func(ctx context.Context) ([]model.MedicineWithOwner, error)
	UpdateFunc            func(ctx context.Context, medicine *model.Medicine) error
	DeleteFunc            func(ctx context.Context, id uuid.UUID, userID int) error
}

func (m *MockMedicineRepository) Create(ctx context.Context, medicine *model.Medicine) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, medicine)
	}
	return nil
}

func (m *MockMedicineRepository) FindByOwner(ctx context.Context, userID int) ([]model.Medicine, error) {
	if m.FindByOwnerFunc != nil {
		return m.FindByOwnerFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockMedicineRepository) FindByIDAndOwner(ctx context.Context, id uuid.UUID, userID int) (*model.Medicine, error) {
	if m.FindByIDAndOwnerFunc != nil {
		return m.FindByIDAndOwnerFunc(ctx, id, userID)
	}
	return nil, errors.New("FindByIDAndOwnerFunc not implemented in mock")
}

func (m *MockMedicineRepository) FindAll(ctx context.Context) ([]model.Medicine, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockMedicineRepository) FindAllWithOwners(ctx context.Context) ([]model.MedicineWithOwner, error) {
	if m.FindAllWithOwnersFunc != nil {
		return m.FindAllWithOwnersFunc(ctx)
	}
	return nil, nil
}

func (m *MockMedicineRepository) Update(ctx context.Context, medicine *model.Medicine) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, medicine)
	}
	return nil
}

func (m *MockMedicineRepository) DeleteByIDAndOwner(ctx context.Context, id uuid.UUID, userID int) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, userID)
	}
	return nil
}
