package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DevAyush27/med-tracker/internal/adherence"
	"github.com/DevAyush27/med-tracker/internal/model"
	"github.com/DevAyush27/med-tracker/internal/repository"
	"github.com/DevAyush27/med-tracker/internal/schedule"

	"github.com/google/uuid"
)

var (
	ErrMedicineNotFound = errors.New("medicine not found")
	ErrInvalidSchedule  = errors.New("invalid schedule input")
)

// MedicineService provides medicine tracking operations
type MedicineService interface {
	AddMedicine(ctx context.Context, userID int, req model.CreateMedicineRequest) (*model.Medicine, error)
	GetUserMedicines(ctx context.Context, userID int) ([]model.Medicine, error)
	GetMedicine(ctx context.Context, userID int, id uuid.UUID) (*model.Medicine, error)
	UpdateMedicine(ctx context.Context, userID int, id uuid.UUID, req model.UpdateMedicineRequest) (*model.Medicine, error)
	DeleteMedicine(ctx context.Context, userID int, id uuid.UUID) error
	MarkDose(ctx context.Context, userID int, id uuid.UUID, req model.MarkDoseRequest) (*model.Medicine, error)
	GetStats(ctx context.Context, userID int) (adherence.Stats, error)
	GetAnalytics(ctx context.Context, userID int) (adherence.Report, error)
	GetAllMedicines(ctx context.Context) ([]model.Medicine, error)
}

type medicineService struct {
	repo repository.MedicineRepository
	now  func() time.Time
}

// NewMedicineService creates a new MedicineService
func NewMedicineService(repo repository.MedicineRepository) MedicineService {
	return &medicineService{repo: repo, now: time.Now}
}

// AddMedicine creates a medicine with a server-generated 7-day schedule.
// The schedule is fixed at creation and never regenerated.
func (s *medicineService) AddMedicine(ctx context.Context, userID int, req model.CreateMedicineRequest) (*model.Medicine, error) {
	hour, minute, err := schedule.ParseTimeOfDay(req.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}
	freq, err := schedule.ParseFrequency(req.Frequency)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	medicine := &model.Medicine{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         req.Name,
		Dose:         req.Dose,
		Schedule:     schedule.Generate(hour, minute, freq, s.now()),
		TakenHistory: []model.DoseEvent{},
	}

	if err := s.repo.Create(ctx, medicine); err != nil {
		return nil, fmt.Errorf("failed to add medicine: %w", err)
	}
	return medicine, nil
}

// GetUserMedicines returns the caller's medicines
func (s *medicineService) GetUserMedicines(ctx context.Context, userID int) ([]model.Medicine, error) {
	medicines, err := s.repo.FindByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get medicines: %w", err)
	}
	return medicines, nil
}

// GetMedicine returns one medicine scoped to the caller
func (s *medicineService) GetMedicine(ctx context.Context, userID int, id uuid.UUID) (*model.Medicine, error) {
	medicine, err := s.repo.FindByIDAndOwner(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get medicine: %w", err)
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}
	return medicine, nil
}

// UpdateMedicine merges the provided fields into the stored medicine.
// Absent fields keep their current value.
func (s *medicineService) UpdateMedicine(ctx context.Context, userID int, id uuid.UUID, req model.UpdateMedicineRequest) (*model.Medicine, error) {
	medicine, err := s.GetMedicine(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		medicine.Name = *req.Name
	}
	if req.Dose != nil {
		medicine.Dose = *req.Dose
	}
	if req.Schedule != nil {
		medicine.Schedule = req.Schedule
	}
	if req.TakenHistory != nil {
		medicine.TakenHistory = req.TakenHistory
	}

	if err := s.repo.Update(ctx, medicine); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMedicineNotFound
		}
		return nil, fmt.Errorf("failed to update medicine: %w", err)
	}
	return medicine, nil
}

// DeleteMedicine removes a medicine scoped to the caller
func (s *medicineService) DeleteMedicine(ctx context.Context, userID int, id uuid.UUID) error {
	if err := s.repo.DeleteByIDAndOwner(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMedicineNotFound
		}
		return fmt.Errorf("failed to delete medicine: %w", err)
	}
	return nil
}

// MarkDose appends one taken/missed acknowledgement to the history.
// History is append-only; existing entries are never rewritten.
func (s *medicineService) MarkDose(ctx context.Context, userID int, id uuid.UUID, req model.MarkDoseRequest) (*model.Medicine, error) {
	medicine, err := s.GetMedicine(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	medicine.TakenHistory = append(medicine.TakenHistory, model.DoseEvent{
		Date:   req.Date,
		Status: req.Status,
	})

	if err := s.repo.Update(ctx, medicine); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMedicineNotFound
		}
		return nil, fmt.Errorf("failed to record dose: %w", err)
	}
	return medicine, nil
}

// GetStats reconciles the caller's medicines into the dashboard snapshot
func (s *medicineService) GetStats(ctx context.Context, userID int) (adherence.Stats, error) {
	medicines, err := s.repo.FindByOwner(ctx, userID)
	if err != nil {
		return adherence.Stats{}, fmt.Errorf("failed to get medicines for stats: %w", err)
	}
	return adherence.Reconcile(medicines, s.now()), nil
}

// GetAnalytics summarizes the caller's taken/missed history
func (s *medicineService) GetAnalytics(ctx context.Context, userID int) (adherence.Report, error) {
	medicines, err := s.repo.FindByOwner(ctx, userID)
	if err != nil {
		return adherence.Report{}, fmt.Errorf("failed to get medicines for analytics: %w", err)
	}
	return adherence.Analyze(medicines), nil
}

// GetAllMedicines lists every medicine, for doctor/admin callers
func (s *medicineService) GetAllMedicines(ctx context.Context) ([]model.Medicine, error) {
	medicines, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list all medicines: %w", err)
	}
	return medicines, nil
}
