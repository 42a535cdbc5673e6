package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DevAyush27/med-tracker/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrNotFound is returned when a medicine does not exist or is not owned by
// the caller.
var ErrNotFound = errors.New("medicine not found")

// MedicineRepository defines operations for medicine data
type MedicineRepository interface {
	Create(ctx context.Context, medicine *model.Medicine) error
	FindByOwner(ctx context.Context, userID int) ([]model.Medicine, error)
	FindByIDAndOwner(ctx context.Context, id uuid.UUID, userID int) (*model.Medicine, error)
	FindAll(ctx context.Context) ([]model.Medicine, error)
	FindAllWithOwners(ctx context.Context) ([]model.MedicineWithOwner, error)
	Update(ctx context.Context, medicine *model.Medicine) error
	DeleteByIDAndOwner(ctx context.Context, id uuid.UUID, userID int) error
}

type medicineRepository struct {
	db DB
}

// NewMedicineRepository creates a new MedicineRepository
func NewMedicineRepository(db DB) MedicineRepository {
	return &medicineRepository{db: db}
}

const medicineColumns = `id, user_id, name, dose, schedule, taken_history, created_at, updated_at`

// marshalDocs encodes the schedule and history for the jsonb columns.
func marshalDocs(m *model.Medicine) (string, string, error) {
	schedule, err := json.Marshal(m.Schedule)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal schedule: %w", err)
	}
	history := m.TakenHistory
	if history == nil {
		history = []model.DoseEvent{}
	}
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal taken history: %w", err)
	}
	return string(schedule), string(historyJSON), nil
}

// scanMedicine reads one medicine row, decoding the jsonb documents.
func scanMedicine(row pgx.Row, m *model.Medicine) error {
	var scheduleJSON, historyJSON []byte
	if err := row.Scan(&m.ID, &m.UserID, &m.Name, &m.Dose, &scheduleJSON, &historyJSON, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return err
	}
	if err := json.Unmarshal(scheduleJSON, &m.Schedule); err != nil {
		return fmt.Errorf("failed to decode schedule: %w", err)
	}
	if err := json.Unmarshal(historyJSON, &m.TakenHistory); err != nil {
		return fmt.Errorf("failed to decode taken history: %w", err)
	}
	return nil
}

// Create inserts a new medicine into the database
func (r *medicineRepository) Create(ctx context.Context, m *model.Medicine) error {
	scheduleJSON, historyJSON, err := marshalDocs(m)
	if err != nil {
		return err
	}
	sql := `INSERT INTO medicines (id, user_id, name, dose, schedule, taken_history)
            VALUES ($1, $2, $3, $4, $5::jsonb, $6::jsonb) RETURNING created_at, updated_at`
	err = r.db.QueryRow(ctx, sql, m.ID, m.UserID, m.Name, m.Dose, scheduleJSON, historyJSON).Scan(&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create medicine: %w", err)
	}
	return nil
}

// FindByOwner retrieves all medicines belonging to a user
func (r *medicineRepository) FindByOwner(ctx context.Context, userID int) ([]model.Medicine, error) {
	sql := `SELECT ` + medicineColumns + ` FROM medicines WHERE user_id = $1 ORDER BY created_at`
	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query medicines by owner: %w", err)
	}
	defer rows.Close()

	return collectMedicines(rows)
}

// FindByIDAndOwner retrieves a medicine by ID scoped to its owner
func (r *medicineRepository) FindByIDAndOwner(ctx context.Context, id uuid.UUID, userID int) (*model.Medicine, error) {
	m := &model.Medicine{}
	sql := `SELECT ` + medicineColumns + ` FROM medicines WHERE id = $1 AND user_id = $2`
	err := scanMedicine(r.db.QueryRow(ctx, sql, id, userID), m)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found, service layer decides
		}
		return nil, fmt.Errorf("failed to find medicine by ID: %w", err)
	}
	return m, nil
}

// FindAll retrieves every medicine, for the doctor/admin listing
func (r *medicineRepository) FindAll(ctx context.Context) ([]model.Medicine, error) {
	sql := `SELECT ` + medicineColumns + ` FROM medicines ORDER BY user_id, created_at`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query all medicines: %w", err)
	}
	defer rows.Close()

	return collectMedicines(rows)
}

// FindAllWithOwners retrieves every medicine joined with its owning user.
// The reminder poller reads this once per tick.
func (r *medicineRepository) FindAllWithOwners(ctx context.Context) ([]model.MedicineWithOwner, error) {
	sql := `SELECT m.id, m.user_id, m.name, m.dose, m.schedule, m.taken_history, m.created_at, m.updated_at,
                   u.id, u.name, u.email, u.password_hash, u.phone, u.role, u.created_at
            FROM medicines m JOIN users u ON m.user_id = u.id`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query medicines with owners: %w", err)
	}
	defer rows.Close()

	var result []model.MedicineWithOwner
	for rows.Next() {
		var mo model.MedicineWithOwner
		var scheduleJSON, historyJSON []byte
		if err := rows.Scan(
			&mo.Medicine.ID, &mo.Medicine.UserID, &mo.Medicine.Name, &mo.Medicine.Dose,
			&scheduleJSON, &historyJSON, &mo.Medicine.CreatedAt, &mo.Medicine.UpdatedAt,
			&mo.Owner.ID, &mo.Owner.Name, &mo.Owner.Email, &mo.Owner.PasswordHash,
			&mo.Owner.Phone, &mo.Owner.Role, &mo.Owner.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan medicine with owner: %w", err)
		}
		if err := json.Unmarshal(scheduleJSON, &mo.Medicine.Schedule); err != nil {
			return nil, fmt.Errorf("failed to decode schedule: %w", err)
		}
		if err := json.Unmarshal(historyJSON, &mo.Medicine.TakenHistory); err != nil {
			return nil, fmt.Errorf("failed to decode taken history: %w", err)
		}
		result = append(result, mo)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating medicine rows: %w", err)
	}
	return result, nil
}

// Update replaces the mutable fields of a medicine, scoped to its owner
func (r *medicineRepository) Update(ctx context.Context, m *model.Medicine) error {
	scheduleJSON, historyJSON, err := marshalDocs(m)
	if err != nil {
		return err
	}
	sql := `UPDATE medicines
            SET name = $1, dose = $2, schedule = $3::jsonb, taken_history = $4::jsonb, updated_at = NOW()
            WHERE id = $5 AND user_id = $6 RETURNING updated_at` // ensure user_id matches for ownership
	err = r.db.QueryRow(ctx, sql, m.Name, m.Dose, scheduleJSON, historyJSON, m.ID, m.UserID).Scan(&m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update medicine: %w", err)
	}
	return nil
}

// DeleteByIDAndOwner removes a medicine, scoped to its owner
func (r *medicineRepository) DeleteByIDAndOwner(ctx context.Context, id uuid.UUID, userID int) error {
	sql := `DELETE FROM medicines WHERE id = $1 AND user_id = $2`
	cmdTag, err := r.db.Exec(ctx, sql, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete medicine: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func collectMedicines(rows pgx.Rows) ([]model.Medicine, error) {
	var medicines []model.Medicine
	for rows.Next() {
		var m model.Medicine
		if err := scanMedicine(rows, &m); err != nil {
			return nil, fmt.Errorf("failed to scan medicine row: %w", err)
		}
		medicines = append(medicines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating medicine rows: %w", err)
	}
	return medicines, nil
}
