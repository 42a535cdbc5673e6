package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DevAyush27/med-tracker/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedicineRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	med := &model.Medicine{
		ID:       uuid.New(),
		UserID:   1,
		Name:     "Aspirin",
		Dose:     "100mg",
		Schedule: []time.Time{now.Add(time.Hour)},
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO medicines`)).
		WithArgs(med.ID, med.UserID, med.Name, med.Dose, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	repo := NewMedicineRepository(mock)
	err = repo.Create(context.Background(), med)

	assert.NoError(t, err)
	assert.Equal(t, now, med.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMedicineRepository_FindByOwner_DecodesHistoryShapes(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()
	now := time.Now()
	scheduleJSON := []byte(`["2024-05-06T09:00:00Z"]`)
	// one legacy bare timestamp and one tagged entry
	historyJSON := []byte(`["2024-05-06T09:05:00Z", {"date": "2024-05-07T09:00:00Z", "status": "missed"}]`)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM medicines WHERE user_id = $1`)).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "name", "dose", "schedule", "taken_history", "created_at", "updated_at"}).
			AddRow(id, 1, "Aspirin", "100mg", scheduleJSON, historyJSON, now, now))

	repo := NewMedicineRepository(mock)
	medicines, err := repo.FindByOwner(context.Background(), 1)

	assert.NoError(t, err)
	require.Len(t, medicines, 1)
	med := medicines[0]
	require.Len(t, med.Schedule, 1)
	require.Len(t, med.TakenHistory, 2)
	assert.Equal(t, model.DoseStatusTaken, med.TakenHistory[0].Status) // bare timestamp decodes as taken
	assert.Equal(t, model.DoseStatusMissed, med.TakenHistory[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMedicineRepository_FindByIDAndOwner_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM medicines WHERE id = $1 AND user_id = $2`)).
		WithArgs(id, 1).
		WillReturnError(pgx.ErrNoRows)

	repo := NewMedicineRepository(mock)
	med, err := repo.FindByIDAndOwner(context.Background(), id, 1)

	assert.NoError(t, err)
	assert.Nil(t, med)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMedicineRepository_Update_NotOwned(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	med := &model.Medicine{ID: uuid.New(), UserID: 2, Name: "Aspirin", Dose: "100mg"}
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE medicines`)).
		WithArgs(med.Name, med.Dose, pgxmock.AnyArg(), pgxmock.AnyArg(), med.ID, med.UserID).
		WillReturnError(pgx.ErrNoRows)

	repo := NewMedicineRepository(mock)
	err = repo.Update(context.Background(), med)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMedicineRepository_DeleteByIDAndOwner(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM medicines WHERE id = $1 AND user_id = $2`)).
		WithArgs(id, 1).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	repo := NewMedicineRepository(mock)
	err = repo.DeleteByIDAndOwner(context.Background(), id, 1)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMedicineRepository_DeleteByIDAndOwner_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM medicines WHERE id = $1 AND user_id = $2`)).
		WithArgs(id, 1).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := NewMedicineRepository(mock)
	err = repo.DeleteByIDAndOwner(context.Background(), id, 1)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
