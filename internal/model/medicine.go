package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	DoseStatusTaken  = "taken"
	DoseStatusMissed = "missed"
)

// DoseEvent is one taken/missed acknowledgement in a medicine's history.
type DoseEvent struct {
	Date   time.Time `json:"date"`
	Status string    `json:"status"`
}

// UnmarshalJSON accepts both history shapes: the canonical {date, status}
// object and the legacy bare timestamp string, which decodes as "taken".
func (e *DoseEvent) UnmarshalJSON(data []byte) error {
	var bare time.Time
	if err := json.Unmarshal(data, &bare); err == nil {
		e.Date = bare
		e.Status = DoseStatusTaken
		return nil
	}

	type doseEvent DoseEvent
	var tagged doseEvent
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("invalid dose event: %w", err)
	}
	*e = DoseEvent(tagged)
	return nil
}

// Medicine represents a tracked medicine with its dosing schedule
type Medicine struct {
	ID           uuid.UUID   `json:"id"`
	UserID       int         `json:"user_id"`
	Name         string      `json:"name"`
	Dose         string      `json:"dose"` // free text, e.g. "500mg"
	Schedule     []time.Time `json:"schedule"`
	TakenHistory []DoseEvent `json:"takenHistory"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// MedicineWithOwner pairs a medicine with its owning user, as loaded by the
// reminder poller.
type MedicineWithOwner struct {
	Medicine Medicine
	Owner    User
}

// CreateMedicineRequest is used for adding a new medicine. The schedule is
// generated server-side from time-of-day and frequency.
type CreateMedicineRequest struct {
	Name      string `json:"name" binding:"required"`
	Dose      string `json:"dose" binding:"required"`
	Time      string `json:"time" binding:"required"` // "HH:MM"
	Frequency string `json:"frequency" binding:"required,oneof=daily twice_daily"`
}

// UpdateMedicineRequest allows partial updates, mirroring the PUT semantics
// where absent fields keep their stored value.
type UpdateMedicineRequest struct {
	Name         *string     `json:"name,omitempty"`
	Dose         *string     `json:"dose,omitempty"`
	Schedule     []time.Time `json:"schedule,omitempty"`
	TakenHistory []DoseEvent `json:"takenHistory,omitempty"`
}

// MarkDoseRequest records a taken or missed dose.
type MarkDoseRequest struct {
	Date   time.Time `json:"date" binding:"required"`
	Status string    `json:"status" binding:"required,oneof=taken missed"`
}
