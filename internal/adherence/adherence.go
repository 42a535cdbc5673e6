// Package adherence reconciles medicine schedules against taken/missed
// history: how many doses were due in the trailing week, how many were taken,
// which are overdue, and what comes next.
package adherence

import (
	"math"
	"sort"
	"time"

	"github.com/DevAyush27/med-tracker/internal/model"
)

// Tolerance is the matching window between a scheduled dose and a history
// entry. A history entry strictly closer than this counts as that dose.
const Tolerance = 30 * time.Minute

// Window is the trailing span doses are reconciled over.
const Window = 7 * 24 * time.Hour

// UpcomingDose is one entry of the next-doses list.
type UpcomingDose struct {
	Medicine string    `json:"medicine"`
	Dose     string    `json:"dose"`
	Time     time.Time `json:"time"`
}

// Stats is the reconciliation snapshot for a set of medicines.
type Stats struct {
	TotalMedicines int            `json:"totalMedicines"`
	TotalDoses     int            `json:"totalDoses"`
	TakenDoses     int            `json:"takenDoses"`
	OverdueCount   int            `json:"overdueCount"`
	AdherenceRate  int            `json:"adherenceRate"`
	NextDoses      []UpcomingDose `json:"nextDoses"`
}

// Report is the per-medicine analytics summary.
type Report struct {
	CompletionRate int    `json:"completionRate"`
	MostMissed     string `json:"mostMissed"`
	MissedCount    int    `json:"missedCount"`
}

// Matched reports whether any taken history entry falls strictly within the
// tolerance of the scheduled time. This is an existential test, not a 1:1
// assignment: one history entry may match several slots.
func Matched(scheduled time.Time, history []model.DoseEvent) bool {
	for _, e := range history {
		if e.Status != model.DoseStatusTaken {
			continue
		}
		d := e.Date.Sub(scheduled)
		if d < 0 {
			d = -d
		}
		if d < Tolerance {
			return true
		}
	}
	return false
}

// Reconcile computes the adherence snapshot for the given medicines at "now".
// The window runs from midnight seven days ago up to now.
func Reconcile(medicines []model.Medicine, now time.Time) Stats {
	stats := Stats{
		TotalMedicines: len(medicines),
		NextDoses:      []UpcomingDose{},
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := today.Add(-Window)

	for _, med := range medicines {
		for _, scheduled := range med.Schedule {
			if !scheduled.Before(weekAgo) && !scheduled.After(now) {
				stats.TotalDoses++
				if Matched(scheduled, med.TakenHistory) {
					stats.TakenDoses++
				} else if scheduled.Before(now) {
					stats.OverdueCount++
				}
			}

			if scheduled.After(now) {
				stats.NextDoses = append(stats.NextDoses, UpcomingDose{
					Medicine: med.Name,
					Dose:     med.Dose,
					Time:     scheduled,
				})
			}
		}
	}

	if stats.TotalDoses > 0 {
		stats.AdherenceRate = int(math.Round(float64(stats.TakenDoses) / float64(stats.TotalDoses) * 100))
	}

	sort.Slice(stats.NextDoses, func(i, j int) bool {
		return stats.NextDoses[i].Time.Before(stats.NextDoses[j].Time)
	})
	if len(stats.NextDoses) > 5 {
		stats.NextDoses = stats.NextDoses[:5]
	}

	return stats
}

// Analyze summarizes explicit taken/missed acknowledgements across medicines:
// overall completion rate plus the medicine with the most missed doses.
// Equal missed counts resolve to the lexically smallest name.
func Analyze(medicines []model.Medicine) Report {
	var taken, missed int
	missedByName := make(map[string]int)

	for _, med := range medicines {
		for _, e := range med.TakenHistory {
			switch e.Status {
			case model.DoseStatusTaken:
				taken++
			case model.DoseStatusMissed:
				missed++
				missedByName[med.Name]++
			}
		}
	}

	report := Report{}
	if taken+missed > 0 {
		report.CompletionRate = int(math.Round(float64(taken) / float64(taken+missed) * 100))
	}

	for name, count := range missedByName {
		if count > report.MissedCount || (count == report.MissedCount && count > 0 && name < report.MostMissed) {
			report.MostMissed = name
			report.MissedCount = count
		}
	}

	return report
}
