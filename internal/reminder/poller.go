// Package reminder implements the periodic dose-reminder poller. It re-reads
// the medicine store every tick and notifies owners of doses falling inside a
// short lookahead window. Delivery is at-least-once: no state is kept between
// ticks.
package reminder

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/DevAyush27/med-tracker/internal/model"
	"github.com/DevAyush27/med-tracker/internal/notify"
)

// MedicineSource is the slice of the medicine repository the poller reads.
type MedicineSource interface {
	FindAllWithOwners(ctx context.Context) ([]model.MedicineWithOwner, error)
}

// DueDose is one dose instant selected for notification.
type DueDose struct {
	Medicine model.Medicine
	Owner    model.User
	At       time.Time
}

// DueBetween selects every scheduled dose instant in the half-open window
// [from, to).
func DueBetween(medicines []model.MedicineWithOwner, from, to time.Time) []DueDose {
	var due []DueDose
	for _, mo := range medicines {
		for _, at := range mo.Medicine.Schedule {
			if !at.Before(from) && at.Before(to) {
				due = append(due, DueDose{Medicine: mo.Medicine, Owner: mo.Owner, At: at})
			}
		}
	}
	return due
}

// Poller periodically scans for imminent doses and dispatches reminders.
type Poller struct {
	source    MedicineSource
	email     notify.EmailSender
	sms       notify.SMSSender
	interval  time.Duration
	lookahead time.Duration
}

// NewPoller creates a reminder poller. Either sender may be nil, which
// disables that channel.
func NewPoller(source MedicineSource, email notify.EmailSender, sms notify.SMSSender, interval, lookahead time.Duration) *Poller {
	return &Poller{
		source:    source,
		email:     email,
		sms:       sms,
		interval:  interval,
		lookahead: lookahead,
	}
}

// Run ticks until the context is cancelled. The tick body runs inline, so
// ticks never overlap; a slow tick drops the ones it misses.
func (p *Poller) Run(ctx context.Context) {
	log.Printf("Reminder poller running (interval %v, lookahead %v)", p.interval, p.lookahead)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Reminder poller stopping")
			return
		case <-ticker.C:
			p.Tick(ctx, time.Now())
		}
	}
}

// Tick processes one poll cycle at the given instant. A failure for one dose
// or channel is logged and never aborts the remaining doses.
func (p *Poller) Tick(ctx context.Context, now time.Time) {
	medicines, err := p.source.FindAllWithOwners(ctx)
	if err != nil {
		log.Printf("Reminder tick failed to load medicines: %v", err)
		return
	}

	due := DueBetween(medicines, now, now.Add(p.lookahead))
	sent := 0
	for _, d := range due {
		body := fmt.Sprintf("Reminder: Take %s (%s) now.", d.Medicine.Name, d.Medicine.Dose)

		if p.email != nil && d.Owner.HasEmail() {
			if err := p.email.SendEmail(ctx, d.Owner.Email, "Medicine Reminder", body); err != nil {
				log.Printf("Failed to email reminder for %s to %s: %v", d.Medicine.Name, d.Owner.Email, err)
			} else {
				sent++
			}
		}
		if p.sms != nil && d.Owner.HasPhone() {
			if err := p.sms.SendSMS(ctx, *d.Owner.Phone, body); err != nil {
				log.Printf("Failed to text reminder for %s to %s: %v", d.Medicine.Name, *d.Owner.Phone, err)
			} else {
				sent++
			}
		}
	}

	if sent > 0 {
		log.Printf("Reminders sent for %d doses at %v", sent, now)
	}
}
