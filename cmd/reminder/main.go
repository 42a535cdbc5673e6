// The reminder binary runs the dose-reminder poller as its own process,
// independent of the API server, the way the original deployment ran its
// cron worker.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/DevAyush27/med-tracker/internal/config"
	"github.com/DevAyush27/med-tracker/internal/notify"
	"github.com/DevAyush27/med-tracker/internal/reminder"
	"github.com/DevAyush27/med-tracker/internal/repository"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dbPool, err := config.ConnectDB(&cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	medicineRepo := repository.NewMedicineRepository(dbPool)

	var email notify.EmailSender
	if cfg.SMTP.Host != "" {
		email = notify.NewSMTPEmailSender(cfg.SMTP)
	} else {
		log.Println("SMTP_HOST not set, email reminders disabled")
	}

	var sms notify.SMSSender
	if cfg.Twilio.AccountSID != "" {
		sms = notify.NewTwilioSMSSender(cfg.Twilio)
	} else {
		log.Println("TWILIO_SID not set, SMS reminders disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	poller := reminder.NewPoller(medicineRepo, email, sms, cfg.Reminder.Interval, cfg.Reminder.Lookahead)
	poller.Run(ctx)
}
