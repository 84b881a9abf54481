package workers

import (
	"context"
	"time"

	"sponsorhub_backend/internal/email"
	"sponsorhub_backend/internal/logger"
	"sponsorhub_backend/internal/repositories"
)

// ReminderWorker periodically emails influencers who still have pending
// ad requests waiting for a response.
type ReminderWorker struct {
	profileRepo   repositories.ProfileRepository
	adRequestRepo repositories.AdRequestRepository
	emailProvider email.Provider
	interval      time.Duration
}

func NewReminderWorker(
	profileRepo repositories.ProfileRepository,
	adRequestRepo repositories.AdRequestRepository,
	emailProvider email.Provider,
	interval time.Duration,
) *ReminderWorker {
	return &ReminderWorker{
		profileRepo:   profileRepo,
		adRequestRepo: adRequestRepo,
		emailProvider: emailProvider,
		interval:      interval,
	}
}

func (w *ReminderWorker) Start(ctx context.Context) {
	go w.loop(ctx)
}

func (w *ReminderWorker) loop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Reminder worker stopped")
			return
		case <-ticker.C:
			if err := w.RunOnce(); err != nil {
				logger.Error("Reminder run failed", "error", err.Error())
			}
		}
	}
}

// RunOnce performs a single reminder pass. A failure for one influencer
// is logged and does not stop the rest of the batch.
func (w *ReminderWorker) RunOnce() error {
	influencers, err := w.profileRepo.FindAllInfluencers()
	if err != nil {
		return err
	}

	sent := 0
	for i := range influencers {
		inf := &influencers[i]
		if inf.User == nil {
			continue
		}

		pending, err := w.adRequestRepo.CountPendingByInfluencer(inf.UserID)
		if err != nil {
			logger.Error("Failed to count pending requests",
				"influencer_id", inf.UserID, "error", err.Error())
			continue
		}
		if pending == 0 {
			continue
		}

		data := email.ReminderData{
			Username:     inf.User.Username,
			PendingCount: pending,
		}
		err = w.emailProvider.SendTemplate(
			[]string{inf.User.Email},
			"You have pending ad requests",
			email.TemplateReminder,
			data,
		)
		if err != nil {
			logger.Error("Failed to send reminder email",
				"influencer_id", inf.UserID, "error", err.Error())
			continue
		}
		sent++
	}

	logger.Info("Reminder run complete", "sent", sent)
	return nil
}
