package workers

import (
	"context"
	"fmt"
	"time"

	"sponsorhub_backend/internal/email"
	"sponsorhub_backend/internal/logger"
	"sponsorhub_backend/internal/models"
	"sponsorhub_backend/internal/repositories"
)

// ReportWorker periodically emails every sponsor an activity report over
// their campaigns.
type ReportWorker struct {
	profileRepo   repositories.ProfileRepository
	campaignRepo  repositories.CampaignRepository
	adRequestRepo repositories.AdRequestRepository
	emailProvider email.Provider
	interval      time.Duration
}

func NewReportWorker(
	profileRepo repositories.ProfileRepository,
	campaignRepo repositories.CampaignRepository,
	adRequestRepo repositories.AdRequestRepository,
	emailProvider email.Provider,
	interval time.Duration,
) *ReportWorker {
	return &ReportWorker{
		profileRepo:   profileRepo,
		campaignRepo:  campaignRepo,
		adRequestRepo: adRequestRepo,
		emailProvider: emailProvider,
		interval:      interval,
	}
}

func (w *ReportWorker) Start(ctx context.Context) {
	go w.loop(ctx)
}

func (w *ReportWorker) loop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Report worker stopped")
			return
		case <-ticker.C:
			if err := w.RunOnce(); err != nil {
				logger.Error("Report run failed", "error", err.Error())
			}
		}
	}
}

// RunOnce builds and sends the report batch. The first delivery failure
// aborts the batch so a broken relay does not spam partial reports.
func (w *ReportWorker) RunOnce() error {
	sponsors, err := w.profileRepo.FindAllSponsors()
	if err != nil {
		return err
	}

	monthYear := time.Now().Format("January 2006")

	for i := range sponsors {
		sp := &sponsors[i]
		if sp.User == nil {
			continue
		}

		campaigns, err := w.campaignRepo.FindBySponsor(sp.UserID)
		if err != nil {
			return err
		}
		if len(campaigns) == 0 {
			continue
		}

		stats, err := w.collectCampaignStats(campaigns)
		if err != nil {
			return err
		}

		data := email.ReportData{
			Username:  sp.User.Username,
			MonthYear: monthYear,
			Campaigns: stats,
		}
		err = w.emailProvider.SendTemplate(
			[]string{sp.User.Email},
			fmt.Sprintf("Your campaign report for %s", monthYear),
			email.TemplateMonthlyReport,
			data,
		)
		if err != nil {
			return fmt.Errorf("failed to send report to %s: %w", sp.User.Email, err)
		}
	}

	logger.Info("Report run complete", "sponsors", len(sponsors))
	return nil
}

func (w *ReportWorker) collectCampaignStats(campaigns []models.Campaign) ([]email.CampaignStats, error) {
	stats := make([]email.CampaignStats, 0, len(campaigns))
	for i := range campaigns {
		c := &campaigns[i]

		reqs, err := w.adRequestRepo.FindByCampaign(c.ID)
		if err != nil {
			return nil, err
		}

		row := email.CampaignStats{
			Name:          c.Name,
			TotalRequests: len(reqs),
		}
		for j := range reqs {
			if reqs[j].Status == models.AdRequestStatusAccepted {
				row.AcceptedRequests++
				amount := reqs[j].PaymentAmount
				if reqs[j].NegotiatedPaymentAmount != nil {
					amount = *reqs[j].NegotiatedPaymentAmount
				}
				row.BudgetUsed += amount
			}
		}
		stats = append(stats, row)
	}
	return stats, nil
}
