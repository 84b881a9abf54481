package repositories

import (
	"errors"

	"sponsorhub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCampaignNotFound = errors.New("campaign not found")

// CampaignFilter narrows the public campaign listing on the influencer
// dashboard.
type CampaignFilter struct {
	Category  string
	MinBudget *float64
	MaxBudget *float64
}

type CampaignRepository interface {
	Create(campaign *models.Campaign) error
	FindByID(id string) (*models.Campaign, error)
	Update(campaign *models.Campaign) error
	Delete(id string) error
	UpdateFlag(id string, status models.FlagStatus) error

	FindBySponsor(sponsorID string) ([]models.Campaign, error)
	FindActiveBySponsor(sponsorID string) ([]models.Campaign, error)
	FindPublicBySponsor(sponsorID string) ([]models.Campaign, error)
	FindPublic(filter CampaignFilter) ([]models.Campaign, error)
	FindAll() ([]models.Campaign, error)

	CountAll() (int64, error)
	CountByVisibility(v models.CampaignVisibility) (int64, error)
	CountFlagged() (int64, error)
}

type CampaignRepositoryImpl struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) CampaignRepository {
	return &CampaignRepositoryImpl{db: db}
}

func (r *CampaignRepositoryImpl) Create(campaign *models.Campaign) error {
	return r.db.Create(campaign).Error
}

func (r *CampaignRepositoryImpl) FindByID(id string) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.Preload("Sponsor.User").First(&campaign, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}
	return &campaign, nil
}

func (r *CampaignRepositoryImpl) Update(campaign *models.Campaign) error {
	return r.db.Save(campaign).Error
}

func (r *CampaignRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Campaign{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCampaignNotFound
	}
	return nil
}

func (r *CampaignRepositoryImpl) UpdateFlag(id string, status models.FlagStatus) error {
	result := r.db.Model(&models.Campaign{}).Where("id = ?", id).
		Update("flagged", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCampaignNotFound
	}
	return nil
}

func (r *CampaignRepositoryImpl) FindBySponsor(sponsorID string) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	err := r.db.Where("sponsor_id = ?", sponsorID).
		Order("created_at").Find(&campaigns).Error
	return campaigns, err
}

func (r *CampaignRepositoryImpl) FindActiveBySponsor(sponsorID string) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	err := r.db.Where("sponsor_id = ? AND flagged = ?", sponsorID, models.FlagStatusActive).
		Order("created_at").Find(&campaigns).Error
	return campaigns, err
}

func (r *CampaignRepositoryImpl) FindPublicBySponsor(sponsorID string) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	err := r.db.Where("sponsor_id = ? AND visibility = ?", sponsorID, models.VisibilityPublic).
		Order("created_at").Find(&campaigns).Error
	return campaigns, err
}

func (r *CampaignRepositoryImpl) FindPublic(filter CampaignFilter) ([]models.Campaign, error) {
	query := r.db.Preload("Sponsor.User").
		Where("visibility = ?", models.VisibilityPublic)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.MinBudget != nil {
		query = query.Where("budget >= ?", *filter.MinBudget)
	}
	if filter.MaxBudget != nil {
		query = query.Where("budget <= ?", *filter.MaxBudget)
	}

	var campaigns []models.Campaign
	err := query.Order("created_at").Find(&campaigns).Error
	return campaigns, err
}

func (r *CampaignRepositoryImpl) FindAll() ([]models.Campaign, error) {
	var campaigns []models.Campaign
	err := r.db.Order("created_at").Find(&campaigns).Error
	return campaigns, err
}

func (r *CampaignRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Campaign{}).Count(&count).Error
	return count, err
}

func (r *CampaignRepositoryImpl) CountByVisibility(v models.CampaignVisibility) (int64, error) {
	var count int64
	err := r.db.Model(&models.Campaign{}).Where("visibility = ?", v).Count(&count).Error
	return count, err
}

func (r *CampaignRepositoryImpl) CountFlagged() (int64, error) {
	var count int64
	err := r.db.Model(&models.Campaign{}).
		Where("flagged = ?", models.FlagStatusFlagged).Count(&count).Error
	return count, err
}
