package repositories

import (
	"errors"

	"sponsorhub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrAdRequestNotFound = errors.New("ad request not found")

type AdRequestRepository interface {
	Create(req *models.AdRequest) error
	FindByID(id string) (*models.AdRequest, error)
	Update(req *models.AdRequest) error
	Delete(id string) error

	FindByCampaignIDs(campaignIDs []string) ([]models.AdRequest, error)
	FindPendingByCampaignIDs(campaignIDs []string) ([]models.AdRequest, error)
	FindPrivateByInfluencer(influencerID string) ([]models.AdRequest, error)
	FindByCampaignAndInfluencer(campaignID, influencerID string) (*models.AdRequest, error)
	FindRecent(limit int) ([]models.AdRequest, error)

	HasAccepted(campaignID string) (bool, error)
	CountByStatus(status models.AdRequestStatus) (int64, error)
	CountAll() (int64, error)
	CountPendingByInfluencer(influencerID string) (int64, error)
	FindByCampaign(campaignID string) ([]models.AdRequest, error)
}

type AdRequestRepositoryImpl struct {
	db *gorm.DB
}

func NewAdRequestRepository(db *gorm.DB) AdRequestRepository {
	return &AdRequestRepositoryImpl{db: db}
}

func (r *AdRequestRepositoryImpl) Create(req *models.AdRequest) error {
	return r.db.Create(req).Error
}

func (r *AdRequestRepositoryImpl) FindByID(id string) (*models.AdRequest, error) {
	var req models.AdRequest
	err := r.db.Preload("Campaign.Sponsor.User").Preload("Influencer.User").
		First(&req, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *AdRequestRepositoryImpl) Update(req *models.AdRequest) error {
	return r.db.Save(req).Error
}

func (r *AdRequestRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.AdRequest{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAdRequestNotFound
	}
	return nil
}

func (r *AdRequestRepositoryImpl) FindByCampaignIDs(campaignIDs []string) ([]models.AdRequest, error) {
	if len(campaignIDs) == 0 {
		return []models.AdRequest{}, nil
	}
	var reqs []models.AdRequest
	err := r.db.Preload("Campaign").Preload("Influencer.User").
		Where("campaign_id IN ?", campaignIDs).
		Order("created_at").Find(&reqs).Error
	return reqs, err
}

func (r *AdRequestRepositoryImpl) FindPendingByCampaignIDs(campaignIDs []string) ([]models.AdRequest, error) {
	if len(campaignIDs) == 0 {
		return []models.AdRequest{}, nil
	}
	var reqs []models.AdRequest
	err := r.db.Preload("Campaign").Preload("Influencer.User").
		Where("campaign_id IN ? AND status = ?", campaignIDs, models.AdRequestStatusPending).
		Order("created_at").Find(&reqs).Error
	return reqs, err
}

func (r *AdRequestRepositoryImpl) FindPrivateByInfluencer(influencerID string) ([]models.AdRequest, error) {
	var reqs []models.AdRequest
	err := r.db.Preload("Campaign.Sponsor.User").Preload("Influencer.User").
		Joins("JOIN campaigns ON campaigns.id = ad_requests.campaign_id").
		Where("ad_requests.influencer_id = ? AND campaigns.visibility = ?",
			influencerID, models.VisibilityPrivate).
		Order("ad_requests.created_at").Find(&reqs).Error
	return reqs, err
}

func (r *AdRequestRepositoryImpl) FindByCampaignAndInfluencer(campaignID, influencerID string) (*models.AdRequest, error) {
	var req models.AdRequest
	err := r.db.First(&req, "campaign_id = ? AND influencer_id = ?", campaignID, influencerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *AdRequestRepositoryImpl) FindRecent(limit int) ([]models.AdRequest, error) {
	var reqs []models.AdRequest
	err := r.db.Preload("Campaign.Sponsor.User").Preload("Influencer.User").
		Order("created_at DESC").Limit(limit).Find(&reqs).Error
	return reqs, err
}

func (r *AdRequestRepositoryImpl) HasAccepted(campaignID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.AdRequest{}).
		Where("campaign_id = ? AND status = ?", campaignID, models.AdRequestStatusAccepted).
		Count(&count).Error
	return count > 0, err
}

func (r *AdRequestRepositoryImpl) CountByStatus(status models.AdRequestStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.AdRequest{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *AdRequestRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.AdRequest{}).Count(&count).Error
	return count, err
}

func (r *AdRequestRepositoryImpl) CountPendingByInfluencer(influencerID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.AdRequest{}).
		Where("influencer_id = ? AND status = ?", influencerID, models.AdRequestStatusPending).
		Count(&count).Error
	return count, err
}

func (r *AdRequestRepositoryImpl) FindByCampaign(campaignID string) ([]models.AdRequest, error) {
	var reqs []models.AdRequest
	err := r.db.Where("campaign_id = ?", campaignID).Find(&reqs).Error
	return reqs, err
}
