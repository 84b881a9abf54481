package repositories

import (
	"errors"

	"sponsorhub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSponsorNotFound    = errors.New("sponsor profile not found")
	ErrInfluencerNotFound = errors.New("influencer profile not found")
)

// InfluencerFilter narrows the public influencer directory.
type InfluencerFilter struct {
	Category  string
	Expertise string
	MinReach  int64
}

type ProfileRepository interface {
	CreateSponsor(sponsor *models.Sponsor) error
	CreateInfluencer(influencer *models.Influencer) error

	FindSponsor(userID string) (*models.Sponsor, error)
	FindInfluencer(userID string) (*models.Influencer, error)

	UpdateSponsor(sponsor *models.Sponsor) error
	UpdateInfluencer(influencer *models.Influencer) error

	FindInfluencers(filter InfluencerFilter) ([]models.Influencer, error)
	FindAllInfluencers() ([]models.Influencer, error)
	FindAllSponsors() ([]models.Sponsor, error)
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) CreateSponsor(sponsor *models.Sponsor) error {
	return r.db.Create(sponsor).Error
}

func (r *ProfileRepositoryImpl) CreateInfluencer(influencer *models.Influencer) error {
	return r.db.Create(influencer).Error
}

func (r *ProfileRepositoryImpl) FindSponsor(userID string) (*models.Sponsor, error) {
	var sponsor models.Sponsor
	err := r.db.Preload("User").First(&sponsor, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSponsorNotFound
		}
		return nil, err
	}
	return &sponsor, nil
}

func (r *ProfileRepositoryImpl) FindInfluencer(userID string) (*models.Influencer, error) {
	var influencer models.Influencer
	err := r.db.Preload("User").First(&influencer, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInfluencerNotFound
		}
		return nil, err
	}
	return &influencer, nil
}

func (r *ProfileRepositoryImpl) UpdateSponsor(sponsor *models.Sponsor) error {
	return r.db.Save(sponsor).Error
}

func (r *ProfileRepositoryImpl) UpdateInfluencer(influencer *models.Influencer) error {
	return r.db.Save(influencer).Error
}

func (r *ProfileRepositoryImpl) FindInfluencers(filter InfluencerFilter) ([]models.Influencer, error) {
	query := r.db.Preload("User").Model(&models.Influencer{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Expertise != "" {
		query = query.Where("expertise ILIKE ?", "%"+filter.Expertise+"%")
	}
	if filter.MinReach > 0 {
		query = query.Where("reach >= ?", filter.MinReach)
	}

	var influencers []models.Influencer
	err := query.Find(&influencers).Error
	return influencers, err
}

func (r *ProfileRepositoryImpl) FindAllInfluencers() ([]models.Influencer, error) {
	var influencers []models.Influencer
	err := r.db.Preload("User").Find(&influencers).Error
	return influencers, err
}

func (r *ProfileRepositoryImpl) FindAllSponsors() ([]models.Sponsor, error) {
	var sponsors []models.Sponsor
	err := r.db.Preload("User").Find(&sponsors).Error
	return sponsors, err
}
