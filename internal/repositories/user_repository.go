package repositories

import (
	"errors"

	"sponsorhub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	UpdateFlag(userID string, status models.FlagStatus) error
	Delete(id string) error

	FindByRole(role models.UserRole) ([]models.User, error)
	FindByRoleAndFlag(role models.UserRole, flag models.FlagStatus) ([]models.User, error)
	// FindUnapprovedByRole returns users of the role whose flag is empty
	// (never reviewed) or Flagged.
	FindUnapprovedByRole(role models.UserRole) ([]models.User, error)

	CountByRole(role models.UserRole) (int64, error)
	CountByRoleAndFlag(role models.UserRole, flag models.FlagStatus) (int64, error)
	AdminExists() (bool, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	err := r.db.Create(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Sponsor").Preload("Influencer").
		First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Sponsor").Preload("Influencer").
		First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepositoryImpl) UpdateFlag(userID string, status models.FlagStatus) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("flagged", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) FindByRole(role models.UserRole) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("role = ?", role).Order("created_at").Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) FindByRoleAndFlag(role models.UserRole, flag models.FlagStatus) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("role = ? AND flagged = ?", role, flag).
		Order("created_at").Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) FindUnapprovedByRole(role models.UserRole) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("role = ?", role).
		Where("flagged IS NULL OR flagged = '' OR flagged = ?", models.FlagStatusFlagged).
		Order("created_at").Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) CountByRole(role models.UserRole) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (r *UserRepositoryImpl) CountByRoleAndFlag(role models.UserRole, flag models.FlagStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("role = ? AND flagged = ?", role, flag).Count(&count).Error
	return count, err
}

func (r *UserRepositoryImpl) AdminExists() (bool, error) {
	count, err := r.CountByRole(models.UserRoleAdmin)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
