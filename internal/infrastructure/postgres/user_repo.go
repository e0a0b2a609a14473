package postgres

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rosemall/flash-order-service/internal/domain"
	"github.com/rosemall/flash-order-service/internal/infrastructure/postgres/mappers"
	"github.com/rosemall/flash-order-service/internal/infrastructure/postgres/models"
)

type DefaultUserRepository struct {
	DB *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{DB: db}
}

func (r *DefaultUserRepository) CreateUser(user *domain.User) (string, error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	userModel := models.UserModel{
		ID:            user.ID,
		Phone:         user.Phone,
		Nickname:      user.Nickname,
		PasswordHash:  user.PasswordHash,
		InviteCode:    user.InviteCode,
		IsMainAccount: user.IsMainAccount,
	}
	if err := r.DB.Create(&userModel).Error; err != nil {
		return "", err
	}
	return user.ID, nil
}

func (r *DefaultUserRepository) GetUserByID(userID string) (*domain.User, error) {
	return r.findOne("id = ?", userID)
}

func (r *DefaultUserRepository) GetUserByPhone(phone string) (*domain.User, error) {
	return r.findOne("phone = ?", phone)
}

func (r *DefaultUserRepository) GetUserByInviteCode(inviteCode string) (*domain.User, error) {
	return r.findOne("invite_code = ?", inviteCode)
}

func (r *DefaultUserRepository) findOne(query string, arg interface{}) (*domain.User, error) {
	var userModel models.UserModel
	if err := r.DB.First(&userModel, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToUserDomain(&userModel), nil
}

func (r *DefaultUserRepository) ListUsers() ([]*domain.User, error) {
	var userModels []models.UserModel
	if err := r.DB.Order("created_at DESC").Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*domain.User, len(userModels))
	for i := range userModels {
		users[i] = mappers.ToUserDomain(&userModels[i])
	}
	return users, nil
}

func (r *DefaultUserRepository) CountUsers() (int64, error) {
	var count int64
	err := r.DB.Model(&models.UserModel{}).Count(&count).Error
	return count, err
}

func (r *DefaultUserRepository) SetAgreementSigned(userID string, at time.Time) error {
	return r.DB.Model(&models.UserModel{}).
		Where("id = ? AND agreement_signed_at IS NULL", userID).
		Update("agreement_signed_at", at).Error
}
